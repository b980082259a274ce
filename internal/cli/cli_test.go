package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColorEnabledRespectsNoColorFlag(t *testing.T) {
	if colorEnabled(true) {
		t.Error("--no-color should always disable color, regardless of the terminal")
	}
}

func TestLoadConfigMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("a missing config file should not be an error, got %v", err)
	}
	if cfg.TabWidth != 0 {
		t.Errorf("cfg.TabWidth = %d, want 0 (caller falls back to diagnostics.DefaultTabWidth)", cfg.TabWidth)
	}
}

func TestLoadConfigParsesTabWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".nrc.yaml")
	if err := os.WriteFile(path, []byte("tabWidth: 8\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig returned an error: %v", err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("cfg.TabWidth = %d, want 8", cfg.TabWidth)
	}
}

func TestLoadConfigInvalidYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".nrc.yaml")
	if err := os.WriteFile(path, []byte("tabWidth: [not a number\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("malformed YAML should produce an error")
	}
}

func TestSourceForFallsBackToEmptySourceWithoutFlag(t *testing.T) {
	sourceFlag = ""
	src := sourceFor("tree.json", 4)
	if src.Name != "tree.json" {
		t.Errorf("src.Name = %q, want %q", src.Name, "tree.json")
	}
	if len(src.Lines) != 1 || src.Lines[0] != "" {
		t.Errorf("src.Lines = %v, want a single empty line", src.Lines)
	}
}

func TestReadTreePrefersEvalFlag(t *testing.T) {
	evalFlag = `{"statements":[]}`
	defer func() { evalFlag = "" }()

	raw, name, err := readTree(nil)
	if err != nil || name != "<eval>" || string(raw) != evalFlag {
		t.Errorf("readTree with --eval = (%q, %q, %v), want (%q, \"<eval>\", nil)", raw, name, err, evalFlag)
	}
}

func TestReadTreeReadsFileArgument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.json")
	if err := os.WriteFile(path, []byte(`{"statements":[]}`), 0o644); err != nil {
		t.Fatalf("failed to write fixture tree: %v", err)
	}

	raw, name, err := readTree([]string{path})
	if err != nil || name != path || string(raw) != `{"statements":[]}` {
		t.Errorf("readTree(%q) = (%q, %q, %v)", path, raw, name, err)
	}
}

func TestReadTreeWithoutArgsOrEvalErrors(t *testing.T) {
	evalFlag = ""
	if _, _, err := readTree(nil); err == nil {
		t.Error("readTree with neither a file argument nor --eval should error")
	}
}

func TestSourceForReadsCompanionFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.n")
	if err := os.WriteFile(path, []byte("print 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture source: %v", err)
	}

	sourceFlag = path
	defer func() { sourceFlag = "" }()

	src := sourceFor("tree.json", 4)
	if src.Name != path {
		t.Errorf("src.Name = %q, want %q", src.Name, path)
	}
	if len(src.Lines) != 2 || src.Lines[0] != "print 1" {
		t.Errorf("src.Lines = %v, want [\"print 1\", \"\"]", src.Lines)
	}
}
