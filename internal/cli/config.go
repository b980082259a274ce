package cli

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config is the one ambient setting this CLI needs from a project file:
// the tab-expansion width spec.md §4.1 requires diagnostics rendering to
// use. It's read from an optional `.nrc.yaml` in the working directory,
// the way funxy.yaml configures funvibe-funxy's own tooling.
type config struct {
	TabWidth int `yaml:"tabWidth"`
}

// loadConfig reads .nrc.yaml from the working directory if present. A
// missing file is not an error: the caller falls back to
// diagnostics.DefaultTabWidth.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config{}, nil
		}
		return config{}, err
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
