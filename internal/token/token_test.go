package token

import "testing"

func TestTypeStringKnown(t *testing.T) {
	cases := map[Type]string{
		NUMBER:         "NUMBER",
		STRING:         "STRING",
		NEQUALS_QUIRKY: "NEQUALS_QUIRKY",
		ROUNDDIV:       "ROUNDDIV",
		EOF:            "EOF",
	}
	for ty, want := range cases {
		if got := ty.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ty, got, want)
		}
	}
}

func TestTypeStringOutOfRange(t *testing.T) {
	got := Type(999).String()
	want := "Type(999)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIsComparison(t *testing.T) {
	for _, ty := range []Type{EQUALS, NEQUALS, NEQUALS_QUIRKY, LESS, GREATER, LORE, GORE} {
		if !ty.IsComparison() {
			t.Errorf("%s should be a comparison operator", ty)
		}
	}
	for _, ty := range []Type{ADD, OR, AND, NOT, NEGATE} {
		if ty.IsComparison() {
			t.Errorf("%s should not be a comparison operator", ty)
		}
	}
}

func TestIsOrdering(t *testing.T) {
	for _, ty := range []Type{LESS, GREATER, LORE, GORE} {
		if !ty.IsOrdering() {
			t.Errorf("%s should be an ordering operator", ty)
		}
	}
	for _, ty := range []Type{EQUALS, NEQUALS, NEQUALS_QUIRKY} {
		if ty.IsOrdering() {
			t.Errorf("%s should not be an ordering operator", ty)
		}
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}
