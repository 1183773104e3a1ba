package numfmt

import "testing"

func TestFormatTextSubstitution(t *testing.T) {
	f := mustParse(t, `"Item: "@`)
	got := f.Format("widget", DefaultOptions())
	if got != "Item: widget" {
		t.Errorf("Format(%q) = %q, want %q", "widget", got, "Item: widget")
	}
}

func TestFormatTextNoPlaceholderFallsBackToInput(t *testing.T) {
	f := mustParse(t, `General`)
	got := f.Format("raw", DefaultOptions())
	if got != "raw" {
		t.Errorf("General text passthrough: got %q, want %q", got, "raw")
	}
}

func TestFormatBooleanValues(t *testing.T) {
	f := mustParse(t, "@")
	if got := f.Format(true, DefaultOptions()); got != "TRUE" {
		t.Errorf("Format(true) = %q, want TRUE", got)
	}
	if got := f.Format(false, DefaultOptions()); got != "FALSE" {
		t.Errorf("Format(false) = %q, want FALSE", got)
	}
}

func TestFormatEmptyValue(t *testing.T) {
	f := mustParse(t, "@")
	if got := f.Format(nil, DefaultOptions()); got != "" {
		t.Errorf("Format(nil) = %q, want empty string", got)
	}
}
