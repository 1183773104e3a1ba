package numfmt

import "github.com/gossf/ssfmt/locale"

// DateSystem selects which day-1 epoch a serial number is interpreted
// against.
type DateSystem int

const (
	Date1900 DateSystem = iota
	Date1904
)

// Options carries everything about the caller's environment that a
// Format needs to render a value: which calendar epoch serial numbers
// use, and which locale's separators/names/currency to render with.
type Options struct {
	DateSystem DateSystem
	Locale     locale.Locale
}

// DefaultOptions returns Date1900 with the built-in en-US locale.
func DefaultOptions() Options {
	return Options{DateSystem: Date1900, Locale: locale.EnUS()}
}
