package ssfmt

import (
	"github.com/gossf/ssfmt/builtin"
	"github.com/gossf/ssfmt/numfmt"
	"golang.org/x/xerrors"
)

// Version is the current version of the ssfmt library.
const Version = "0.1.0"

// Options, DateSystem and their constants are re-exported from numfmt so
// callers rarely need to import it directly.
type (
	Options    = numfmt.Options
	DateSystem = numfmt.DateSystem
)

const (
	Date1900 = numfmt.Date1900
	Date1904 = numfmt.Date1904
)

// DefaultOptions returns Date1900 with the built-in en-US locale.
func DefaultOptions() Options {
	return numfmt.DefaultOptions()
}

// Parse compiles a format code into a reusable [numfmt.Format]. There is
// no recovery from a parse error: the first one aborts parsing.
func Parse(code string) (*numfmt.Format, error) {
	f, err := numfmt.Parse(code)
	if err != nil {
		return nil, xerrors.Errorf("ssfmt: parse %q: %w", code, err)
	}
	return f, nil
}

// Format is the one-shot convenience path: parse code (via the package's
// shared LRU cache) and render value against it.
func Format(value interface{}, code string, opts Options) (string, error) {
	f, err := cachedParse(code)
	if err != nil {
		return "", err
	}
	return f.TryFormat(value, opts)
}

// MustFormat is Format's infallible sibling: an unparseable format code
// renders as the empty string instead of propagating a parse error.
func MustFormat(value interface{}, code string, opts Options) string {
	f, err := cachedParse(code)
	if err != nil {
		return ""
	}
	return f.Format(value, opts)
}

// FormatWithID renders value against a workbook's number-format ID,
// resolving id through the builtin ECMA-376 table when id < 164 and
// falling back to customCode otherwise.
func FormatWithID(value interface{}, id int, customCode string, opts Options) (string, error) {
	code := customCode
	if id < 164 {
		bc, ok := builtin.FormatCode(id)
		if !ok {
			return "", xerrors.Errorf("ssfmt: unrecognized built-in format id %d", id)
		}
		code = bc
	}
	return Format(value, code, opts)
}
