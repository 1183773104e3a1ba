// Package locale holds the fixed data tables a formatted string is
// rendered against: separators, currency symbol, AM/PM spellings, and
// month/weekday names. It carries no format-parsing logic of its own.
package locale

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Locale is the full set of locale-dependent strings the formatters
// consult. Weekday index 0 is Sunday, matching the format engine's own
// weekday convention.
type Locale struct {
	DecimalSeparator   string
	ThousandsSeparator string
	CurrencySymbol     string

	AmPmUpper      string
	PmUpper        string
	AmPmLower      string
	PmLower        string

	MonthShort [12]string
	MonthLong  [12]string
	WeekShort  [7]string
	WeekLong   [7]string
}

// EnUS returns the built-in United States English locale, the default
// used whenever a caller does not supply one.
func EnUS() Locale {
	return Locale{
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		CurrencySymbol:     "$",
		AmPmUpper:          "AM",
		PmUpper:            "PM",
		AmPmLower:          "am",
		PmLower:            "pm",
		MonthShort: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		MonthLong: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		WeekShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		WeekLong: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
	}
}

// pack is the TOML shape a locale file is authored in; it mirrors Locale
// but with plain slices, which unmarshal more forgivingly than fixed-size
// arrays when a table is hand-edited.
type pack struct {
	DecimalSeparator   string   `toml:"decimal_separator"`
	ThousandsSeparator string   `toml:"thousands_separator"`
	CurrencySymbol     string   `toml:"currency_symbol"`
	AmPmUpper          string   `toml:"am_upper"`
	PmUpper            string   `toml:"pm_upper"`
	AmPmLower          string   `toml:"am_lower"`
	PmLower            string   `toml:"pm_lower"`
	MonthShort         []string `toml:"month_short"`
	MonthLong          []string `toml:"month_long"`
	WeekShort          []string `toml:"week_short"`
	WeekLong           []string `toml:"week_long"`
}

// LoadPack decodes a TOML locale-pack file. This supplements the format
// engine's built-in en-US table; the wire format's shape (see pack above)
// is intentionally the only file format supported, matching how the rest
// of this module's ambient config is read.
func LoadPack(r io.Reader) (Locale, error) {
	var p pack
	if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
		return Locale{}, fmt.Errorf("locale: decode pack: %w", err)
	}

	l := EnUS()
	if p.DecimalSeparator != "" {
		l.DecimalSeparator = p.DecimalSeparator
	}
	if p.ThousandsSeparator != "" {
		l.ThousandsSeparator = p.ThousandsSeparator
	}
	if p.CurrencySymbol != "" {
		l.CurrencySymbol = p.CurrencySymbol
	}
	if p.AmPmUpper != "" {
		l.AmPmUpper = p.AmPmUpper
	}
	if p.PmUpper != "" {
		l.PmUpper = p.PmUpper
	}
	if p.AmPmLower != "" {
		l.AmPmLower = p.AmPmLower
	}
	if p.PmLower != "" {
		l.PmLower = p.PmLower
	}
	if len(p.MonthShort) == 12 {
		copy(l.MonthShort[:], p.MonthShort)
	}
	if len(p.MonthLong) == 12 {
		copy(l.MonthLong[:], p.MonthLong)
	}
	if len(p.WeekShort) == 7 {
		copy(l.WeekShort[:], p.WeekShort)
	}
	if len(p.WeekLong) == 7 {
		copy(l.WeekLong[:], p.WeekLong)
	}
	return l, nil
}
