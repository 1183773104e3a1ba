// Package builtin maps the numeric format IDs Excel stores in a workbook
// (numFmtId, ECMA-376 §18.8.30) to the format code string they imply.
// IDs below 164 are reserved for these built-ins; a workbook only stores
// an explicit format string for IDs 164 and above.
package builtin

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NumFmt maps built-in numFmtId values to their canonical format strings.
// IDs 27-36 and 50-58 are locale-specific (CJK/Thai) in the standard; the
// entries here are neutral Western fallbacks used whenever the caller has
// no locale-specific override for the ID.
var NumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `($#,##0_);($#,##0)`,
	6:  `($#,##0_);[Red]($#,##0)`,
	7:  `($#,##0.00_);($#,##0.00)`,
	8:  `($#,##0.00_);[Red]($#,##0.00)`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	// 14 is "m/d/yy" per Excel's actual rendering, not the "mm-dd-yy" the
	// standard's prose implies.
	14: "m/d/yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	// IDs 27-36: locale-specific CJK date formats. A caller holding the
	// workbook's actual locale string should override these.
	27: "MM-DD-YYYY",
	28: "D-MMM-YY",
	29: "D-MMM-YY",
	30: "M/D/YY",
	31: "YYYY-M-D",
	32: "H:MM",
	33: "H:MM:SS",
	34: "H:MM AM/PM",
	35: "H:MM:SS AM/PM",
	36: "MM-DD-YYYY",
	37: `#,##0 ;(#,##0)`,
	38: `#,##0 ;[Red](#,##0)`,
	39: `#,##0.00;(#,##0.00)`,
	40: `#,##0.00;[Red](#,##0.00)`,
	41: `_(* #,##0_);_(* (#,##0);_(* "-"_);_(@_)`,
	42: `_($* #,##0_);_($* (#,##0);_($* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* (#,##0.00);_(* "-"??_);_(@_)`,
	44: `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	// 47 is "mmss.0" per Excel's actual rendering, not "mm:ss.0".
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
	// IDs 50-58: a second locale-specific CJK variant set.
	50: "MM-DD-YYYY",
	51: "D-MMM-YY",
	52: "H:MM AM/PM",
	53: "H:MM:SS AM/PM",
	54: "D-MMM-YY",
	55: "H:MM AM/PM",
	56: "H:MM:SS AM/PM",
	57: "MM-DD-YYYY",
	58: "D-MMM-YY",
}

// FormatCode returns the format code string for a built-in numFmtId, and
// whether id names a recognized built-in at all.
func FormatCode(id int) (string, bool) {
	code, ok := NumFmt[id]
	return code, ok
}

// IsBuiltin reports whether id is one of the recognized built-in format
// IDs.
func IsBuiltin(id int) bool {
	_, ok := NumFmt[id]
	return ok
}

// SortedIDs returns every recognized built-in numFmtId in ascending order,
// for callers that want to enumerate the table (a --list-builtins CLI flag,
// documentation generation) without depending on Go's unordered map
// iteration.
func SortedIDs() []int {
	ids := maps.Keys(NumFmt)
	slices.Sort(ids)
	return ids
}

// IsDateFormatID reports whether id, taken together with an optional
// custom format string for IDs the table does not cover, renders as a
// date or time. Built-in time-only IDs (18-21) count as date formats
// here, matching how a workbook's date-typed cells are actually flagged.
func IsDateFormatID(id int, customCode string) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	if customCode == "" {
		return false
	}
	return looksLikeDateCode(customCode)
}

// looksLikeDateCode is a cheap lexical check used only when the caller has
// a custom code string but does not want to pay for a full parse just to
// classify it; Format.IsDateFormat on a Parse result is authoritative.
func looksLikeDateCode(code string) bool {
	inQuote := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
			continue
		case c == '\\' && i+1 < len(code):
			i++
		case strings.ContainsRune("ymdhs", rune(lower(c))):
			return true
		}
	}
	return false
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
