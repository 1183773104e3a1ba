// Package ssfmt parses ECMA-376 / Excel number-format codes and renders
// values against them, matching Excel's own formatting behavior including
// its documented and undocumented quirks (the 1900 leap-year bug, elapsed
// time fields, mixed-number fractions, and so on).
//
// # Quick start
//
//	f, err := ssfmt.Parse("#,##0.00")
//	if err != nil { ... }
//	fmt.Println(f.Format(1234.5, ssfmt.DefaultOptions())) // "1,234.50"
//
// A parsed Format is immutable and safe to share across goroutines; the
// package-level [Format] and [MustFormat] helpers additionally cache
// parses of repeated format codes, which is the common case when
// rendering many cells sharing one style.
//
// # Built-in formats
//
// Workbook files store most cell formats as small integer IDs rather than
// literal format strings. [FormatWithID] resolves IDs below 164 via the
// builtin package's ECMA-376 table before rendering.
//
// # Dates
//
// Excel represents dates as day-serial floats. [Options.DateSystem]
// selects which epoch a serial is measured against (Date1900 or
// Date1904); [numfmt.Format.Format] handles both the 1900 leap-year bug
// and the Hijri calendar escape transparently.
package ssfmt
