package numfmt

// Placeholder is a digit-position marker within a numeric or fraction Part.
type Placeholder int

const (
	// Zero always renders a digit, padding with '0'.
	Zero Placeholder = iota
	// Hash renders a digit or nothing.
	Hash
	// Question renders a digit or a padding space.
	Question
)

// DatePartKind enumerates the closed set of date/time components a Part
// can carry. SubSecond additionally uses DatePart.SubSecondDigits.
type DatePartKind int

const (
	Year2 DatePartKind = iota
	Year3
	Year4
	Month
	Month2
	MonthAbbr
	MonthFull
	MonthLetter
	Day
	Day2
	DayAbbr
	DayFull
	Hour
	Hour2
	Minute
	Minute2
	Second
	Second2
	SubSecond
)

// AmPmStyle is the spelling of an AM/PM run as it appeared in the format
// string; it dictates both the literal text emitted and hour rendering.
type AmPmStyle int

const (
	AmPmUpper AmPmStyle = iota
	AmPmLower
	AmPmShortUpper
	AmPmShortLower
)

// ElapsedUnit is the unit of an accumulating (non-modular) time field such
// as [h] or [mm].
type ElapsedUnit int

const (
	ElapsedHours ElapsedUnit = iota
	ElapsedMinutes
	ElapsedSeconds
)

// DenominatorKind distinguishes a literal fraction denominator from one
// bounded by a digit-placeholder width.
type DenominatorKind int

const (
	// DenomFixed means the denominator is a literal integer, e.g. "0/16".
	DenomFixed DenominatorKind = iota
	// DenomUpToDigits means the denominator is chosen by best
	// approximation, capped at 10^Value - 1.
	DenomUpToDigits
)

// Denominator describes the right-hand side of a Fraction Part.
type Denominator struct {
	Kind DenominatorKind
	// Value is the fixed denominator for DenomFixed, or the placeholder
	// count (<=7) for DenomUpToDigits.
	Value int
}

// Part is the closed union of syntax-tree leaves a Section is built from.
// Concrete Part implementations are exhaustively handled by type switch in
// the formatters; new variants are never added by embedding an interface
// method elsewhere in the tree.
type Part interface {
	partMarker()
}

// Literal is any literal run: quoted text, \-escaped characters and bare
// punctuation. "_x" spacers are Skip parts, not Literals.
type Literal struct {
	Text string
}

// Digit is one placeholder character (0, # or ?).
type Digit struct {
	Placeholder Placeholder
}

// DecimalPoint marks the numeric decimal separator slot.
type DecimalPoint struct{}

// ThousandsSeparator is a "," token; whether it groups or scales is decided
// by its position among digit placeholders at format time, not at parse
// time — see Metadata and the number formatter.
type ThousandsSeparator struct{}

// PercentSign is a "%" token; each occurrence scales the value by 100 and
// emits one '%' glyph.
type PercentSign struct{}

// Scientific opens an exponent slot; the digit placeholders immediately
// following it in the part list describe the exponent field width.
type Scientific struct {
	Upper    bool
	ShowPlus bool
}

// Fraction replaces the numeric digit placeholders, decimal point and
// slash of a fractional section with a single structured part.
type Fraction struct {
	IntegerDigits   int
	NumeratorDigits int
	Denominator     Denominator
	// IntegerPlaceholder is the placeholder kind (Zero/Hash/Question) used
	// by the integer-part digits, so the fraction formatter can apply the
	// same leading-zero rules as the number formatter to a zero integer
	// part. Meaningless when IntegerDigits == 0.
	IntegerPlaceholder Placeholder
}

// DatePart is one date/time component, e.g. Year4 or Hour2. SubSecondDigits
// is meaningful only when Kind == SubSecond.
type DatePart struct {
	Kind            DatePartKind
	SubSecondDigits int
}

// AmPm is an AM/PM run; its presence switches hour rendering to 12-hour.
type AmPm struct {
	Style AmPmStyle
}

// Elapsed is an accumulating time field such as [h] or [ss].
type Elapsed struct {
	Unit  ElapsedUnit
	Width int
}

// TextPlaceholder is the "@" token, substituted with the input string.
type TextPlaceholder struct{}

// Fill is a "*c" marker; the reference behavior renders one occurrence of
// c rather than padding to a column width (see spec Open Questions).
type Fill struct {
	Char rune
}

// Skip is a "_c" spacer; it always renders as a single space regardless
// of c, matching Excel's column-alignment behavior without needing to
// measure glyph widths.
type Skip struct {
	Char rune
}

// LocalePart is a "[$currency-LCID]" escape. Currency and LCID are each
// independently optional.
type LocalePart struct {
	Currency    string
	HasCurrency bool
	LCID        uint32
	HasLCID     bool
}

// HijriMarker records a [B1]/[B2] escape's presence in the part stream;
// its effect on rendering lives in Metadata.IsHijri, computed once when
// the section is built.
type HijriMarker struct {
	Hijri bool
}

func (Literal) partMarker()            {}
func (Digit) partMarker()              {}
func (DecimalPoint) partMarker()       {}
func (ThousandsSeparator) partMarker() {}
func (PercentSign) partMarker()        {}
func (Scientific) partMarker()         {}
func (Fraction) partMarker()           {}
func (DatePart) partMarker()           {}
func (AmPm) partMarker()               {}
func (Elapsed) partMarker()            {}
func (TextPlaceholder) partMarker()    {}
func (Fill) partMarker()               {}
func (Skip) partMarker()               {}
func (LocalePart) partMarker()         {}
func (HijriMarker) partMarker()        {}

// ConditionOp is one of the six comparison operators a bracketed section
// condition can use.
type ConditionOp int

const (
	CondGT ConditionOp = iota
	CondLT
	CondEQ
	CondGE
	CondLE
	CondNE
)

// Condition gates a section to values matching Op against Threshold.
type Condition struct {
	Op        ConditionOp
	Threshold float64
}

// Match reports whether v satisfies the condition.
func (c Condition) Match(v float64) bool {
	switch c.Op {
	case CondGT:
		return v > c.Threshold
	case CondLT:
		return v < c.Threshold
	case CondEQ:
		return v == c.Threshold
	case CondGE:
		return v >= c.Threshold
	case CondLE:
		return v <= c.Threshold
	case CondNE:
		return v != c.Threshold
	}
	return false
}

// Color is a section's display-color annotation. It is parsed and exposed
// (Section.Color, Format.HasColor) but never applied to output, per the
// documented non-goal.
type Color struct {
	// Name holds one of the eight named colors, empty when Indexed != 0.
	Name string
	// Indexed is 1..56 for "[ColorN]", 0 when Name is set instead.
	Indexed int
}

// FormatType classifies a Section for dispatch: which of the four
// rendering paths (number, date/time, fraction, text) it uses.
type FormatType int

const (
	FormatGeneral FormatType = iota
	FormatDateTime
	FormatNumber
	FormatFraction
	FormatText
)

// TimeUnit mirrors dateserial.TimeUnit but is expressed at the AST layer so
// numfmt does not have to import dateserial types into its public surface.
type TimeUnit int

const (
	UnitNone TimeUnit = iota
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitSubseconds
)

// Metadata is computed exactly once, when the section is parsed. Formatting
// never rescans Parts to answer these questions.
type Metadata struct {
	HasAmPm               bool
	IsHijri               bool
	MaxSubsecondPrecision int  // 0 means "none"; valid range is 1..9 otherwise.
	HasElapsed            bool
	SmallestTimeUnit      TimeUnit
	FormatType            FormatType
}

// Section is one of up to four semicolon-separated sub-formats.
type Section struct {
	Condition *Condition
	Color     *Color
	Parts     []Part
	Meta      Metadata
}

// Format is a fully parsed number-format code: 1 to 4 Sections plus the
// predicates callers use to decide how to feed it a value.
type Format struct {
	Sections []Section
	// Raw is the original format string, kept for diagnostics and for
	// Format's cache key.
	Raw string
}

// IsDateFormat reports whether any section renders as a date/time.
func (f *Format) IsDateFormat() bool {
	for _, s := range f.Sections {
		if s.Meta.FormatType == FormatDateTime {
			return true
		}
	}
	return false
}

// IsTextFormat reports whether any section is a Text-type section: one
// with an "@" placeholder and no numeric, fraction or date/time parts.
func (f *Format) IsTextFormat() bool {
	for _, s := range f.Sections {
		if s.Meta.FormatType == FormatText {
			return true
		}
	}
	return false
}

// IsPercentage reports whether any section contains a percent scale.
func (f *Format) IsPercentage() bool {
	for _, s := range f.Sections {
		for _, p := range s.Parts {
			if _, ok := p.(PercentSign); ok {
				return true
			}
		}
	}
	return false
}

// HasColor reports whether any section carries a color annotation.
func (f *Format) HasColor() bool {
	for _, s := range f.Sections {
		if s.Color != nil {
			return true
		}
	}
	return false
}

// HasCondition reports whether any section carries an explicit condition.
func (f *Format) HasCondition() bool {
	for _, s := range f.Sections {
		if s.Condition != nil {
			return true
		}
	}
	return false
}

