package numfmt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSectionCount(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"0", 1},
		{"0;-0", 2},
		{"0;-0;0", 3},
		{"0;-0;0;@", 4},
		{"0;-0;0;@;extra", 4}, // truncated at 4, no error
	}
	for _, c := range cases {
		f := mustParse(t, c.code)
		if len(f.Sections) != c.want {
			t.Errorf("Parse(%q).Sections has %d entries, want %d", c.code, len(f.Sections), c.want)
		}
	}
}

func TestParseEmptyInputIsError(t *testing.T) {
	_, err := Parse("")
	if err == nil {
		t.Fatal("expected error parsing empty format string")
	}
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Parse(\"\") error = %v, want errors.Is match for ErrEmptyInput", err)
	}
}

func TestParseUnterminatedQuoteIsError(t *testing.T) {
	_, err := Parse(`"abc`)
	if err == nil {
		t.Fatal("expected error parsing unterminated quote")
	}
	if !errors.Is(err, ErrUnterminatedQuote) {
		t.Errorf("Parse error = %v, want errors.Is match for ErrUnterminatedQuote", err)
	}
}

func TestParseUnterminatedBracketIsError(t *testing.T) {
	_, err := Parse(`[Red`)
	if err == nil {
		t.Fatal("expected error parsing unterminated bracket")
	}
	if !errors.Is(err, ErrUnterminatedBracket) {
		t.Errorf("Parse error = %v, want errors.Is match for ErrUnterminatedBracket", err)
	}
}

func TestParseGeneralSection(t *testing.T) {
	f := mustParse(t, "General")
	if f.Sections[0].Meta.FormatType != FormatGeneral {
		t.Fatalf("General section classified as %v", f.Sections[0].Meta.FormatType)
	}
}

func TestParseColorAndCondition(t *testing.T) {
	f := mustParse(t, `[Red][>100]0.00;[Blue]0.00`)
	if !f.HasColor() {
		t.Fatal("expected HasColor true")
	}
	if !f.HasCondition() {
		t.Fatal("expected HasCondition true")
	}
	if f.Sections[0].Condition == nil || f.Sections[0].Condition.Op != CondGT {
		t.Fatal("expected first section condition to be >100")
	}
}

func TestParseMinuteHourDisambiguation(t *testing.T) {
	f := mustParse(t, "h:mm:ss")
	var kinds []DatePartKind
	for _, p := range f.Sections[0].Parts {
		if dp, ok := p.(DatePart); ok {
			kinds = append(kinds, dp.Kind)
		}
	}
	want := []DatePartKind{Hour, Minute2, Second2}
	if len(kinds) != len(want) {
		t.Fatalf("got %d date parts, want %d", len(kinds), len(want))
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("part %d = %v, want %v", i, kinds[i], k)
		}
	}
}

func TestParseIsPercentage(t *testing.T) {
	f := mustParse(t, "0.00%")
	if !f.IsPercentage() {
		t.Fatal("expected IsPercentage true")
	}
}

func TestParseIsDateFormat(t *testing.T) {
	f := mustParse(t, "yyyy-mm-dd")
	if !f.IsDateFormat() {
		t.Fatal("expected IsDateFormat true")
	}
}

func TestParsePositiveNegativeSectionsAreStructurallyIdentical(t *testing.T) {
	f := mustParse(t, "0.00;-0.00")
	pos := f.Sections[0]
	neg := f.Sections[1]

	// The negative section carries an extra leading Literal("-") but is
	// otherwise built from the same Part sequence as the positive one.
	if len(neg.Parts) == 0 {
		t.Fatal("expected the negative section to have parts")
	}
	lit, ok := neg.Parts[0].(Literal)
	if !ok || lit.Text != "-" {
		t.Fatalf("expected negative section to start with a literal minus, got %#v", neg.Parts[0])
	}

	if diff := cmp.Diff(pos.Parts, neg.Parts[1:]); diff != "" {
		t.Errorf("positive and (unsigned) negative parts differ (-pos +neg):\n%s", diff)
	}
	if diff := cmp.Diff(pos.Meta, neg.Meta); diff != "" {
		t.Errorf("positive and negative metadata differ (-pos +neg):\n%s", diff)
	}
}
