package numfmt

import "testing"

func TestSelectSectionByCount(t *testing.T) {
	f := mustParse(t, "0.00;-0.00;0.00")

	pos, ok := selectSection(f, 5)
	if !ok || pos.Meta.FormatType != FormatNumber {
		t.Fatal("expected positive value to select a number section")
	}
	neg, ok := selectSection(f, -5)
	if !ok || len(neg.Parts) == 0 {
		t.Fatal("expected negative value to select the second section")
	}
	zero, ok := selectSection(f, 0)
	if !ok || len(zero.Parts) == 0 {
		t.Fatal("expected zero to select the third section")
	}
}

func TestSelectSectionConditioned(t *testing.T) {
	f := mustParse(t, `[>100]"big";[<0]"neg";"mid"`)
	sec, ok := selectSection(f, 200)
	if !ok || len(sec.Parts) == 0 {
		t.Fatal("expected conditioned match for 200")
	}
	sec, ok = selectSection(f, -5)
	if !ok || len(sec.Parts) == 0 {
		t.Fatal("expected conditioned match for -5")
	}
	sec, ok = selectSection(f, 50)
	if !ok || len(sec.Parts) == 0 {
		t.Fatal("expected default fallback match for 50")
	}
}

func TestSelectTextSectionFourthSection(t *testing.T) {
	f := mustParse(t, `0;-0;0;"text: "@`)
	sec := selectTextSection(f)
	found := false
	for _, p := range sec.Parts {
		if _, ok := p.(TextPlaceholder); ok {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the fourth section to carry the @ placeholder")
	}
}

func TestNeedsSignPrefixSingleSection(t *testing.T) {
	f := mustParse(t, "0.00")
	sec, _ := selectSection(f, -5)
	if !needsSignPrefix(f, -5, sec) {
		t.Fatal("expected single-section negative values to need an explicit sign")
	}
}

func TestNeedsSignPrefixTwoSections(t *testing.T) {
	f := mustParse(t, "0.00;(0.00)")
	sec, _ := selectSection(f, -5)
	if needsSignPrefix(f, -5, sec) {
		t.Fatal("expected two-section format to supply its own sign")
	}
}

func TestNeedsSignPrefixTwoUnsignedSectionsDropsSign(t *testing.T) {
	f := mustParse(t, "0.00;0.00")
	sec, _ := selectSection(f, -5)
	if needsSignPrefix(f, -5, sec) {
		t.Fatal("expected an unsigned second section to render without a forced sign, matching a single-section format's second-section-owns-its-own-sign convention")
	}
}

func TestNeedsSignPrefixConditionedDefaultFallbackDropsSign(t *testing.T) {
	f := mustParse(t, `[>100]"big";0.00`)
	sec, ok := selectSection(f, -50)
	if !ok {
		t.Fatal("expected the default section to match -50")
	}
	if needsSignPrefix(f, -50, sec) {
		t.Fatal("expected a conditioned multi-section format's default section to render without a forced sign")
	}
}
