package numfmt

// selectSection picks which Section renders a numeric value, following
// the conditioned-first-match rule when any section carries a Condition,
// otherwise the positional positive/negative/zero/text convention.
func selectSection(f *Format, v float64) (Section, bool) {
	if f.HasCondition() {
		var lastDefault *Section
		defaultIdx := -1
		for i := range f.Sections {
			s := &f.Sections[i]
			if s.Condition != nil {
				if s.Condition.Match(v) {
					return *s, true
				}
				continue
			}
			lastDefault = s
			defaultIdx = i
		}
		if lastDefault != nil {
			_ = defaultIdx
			return *lastDefault, true
		}
		return Section{}, false
	}

	n := len(f.Sections)
	switch n {
	case 1:
		return f.Sections[0], true
	case 2:
		if v >= 0 {
			return f.Sections[0], true
		}
		return f.Sections[1], true
	case 3:
		switch {
		case v > 0:
			return f.Sections[0], true
		case v < 0:
			return f.Sections[1], true
		default:
			return f.Sections[2], true
		}
	default: // n == 4
		switch {
		case v > 0:
			return f.Sections[0], true
		case v < 0:
			return f.Sections[1], true
		default:
			return f.Sections[2], true
		}
	}
}

// selectTextSection returns the section that renders text values: the
// fourth section when there are four, otherwise the first section
// containing "@", otherwise the first section.
func selectTextSection(f *Format) Section {
	if len(f.Sections) == 4 {
		return f.Sections[3]
	}
	for _, s := range f.Sections {
		for _, p := range s.Parts {
			if _, ok := p.(TextPlaceholder); ok {
				return s
			}
		}
	}
	return f.Sections[0]
}

// needsSignPrefix reports whether the caller must prefix "-" itself. This
// only ever applies to a single-section format: with two or more sections
// (whether picked positionally or by condition), the author is expected
// to spell out any sign the negative/default section should show, and
// the number formatter always renders |v| regardless, so a bare unsigned
// multi-section format legitimately drops the sign rather than gaining
// one it never asked for.
func needsSignPrefix(f *Format, v float64, sec Section) bool {
	if v >= 0 || len(f.Sections) != 1 {
		return false
	}
	return !hasLeadingMinus(sec.Parts)
}
