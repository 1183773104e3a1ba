package numfmt

import "strings"

// formatTextSection renders a string value against a Text-type section.
// "@" substitutes the input verbatim; a section with no "@" at all still
// emits its literal scaffolding.
func formatTextSection(sec Section, input string, opts Options) string {
	var b strings.Builder
	for _, p := range sec.Parts {
		switch v := p.(type) {
		case Literal:
			b.WriteString(v.Text)
		case Skip:
			b.WriteByte(' ')
		case Fill:
			b.WriteRune(v.Char)
		case LocalePart:
			b.WriteString(resolveLocaleText(v, opts))
		case TextPlaceholder:
			b.WriteString(input)
		}
	}
	out := b.String()
	if out == "" {
		return input
	}
	return out
}
