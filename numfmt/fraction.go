package numfmt

import (
	"math"
	"strconv"
)

// formatFractionSection renders a value against a Fraction-type section.
// The denominator is either fixed by the format string or chosen by a
// continued-fraction search bounded by the placeholder width.
func formatFractionSection(sec Section, v float64) string {
	var frac Fraction
	found := false
	for _, p := range sec.Parts {
		if f, ok := p.(Fraction); ok {
			frac = f
			found = true
			break
		}
	}
	if !found {
		return ""
	}

	negative := v < 0
	absV := math.Abs(v)

	var intPart int64
	var remainder float64
	if frac.IntegerDigits > 0 {
		intPart = int64(math.Trunc(absV))
		remainder = absV - float64(intPart)
	} else {
		remainder = absV
	}

	var num, den int64
	if frac.Denominator.Kind == DenomFixed {
		den = int64(frac.Denominator.Value)
		if den < 1 {
			den = 1
		}
		num = int64(math.Round(remainder * float64(den)))
	} else {
		maxDen := int64(math.Pow10(frac.Denominator.Value)) - 1
		if maxDen < 1 {
			maxDen = 1
		}
		num, den = bestFraction(remainder, maxDen)
	}

	if den > 0 && num >= den {
		intPart += num / den
		num = num % den
	}

	if frac.IntegerDigits == 0 {
		num += intPart * den
		intPart = 0
	}

	numStr := strconv.FormatInt(num, 10)
	denStr := strconv.FormatInt(den, 10)
	w := len(numStr)
	if len(denStr) > w {
		w = len(denStr)
	}
	if w > 7 {
		w = 7
	}
	numStr = padLeftSpace(numStr, w)
	denStr = padRightSpace(denStr, w)

	var out []byte
	if negative {
		out = append(out, '-')
	}

	if frac.IntegerDigits > 0 {
		intDigits := strconv.FormatInt(intPart, 10)
		if intDigits == "0" {
			intDigits = ""
		}
		intStr := emitIntegerDigits(intDigits,
			repeatPlaceholder(frac.IntegerPlaceholder, frac.IntegerDigits), false, "")
		out = append(out, intStr...)
		if num != 0 {
			if intStr != "" {
				out = append(out, ' ')
			}
			out = append(out, numStr...)
			out = append(out, '/')
			out = append(out, denStr...)
		}
	} else {
		out = append(out, numStr...)
		out = append(out, '/')
		out = append(out, denStr...)
	}
	return string(out)
}

func repeatPlaceholder(ph Placeholder, n int) []Placeholder {
	out := make([]Placeholder, n)
	for i := range out {
		out[i] = ph
	}
	return out
}

func padLeftSpace(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}

func padRightSpace(s string, width int) string {
	for len(s) < width {
		s = s + " "
	}
	return s
}

// bestFraction finds the convergent of frac's continued-fraction expansion
// with the largest denominator not exceeding maxDen — the standard
// best-rational-approximation algorithm, equivalent to a bounded
// Stern-Brocot descent.
func bestFraction(frac float64, maxDen int64) (num, den int64) {
	var h1, h2, k1, k2 int64 = 1, 0, 0, 1
	b := frac
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(b))
		h := a*h1 + h2
		k := a*k1 + k2
		if k > maxDen {
			break
		}
		h2, h1 = h1, h
		k2, k1 = k1, k
		if b == float64(a) {
			break
		}
		b = 1 / (b - float64(a))
		if math.IsInf(b, 0) {
			break
		}
	}
	return h1, k1
}
