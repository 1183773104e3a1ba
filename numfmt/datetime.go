package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/gossf/ssfmt/internal/dateserial"
	"github.com/gossf/ssfmt/locale"
)

func toDateserialUnit(u TimeUnit) dateserial.TimeUnit {
	switch u {
	case UnitHours:
		return dateserial.UnitHours
	case UnitMinutes:
		return dateserial.UnitMinutes
	case UnitSeconds:
		return dateserial.UnitSeconds
	case UnitSubseconds:
		return dateserial.UnitSubseconds
	default:
		return dateserial.UnitNone
	}
}

// maxDateSerial is the largest serial value spec.md §4.5 accepts (year
// 9999); anything outside [0, maxDateSerial] renders as "" and, via
// TryFormat, as a typed ErrDateOutOfRange.
const maxDateSerial = 2958465.9999

// formatDateSection renders a serial day-number against a DateTime-type
// section. serial's integer part is the day count from the epoch, its
// fractional part the time of day.
func formatDateSection(sec Section, serial float64, opts Options) string {
	if serial < 0 || serial > maxDateSerial {
		return ""
	}

	days := int64(math.Floor(serial))
	frac := serial - float64(days)

	h, m, s, sub, dayCarry := dateserial.ComputeTime(frac, toDateserialUnit(sec.Meta.SmallestTimeUnit), sec.Meta.MaxSubsecondPrecision)
	days += dayCarry

	date := dateserial.DateFromDays(days, opts.DateSystem == Date1904)
	if sec.Meta.IsHijri {
		date = dateserial.HijriFromGregorian(date)
	}

	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}
	isPM := h >= 12

	elapsedHours := int64(days-dayCarry)*24 + int64(h)
	elapsedMinutes := elapsedHours*60 + int64(m)
	elapsedSeconds := elapsedMinutes*60 + int64(s)

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
		case AmPm:
			b.WriteString(renderAmPm(v.Style, isPM, opts.Locale))
		case Elapsed:
			b.WriteString(renderElapsed(v, elapsedHours, elapsedMinutes, elapsedSeconds))
		case DatePart:
			b.WriteString(renderDatePart(v, date, h, hour12, sec.Meta.HasAmPm, m, s, sub, opts.Locale))
		}
	}
	return b.String()
}

func renderAmPm(style AmPmStyle, isPM bool, l locale.Locale) string {
	switch style {
	case AmPmUpper:
		if isPM {
			return l.PmUpper
		}
		return l.AmPmUpper
	case AmPmLower:
		if isPM {
			return l.PmLower
		}
		return l.AmPmLower
	case AmPmShortUpper:
		if isPM {
			return "P"
		}
		return "A"
	case AmPmShortLower:
		if isPM {
			return "p"
		}
		return "a"
	}
	return ""
}

// renderElapsed accumulates total elapsed time in the field's unit rather
// than the time-of-day modulus a plain Hour/Minute/Second DatePart would
// show, e.g. [h] on 25.5 days renders 612 rather than 12.
func renderElapsed(e Elapsed, hours, minutes, seconds int64) string {
	var value int64
	switch e.Unit {
	case ElapsedHours:
		value = hours
	case ElapsedMinutes:
		value = minutes
	case ElapsedSeconds:
		value = seconds
	}
	return padLeftZero(strconv.FormatInt(value, 10), e.Width)
}

func renderDatePart(dp DatePart, date dateserial.Date, h, hour12 int, hasAmPm bool, m, s int, sub float64, l locale.Locale) string {
	switch dp.Kind {
	case Year2:
		return padLeftZero(strconv.Itoa(((date.Year%100)+100)%100), 2)
	case Year3:
		return padLeftZero(strconv.Itoa(date.Year), 3)
	case Year4:
		return padLeftZero(strconv.Itoa(date.Year), 4)
	case Month:
		return strconv.Itoa(date.Month)
	case Month2:
		return padLeftZero(strconv.Itoa(date.Month), 2)
	case MonthAbbr:
		return l.MonthShort[date.Month-1]
	case MonthFull:
		return l.MonthLong[date.Month-1]
	case MonthLetter:
		return l.MonthLong[date.Month-1][:1]
	case Day:
		return strconv.Itoa(date.Day)
	case Day2:
		return padLeftZero(strconv.Itoa(date.Day), 2)
	case DayAbbr:
		return l.WeekShort[date.Weekday]
	case DayFull:
		return l.WeekLong[date.Weekday]
	case Hour:
		if hasAmPm {
			return strconv.Itoa(hour12)
		}
		return strconv.Itoa(h)
	case Hour2:
		if hasAmPm {
			return padLeftZero(strconv.Itoa(hour12), 2)
		}
		return padLeftZero(strconv.Itoa(h), 2)
	case Minute:
		return strconv.Itoa(m)
	case Minute2:
		return padLeftZero(strconv.Itoa(m), 2)
	case Second:
		return strconv.Itoa(s)
	case Second2:
		return padLeftZero(strconv.Itoa(s), 2)
	case SubSecond:
		scale := math.Pow(10, float64(dp.SubSecondDigits))
		frac := int64(math.Round(sub * scale))
		return padLeftZero(strconv.FormatInt(frac, 10), dp.SubSecondDigits)
	}
	return ""
}
