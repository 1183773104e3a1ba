// Package dateserial converts floating-point spreadsheet serial numbers to
// and from civil calendar components. It knows nothing about format codes;
// callers hand it a fractional day count and get back year/month/day and
// hour/minute/second, including Excel's 1900 leap-year bug and the
// simplified Hijri offset used by the [B2] marker.
package dateserial

import "math"

// TimeUnit is the smallest displayed time component, used to decide how a
// serial's fractional day is pre-rounded before it is split into H:M:S.
type TimeUnit int

const (
	UnitNone TimeUnit = iota
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitSubseconds
)

// Date is a civil calendar date plus its weekday (0 = Sunday).
type Date struct {
	Year, Month, Day int
	Weekday          int
}

// ComputeTime pre-rounds a fractional day to the given unit and splits it
// into hour, minute, second and a leftover subsecond fraction in [0, 1).
// dayCarry is 1 when rounding pushed the time past midnight into the next
// day; callers must add it to the integer day count before date conversion.
func ComputeTime(frac float64, unit TimeUnit, subsecondDigits int) (h, m, s int, sub float64, dayCarry int64) {
	totalSec := frac * 86400

	var granular float64
	switch unit {
	case UnitSubseconds:
		scale := math.Pow(10, float64(subsecondDigits))
		granular = math.Round(totalSec*scale) / scale
	case UnitHours:
		granular = math.Round(totalSec/3600) * 3600
	case UnitMinutes:
		granular = math.Round(totalSec/60) * 60
	default: // UnitSeconds, UnitNone
		granular = math.Round(totalSec)
	}

	if granular >= 86400 {
		granular -= 86400
		dayCarry = 1
	}
	if granular < 0 {
		granular = 0
	}

	isec := int64(math.Floor(granular))
	sub = granular - math.Floor(granular)
	h = int(isec / 3600)
	m = int((isec % 3600) / 60)
	s = int(isec % 60)
	return
}

// DateFromDays converts an integer serial day count into a civil date,
// reproducing Excel's fictitious 1900-02-29. days is expected to be >= 0;
// callers are responsible for the v<0 / v>2958465.9999 domain check.
func DateFromDays(days int64, date1904 bool) Date {
	if date1904 {
		z := epoch1904 + days
		y, m, d := civilFromDays(z)
		return Date{Year: int(y), Month: m, Day: d, Weekday: floorMod(days+5, 7)}
	}

	weekday := 0
	if days <= 60 {
		weekday = floorMod(days-1, 7)
	} else {
		weekday = floorMod(days-2, 7)
	}

	switch {
	case days == 0:
		return Date{Year: 1900, Month: 1, Day: 0, Weekday: weekday}
	case days == 60:
		return Date{Year: 1900, Month: 2, Day: 29, Weekday: weekday}
	}

	adjusted := days
	if days > 60 {
		adjusted = days - 1
	}
	z := epoch1900 + adjusted
	y, m, d := civilFromDays(z)
	return Date{Year: int(y), Month: m, Day: d, Weekday: weekday}
}

// HijriFromGregorian applies the documented simplified Hijri conversion:
// the Gregorian year shifted by -581, with the two fixed calendar-bug days
// (serial 0 and serial 60) carrying their Gregorian month/day unchanged.
func HijriFromGregorian(g Date) Date {
	g.Year -= 581
	return g
}

func floorMod(a, b int64) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return int(m)
}

var (
	epoch1900 = daysFromCivil(1899, 12, 31)
	epoch1904 = daysFromCivil(1904, 1, 1)
)

// daysFromCivil and civilFromDays are Howard Hinnant's constant-time
// calendar algorithms, counting days from the 1970-01-01 civil epoch.

func daysFromCivil(y int64, m, d int) int64 {
	yy := y
	if m <= 2 {
		yy--
	}
	era := yy
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := yy - era*400
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func civilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	if m <= 2 {
		y++
	}
	return
}
