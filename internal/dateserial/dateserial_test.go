package dateserial

import "testing"

func TestDateFromDaysLeapBug(t *testing.T) {
	cases := []struct {
		days     int64
		wantY    int
		wantM    int
		wantD    int
		wantWday int
	}{
		{0, 1900, 1, 0, 6},   // Saturday anchor
		{1, 1900, 1, 1, 0},   // Sunday
		{59, 1900, 2, 28, 2}, // Tuesday
		{60, 1900, 2, 29, 3}, // fictitious leap day; serials past 60 use (d-2) mod 7
		{61, 1900, 3, 1, 3},
		{46031, 2026, 1, 9, -1}, // weekday not asserted here
	}
	for _, c := range cases {
		got := DateFromDays(c.days, false)
		if got.Year != c.wantY || got.Month != c.wantM || got.Day != c.wantD {
			t.Errorf("DateFromDays(%d) = %+v, want %d-%02d-%02d", c.days, got, c.wantY, c.wantM, c.wantD)
		}
		if c.wantWday >= 0 && got.Weekday != c.wantWday {
			t.Errorf("DateFromDays(%d).Weekday = %d, want %d", c.days, got.Weekday, c.wantWday)
		}
	}
}

func TestDateFromDays1904(t *testing.T) {
	got := DateFromDays(0, true)
	if got.Year != 1904 || got.Month != 1 || got.Day != 1 {
		t.Errorf("DateFromDays(0, 1904) = %+v, want 1904-01-01", got)
	}
}

func TestComputeTimeBasic(t *testing.T) {
	h, m, s, sub, carry := ComputeTime(0.5, UnitSeconds, 0)
	if h != 12 || m != 0 || s != 0 || sub != 0 || carry != 0 {
		t.Errorf("ComputeTime(0.5) = %d:%d:%d sub=%v carry=%d, want 12:00:00", h, m, s, sub, carry)
	}
}

func TestComputeTimeDayCarry(t *testing.T) {
	// A fraction that rounds up to a full day at second granularity.
	h, m, s, _, carry := ComputeTime(0.999999995, UnitSeconds, 0)
	if carry != 1 || h != 0 || m != 0 || s != 0 {
		t.Errorf("ComputeTime near midnight = %d:%d:%d carry=%d, want 0:0:0 carry=1", h, m, s, carry)
	}
}

func TestComputeTimeSubsecondCarry(t *testing.T) {
	// frac chosen so the rounded 2-digit subsecond rolls to 1.0.
	frac := 59.999999 / 86400
	_, _, s, sub, _ := ComputeTime(frac, UnitSubseconds, 2)
	if sub >= 1.0 {
		t.Errorf("subsecond carry not applied: s=%d sub=%v, want sub<1.0", s, sub)
	}
	if s != 0 {
		t.Errorf("expected second to roll over from 59 to 0, got s=%d", s)
	}
}

func TestHijriFromGregorian(t *testing.T) {
	g := Date{Year: 2026, Month: 1, Day: 9, Weekday: 5}
	h := HijriFromGregorian(g)
	if h.Year != 2026-581 || h.Month != 1 || h.Day != 9 {
		t.Errorf("HijriFromGregorian(%+v) = %+v", g, h)
	}
}
