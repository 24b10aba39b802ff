// Package interval models the calendar-aware recurring offset attached to a
// reminder: six non-negative fields added to the due time on every trigger.
package interval

import (
	"fmt"
	"strconv"
	"time"
)

// Interval is a fixed-shape calendar offset. Years and months are applied with
// calendar arithmetic (day-of-month clamped to the target month); the rest are
// fixed durations.
type Interval struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every field is zero.
func (iv Interval) IsZero() bool {
	return iv.Years == 0 && iv.Months == 0 && iv.Days == 0 &&
		iv.Hours == 0 && iv.Minutes == 0 && iv.Seconds == 0
}

// Serialize renders the interval as "YY-MM-DD HH:MM:SS", two digits per field.
// Values above 99 overflow their column and display incorrectly; this is a
// known formatting limitation of the on-disk format, not corrected here.
func (iv Interval) Serialize() string {
	return fmt.Sprintf("%02d-%02d-%02d %02d:%02d:%02d",
		iv.Years, iv.Months, iv.Days, iv.Hours, iv.Minutes, iv.Seconds)
}

// Deserialize parses text produced by Serialize. It reads fixed character
// offsets and is only guaranteed to round-trip self-produced text.
func Deserialize(s string) (Interval, error) {
	if len(s) < 17 {
		return Interval{}, fmt.Errorf("interval %q: too short", s)
	}

	var iv Interval
	var firstErr error
	field := func(lo, hi int) int {
		n, err := strconv.Atoi(s[lo:hi])
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("interval %q: %w", s, err)
		}
		return n
	}
	iv.Years = field(0, 2)
	iv.Months = field(3, 5)
	iv.Days = field(6, 8)
	iv.Hours = field(9, 11)
	iv.Minutes = field(12, 14)
	iv.Seconds = field(15, 17)
	if firstErr != nil {
		return Interval{}, firstErr
	}
	return iv, nil
}

// AddTo advances t by the full interval: years and months with day-of-month
// clamping, then days/hours/minutes/seconds as fixed durations.
func (iv Interval) AddTo(t time.Time) time.Time {
	t = AddMonths(t, iv.Years*12+iv.Months)
	t = t.AddDate(0, 0, iv.Days)
	return t.Add(time.Duration(iv.Hours)*time.Hour +
		time.Duration(iv.Minutes)*time.Minute +
		time.Duration(iv.Seconds)*time.Second)
}

// AddMonths adds n calendar months to t, clamping the day-of-month when the
// target month is shorter (Jan 31 + 1 month = Feb 28/29, never Mar 2).
func AddMonths(t time.Time, n int) time.Time {
	if n == 0 {
		return t
	}
	year, month := t.Year(), int(t.Month())-1+n
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	day := t.Day()
	if max := daysIn(year, time.Month(month+1)); day > max {
		day = max
	}
	return time.Date(year, time.Month(month+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
