package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/aidanlsb/remind/internal/interval"
)

// Render produces the human-readable one-line description used by add, list,
// and remove output, e.g.
//
//	"go to work" [repeat] [mon tue wed thu fri] [weekly] [24-03-11 09:30] (in 2d 4h)
func (r *Reminder) Render(now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q", r.Title)

	switch {
	case r.Skips == 1:
		b.WriteString(" [skip]")
	case r.Skips > 1:
		fmt.Fprintf(&b, " [skip %d times]", r.Skips)
	}

	switch r.Repeats {
	case 0:
		b.WriteString(" [repeat]")
	case 1:
		b.WriteString(" [once]")
	default:
		fmt.Fprintf(&b, " [%d times]", r.Repeats)
	}

	switch r.Weekdays {
	case 0, 0x7f, 0xff:
		// unrestricted, hide the list
	default:
		fmt.Fprintf(&b, " [%s]", r.WeekdaysString())
	}

	if r.Repeats == 0 || r.Repeats > 1 {
		b.WriteString(intervalLabel(r.Interval))
	}

	end := r.EndTime.Format(EndTimeLayout)
	end = strings.TrimSuffix(end, ":00")
	fmt.Fprintf(&b, " [%s]", end)

	b.WriteString(dueIn(r.EndTime, now))
	return b.String()
}

// intervalLabel names common cadences and falls back to an "[every ...]"
// breakdown.
func intervalLabel(iv interval.Interval) string {
	switch iv {
	case interval.Interval{}:
		return " [never]"
	case interval.Interval{Hours: 1}:
		return " [hourly]"
	case interval.Interval{Days: 1}:
		return " [daily]"
	case interval.Interval{Days: 7}:
		return " [weekly]"
	case interval.Interval{Months: 1}:
		return " [monthly]"
	case interval.Interval{Years: 1}:
		return " [yearly]"
	}

	weeks := iv.Days / 7
	days := iv.Days % 7
	var b strings.Builder
	part := func(n int, unit string) {
		if n > 0 {
			fmt.Fprintf(&b, " %d%s", n, unit)
		}
	}
	part(iv.Years, "y")
	part(iv.Months, "mo")
	part(weeks, "w")
	part(days, "d")
	part(iv.Hours, "h")
	part(iv.Minutes, "m")
	part(iv.Seconds, "s")
	return " [every" + b.String() + "]"
}

// dueIn humanizes the offset until the next trigger. Coarser units suppress
// the finer ones so "in 2y 3mo" never drags seconds along.
func dueIn(end, now time.Time) string {
	off := end.Sub(now)
	if off <= 0 {
		return ""
	}
	totalDays := int(off.Hours()) / 24
	years := totalDays / 365
	months := (totalDays - years*365) / 30
	weeks := (totalDays - months*30) / 7
	days := totalDays % 7
	hours := int(off.Hours()) % 24
	mins := int(off.Minutes()) % 60
	secs := int(off.Seconds()) % 60

	var b strings.Builder
	part := func(n int, unit string) {
		if n > 0 {
			fmt.Fprintf(&b, " %d%s", n, unit)
		}
	}
	part(years, "y")
	part(months, "mo")
	if years == 0 {
		part(weeks, "w")
		part(days, "d")
		if months == 0 && weeks == 0 {
			part(hours, "h")
			if days == 0 {
				part(mins, "m")
				if hours == 0 {
					part(secs, "s")
				}
			}
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return " (in" + b.String() + ")"
}
