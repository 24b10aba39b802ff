// Package reminder holds the scheduled-item entity: its weekday mask, the
// recurrence engine that advances it past missed triggers, and the line codec
// used by the flat-file store.
package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aidanlsb/remind/internal/interval"
)

// Weekday bits. Bit 0 is Sunday, matching time.Weekday ordering.
const (
	Sunday uint8 = 1 << iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Workdays and Weekend are the compound masks behind the "work" and
// "weekend" aliases.
const (
	Workdays = Monday | Tuesday | Wednesday | Thursday | Friday
	Weekend  = Sunday | Saturday
)

// EndTimeLayout is the on-disk and rendered timestamp layout (two-digit year).
const EndTimeLayout = "06-01-02 15:04:05"

// delimiter joins serialized fields. Chosen to never appear in ordinary titles.
const delimiter = "⌠"

var dayNames = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Reminder is one scheduled item. EndTime is the next pending trigger instant
// once Update returns without removal. Repeats 0 means repeat forever;
// Weekdays 0 means unrestricted.
type Reminder struct {
	Title    string
	Interval interval.Interval
	EndTime  time.Time
	Repeats  uint
	Skips    uint
	Weekdays uint8
}

// WeekdaysString renders the mask as space-joined three-letter day names.
// Mask 0 (unrestricted) renders as all seven days; that is the canonical
// serialized form, so a round trip yields mask 0x7f, which behaves
// identically everywhere.
func (r *Reminder) WeekdaysString() string {
	bits := r.Weekdays
	if bits == 0 {
		bits = ^uint8(0)
	}
	var days []string
	for i, name := range dayNames {
		if bits&(1<<i) != 0 {
			days = append(days, name)
		}
	}
	return strings.Join(days, " ")
}

// Serialize renders the reminder as a single store line (no trailing newline).
func (r *Reminder) Serialize() string {
	return strings.Join([]string{
		r.Title,
		r.Interval.Serialize(),
		r.EndTime.Format(EndTimeLayout),
		strconv.FormatUint(uint64(r.Repeats), 10),
		strconv.FormatUint(uint64(r.Skips), 10),
		r.WeekdaysString(),
	}, delimiter)
}

// Deserialize parses one store line. Malformed numeric or timestamp fields
// degrade to their zero value with a diagnostic via warnf; an unknown weekday
// token contributes nothing to the mask. Only a wrong field count is a hard
// error.
func Deserialize(line string, warnf func(format string, args ...any)) (Reminder, error) {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}
	fields := strings.Split(line, delimiter)
	if len(fields) != 6 {
		return Reminder{}, fmt.Errorf("reminder line has %d fields, want 6", len(fields))
	}

	iv, err := interval.Deserialize(fields[1])
	if err != nil {
		warnf("invalid interval %q, treating as zero", fields[1])
	}

	end, err := time.ParseInLocation(EndTimeLayout, fields[2], time.Local)
	if err != nil {
		warnf("invalid end time %q, treating as zero", fields[2])
		end = time.Time{}
	}

	repeats, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		warnf("invalid repeat count %q, treating as zero", fields[3])
	}
	skips, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		warnf("invalid skip count %q, treating as zero", fields[4])
	}

	var mask uint8
	for _, day := range strings.Split(fields[5], " ") {
		bit, ok := dayBit(day)
		if !ok {
			warnf("invalid weekday %q in stored reminder", day)
			continue
		}
		mask |= bit
	}

	return Reminder{
		Title:    fields[0],
		Interval: iv,
		EndTime:  end,
		Repeats:  uint(repeats),
		Skips:    uint(skips),
		Weekdays: mask,
	}, nil
}

func dayBit(name string) (uint8, bool) {
	for i, n := range dayNames {
		if n == name {
			return 1 << i, true
		}
	}
	return 0, false
}

// matchesWeekday reports whether EndTime's weekday is allowed by the mask.
// Mask 0 matches every day.
func (r *Reminder) matchesWeekday() bool {
	bits := r.Weekdays
	if bits == 0 {
		bits = ^uint8(0)
	}
	return bits&(1<<uint(r.EndTime.Weekday())) != 0
}

// Update advances the reminder past every trigger that has already elapsed.
// It reports whether the end time moved and whether the reminder is exhausted
// and should be removed.
//
// The catch-up loop decrements a finite repeat count once per missed period
// and applies the interval advance for the exhausting period too, so the
// stored end time always reflects the final trigger. Exhaustion returns
// before the weekday filter runs. A zero interval that still has a due end
// time cannot advance; with an infinite repeat count it is resolved as a
// single trigger-and-remove rather than looping forever.
func (r *Reminder) Update(now time.Time) (advanced, shouldRemove bool) {
	infinite := r.Repeats == 0
	if infinite && r.Interval.IsZero() && !r.EndTime.After(now) {
		return true, true
	}
	for !r.EndTime.After(now) {
		advanced = true
		exhausted := false
		if !infinite {
			r.Repeats--
			exhausted = r.Repeats == 0
		}
		r.EndTime = r.Interval.AddTo(r.EndTime)
		if exhausted {
			return true, true
		}
	}
	for !r.matchesWeekday() {
		r.EndTime = r.EndTime.Add(24 * time.Hour)
	}
	return advanced, false
}
