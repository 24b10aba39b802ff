package reminder

import (
	"fmt"
	"testing"
	"time"

	"github.com/aidanlsb/remind/internal/interval"
)

// Sep 1 2026 is a Tuesday.
var reminderNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)

func TestSerializeRoundTrip(t *testing.T) {
	r := Reminder{
		Title:    "water plants",
		Interval: interval.Interval{Days: 1},
		EndTime:  time.Date(2026, time.September, 3, 9, 30, 0, 0, time.Local),
		Repeats:  3,
		Skips:    1,
		Weekdays: Monday | Friday,
	}

	line := r.Serialize()
	if want := "water plants⌠00-00-01 00:00:00⌠26-09-03 09:30:00⌠3⌠1⌠mon fri"; line != want {
		t.Errorf("Serialize = %q, want %q", line, want)
	}

	back, err := Deserialize(line, nil)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if back.Title != r.Title || back.Interval != r.Interval ||
		!back.EndTime.Equal(r.EndTime) || back.Repeats != r.Repeats ||
		back.Skips != r.Skips || back.Weekdays != r.Weekdays {
		t.Errorf("round trip gave %+v, want %+v", back, r)
	}
}

func TestWeekdaysCanonicalForm(t *testing.T) {
	// Mask 0 serializes as the full week and round-trips to 0x7f, which is
	// behaviorally identical.
	r := Reminder{Title: "x", EndTime: reminderNow, Repeats: 1}
	if got := r.WeekdaysString(); got != "sun mon tue wed thu fri sat" {
		t.Errorf("WeekdaysString() = %q", got)
	}

	back, err := Deserialize(r.Serialize(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if back.Weekdays != 0x7f {
		t.Errorf("weekdays = %07b, want 1111111", back.Weekdays)
	}
}

func TestDeserializeFieldCount(t *testing.T) {
	if _, err := Deserialize("just a title", nil); err == nil {
		t.Error("wrong field count should be an error")
	}
}

func TestDeserializeDegradesBadFields(t *testing.T) {
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	line := "x⌠garbage⌠not a time⌠nope⌠0⌠mon xyz"
	r, err := Deserialize(line, warnf)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !r.Interval.IsZero() || !r.EndTime.IsZero() || r.Repeats != 0 {
		t.Errorf("bad fields should degrade to zero, got %+v", r)
	}
	if r.Weekdays != Monday {
		t.Errorf("weekdays = %07b, want just monday", r.Weekdays)
	}
	if len(warnings) != 4 {
		t.Errorf("got %d warnings (%v), want 4", len(warnings), warnings)
	}
}

func TestUpdateNotDue(t *testing.T) {
	r := Reminder{
		Interval: interval.Interval{Days: 1},
		EndTime:  reminderNow.Add(time.Hour),
		Repeats:  1,
	}
	advanced, remove := r.Update(reminderNow)
	if advanced || remove {
		t.Errorf("Update on future reminder = (%v, %v), want (false, false)", advanced, remove)
	}
}

func TestUpdateExhaustionAdvancesFinalPeriod(t *testing.T) {
	// Two repeats left, daily interval, three days late: the end time moves
	// by exactly two days (the final advance included) and the reminder is
	// exhausted. No weekday catch-up applies after exhaustion.
	start := reminderNow.AddDate(0, 0, -3)
	r := Reminder{
		Interval: interval.Interval{Days: 1},
		EndTime:  start,
		Repeats:  2,
		Weekdays: Monday,
	}
	advanced, remove := r.Update(reminderNow)
	if !advanced || !remove {
		t.Fatalf("Update = (%v, %v), want (true, true)", advanced, remove)
	}
	if want := start.AddDate(0, 0, 2); !r.EndTime.Equal(want) {
		t.Errorf("end time = %v, want %v", r.EndTime, want)
	}
	if r.Repeats != 0 {
		t.Errorf("repeats = %d, want 0", r.Repeats)
	}
}

func TestUpdateInfiniteCatchesUp(t *testing.T) {
	r := Reminder{
		Interval: interval.Interval{Days: 1},
		EndTime:  reminderNow.AddDate(0, 0, -5),
		Repeats:  0,
	}
	advanced, remove := r.Update(reminderNow)
	if !advanced || remove {
		t.Fatalf("Update = (%v, %v), want (true, false)", advanced, remove)
	}
	if want := reminderNow.AddDate(0, 0, 1); !r.EndTime.Equal(want) {
		t.Errorf("end time = %v, want %v", r.EndTime, want)
	}
}

func TestUpdateWeekdayCatchUp(t *testing.T) {
	// Due on a Tuesday but restricted to Mondays: the end time walks forward
	// day by day to the next Monday (Sep 7 2026).
	r := Reminder{
		Interval: interval.Interval{Days: 1},
		EndTime:  reminderNow,
		Repeats:  0,
		Weekdays: Monday,
	}
	advanced, remove := r.Update(reminderNow)
	if !advanced || remove {
		t.Fatalf("Update = (%v, %v), want (true, false)", advanced, remove)
	}
	if r.EndTime.Weekday() != time.Monday {
		t.Errorf("end time landed on %v, want Monday", r.EndTime.Weekday())
	}
	if want := time.Date(2026, time.September, 7, 12, 0, 0, 0, time.Local); !r.EndTime.Equal(want) {
		t.Errorf("end time = %v, want %v", r.EndTime, want)
	}
}

func TestUpdateZeroIntervalInfinite(t *testing.T) {
	// A zero interval cannot advance; with infinite repeats it resolves as a
	// single trigger-and-remove instead of looping forever.
	r := Reminder{EndTime: reminderNow.Add(-time.Minute), Repeats: 0}
	advanced, remove := r.Update(reminderNow)
	if !advanced || !remove {
		t.Errorf("Update = (%v, %v), want (true, true)", advanced, remove)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		r    Reminder
		want string
	}{
		{
			name: "infinite weekly on workdays",
			r: Reminder{
				Title:    "go to work",
				Interval: interval.Interval{Days: 7},
				EndTime:  reminderNow.AddDate(0, 0, 2),
				Repeats:  0,
				Weekdays: Workdays,
			},
			want: `"go to work" [repeat] [mon tue wed thu fri] [weekly] [26-09-03 12:00] (in 2d)`,
		},
		{
			name: "one shot hides interval",
			r: Reminder{
				Title:   "taxes",
				EndTime: time.Date(2026, time.September, 1, 13, 30, 0, 0, time.Local),
				Repeats: 1,
			},
			want: `"taxes" [once] [26-09-01 13:30] (in 1h 30m)`,
		},
		{
			name: "skips and finite repeats",
			r: Reminder{
				Title:    "rest",
				Interval: interval.Interval{Days: 7},
				EndTime:  reminderNow.Add(30 * time.Second),
				Repeats:  8,
				Skips:    2,
				Weekdays: Weekend,
			},
			want: `"rest" [skip 2 times] [8 times] [sun sat] [weekly] [26-09-01 12:00:30] (in 30s)`,
		},
		{
			name: "compound interval breakdown",
			r: Reminder{
				Title:    "checkup",
				Interval: interval.Interval{Months: 2, Days: 10},
				EndTime:  reminderNow.Add(-time.Hour),
				Repeats:  0,
			},
			want: `"checkup" [repeat] [every 2mo 1w 3d] [26-09-01 11:00]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Render(reminderNow); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}
