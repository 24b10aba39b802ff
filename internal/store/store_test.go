package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/remind/internal/interval"
	"github.com/aidanlsb/remind/internal/reminder"
)

var storeNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	historyDir := filepath.Join(dir, "history")
	if err := os.MkdirAll(historyDir, 0o755); err != nil {
		t.Fatal(err)
	}
	s := New(filepath.Join(dir, "reminders.txt"), historyDir)
	s.Warnf = func(string, ...any) {}
	return s
}

func testReminder(title string, due time.Time) reminder.Reminder {
	return reminder.Reminder{
		Title:    title,
		Interval: interval.Interval{Days: 1},
		EndTime:  due,
		Repeats:  0,
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestAppendThenLoad(t *testing.T) {
	s := newTestStore(t)
	r := testReminder("water plants", storeNow)
	if err := s.Append(&r); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 1 || s.At(0).Title != "water plants" {
		t.Errorf("loaded %d reminders, want the appended one", s.Len())
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	s := newTestStore(t)
	r := testReminder("keep me", storeNow)
	good := r.Serialize()
	content := "not a reminder line\n" + good + "\n\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var warned bool
	s.Warnf = func(string, ...any) { warned = true }
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 1 || s.At(0).Title != "keep me" {
		t.Errorf("loaded %d reminders, want just the valid one", s.Len())
	}
	if !warned {
		t.Error("malformed line should produce a diagnostic")
	}
}

func TestSaveRewritesFile(t *testing.T) {
	s := newTestStore(t)
	s.reminders = []reminder.Reminder{
		testReminder("one", storeNow),
		testReminder("two", storeNow.Add(time.Hour)),
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Errorf("saved %d lines, want 2", len(lines))
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	s.reminders = []reminder.Reminder{testReminder("one", storeNow)}
	cleared, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(cleared) != 1 || s.Len() != 0 {
		t.Errorf("Clear returned %d, left %d", len(cleared), s.Len())
	}

	// Clearing an empty store is a no-op.
	cleared, err = s.Clear()
	if err != nil || cleared != nil {
		t.Errorf("Clear on empty = (%v, %v)", cleared, err)
	}
}

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		query, candidate string
		positive         bool
	}{
		{"rem", "Test Reminder", true},
		{"REM", "test reminder", true},
		{"some long", "some long name...", true},
		{"", "anything", false},
		{"anything", "", false},
		{"xyz", "abc", false},
	}
	for _, tt := range tests {
		got := fuzzyScore(tt.query, tt.candidate)
		if (got > 0) != tt.positive {
			t.Errorf("fuzzyScore(%q, %q) = %d, want positive=%v",
				tt.query, tt.candidate, got, tt.positive)
		}
	}
}

func TestBestMatchPrefersCloserTitle(t *testing.T) {
	s := newTestStore(t)
	s.reminders = []reminder.Reminder{
		testReminder("go to work", storeNow),
		testReminder("workout", storeNow),
	}
	if got := s.bestMatch("workout"); got != 1 {
		t.Errorf("bestMatch(workout) = %d, want 1", got)
	}
}

func TestBestMatchFirstWinsOnTie(t *testing.T) {
	s := newTestStore(t)
	s.reminders = []reminder.Reminder{
		testReminder("same title", storeNow),
		testReminder("same title", storeNow),
	}
	if got := s.bestMatch("same title"); got != 0 {
		t.Errorf("bestMatch on tie = %d, want 0", got)
	}
}

func TestRemoveFuzzy(t *testing.T) {
	s := newTestStore(t)
	s.reminders = []reminder.Reminder{
		testReminder("water plants", storeNow),
		testReminder("take out trash", storeNow),
	}
	removed, err := s.Remove("trash")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed == nil || removed.Title != "take out trash" {
		t.Fatalf("Remove returned %+v", removed)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}

	removed, err = s.Remove("zzz")
	if err != nil || removed != nil {
		t.Errorf("Remove with no match = (%+v, %v), want (nil, nil)", removed, err)
	}
}

func TestSkip(t *testing.T) {
	s := newTestStore(t)
	s.reminders = []reminder.Reminder{testReminder("rest", storeNow)}

	ok, err := s.Skip("rest", 2)
	if err != nil || !ok {
		t.Fatalf("Skip = (%v, %v)", ok, err)
	}
	if s.At(0).Skips != 2 {
		t.Errorf("skips = %d, want 2", s.At(0).Skips)
	}

	ok, err = s.Skip("zzz", 1)
	if err != nil || ok {
		t.Errorf("Skip with no match = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestSkipNext(t *testing.T) {
	s := newTestStore(t)
	s.reminders = []reminder.Reminder{
		testReminder("later", storeNow.Add(time.Hour)),
		testReminder("sooner", storeNow),
	}
	ok, err := s.SkipNext(1)
	if err != nil || !ok {
		t.Fatalf("SkipNext = (%v, %v)", ok, err)
	}
	if s.At(1).Skips != 1 || s.At(0).Skips != 0 {
		t.Error("SkipNext should target the nearest-due reminder")
	}
}

func TestClosest(t *testing.T) {
	s := newTestStore(t)
	if got := s.Closest(); got != -1 {
		t.Errorf("Closest on empty = %d, want -1", got)
	}
	s.reminders = []reminder.Reminder{
		testReminder("b", storeNow.Add(time.Hour)),
		testReminder("a", storeNow),
		testReminder("a twin", storeNow),
	}
	if got := s.Closest(); got != 1 {
		t.Errorf("Closest = %d, want 1 (first of the tie)", got)
	}
}
