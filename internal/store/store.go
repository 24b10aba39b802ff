// Package store owns the reminder list and its flat-file persistence: one
// serialized reminder per line, a bounded snapshot history for undo, and
// fuzzy title matching for remove/skip.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/remind/internal/atomicfile"
	"github.com/aidanlsb/remind/internal/reminder"
)

// Store holds the in-memory reminder list backed by a single text file and a
// sibling history directory. It is not safe for concurrent use; the process
// model is one writer at a time (last writer wins across processes).
type Store struct {
	path       string
	historyDir string
	reminders  []reminder.Reminder

	// Warnf receives parse diagnostics. Defaults to stderr; tests replace it.
	Warnf func(format string, args ...any)
}

// New creates a store over the given backing file and history directory.
// Nothing is read until Load.
func New(path, historyDir string) *Store {
	return &Store{
		path:       path,
		historyDir: historyDir,
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "remind: "+format+"\n", args...)
		},
	}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of loaded reminders.
func (s *Store) Len() int { return len(s.reminders) }

// At returns a pointer into the live list.
func (s *Store) At(i int) *reminder.Reminder { return &s.reminders[i] }

// Append serializes one reminder to the end of the backing file, creating it
// if absent. The in-memory list is not reloaded.
func (s *Store) Append(r *reminder.Reminder) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open reminders file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(r.Serialize() + "\n"); err != nil {
		return fmt.Errorf("append reminder: %w", err)
	}
	return nil
}

// Load replaces the in-memory list with the backing file's contents. A
// missing file yields an empty list. Malformed lines degrade with a
// diagnostic instead of failing the load.
func (s *Store) Load() error {
	s.reminders = s.loadFile(s.path)
	return nil
}

func (s *Store) loadFile(path string) []reminder.Reminder {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var out []reminder.Reminder
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, err := reminder.Deserialize(line, s.Warnf)
		if err != nil {
			s.Warnf("skipping unreadable line: %v", err)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Reset empties the in-memory list without touching disk. The watch loop
// uses it when the backing file disappears.
func (s *Store) Reset() {
	s.reminders = nil
}

// Save rewrites the backing file from the in-memory list. The write goes
// through a temp-file rename so a concurrent reader never sees a torn file.
func (s *Store) Save() error {
	return s.saveFile(s.path)
}

func (s *Store) saveFile(path string) error {
	var b strings.Builder
	for i := range s.reminders {
		b.WriteString(s.reminders[i].Serialize())
		b.WriteByte('\n')
	}
	if err := atomicfile.WriteFile(path, []byte(b.String())); err != nil {
		return fmt.Errorf("save reminders: %w", err)
	}
	return nil
}

// Clear empties the list and persists. It returns the reminders that were
// removed so the caller can echo them.
func (s *Store) Clear() ([]reminder.Reminder, error) {
	if len(s.reminders) == 0 {
		return nil, nil
	}
	cleared := s.reminders
	s.reminders = nil
	if err := s.Save(); err != nil {
		return nil, err
	}
	return cleared, nil
}

// Remove deletes the best fuzzy match for title. It returns the removed
// reminder, or nil when nothing scored above zero.
func (s *Store) Remove(title string) (*reminder.Reminder, error) {
	i := s.bestMatch(title)
	if i < 0 {
		return nil, nil
	}
	removed := s.reminders[i]
	if err := s.RemoveAt(i); err != nil {
		return nil, err
	}
	return &removed, nil
}

// RemoveAt deletes the reminder at index i and persists.
func (s *Store) RemoveAt(i int) error {
	s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
	return s.Save()
}

// Skip adds n pending skips to the best fuzzy match for title. The boolean
// reports whether a match was found.
func (s *Store) Skip(title string, n uint) (bool, error) {
	i := s.bestMatch(title)
	if i < 0 {
		return false, nil
	}
	s.reminders[i].Skips += n
	return true, s.Save()
}

// SkipNext adds n pending skips to the nearest-due reminder.
func (s *Store) SkipNext(n uint) (bool, error) {
	i := s.Closest()
	if i < 0 {
		return false, nil
	}
	s.reminders[i].Skips += n
	return true, s.Save()
}

// Closest returns the index of the reminder with the earliest end time, or
// -1 for an empty list. Ties resolve to the first in list order.
func (s *Store) Closest() int {
	best := -1
	for i := range s.reminders {
		if best < 0 || s.reminders[i].EndTime.Before(s.reminders[best].EndTime) {
			best = i
		}
	}
	return best
}

// historyFiles lists snapshot paths sorted by name. Snapshot names embed
// their timestamp in a lexically sortable layout, so name order is age order.
func (s *Store) historyFiles() ([]string, error) {
	entries, err := os.ReadDir(s.historyDir)
	if err != nil {
		return nil, fmt.Errorf("read history dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(s.historyDir, e.Name()))
		}
	}
	return files, nil
}
