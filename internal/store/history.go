package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MaxHistory bounds the snapshot directory. The oldest snapshot is evicted
// before a new one would exceed the bound.
const MaxHistory = 8

// snapshotLayout keeps snapshot filenames lexically sortable by age.
const snapshotLayout = "06-01-02 15-04-05.000"

// SaveHistory snapshots the current in-memory list into a timestamp-named
// file. Callers take a snapshot before every mutating command so Undo can
// walk back one step at a time.
func (s *Store) SaveHistory(now time.Time) error {
	files, err := s.historyFiles()
	if err != nil {
		return err
	}
	if len(files) >= MaxHistory {
		if err := os.Remove(files[0]); err != nil {
			return fmt.Errorf("evict oldest snapshot: %w", err)
		}
	}
	name := fmt.Sprintf("reminders %s.txt", now.Format(snapshotLayout))
	return s.saveFile(filepath.Join(s.historyDir, name))
}

// Undo restores the newest snapshot as the live list, persists it, and
// consumes (deletes) that snapshot. It reports whether there was anything to
// undo.
func (s *Store) Undo() (bool, error) {
	files, err := s.historyFiles()
	if err != nil {
		return false, err
	}
	if len(files) == 0 {
		return false, nil
	}
	newest := files[len(files)-1]
	s.reminders = s.loadFile(newest)
	if err := s.Save(); err != nil {
		return false, err
	}
	if err := os.Remove(newest); err != nil {
		return false, fmt.Errorf("consume snapshot: %w", err)
	}
	return true, nil
}
