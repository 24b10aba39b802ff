// Package testutil provides reusable test fixtures for remind tests.
package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/aidanlsb/remind/internal/paths"
	"github.com/aidanlsb/remind/internal/store"
)

// TestData is a temporary data directory: a reminders file plus a history
// subdirectory, both cleaned up with the test.
type TestData struct {
	Dir        string
	File       string
	HistoryDir string

	// Warnings collects parse diagnostics from stores built via Store.
	Warnings []string

	t *testing.T
}

// NewTestData creates the directory layout under t.TempDir().
func NewTestData(t *testing.T) *TestData {
	t.Helper()
	dir := t.TempDir()
	file, historyDir, err := paths.Ensure(dir)
	if err != nil {
		t.Fatalf("prepare data dir: %v", err)
	}
	return &TestData{Dir: dir, File: file, HistoryDir: historyDir, t: t}
}

// Store returns a store over the fixture with warnings captured instead of
// written to stderr.
func (d *TestData) Store() *store.Store {
	s := store.New(d.File, d.HistoryDir)
	s.Warnf = func(format string, args ...any) {
		d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
	}
	return s
}

// WriteLines replaces the reminders file with the given lines.
func (d *TestData) WriteLines(lines ...string) {
	d.t.Helper()
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(d.File, []byte(content), 0o644); err != nil {
		d.t.Fatalf("write reminders file: %v", err)
	}
}

// ReadFile returns the reminders file contents.
func (d *TestData) ReadFile() string {
	d.t.Helper()
	data, err := os.ReadFile(d.File)
	if err != nil {
		d.t.Fatalf("read reminders file: %v", err)
	}
	return string(data)
}

// HistoryCount returns the number of snapshots on disk.
func (d *TestData) HistoryCount() int {
	d.t.Helper()
	entries, err := os.ReadDir(d.HistoryDir)
	if err != nil {
		d.t.Fatalf("read history dir: %v", err)
	}
	return len(entries)
}
