// Package paths resolves where remind keeps its data: the reminders file and
// the snapshot history directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// RemindersFile is the backing file name inside the data directory.
const RemindersFile = "reminders.txt"

// HistoryDir is the snapshot directory name inside the data directory.
const HistoryDir = "history"

// DataDir returns the remind data directory.
// Prefers XDG-style ~/.local/share/remind, falling back to the OS-specific
// user config location when the home directory cannot be resolved.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "remind"), nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "remind"), nil
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "remind"), nil
	}
	return "", fmt.Errorf("cannot resolve a data directory for remind")
}

// Ensure creates the data directory and its history subdirectory, returning
// the reminders file path and the history directory path.
func Ensure(dataDir string) (file, historyDir string, err error) {
	historyDir = filepath.Join(dataDir, HistoryDir)
	if err := os.MkdirAll(historyDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create data directory: %w", err)
	}
	return filepath.Join(dataDir, RemindersFile), historyDir, nil
}
