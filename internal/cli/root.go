// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/remind/internal/buildinfo"
	"github.com/aidanlsb/remind/internal/config"
	"github.com/aidanlsb/remind/internal/paths"
	"github.com/aidanlsb/remind/internal/store"
)

var (
	// Global flags
	configPath  string
	dataDirFlag string
	debugFlag   bool
)

// rootCmd represents the base command. There are no subcommands: everything
// after "remind" is natural-language input for the tokenizer, so the words
// "list", "undo" or "help" belong to the input, not to cobra.
var rootCmd = &cobra.Command{
	Use:   "remind [words...]",
	Short: "Remind - natural-language reminders from your terminal",
	Long: `Remind schedules desktop notifications from plain words.

Words after "remind" can appear in any order: time units ("3w", "minute"),
weekdays ("monday fri"), clock times ("12:30", "11am"), month dates
("feb 28 2029"), repetition ("repeat 4", "weekly") and a quoted title.

With no arguments, remind watches the reminders file and fires desktop
notifications as reminders come due. Run 'remind help' for examples and
the full alias tables.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory for the reminders file and history")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Verbose watch-loop diagnostics on stderr")
	rootCmd.PersistentFlags().SetNormalizeFunc(normalizeFlagName)

	rootCmd.Version = buildinfo.Short()
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Replace the built-in help command with a hidden stub so "remind help"
	// reaches the tokenizer instead of cobra.
	rootCmd.SetHelpCommand(&cobra.Command{Use: "cobra-help", Hidden: true})
}

// normalizeFlagName accepts the squashed spelling of --data-dir.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "datadir" {
		name = "data-dir"
	}
	return pflag.NormalizedName(name)
}

func loadGlobalConfig() (*config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// openStore resolves the data directory (flag > config > default), makes sure
// it exists and returns a store over it. Nothing is loaded yet.
func openStore(cfg *config.Config) (*store.Store, error) {
	dir := dataDirFlag
	if dir == "" {
		dir = cfg.DataDir
	}
	if dir == "" {
		var err error
		dir, err = paths.DataDir()
		if err != nil {
			return nil, err
		}
	}
	file, historyDir, err := paths.Ensure(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare data directory: %w", err)
	}
	return store.New(file, historyDir), nil
}
