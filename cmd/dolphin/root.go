// ABOUTME: Root Cobra command for dolphin CLI.
// ABOUTME: Resolves the data file and loads the tracker via PersistentPreRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/dolphin/internal/config"
	"github.com/harperreed/dolphin/internal/logging"
	"github.com/harperreed/dolphin/internal/storage"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// needsTrackerAnnotation marks commands that read or write the data file.
const needsTrackerAnnotation = "dolphin/tracker"

var (
	dataFile string
	verbose  bool

	logger  *log.Logger
	tracker *storage.Tracker
)

var rootCmd = &cobra.Command{
	Use:     "dolphin",
	Short:   "🐬 A personal CLI assistant for life management",
	Version: version,
	Long: `Dolphin is a personal CLI assistant. It tracks daily exercise counts and
keeps everything in a single JSON file.

QUICK START:

  $ dolphin fitness pushups 25                 # Record 25 push-ups for today
  $ dolphin fitness situps 40 -d yesterday     # Record sit-ups for yesterday
  $ dolphin fitness pullups 8 -d 2025-01-31    # Record pull-ups for a date
  $ dolphin fitness today 30 50                # Push-ups and sit-ups for today
  $ dolphin fitness list                       # Show recent days

Recording the same exercise twice for a date replaces the earlier count.

DATA STORAGE:

  Records are stored in personal_data.json in the current directory.
  Use --data-file to choose another location; missing directories are created.

  $ dolphin --data-file ~/fitness/data.json fitness pushups 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(os.Stderr, verbose)

		if cmd.Annotations[needsTrackerAnnotation] == "" {
			return nil
		}

		t, err := openTracker(storage.WithOutput(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		tracker = t
		return nil
	},
}

// openTracker resolves --data-file and loads the document.
func openTracker(opts ...storage.Option) (*storage.Tracker, error) {
	cfg, err := config.Resolve(dataFile)
	if err != nil {
		return nil, err
	}
	opts = append([]storage.Option{storage.WithLogger(logger)}, opts...)
	t, err := storage.NewTracker(cfg.DataFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.DataFile, err)
	}
	return t, nil
}

// usesTracker marks cmd so the root loads the tracker before it runs.
func usesTracker(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[needsTrackerAnnotation] = "true"
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", config.DefaultDataFile, "data file path for storing personal data")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
