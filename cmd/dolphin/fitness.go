// ABOUTME: CLI commands for recording exercise counts.
// ABOUTME: One subcommand per exercise plus today/yesterday shortcuts.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/dolphin/internal/models"
	"github.com/harperreed/dolphin/internal/storage"
	"github.com/spf13/cobra"
)

var fitnessCmd = &cobra.Command{
	Use:     "fitness",
	Aliases: []string{"f", "fit"},
	Short:   "Fitness tracking commands",
	Long: `Record daily exercise counts.

DATES:

  --date accepts today (default), yesterday, or a calendar date YYYY-MM-DD.
  Keywords are case-insensitive. Invalid dates such as 2024-02-30 are rejected.

EXAMPLES:

  dolphin fitness pushups 25
  dolphin fitness situps 40 --date yesterday
  dolphin fitness pullups 8 -d 2025-01-31
  dolphin fitness today 30 50        # push-ups then sit-ups
  dolphin fitness yesterday 30 50`,
}

// newExerciseCmd builds the recording command for one exercise kind.
func newExerciseCmd(kind models.ExerciseKind) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   string(kind) + " <count>",
		Short: fmt.Sprintf("Record %s count", kind.Label()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}
			return recordExercise(tracker, kind, count, date)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "today", "date to record for: today, yesterday, or YYYY-MM-DD")
	return usesTracker(cmd)
}

// newShortcutCmd builds the today/yesterday command recording push-ups and sit-ups.
func newShortcutCmd(keyword string) *cobra.Command {
	return usesTracker(&cobra.Command{
		Use:   keyword + " <pushups> <situps>",
		Short: fmt.Sprintf("Quick shortcut: record push-ups and sit-ups for %s", keyword),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pushups, err := parseCount(args[0])
			if err != nil {
				return err
			}
			situps, err := parseCount(args[1])
			if err != nil {
				return err
			}
			return recordPair(tracker, pushups, situps, keyword)
		},
	})
}

// recordExercise performs one upsert.
func recordExercise(t *storage.Tracker, kind models.ExerciseKind, count uint32, date string) error {
	_, err := t.Upsert(kind, count, date)
	return err
}

// recordPair records push-ups then sit-ups, stopping at the first failure.
// A failure on sit-ups leaves the push-ups record in place.
func recordPair(t *storage.Tracker, pushups, situps uint32, date string) error {
	if err := recordExercise(t, models.ExercisePushups, pushups, date); err != nil {
		return err
	}
	return recordExercise(t, models.ExerciseSitups, situps, date)
}

func parseCount(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid count: %s (must be a whole number from 0 to 4294967295)", s)
	}
	return uint32(n), nil
}

func init() {
	for _, kind := range models.AllExerciseKinds {
		fitnessCmd.AddCommand(newExerciseCmd(kind))
	}
	fitnessCmd.AddCommand(newShortcutCmd("today"))
	fitnessCmd.AddCommand(newShortcutCmd("yesterday"))
	rootCmd.AddCommand(fitnessCmd)
}
