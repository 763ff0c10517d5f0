// ABOUTME: CLI command for listing recorded exercise days.
// ABOUTME: Shows one row per date, newest first, with per-exercise counts.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/dolphin/internal/models"
	"github.com/harperreed/dolphin/internal/storage"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = usesTracker(&cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recorded days",
	Long: `List recent days from your fitness log, newest first.

OUTPUT FORMAT:

  Each line shows: DATE  PUSH-UPS  SIT-UPS  PULL-UPS
  A dash means nothing was recorded for that exercise.

EXAMPLES:

  dolphin fitness list          # Show last 14 days
  dolphin fitness list -n 30    # Show last 30 days
  dolphin fitness list -n 0     # Show everything`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printDays(cmd.OutOrStdout(), tracker.Days(listLimit))
		return nil
	},
})

func printDays(w io.Writer, days []storage.Day) {
	if len(days) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	faint := color.New(color.Faint)
	header := padRight("DATE", 12)
	for _, kind := range models.AllExerciseKinds {
		header += padLeft(strings.ToUpper(kind.Label()), 10)
	}
	fmt.Fprintln(w, faint.Sprint(header))

	for _, d := range days {
		line := padRight(d.Date, 12)
		for _, kind := range models.AllExerciseKinds {
			cell := "-"
			if r := d.Record.Get(kind); r != nil {
				cell = fmt.Sprintf("%d", r.Count)
			}
			line += padLeft(cell, 10)
		}
		fmt.Fprintln(w, line)
	}
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func padLeft(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(" ", length-len(s)) + s
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 14, "max number of days (0 for all)")
	fitnessCmd.AddCommand(listCmd)
}
