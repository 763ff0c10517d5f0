// ABOUTME: Placeholder chore commands.
// ABOUTME: Echo their arguments back; nothing is persisted.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	chorePriority string
	choreDueDate  string
)

var choreCmd = &cobra.Command{
	Use:   "chore",
	Short: "Chore management commands (coming soon)",
}

var choreAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new chore",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, comingSoon(), "🧹 Chore management coming soon!")
		fmt.Fprintf(w, "Description: %s\n", args[0])
		fmt.Fprintf(w, "Priority: %s\n", chorePriority)
		if choreDueDate != "" {
			fmt.Fprintf(w, "Due date: %s\n", choreDueDate)
		}
		return nil
	},
}

var choreCompleteCmd = &cobra.Command{
	Use:   "complete <description>",
	Short: "Mark a chore as complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, comingSoon(), "✅ Chore completion coming soon!")
		fmt.Fprintf(w, "Completing: %s\n", args[0])
		return nil
	},
}

func comingSoon() string {
	return color.New(color.FgYellow, color.Bold).Sprint("⚠️")
}

func init() {
	choreAddCmd.Flags().StringVarP(&chorePriority, "priority", "p", "medium", "priority level (low, medium, high)")
	choreAddCmd.Flags().StringVarP(&choreDueDate, "due-date", "d", "", "due date for the chore")

	choreCmd.AddCommand(choreAddCmd)
	choreCmd.AddCommand(choreCompleteCmd)
	rootCmd.AddCommand(choreCmd)
}
