// ABOUTME: CLI commands for exporting and importing fitness data.
// ABOUTME: Supports JSON, YAML, Markdown, and SQLite export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/dolphin/internal/models"
	"github.com/harperreed/dolphin/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = usesTracker(&cobra.Command{
	Use:   "export <format>",
	Short: "Export fitness data",
	Long: `Export fitness data in various formats.

FORMATS:

  json       JSON export with one entry per day
  yaml       YAML export (human-readable)
  markdown   Markdown table with totals
  sqlite     SQLite database snapshot (requires --output)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include days on or after this date (YYYY-MM-DD, today, yesterday)

EXAMPLES:

  dolphin export json                         # Export all data as JSON
  dolphin export yaml -o fitness.yaml         # Save to file
  dolphin export markdown --since 2025-01-01  # Export data from 2025 onward
  dolphin export sqlite -o fitness.db         # Query with any SQLite client`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown", "sqlite"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		since := ""
		if exportSince != "" {
			key, err := models.NormalizeDate(exportSince, time.Now())
			if err != nil {
				return err
			}
			since = key
		}

		if format == "sqlite" {
			if exportOutput == "" {
				return fmt.Errorf("sqlite export requires --output")
			}
			rows, err := tracker.ExportSQLite(exportOutput, since)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported %d records to %s\n", rows, exportOutput)
			return nil
		}

		data, err := exportBytes(tracker, format, since)
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", exportOutput)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
})

func exportBytes(t *storage.Tracker, format, since string) ([]byte, error) {
	switch format {
	case "json":
		data, err := t.ExportJSON(since)
		if err != nil {
			return nil, fmt.Errorf("export failed: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := t.ExportYAML(since)
		if err != nil {
			return nil, fmt.Errorf("export failed: %w", err)
		}
		return data, nil
	case "markdown":
		return []byte(t.ExportMarkdown(since)), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (use json, yaml, markdown, or sqlite)", format)
	}
}

var importCmd = usesTracker(&cobra.Command{
	Use:   "import <file>",
	Short: "Import fitness data from another data file",
	Long: `Merge records from another dolphin data file into the current one.

For each date and exercise in the imported file, its record replaces the
current one. Exercises the imported file does not mention are left alone.
Entries whose date key is not YYYY-MM-DD are skipped.

EXAMPLES:

  dolphin import old_personal_data.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		doc, err := storage.ReadDocument(filename)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		summary, err := tracker.Import(doc)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		w := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(w, "✓ Imported %d records across %d days from %s\n",
			summary.Records, summary.Days, filename)
		for _, key := range summary.Skipped {
			color.New(color.FgYellow).Fprintf(w, "  skipped invalid date key %q\n", key)
		}
		return nil
	},
})

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include days since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
