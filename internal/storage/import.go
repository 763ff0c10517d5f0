// ABOUTME: Merging records from another fitness document into the tracker.
// ABOUTME: Incoming records overwrite per date and exercise; invalid date keys are skipped.

package storage

import (
	"fmt"
	"os"

	"github.com/harperreed/dolphin/internal/apperr"
	"github.com/harperreed/dolphin/internal/models"
)

// ImportSummary holds counts from an import.
type ImportSummary struct {
	Days    int
	Records int
	Skipped []string
}

// Import copies every record in src into the tracker's document, replacing
// existing records for the same date and exercise, and saves once.
func (t *Tracker) Import(src *models.PersonalData) (*ImportSummary, error) {
	summary := &ImportSummary{}

	for _, day := range sortedDays(src, "", 0) {
		if !models.IsDateKey(day.Date) {
			summary.Skipped = append(summary.Skipped, day.Date)
			continue
		}

		touched := false
		for _, kind := range models.AllExerciseKinds {
			rec := day.Record.Get(kind)
			if rec == nil {
				continue
			}
			copied := *rec
			if err := t.data.Day(day.Date).Set(kind, &copied); err != nil {
				return nil, err
			}
			summary.Records++
			touched = true
		}
		if touched {
			summary.Days++
		}
	}

	if summary.Records == 0 {
		return summary, nil
	}
	if err := t.Save(); err != nil {
		return nil, fmt.Errorf("save imported records: %w", err)
	}
	return summary, nil
}

// ReadDocument strictly parses a document file for import.
// Unlike Load, a parse failure is reported.
func ReadDocument(path string) (*models.PersonalData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.IO("read", path, err)
	}
	data, err := parseDocument(raw)
	if err != nil {
		return nil, apperr.JSON(fmt.Errorf("parse %s: %w", path, err))
	}
	return data, nil
}
