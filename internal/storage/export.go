// ABOUTME: Export functionality for fitness data.
// ABOUTME: Supports JSON, YAML, and Markdown formats with an optional since date.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/dolphin/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the export envelope.
type ExportData struct {
	Version    string    `json:"version" yaml:"version"`
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Tool       string    `json:"tool" yaml:"tool"`
	Days       []Day     `json:"days" yaml:"days"`
}

// GetExportData collects days on or after since ("" for all), newest first.
func (t *Tracker) GetExportData(since string) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: t.now(),
		Tool:       "dolphin",
		Days:       sortedDays(t.data, since, 0),
	}
}

// ExportJSON exports data as indented JSON.
func (t *Tracker) ExportJSON(since string) ([]byte, error) {
	return json.MarshalIndent(t.GetExportData(since), "", "  ")
}

// ExportYAML exports data as YAML with one entry per day.
func (t *Tracker) ExportYAML(since string) ([]byte, error) {
	data := t.GetExportData(since)

	yamlData := struct {
		Version    string    `yaml:"version"`
		ExportedAt string    `yaml:"exported_at"`
		Tool       string    `yaml:"tool"`
		Days       []yamlDay `yaml:"days"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Days:       make([]yamlDay, 0, len(data.Days)),
	}

	for _, d := range data.Days {
		yd := yamlDay{Date: d.Date}
		for _, kind := range models.AllExerciseKinds {
			rec := d.Record.Get(kind)
			if rec == nil {
				continue
			}
			yd.Exercises = append(yd.Exercises, yamlExercise{
				Exercise:   string(kind),
				Count:      rec.Count,
				RecordedAt: rec.Timestamp,
			})
		}
		yamlData.Days = append(yamlData.Days, yd)
	}

	return yaml.Marshal(yamlData)
}

type yamlDay struct {
	Date      string         `yaml:"date"`
	Exercises []yamlExercise `yaml:"exercises,omitempty"`
}

type yamlExercise struct {
	Exercise   string `yaml:"exercise"`
	Count      uint32 `yaml:"count"`
	RecordedAt string `yaml:"recorded_at"`
}

// ExportMarkdown exports data as a Markdown table, one row per day.
func (t *Tracker) ExportMarkdown(since string) string {
	data := t.GetExportData(since)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Fitness Export - %s\n\n", data.ExportedAt.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	if len(data.Days) == 0 {
		sb.WriteString("No records.\n")
		return sb.String()
	}

	sb.WriteString("| Date | Push-ups | Sit-ups | Pull-ups |\n")
	sb.WriteString("|------|----------|---------|----------|\n")
	totals := make(map[models.ExerciseKind]uint64)
	for _, d := range data.Days {
		cells := make([]string, 0, len(models.AllExerciseKinds))
		for _, kind := range models.AllExerciseKinds {
			rec := d.Record.Get(kind)
			if rec == nil {
				cells = append(cells, "-")
				continue
			}
			totals[kind] += uint64(rec.Count)
			cells = append(cells, fmt.Sprintf("%d", rec.Count))
		}
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", d.Date, strings.Join(cells, " | ")))
	}
	sb.WriteString(fmt.Sprintf("| **Total** | %d | %d | %d |\n",
		totals[models.ExercisePushups], totals[models.ExerciseSitups], totals[models.ExercisePullups]))

	return sb.String()
}
