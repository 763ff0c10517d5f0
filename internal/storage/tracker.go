// ABOUTME: Tracker owns the loaded fitness document and its data file.
// ABOUTME: Upsert records one exercise count per date and persists immediately.
package storage

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harperreed/dolphin/internal/models"
)

// Tracker is the record store for one data file.
type Tracker struct {
	path   string
	data   *models.PersonalData
	out    io.Writer
	logger *log.Logger
	now    func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithOutput sets where confirmations are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Tracker) { t.out = w }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithClock overrides the time source used for date keywords and timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker loads the document at path and returns a tracker bound to it.
func NewTracker(path string, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		path:   path,
		out:    os.Stdout,
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	data, err := Load(path, t.logger)
	if err != nil {
		return nil, err
	}
	t.data = data
	return t, nil
}

// Path returns the data file path.
func (t *Tracker) Path() string {
	return t.path
}

// Data returns the in-memory document.
func (t *Tracker) Data() *models.PersonalData {
	return t.data
}

// Reload replaces the in-memory document with the current file contents.
func (t *Tracker) Reload() error {
	data, err := Load(t.path, t.logger)
	if err != nil {
		return err
	}
	t.data = data
	return nil
}

// Save persists the whole document.
func (t *Tracker) Save() error {
	if err := Save(t.data, t.path); err != nil {
		return err
	}
	t.logger.Debug("saved data file", "path", t.path, "days", len(t.data.Fitness))
	return nil
}

// Upsert sets the count for kind on the given date, replacing any earlier
// value for that kind and date, then saves and prints a confirmation.
// It returns the normalized date key.
func (t *Tracker) Upsert(kind models.ExerciseKind, count uint32, date string) (string, error) {
	kind, err := models.ParseExerciseKind(string(kind))
	if err != nil {
		return "", err
	}
	now := t.now()
	dateKey, err := models.NormalizeDate(date, now)
	if err != nil {
		return "", err
	}

	if err := t.data.Day(dateKey).Set(kind, models.NewExerciseRecord(count, now)); err != nil {
		return "", err
	}
	t.logger.Debug("recorded exercise", "kind", kind, "count", count, "date", dateKey)

	if err := t.Save(); err != nil {
		return "", err
	}

	fmt.Fprintf(t.out, "%s %s %s recorded for %s! %s\n",
		color.New(color.FgGreen, color.Bold).Sprint("✓"),
		color.New(color.FgYellow, color.Bold).Sprint(count),
		kind.Label(),
		color.New(color.FgBlue, color.Bold).Sprint(dateKey),
		kind.Emoji())

	return dateKey, nil
}

// Day is one date key with its record, used for listing.
type Day struct {
	Date   string              `json:"date" yaml:"date"`
	Record *models.DailyRecord `json:"record" yaml:"record"`
}

// Days returns recorded days newest first. A limit <= 0 returns all.
func (t *Tracker) Days(limit int) []Day {
	return sortedDays(t.data, "", limit)
}

// Lookup returns the record for a date, accepting the same forms as Upsert.
func (t *Tracker) Lookup(date string) (string, *models.DailyRecord, error) {
	dateKey, err := models.NormalizeDate(date, t.now())
	if err != nil {
		return "", nil, err
	}
	return dateKey, t.data.Fitness[dateKey], nil
}

// sortedDays lists days on or after since (if set), newest first.
func sortedDays(data *models.PersonalData, since string, limit int) []Day {
	days := make([]Day, 0, len(data.Fitness))
	for key, rec := range data.Fitness {
		if rec == nil {
			continue
		}
		if since != "" && key < since {
			continue
		}
		days = append(days, Day{Date: key, Record: rec})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	if limit > 0 && len(days) > limit {
		days = days[:limit]
	}
	return days
}
