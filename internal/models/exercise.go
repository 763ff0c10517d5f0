// ABOUTME: Exercise record models and ExerciseKind enum for daily fitness tracking.
// ABOUTME: PersonalData maps YYYY-MM-DD date keys to per-day exercise records.
package models

import (
	"strings"
	"time"

	"github.com/harperreed/dolphin/internal/apperr"
)

// TimestampLayout is the local date-time format stored on each record.
const TimestampLayout = "2006-01-02 15:04:05"

// ExerciseKind identifies which exercise a record counts.
type ExerciseKind string

const (
	ExercisePushups ExerciseKind = "pushups"
	ExerciseSitups  ExerciseKind = "situps"
	ExercisePullups ExerciseKind = "pullups"
)

// AllExerciseKinds lists the kinds in display order.
var AllExerciseKinds = []ExerciseKind{ExercisePushups, ExerciseSitups, ExercisePullups}

var exerciseLabels = map[ExerciseKind]string{
	ExercisePushups: "push-ups",
	ExerciseSitups:  "sit-ups",
	ExercisePullups: "pull-ups",
}

var exerciseEmoji = map[ExerciseKind]string{
	ExercisePushups: "💪",
	ExerciseSitups:  "🏃",
	ExercisePullups: "🏋️",
}

// ParseExerciseKind converts a name such as "pushups" into an ExerciseKind.
func ParseExerciseKind(s string) (ExerciseKind, error) {
	k := ExerciseKind(strings.ToLower(s))
	if _, ok := exerciseLabels[k]; !ok {
		return "", apperr.InvalidExercise(s)
	}
	return k, nil
}

// Label returns the human readable name, e.g. "push-ups".
func (k ExerciseKind) Label() string {
	if l, ok := exerciseLabels[k]; ok {
		return l
	}
	return string(k)
}

// Emoji returns the symbol shown in confirmations.
func (k ExerciseKind) Emoji() string {
	return exerciseEmoji[k]
}

// ExerciseRecord is one recorded count. A new write replaces it wholesale.
type ExerciseRecord struct {
	Count     uint32 `json:"count" yaml:"count"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// NewExerciseRecord creates a record stamped with the given local time.
func NewExerciseRecord(count uint32, at time.Time) *ExerciseRecord {
	return &ExerciseRecord{
		Count:     count,
		Timestamp: at.Format(TimestampLayout),
	}
}

// DailyRecord holds at most one record per exercise kind for a calendar date.
type DailyRecord struct {
	Pushups *ExerciseRecord `json:"pushups"`
	Situps  *ExerciseRecord `json:"situps"`
	Pullups *ExerciseRecord `json:"pullups"`
}

// Get returns the record for kind. Unset and unknown kinds both yield nil.
func (d *DailyRecord) Get(kind ExerciseKind) *ExerciseRecord {
	switch kind {
	case ExercisePushups:
		return d.Pushups
	case ExerciseSitups:
		return d.Situps
	case ExercisePullups:
		return d.Pullups
	}
	return nil
}

// Set overwrites the record for kind, discarding any previous value.
// Kinds must be canonical; anything else is an InvalidExercise error.
func (d *DailyRecord) Set(kind ExerciseKind, r *ExerciseRecord) error {
	switch kind {
	case ExercisePushups:
		d.Pushups = r
	case ExerciseSitups:
		d.Situps = r
	case ExercisePullups:
		d.Pullups = r
	default:
		return apperr.InvalidExercise(string(kind))
	}
	return nil
}

// IsEmpty reports whether no exercise is recorded.
func (d *DailyRecord) IsEmpty() bool {
	return d.Pushups == nil && d.Situps == nil && d.Pullups == nil
}

// PersonalData is the persisted document.
type PersonalData struct {
	Fitness map[string]*DailyRecord `json:"fitness"`
}

// NewPersonalData returns an empty document.
func NewPersonalData() *PersonalData {
	return &PersonalData{Fitness: make(map[string]*DailyRecord)}
}

// Day returns the record for dateKey, creating it if absent.
func (p *PersonalData) Day(dateKey string) *DailyRecord {
	if p.Fitness == nil {
		p.Fitness = make(map[string]*DailyRecord)
	}
	d, ok := p.Fitness[dateKey]
	if !ok || d == nil {
		d = &DailyRecord{}
		p.Fitness[dateKey] = d
	}
	return d
}
