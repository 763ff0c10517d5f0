// ABOUTME: SQLite snapshot export of fitness records.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/dolphin/internal/models"
	_ "modernc.org/sqlite"
)

const snapshotSchema = `
	CREATE TABLE exercises (
		date TEXT NOT NULL,
		exercise TEXT NOT NULL,
		count INTEGER NOT NULL,
		recorded_at TEXT NOT NULL,
		PRIMARY KEY (date, exercise)
	);

	CREATE INDEX idx_exercises_exercise ON exercises(exercise, date DESC);
`

// ExportSQLite writes every record on or after since into a fresh SQLite
// database at dbPath, replacing any existing file. It returns the row count.
func (t *Tracker) ExportSQLite(dbPath, since string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return 0, fmt.Errorf("create export directory: %w", err)
	}
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("remove existing export: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(snapshotSchema); err != nil {
		return 0, fmt.Errorf("initialize schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO exercises (date, exercise, count, recorded_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	rows := 0
	for _, d := range sortedDays(t.data, since, 0) {
		for _, kind := range models.AllExerciseKinds {
			rec := d.Record.Get(kind)
			if rec == nil {
				continue
			}
			if _, err := stmt.Exec(d.Date, string(kind), int64(rec.Count), rec.Timestamp); err != nil {
				return 0, fmt.Errorf("insert %s %s: %w", d.Date, kind, err)
			}
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return rows, nil
}
