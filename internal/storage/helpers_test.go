// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestTracker with a fixed clock and captured output.
package storage

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/dolphin/internal/logging"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 15, 18, 45, 10, 0, time.Local)

func init() {
	color.NoColor = true
}

func setupTestTracker(t *testing.T) (*Tracker, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "personal_data.json")
	return openTestTracker(t, path)
}

func openTestTracker(t *testing.T, path string) (*Tracker, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	tr, err := NewTracker(path,
		WithOutput(&out),
		WithLogger(logging.Discard()),
		WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)
	return tr, &out
}
