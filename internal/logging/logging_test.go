// ABOUTME: Tests for logger construction.
// ABOUTME: Verifies level gating between default and verbose modes.
package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("loaded document", "days", 3)
	assert.Empty(t, buf.String())

	logger.Warn("data file is corrupt")
	assert.Contains(t, buf.String(), "data file is corrupt")
	assert.Contains(t, buf.String(), "dolphin")
}

func TestNewVerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("loaded document", "days", 3)
	assert.Contains(t, buf.String(), "loaded document")
	assert.Contains(t, buf.String(), "days=3")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Warn("ignored")
	})
}
