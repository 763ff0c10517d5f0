// ABOUTME: Tests for typed application errors.
// ABOUTME: Covers kind matching, unwrapping, and message content.
package apperr

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindConfig, "config"},
		{KindJSON, "json"},
		{KindIO, "io"},
		{KindInvalidDate, "invalid_date"},
		{KindInvalidExercise, "invalid_exercise"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := InvalidDate("2024-02-30")

	assert.True(t, errors.Is(err, &Error{Kind: KindInvalidDate}))
	assert.False(t, errors.Is(err, &Error{Kind: KindIO}))
}

func TestIsKindThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("record situps: %w", InvalidDate("nope"))

	assert.True(t, IsKind(wrapped, KindInvalidDate))
	assert.False(t, IsKind(wrapped, KindConfig))
	assert.False(t, IsKind(errors.New("plain"), KindInvalidDate))
}

func TestUnwrapCause(t *testing.T) {
	err := IO("read", "/tmp/x.json", os.ErrPermission)

	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "/tmp/x.json")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestInvalidDateMessage(t *testing.T) {
	msg := InvalidDate("someday").Error()

	assert.Contains(t, msg, "someday")
	assert.Contains(t, msg, "today")
	assert.Contains(t, msg, "yesterday")
	assert.Contains(t, msg, "YYYY-MM-DD")
}

func TestConfigError(t *testing.T) {
	err := Config("create directory /root/x", os.ErrPermission)

	assert.True(t, IsKind(err, KindConfig))
	assert.Contains(t, err.Error(), "configuration error")
}
