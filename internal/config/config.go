// ABOUTME: Data file location resolution for the dolphin tracker.
// ABOUTME: Expands ~ and ensures the data file's parent directory exists.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/dolphin/internal/apperr"
)

// DefaultDataFile is used when --data-file is not given.
const DefaultDataFile = "personal_data.json"

// Config is a validated data file location.
type Config struct {
	// DataFile is the JSON document path. The file itself may not exist yet.
	DataFile string
}

// Resolve validates path and creates its parent directory if missing.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = DefaultDataFile
	}
	path = ExpandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, apperr.Config("create directory "+dir, err)
	}

	return &Config{DataFile: path}, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
