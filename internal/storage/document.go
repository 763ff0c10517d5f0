// ABOUTME: JSON document persistence for personal fitness data.
// ABOUTME: Missing or corrupt files load as empty; corrupt bytes are backed up first.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/dolphin/internal/apperr"
	"github.com/harperreed/dolphin/internal/models"
)

// Load reads the document at path.
// A missing file yields an empty document. So does a file that fails to parse
// or has the wrong shape, in which case a warning is logged and the original
// bytes are copied to a .corrupt-<id> file beside it before the next save can
// overwrite them. Days whose key is not YYYY-MM-DD are dropped the same way.
func Load(path string, logger *log.Logger) (*models.PersonalData, error) {
	if logger == nil {
		logger = log.Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("data file not found, starting empty", "path", path)
			return models.NewPersonalData(), nil
		}
		return nil, apperr.IO("read", path, err)
	}

	data, err := parseDocument(raw)
	if err != nil {
		backup := backupCorrupt(path, raw, logger)
		logger.Warn("data file could not be parsed, starting empty",
			"path", path, "backup", backup, "err", err)
		return models.NewPersonalData(), nil
	}

	if dropped := dropInvalidDays(data); len(dropped) > 0 {
		backup := backupCorrupt(path, raw, logger)
		for _, key := range dropped {
			logger.Warn("ignoring entry with invalid date key",
				"path", path, "key", key, "backup", backup)
		}
	}

	logger.Debug("loaded data file", "path", path, "days", len(data.Fitness))
	return data, nil
}

// Save writes the whole document to path as indented JSON.
func Save(data *models.PersonalData, path string) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return apperr.JSON(err)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return apperr.IO("write", path, err)
	}
	return nil
}

var errMissingFitness = errors.New(`missing "fitness" object`)

// parseDocument decodes raw and drops null day entries. Unknown fields
// anywhere in the document and a missing "fitness" key are shape errors.
func parseDocument(raw []byte) (*models.PersonalData, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, err
	}
	if _, ok := top["fitness"]; !ok {
		return nil, errMissingFitness
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var data models.PersonalData
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if data.Fitness == nil {
		data.Fitness = make(map[string]*models.DailyRecord)
	}
	for key, day := range data.Fitness {
		if day == nil {
			delete(data.Fitness, key)
		}
	}
	return &data, nil
}

// dropInvalidDays removes entries whose key is not a YYYY-MM-DD date and
// returns the removed keys in sorted order.
func dropInvalidDays(data *models.PersonalData) []string {
	var dropped []string
	for key := range data.Fitness {
		if !models.IsDateKey(key) {
			dropped = append(dropped, key)
		}
	}
	sort.Strings(dropped)
	for _, key := range dropped {
		delete(data.Fitness, key)
	}
	return dropped
}

// backupCorrupt copies raw next to path and returns the backup name, or "" on failure.
// An existing backup with the same bytes is reused.
func backupCorrupt(path string, raw []byte, logger *log.Logger) string {
	existing, _ := filepath.Glob(path + ".corrupt-*")
	for _, name := range existing {
		if prev, err := os.ReadFile(name); err == nil && bytes.Equal(prev, raw) {
			return name
		}
	}

	backup := fmt.Sprintf("%s.corrupt-%s", path, uuid.New().String()[:8])
	if err := os.WriteFile(backup, raw, 0600); err != nil {
		logger.Warn("could not back up corrupt data file", "path", backup, "err", err)
		return ""
	}
	return backup
}
