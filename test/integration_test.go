// ABOUTME: Integration tests for dolphin CLI.
// ABOUTME: Builds the binary and runs the full record/list/export workflow.
package test

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func buildBinary(t *testing.T) string {
	t.Helper()
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "dolphin")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/dolphin")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	return binary
}

func TestFullWorkflow(t *testing.T) {
	binary := buildBinary(t)

	dataPath := filepath.Join(t.TempDir(), "data", "personal_data.json")

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-file", dataPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = append(os.Environ(), "NO_COLOR=1")
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	before := time.Now().Format("2006-01-02")
	output, err := run("fitness", "pushups", "25")
	if err != nil {
		t.Fatalf("Failed to record pushups: %v\n%s", err, output)
	}
	after := time.Now().Format("2006-01-02")
	if !strings.Contains(output, "25 push-ups recorded for "+before) &&
		!strings.Contains(output, "25 push-ups recorded for "+after) {
		t.Errorf("Expected push-ups confirmation for today, got: %s", output)
	}

	output, err = run("fitness", "today", "30", "50")
	if err != nil {
		t.Fatalf("Failed to record today: %v\n%s", err, output)
	}
	if !strings.Contains(output, "50 sit-ups recorded") {
		t.Errorf("Expected sit-ups confirmation, got: %s", output)
	}

	output, err = run("fitness", "pushups", "20", "-d", "2025-01-30")
	if err != nil {
		t.Fatalf("Failed to record pushups: %v\n%s", err, output)
	}
	output, err = run("fitness", "pushups", "30", "-d", "2025-01-30")
	if err != nil {
		t.Fatalf("Failed to overwrite pushups: %v\n%s", err, output)
	}

	output, err = run("fitness", "pullups", "8", "-d", "2025-01-31")
	if err != nil {
		t.Fatalf("Failed to record pullups: %v\n%s", err, output)
	}

	output, err = run("fitness", "list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2025-01-30") || !strings.Contains(output, "2025-01-31") {
		t.Errorf("Expected both dates in list output, got: %s", output)
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		t.Fatalf("Failed to read data file: %v", err)
	}
	var doc struct {
		Fitness map[string]map[string]*struct {
			Count     uint32 `json:"count"`
			Timestamp string `json:"timestamp"`
		} `json:"fitness"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Data file is not valid JSON: %v\n%s", err, raw)
	}
	if got := doc.Fitness["2025-01-30"]["pushups"]; got == nil || got.Count != 30 {
		t.Errorf("Expected 2025-01-30 pushups to be overwritten with 30, got: %+v", got)
	}
	if got := doc.Fitness["2025-01-31"]["pushups"]; got != nil {
		t.Errorf("Expected null pushups for 2025-01-31, got: %+v", got)
	}

	output, err = run("export", "markdown")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "| Date | Push-ups | Sit-ups | Pull-ups |") {
		t.Errorf("Expected markdown table, got: %s", output)
	}
}

func TestInvalidDateExitCode(t *testing.T) {
	binary := buildBinary(t)
	dataPath := filepath.Join(t.TempDir(), "personal_data.json")

	cmd := exec.Command(binary, "--data-file", dataPath, "fitness", "situps", "5", "--date", "2024-02-30")
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("Expected exit code 1, got: %v", err)
	}
	if !strings.HasPrefix(stderr.String(), "Error:") {
		t.Errorf("Expected stderr to start with 'Error:', got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "invalid date format") {
		t.Errorf("Expected invalid date message, got: %s", stderr.String())
	}
	if _, statErr := os.Stat(dataPath); !os.IsNotExist(statErr) {
		t.Errorf("Expected no data file to be written")
	}
}

func TestChoreDoesNotTouchData(t *testing.T) {
	binary := buildBinary(t)
	dataPath := filepath.Join(t.TempDir(), "never", "personal_data.json")

	cmd := exec.Command(binary, "--data-file", dataPath, "chore", "complete", "laundry")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Chore complete failed: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "Completing: laundry") {
		t.Errorf("Expected echo, got: %s", output)
	}
	if _, statErr := os.Stat(filepath.Dir(dataPath)); !os.IsNotExist(statErr) {
		t.Errorf("Expected data directory to be left alone")
	}
}
