package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type RunSummary struct {
	Meta     RunMeta       `json:"meta"`
	Failures []TestFailure `json:"failures,omitempty"`
}

type RunMeta struct {
	Modules         []string `json:"modules"`
	ModuleCount     int      `json:"module_count"`
	Verdict         string   `json:"verdict"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	CoverData       string   `json:"cover_data,omitempty"`
	SurefireDir     string   `json:"surefire_dir,omitempty"`
	Timestamp       string   `json:"timestamp"`
}

// TestFailure is one failed test case, parsed from a surefire report by the
// faills viewer after a --surefire run.
type TestFailure struct {
	Module   string `json:"module"`
	TestName string `json:"test_name"`
	Message  string `json:"message"`
	Detail   string `json:"detail"`
	Resolved bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}

func buildRunSummary(modules []string, runErr error, duration time.Duration, coverPath string, flags Flags, paths BuildPaths) *RunSummary {
	verdict := "pass"
	switch {
	case errors.Is(runErr, ErrTestsFailed):
		verdict = "fail"
	case runErr != nil:
		verdict = "error"
	}

	meta := RunMeta{
		Modules:         modules,
		ModuleCount:     len(modules),
		Verdict:         verdict,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		CoverData:       coverPath,
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	if flags.Surefire {
		meta.SurefireDir = paths.AppRoot
	}

	return &RunSummary{Meta: meta}
}

func saveRunSummary(appRoot string, summary *RunSummary) error {
	// Create the output root if the build has not populated it yet
	if err := os.MkdirAll(appRoot, 0755); err != nil {
		return fmt.Errorf("failed to create app output root: %w", err)
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(appRoot, RESULTS_FILE), jsonData, 0644)
}

func loadRunSummary(appRoot string) (*RunSummary, error) {
	data, err := os.ReadFile(filepath.Join(appRoot, RESULTS_FILE))
	if err != nil {
		return nil, fmt.Errorf("failed to read run summary: %w\nRun tests first to generate results", err)
	}

	var summary RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse run summary: %w", err)
	}

	return &summary, nil
}
