package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
)

// ErrTestsFailed is the run outcome when the engine verdict is fail. It is the
// primary expected failure mode and halts the invoking build pipeline.
var ErrTestsFailed = errors.New("tests failed")

// executeRun is the top-level sequence: discover modules, filter them against
// an explicit request, invoke the engine (inside a coverage scope when asked
// for) and translate the verdict into the run outcome.
func executeRun(ctx context.Context, flags Flags, paths BuildPaths, engine TestEngine, cov Coverage) error {
	discovered, err := discoverModules(paths.CompiledDir)
	if err != nil {
		return err
	}

	targets := selectModules(flags.Modules, discovered)
	if len(targets) == 0 {
		color.Yellow("No test modules to run")
		return nil
	}

	engineOpts := buildEngineOptions(flags, paths.AppRoot)

	invoke := func() error {
		verdict, err := engine.Run(ctx, targets, engineOpts)
		if err != nil {
			return err
		}
		if verdict == VerdictFail {
			return ErrTestsFailed
		}
		return nil
	}

	start := time.Now()

	var runErr error
	coverPath := ""
	if flags.Cover {
		coverPath = filepath.Join(paths.AppRoot, COVER_DATA_FILE)
		runErr = runCoverageScoped(cov, paths.CompiledDir, coverPath, invoke)
	} else {
		runErr = invoke()
	}

	duration := time.Since(start)

	// Do not advertise coverage data that was never written
	if coverPath != "" {
		if _, statErr := os.Stat(coverPath); statErr != nil {
			coverPath = ""
		}
	}

	summary := buildRunSummary(targets, runErr, duration, coverPath, flags, paths)
	if err := saveRunSummary(paths.AppRoot, summary); err != nil {
		color.Yellow("Warning: failed to save run summary: %v", err)
	}

	printRunSummary(summary)

	return runErr
}
