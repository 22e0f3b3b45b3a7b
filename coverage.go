package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
)

// Coverage is the external coverage facility. The session it records into is
// process-wide state owned by the facility, so callers must treat it as a
// resource: acquire with Start, release with Stop.
type Coverage interface {
	Start() error
	Stop() error
	Instrument(dir string) error
	Export(path string) error
}

// CoverageCompileError reports failed instrumentation of the compiled output.
type CoverageCompileError struct {
	Dir string
	Err error
}

func (e *CoverageCompileError) Error() string {
	return fmt.Sprintf("coverage instrumentation of %s failed: %v", e.Dir, e.Err)
}

func (e *CoverageCompileError) Unwrap() error { return e.Err }

// CoverageExportError reports a coverage data file that could not be written.
type CoverageExportError struct {
	Path string
	Err  error
}

func (e *CoverageExportError) Error() string {
	return fmt.Sprintf("coverage export to %s failed: %v", e.Path, e.Err)
}

func (e *CoverageExportError) Unwrap() error { return e.Err }

// runCoverageScoped wraps action in a coverage session: any prior session is
// stopped, a fresh one is started, compiledDir is instrumented, and on every
// exit path the accumulated data is exported and the session stopped. A test
// failure raised by action takes precedence over an export failure; the export
// error is then surfaced as an informational message only.
func runCoverageScoped(cov Coverage, compiledDir, exportPath string, action func() error) error {
	// A previous invocation in the same VM may have leaked a session
	_ = cov.Stop()

	if err := cov.Start(); err != nil {
		return fmt.Errorf("failed to start coverage session: %w", err)
	}
	defer func() {
		_ = cov.Stop()
	}()

	if err := cov.Instrument(compiledDir); err != nil {
		return &CoverageCompileError{Dir: compiledDir, Err: err}
	}

	actionErr := action()

	if err := cov.Export(exportPath); err != nil {
		exportErr := &CoverageExportError{Path: exportPath, Err: err}
		if actionErr != nil {
			color.Yellow("Warning: %v", exportErr)
			return actionErr
		}
		return exportErr
	}

	return actionErr
}

// coverFacility drives the cover application on the shared session node.
type coverFacility struct {
	session evaluator
}

func (c *coverFacility) Start() error {
	output, err := c.session.eval(context.Background(), "cover:start().")
	if err != nil {
		return err
	}
	if isErrorReply(unwrapReply(output)) {
		return fmt.Errorf("cover start replied %s", output)
	}
	return nil
}

func (c *coverFacility) Stop() error {
	_, err := c.session.eval(context.Background(), "cover:stop().")
	return err
}

// Instrument cover-compiles every BEAM artifact under dir, one by one, with a
// progress bar. The first artifact that fails to compile aborts the pass.
func (c *coverFacility) Instrument(dir string) error {
	beams, err := filepath.Glob(filepath.Join(dir, "*"+BEAM_EXT))
	if err != nil {
		return err
	}
	if len(beams) == 0 {
		return fmt.Errorf("no compiled artifacts under %s", dir)
	}

	bar := instrumentBar(len(beams))
	for _, beam := range beams {
		expr := fmt.Sprintf("cover:compile_beam(%q).", beam)
		output, err := c.session.eval(context.Background(), expr)
		if err != nil {
			return fmt.Errorf("instrument %s: %w", filepath.Base(beam), err)
		}
		if isErrorReply(unwrapReply(output)) {
			return fmt.Errorf("instrument %s: %s", filepath.Base(beam), output)
		}
		bar.Add(1)
	}

	return nil
}

func (c *coverFacility) Export(path string) error {
	output, err := c.session.eval(context.Background(), fmt.Sprintf("cover:export(%q).", path))
	if err != nil {
		return err
	}
	if isErrorReply(unwrapReply(output)) {
		return fmt.Errorf("cover export replied %s", output)
	}
	return nil
}
