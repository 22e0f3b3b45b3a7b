package main

import (
	"fmt"
	"os"
)

const (
	// Extension of compiled BEAM artifacts in the build output directory
	BEAM_EXT = ".beam"
	// Suffix marking a module as the test variant of a base module
	TEST_SUFFIX = "_test"
	// Coverage data file written under the app output root after a --cover run
	COVER_DATA_FILE = "eunit.coverdata"
	// Run summary JSON written under the app output root after every run
	RESULTS_FILE = "etr-results.json"
	// Short node name of the helper VM used for engine and coverage calls
	RUNNER_NODE = "etr_runner"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
