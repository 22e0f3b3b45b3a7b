package main

import (
	"fmt"
	"os"
	"strings"
)

// discoverModules enumerates compiled BEAM artifacts in outputDir and derives
// module names from their base filenames. Listing order is preserved.
func discoverModules(outputDir string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read compiled output %s: %w", outputDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), BEAM_EXT) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), BEAM_EXT))
	}

	return dedupTestPairs(names), nil
}

// dedupTestPairs drops a base module when its _test variant is also present.
// The engine resolves a base module to its test variant on its own, so running
// both would execute the same cases twice.
func dedupTestPairs(names []string) []string {
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	var filtered []string
	for _, name := range names {
		if present[name+TEST_SUFFIX] {
			continue
		}
		filtered = append(filtered, name)
	}

	return filtered
}

// selectModules filters discovered modules against an explicit request.
// An empty request means "all". Requested names that were not discovered are
// silently dropped: umbrella builds pass the same module list to every app,
// so a miss here is expected rather than an error.
func selectModules(requested, discovered []string) []string {
	if len(requested) == 0 {
		return discovered
	}

	have := make(map[string]bool, len(discovered))
	for _, name := range discovered {
		have[name] = true
	}

	var selected []string
	for _, name := range requested {
		if have[name] {
			selected = append(selected, name)
		}
	}

	return selected
}
