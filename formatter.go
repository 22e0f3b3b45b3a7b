package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// instrumentBar builds the progress bar shown while cover-compiling the
// artifacts of the output directory.
func instrumentBar(count int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString("Instrumenting modules")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Print("\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return bar
}

// printModuleList displays discovered test modules as a simple tree
func printModuleList(modules []string) {
	color.Green("Found %d test module(s):\n", len(modules))

	for i, module := range modules {
		if i == len(modules)-1 {
			color.Cyan("└── %s", module)
		} else {
			color.Cyan("├── %s", module)
		}
	}
}

// printRunSummary displays the outcome of a run
func printRunSummary(summary *RunSummary) {
	meta := summary.Meta

	fmt.Print("\n")
	color.Cyan("╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║                        Test Summary                        ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝\n")

	color.White("Modules: %d | Duration: %s\n", meta.ModuleCount, meta.Duration)

	if meta.CoverData != "" {
		color.White("Coverage data: %s\n", meta.CoverData)
	}
	if meta.SurefireDir != "" {
		color.White("Surefire reports: %s\n", meta.SurefireDir)
	}

	switch meta.Verdict {
	case "pass":
		color.Green("✓ All tests passed!")
	case "fail":
		color.Red("✗ Tests failed")
	default:
		color.Red("✗ Run aborted: %s", meta.Verdict)
	}
	fmt.Println()
}
