package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var faillsCmd = &cobra.Command{
	Use:   "faills",
	Short: "View test failures interactively",
	Long:  "Display test failures from the last surefire-enabled run in an interactive viewer",
	RunE:  viewFailures,
}

// viewFailures displays the last run's failures in an interactive TUI
func viewFailures(cmd *cobra.Command, args []string) error {
	paths, err := resolveBuildPaths()
	if err != nil {
		return err
	}

	summary, err := loadRunSummary(paths.AppRoot)
	if err != nil {
		return err
	}

	// Failures are parsed lazily from the surefire reports on first view
	if len(summary.Failures) == 0 && summary.Meta.SurefireDir != "" {
		failures, err := parseSurefireReports(summary.Meta.SurefireDir)
		if err != nil {
			return err
		}
		summary.Failures = failures
		if err := saveRunSummary(paths.AppRoot, summary); err != nil {
			return err
		}
	}

	if len(summary.Failures) == 0 {
		if summary.Meta.Verdict == "pass" {
			color.Green("✓ No test failures found!")
			return nil
		}
		color.Yellow("No failure details recorded. Re-run with --surefire to capture them.")
		return nil
	}

	// Track resolved failures (by index) - loaded from the summary
	resolved := make(map[int]bool)
	for i, failure := range summary.Failures {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolvedStatus := func() error {
		for i := range summary.Failures {
			summary.Failures[i].Resolved = resolved[i]
		}
		return saveRunSummary(paths.AppRoot, summary)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		failure := summary.Failures[index]
		name := failure.TestName
		if name == "" {
			name = fmt.Sprintf("Test %d", index+1)
		}
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range summary.Failures {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false) // 2 columns of padding on the right

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range summary.Failures {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
			len(summary.Failures), countUnresolved(),
		))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(summary.Failures) {
			failure := summary.Failures[index]
			statsView.SetText(formatFailureStats(failure, index+1))
			detailsView.SetText(formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(summary.Failures) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false). // 1 line of padding
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a test failure for display
func formatFailureDetails(failure TestFailure) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "%s\n\n", color.RedString("✗ Test: %s", failure.TestName))
	fmt.Fprintf(&builder, "%s\n\n", color.CyanString("Module: %s", failure.Module))

	if failure.Message != "" {
		fmt.Fprintf(&builder, "%s\n%s\n\n", color.YellowString("Message:"), failure.Message)
	}

	if failure.Detail != "" {
		fmt.Fprintf(&builder, "%s\n%s\n", color.YellowString("Details:"), failure.Detail)
	}

	return builder.String()
}

// formatFailureStats formats the stats header for a test failure
func formatFailureStats(failure TestFailure, number int) string {
	module := failure.Module
	if module == "" {
		module = "unknown module"
	}

	testCase := failure.TestName
	if testCase == "" {
		testCase = fmt.Sprintf("Test %d", number)
	}

	return fmt.Sprintf("[cyan]module:[white] [yellow]%s[white]::[yellow]%s[white]\n", module, testCase)
}
