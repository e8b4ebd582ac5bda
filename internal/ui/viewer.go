package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mathlab/internal/check"
)

// FailureViewer displays failed tests in an interactive TUI.
type FailureViewer struct{}

// NewFailureViewer creates a FailureViewer.
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View opens the viewer on the given failures: a list on the left, the
// selected test's messages on the right. Arrow keys navigate, Ctrl+C exits.
func (v *FailureViewer) View(failures []check.TestResult) error {
	if len(failures) == 0 {
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, f := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s:%s", i+1, f.Case, f.Test), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			detailsView.SetText(formatFailure(failures[index]))
		}
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Test Failures (%d) | Use ↑↓ to navigate, Ctrl+C to exit ",
		len(failures)))

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			app.Stop()
			return nil
		}
		return event
	})
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailure formats one failure using tview color tags.
func formatFailure(f check.TestResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ Test: %s:%s[white]\n\n", f.Case, f.Test)
	if len(f.Messages) == 0 {
		b.WriteString("(no failure details recorded)\n")
		return b.String()
	}
	for _, msg := range f.Messages {
		fmt.Fprintf(&b, "[yellow]•[white] %s\n", msg)
	}
	return b.String()
}
