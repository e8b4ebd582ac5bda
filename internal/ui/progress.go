package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders suite run progress on stderr.
type ProgressBar struct {
	suite string
	bar   *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar for a run of count tests of the
// named suite.
func NewProgressBar(suite string, count int) *ProgressBar {
	p := &ProgressBar{suite: suite}
	p.bar = progressbar.NewOptions(count,
		progressbar.OptionSetDescription(p.describe(0, 0, "")),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return p
}

func (p *ProgressBar) describe(passed, failed int, lastTest string) string {
	desc := color.CyanString("%s: ", p.suite) +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
	if lastTest != "" {
		desc += " " + lastTest
	}
	return desc
}

// Update advances the bar after lastTest finished and refreshes the
// pass/fail counts.
func (p *ProgressBar) Update(passed, failed int, lastTest string) {
	p.bar.Set(passed + failed)
	p.bar.Describe(p.describe(passed, failed, lastTest))
}

// Finish completes the bar.
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
