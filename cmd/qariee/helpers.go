package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	dimMark  = color.New(color.Faint).SprintFunc()
)

// newProgressBar builds a counter-style bar that stays silent when the
// output is not a terminal, so piped output remains clean.
func newProgressBar(total int, description string, out io.Writer) *progressbar.ProgressBar {
	visible := false
	if f, ok := out.(*os.File); ok {
		visible = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(out),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(visible),
	)
}
