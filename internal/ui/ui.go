// Package ui holds terminal output helpers for the pathdsl tool.
package ui

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"
)

// IsTTY is true when stdout appears to be a tty.
var IsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// ErrorPrefix is a colored string for error level messages.
var ErrorPrefix = color.New(color.Bold, color.FgRed, color.ReverseVideo).Sprint(" ERROR ")

// Default builds the colored UI the tool writes through. Color is
// suppressed when requested or when stdout is not a terminal.
func Default(noColor bool) *cli.ColoredUi {
	if noColor || !IsTTY {
		color.NoColor = true
	}

	return &cli.ColoredUi{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		OutputColor: cli.UiColorNone,
		InfoColor:   cli.UiColorNone,
		WarnColor:   cli.UiColor{Code: int(color.FgYellow), Bold: false},
		ErrorColor:  cli.UiColorRed,
	}
}
