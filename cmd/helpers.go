package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func init() {
	// Disable color when output is piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

var (
	successColor = color.New(color.FgGreen)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

func printSuccess(format string, a ...interface{}) {
	successColor.Printf("✓ "+format+"\n", a...)
}

func printHeader(format string, a ...interface{}) {
	headerColor.Printf(format+"\n", a...)
}
