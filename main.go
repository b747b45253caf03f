package main

import (
	"errors"
	"os"

	"github.com/numerilab/numlaunch/cmd"
	"github.com/numerilab/numlaunch/pkg/experiment"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Mirror the experiment runner's exit status when it is the one
		// that failed.
		var childErr *experiment.ChildExitError
		if errors.As(err, &childErr) {
			os.Exit(childErr.Code)
		}
		os.Exit(1)
	}
}
