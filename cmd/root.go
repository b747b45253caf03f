package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootVerbose bool

// NewRootCmd builds the numlaunch command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numlaunch",
		Short: "Launch numerosity-perception experiments",
		Long: `numlaunch assembles a validated experiment configuration and starts the
external experiment runner with it, mirroring the runner's exit status.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if rootVerbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newLaunchCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
