package cmd

import (
	"github.com/spf13/cobra"

	"github.com/numerilab/numlaunch/pkg/experiment"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate an experiment config file",
		Long: `Validate an experiment config file without launching anything.
Reports every violation at once: unknown keys, enum values outside their
option set, and numeric bounds such as max_objects exceeding max_max_objects.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := experiment.LoadConfig(args[0])
			if err != nil {
				return err
			}

			printSuccess("%s is a valid experiment config (exp_name: %s)", args[0], cfg.ExpName)
			return nil
		},
	}
}
