package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/numerilab/numlaunch/pkg/experiment"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage experiment config files",
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())

	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default experiment config file",
		Long: `Write the default experiment configuration to a YAML file.
The default path is experiment.yml in the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "experiment.yml"
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := experiment.SaveConfig(path, experiment.Default()); err != nil {
				return err
			}

			printSuccess("Wrote default config to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var configFile string
	var preset string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective experiment config",
		Long: `Print the effective experiment configuration as YAML: the defaults,
or a config file or preset when one is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := experiment.Default()

			switch {
			case configFile != "":
				loaded, err := experiment.LoadConfig(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			case preset != "":
				loaded, err := experiment.LoadPreset(preset)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Experiment config file (YAML)")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "Built-in preset name")
	cmd.MarkFlagsMutuallyExclusive("config", "preset")

	return cmd
}
