package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/numerilab/numlaunch/pkg/experiment"
)

var (
	presetNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	presetDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in experiment presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printHeader("Built-in presets")
			for _, name := range experiment.PresetNames() {
				cfg := experiment.Presets[name]
				summary := fmt.Sprintf("%s/%s, %s, %s, objects %d to %d, %d iterations",
					cfg.Topology, cfg.Task, cfg.Observation, cfg.ExternalReprTool,
					cfg.MaxObjects, cfg.MaxMaxObjects, cfg.NumIterations)
				fmt.Printf("  %s  %s\n", presetNameStyle.Render(fmt.Sprintf("%-24s", name)), presetDimStyle.Render(summary))
			}
			return nil
		},
	}
}
