package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/numerilab/numlaunch/pkg/experiment"
)

func newRunsCmd() *cobra.Command {
	var resultsDir string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded experiment runs",
		Long:  `List the runs recorded in the results directory's registry, newest last.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := experiment.NewRegistry(resultsDir)
			records, err := registry.Load()
			if err != nil {
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling runs to JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(records) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			printHeader("%-36s  %-24s  %-10s  %-5s  %s", "ID", "EXPERIMENT", "STATUS", "EXIT", "STARTED")
			for _, rec := range records {
				fmt.Printf("%-36s  %-24s  %-10s  %-5d  %s\n",
					rec.ID, rec.ExpName, colorStatus(rec.Status), rec.ExitCode,
					rec.StartTime.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsDir, "results-dir", experiment.DefaultResultsRoot, "Directory where run artifacts are collected")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output runs in JSON format")

	return cmd
}

func colorStatus(status experiment.RunStatus) string {
	switch status {
	case experiment.RunStatusCompleted:
		return color.GreenString(string(status))
	case experiment.RunStatusFailed:
		return color.RedString(string(status))
	default:
		return color.YellowString(string(status))
	}
}
