package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/numerilab/numlaunch/pkg/experiment"
)

type launchOptions struct {
	configFile  string
	preset      string
	interactive bool
	dryRun      bool
	python      string
	script      string
	resultsDir  string

	// Per-field overrides, applied on top of the config file or preset.
	topology   string
	task       string
	tool       string
	observe    string
	maxObjects int
	maxMax     int
	curriculum bool
	iterations int
	shape      string
	expName    string
}

func newLaunchCmd() *cobra.Command {
	opts := &launchOptions{}

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch an experiment run",
		Long: `Launch one experiment run.

The configuration is built from defaults, then a config file or preset if
given, then any per-field flags. It is validated before anything is spawned.
The command blocks until the runner exits and mirrors its exit code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Experiment config file (YAML)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Built-in preset to start from")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Pick a preset interactively")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the runner invocation without spawning it")
	cmd.Flags().StringVar(&opts.python, "python", "python3", "Python interpreter to run the experiment with")
	cmd.Flags().StringVar(&opts.script, "script", "run_experiment.py", "Path to the experiment runner script")
	cmd.Flags().StringVar(&opts.resultsDir, "results-dir", experiment.DefaultResultsRoot, "Directory where run artifacts are collected")

	cmd.Flags().StringVar(&opts.topology, "single-or-multi-agent", "", "Agent topology (single or multi)")
	cmd.Flags().StringVar(&opts.task, "task", "", "Task type, e.g. classify")
	cmd.Flags().StringVar(&opts.tool, "external-repr-tool", "", "External representation tool (MoveAndWrite, WriteCoord, Abacus)")
	cmd.Flags().StringVar(&opts.observe, "observation", "", "Presentation modality (spatial or temporal)")
	cmd.Flags().IntVar(&opts.maxObjects, "max-objects", 0, "Starting object count")
	cmd.Flags().IntVar(&opts.maxMax, "max-max-objects", 0, "Ceiling for curriculum-driven object count growth")
	cmd.Flags().BoolVar(&opts.curriculum, "curriculum-learning", false, "Enable progressive difficulty increase")
	cmd.Flags().IntVar(&opts.iterations, "num-iterations", 0, "Total training iteration budget")
	cmd.Flags().StringVar(&opts.shape, "obs-ext-shape", "", "Observation/tool shape as ROWSxCOLS, e.g. 10x1")
	cmd.Flags().StringVar(&opts.expName, "exp-name", "", "Name of the output subfolder for results")

	cmd.MarkFlagsMutuallyExclusive("config", "preset", "interactive")

	return cmd
}

// buildLaunchConfig resolves the effective configuration for a launch:
// defaults, then config file or preset, then flag overrides.
func buildLaunchConfig(cmd *cobra.Command, opts *launchOptions) (experiment.Config, error) {
	cfg := experiment.Default()

	switch {
	case opts.configFile != "":
		loaded, err := experiment.LoadConfig(opts.configFile)
		if err != nil {
			return experiment.Config{}, err
		}
		cfg = loaded
	case opts.preset != "":
		loaded, err := experiment.LoadPreset(opts.preset)
		if err != nil {
			return experiment.Config{}, err
		}
		cfg = loaded
	case opts.interactive:
		name, err := runPresetPickerTUI()
		if err != nil {
			return experiment.Config{}, err
		}
		loaded, err := experiment.LoadPreset(name)
		if err != nil {
			return experiment.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("single-or-multi-agent") {
		cfg.Topology = experiment.AgentTopology(opts.topology)
	}
	if flags.Changed("task") {
		cfg.Task = opts.task
	}
	if flags.Changed("external-repr-tool") {
		cfg.ExternalReprTool = experiment.ReprTool(opts.tool)
	}
	if flags.Changed("observation") {
		cfg.Observation = experiment.Observation(opts.observe)
	}
	if flags.Changed("max-objects") {
		cfg.MaxObjects = opts.maxObjects
	}
	if flags.Changed("max-max-objects") {
		cfg.MaxMaxObjects = opts.maxMax
	}
	if flags.Changed("curriculum-learning") {
		cfg.CurriculumLearning = opts.curriculum
	}
	if flags.Changed("num-iterations") {
		cfg.NumIterations = opts.iterations
	}
	if flags.Changed("obs-ext-shape") {
		shape, err := experiment.ParseShape(opts.shape)
		if err != nil {
			return experiment.Config{}, err
		}
		cfg.ObsExtShape = shape
	}
	if flags.Changed("exp-name") {
		cfg.ExpName = opts.expName
	}

	if err := cfg.Validate(); err != nil {
		return experiment.Config{}, err
	}
	return cfg, nil
}

func runLaunch(cmd *cobra.Command, opts *launchOptions) error {
	cfg, err := buildLaunchConfig(cmd, opts)
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", opts.python, opts.script, strings.Join(cfg.Args(), " "))
		return nil
	}

	launcher := experiment.NewLauncher()
	launcher.Interpreter = opts.python
	launcher.Script = opts.script
	launcher.ResultsRoot = opts.resultsDir
	launcher.Registry = experiment.NewRegistry(opts.resultsDir)

	// Forward interrupt and terminate to the child by cancelling its context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := launcher.Launch(ctx, cfg); err != nil {
		return err
	}

	printSuccess("Experiment %s completed. Results in %s", cfg.ExpName, experiment.RunDir(opts.resultsDir, cfg.ExpName))
	return nil
}
