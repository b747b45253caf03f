package experiment

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/numerilab/numlaunch/pkg/exec"
)

var log = logrus.WithField("component", "launcher")

// Launcher starts one experiment runner process for a validated
// configuration and waits for it to finish. It performs no retries and no
// interpretation of the child's failure semantics; those belong to the
// runner.
type Launcher struct {
	Executor    exec.CommandExecutor
	Interpreter string
	Script      string
	ResultsRoot string
	Registry    *Registry

	// Stdout and Stderr receive the child's output in addition to the
	// run.log capture. They default to the launcher process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// NewLauncher creates a launcher with the production executor and default
// interpreter, script and results locations.
func NewLauncher() *Launcher {
	return &Launcher{
		Executor:    &exec.RealCommandExecutor{},
		Interpreter: "python3",
		Script:      "run_experiment.py",
		ResultsRoot: DefaultResultsRoot,
	}
}

// Launch validates cfg, spawns the runner and blocks until it exits.
// It returns nil on a zero exit, *ChildExitError when the child fails, and
// *LaunchError when the child cannot be started at all. Preconditions are
// checked before the run directory is created, so a failed launch leaves no
// partial artifacts behind.
func (l *Launcher) Launch(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid experiment config: %w", err)
	}

	interpreter, err := l.Executor.LookPath(l.Interpreter)
	if err != nil {
		return &LaunchError{Target: l.Interpreter, Err: err}
	}

	if _, err := os.Stat(l.Script); err != nil {
		return &LaunchError{Target: l.Script, Err: err}
	}

	runDir, err := EnsureRunDir(l.ResultsRoot, cfg.ExpName)
	if err != nil {
		return err
	}

	if err := CreateLockFile(runDir, os.Getpid()); err != nil {
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	defer RemoveLockFile(runDir)

	logFile, err := os.Create(RunLogPath(runDir))
	if err != nil {
		return fmt.Errorf("creating run log: %w", err)
	}
	defer logFile.Close()

	stdout := l.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := l.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	rec := RunRecord{
		ID:        uuid.NewString(),
		ExpName:   cfg.ExpName,
		Status:    RunStatusRunning,
		StartTime: time.Now(),
		Config:    cfg,
	}
	if l.Registry != nil {
		if err := l.Registry.Append(rec); err != nil {
			log.WithError(err).Warn("Failed to record run start")
		}
	}

	args := append([]string{l.Script}, cfg.Args()...)
	log.WithFields(logrus.Fields{
		"run_id":      rec.ID,
		"exp_name":    cfg.ExpName,
		"interpreter": interpreter,
		"script":      l.Script,
	}).Info("Launching experiment runner")

	code, runErr := l.Executor.Run(ctx,
		"",
		io.MultiWriter(stdout, logFile),
		io.MultiWriter(stderr, logFile),
		interpreter, args...)

	if l.Registry != nil {
		exitCode := code
		if runErr != nil {
			exitCode = -1
		}
		if err := l.Registry.Complete(rec.ID, exitCode); err != nil {
			log.WithError(err).Warn("Failed to record run completion")
		}
	}

	if runErr != nil {
		return fmt.Errorf("running experiment: %w", runErr)
	}
	if code != 0 {
		log.WithFields(logrus.Fields{
			"run_id":    rec.ID,
			"exit_code": code,
		}).Error("Experiment runner failed")
		return &ChildExitError{Code: code}
	}

	log.WithField("run_id", rec.ID).Info("Experiment runner completed")
	return nil
}
