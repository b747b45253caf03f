package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numerilab/numlaunch/pkg/experiment"
)

// dryRunConfig executes "launch --dry-run" with the given extra arguments
// and parses the printed child invocation back into a Config.
func dryRunConfig(t *testing.T, extraArgs ...string) experiment.Config {
	t.Helper()

	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"launch", "--dry-run"}, extraArgs...))

	require.NoError(t, root.Execute())

	fields := strings.Fields(out.String())
	require.GreaterOrEqual(t, len(fields), 2, "dry-run output should start with interpreter and script")

	cfg, err := experiment.ParseArgs(fields[2:])
	require.NoError(t, err)
	return cfg
}

func TestLaunchDryRunDefaults(t *testing.T) {
	cfg := dryRunConfig(t)
	assert.Equal(t, experiment.Default(), cfg)
}

func TestLaunchDryRunPreset(t *testing.T) {
	cfg := dryRunConfig(t, "--preset", "multi_baseline")

	assert.Equal(t, experiment.TopologyMulti, cfg.Topology)
	assert.False(t, cfg.CurriculumLearning)
	assert.Equal(t, "multi_baseline", cfg.ExpName)
}

func TestLaunchDryRunFlagOverrides(t *testing.T) {
	cfg := dryRunConfig(t,
		"--preset", "multi_baseline",
		"--num-iterations", "5000",
		"--exp-name", "multi_quick",
		"--obs-ext-shape", "4x4",
	)

	// Preset values survive except where flags override them.
	assert.Equal(t, experiment.TopologyMulti, cfg.Topology)
	assert.Equal(t, 5000, cfg.NumIterations)
	assert.Equal(t, "multi_quick", cfg.ExpName)
	assert.Equal(t, experiment.Shape{Rows: 4, Cols: 4}, cfg.ObsExtShape)
}

func TestLaunchDryRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yml")
	content := "exp_name: from_file\nobservation: spatial\nobs_ext_shape: 6x6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := dryRunConfig(t, "--config", path)

	assert.Equal(t, "from_file", cfg.ExpName)
	assert.Equal(t, experiment.ObservationSpatial, cfg.Observation)
}

func TestLaunchRejectsInvalidOverride(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"launch", "--dry-run", "--max-objects", "20"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_max_objects")
}

func TestLaunchRejectsConflictingSources(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"launch", "--dry-run", "--preset", "temporal_1", "--config", "x.yml"})

	assert.Error(t, root.Execute())
}

func TestLaunchUnknownPreset(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"launch", "--dry-run", "--preset", "imaginary"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}
