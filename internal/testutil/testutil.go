// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/di-automata/sweepctl/internal/config"
	"github.com/di-automata/sweepctl/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Paths    *config.Paths
	Executor *system.MockExecutor
}

// NewTestEnv creates a new test environment with a mock executor
// installed as the default. The previous default is restored when the
// test ends.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()

	paths := &config.Paths{
		ConfigDir:  filepath.Join(tmpDir, "config"),
		PresetsDir: filepath.Join(tmpDir, "config", "presets"),
		StateDir:   filepath.Join(tmpDir, "state"),
	}

	for _, dir := range []string{paths.ConfigDir, paths.PresetsDir, paths.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	mock := system.NewMockExecutor()
	system.SetDefaultExecutor(mock)
	t.Cleanup(system.ResetDefaults)

	return &TestEnv{
		T:        t,
		TmpDir:   tmpDir,
		Paths:    paths,
		Executor: mock,
	}
}

// WritePreset writes a preset file into the environment's presets
// directory and returns its path.
func (env *TestEnv) WritePreset(name, content string) string {
	env.T.Helper()

	path := filepath.Join(env.Paths.PresetsDir, name+".toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.T.Fatalf("Failed to write preset %s: %v", name, err)
	}
	return path
}

// ValidExperimentTOML is a complete experiment fixture shared by tests.
const ValidExperimentTOML = `
[runner]
interpreter = "python"
script = "run.py"
repeats = 1
multirun = true
chdir = true

[training]
num_training_iter = 5000
eval_frequency = 100
llc_train = "False"
ed_train = "False"

[task]
type = "quaternion"
length = "100"
size = 600000

[model]
n_layers = 12

[optimizer]
default_lr = "1e-4,1e-5,1e-6"

[rlct]
num_chains = 10
num_draws = 100
num_steps_bw_draws = 1
train_batch_size = 64
ed_eval_frequency = 10
sgld_lr = 1e-7
sgld_weight_decay = 1e-6
`
