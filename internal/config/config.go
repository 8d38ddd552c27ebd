package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/di-automata/sweepctl/internal/task"
)

// ModelType is the architecture identifier passed through to run names.
const ModelType = "NANO_GPT"

// Runner configures how the training entry point is invoked.
type Runner struct {
	Interpreter string `toml:"interpreter"`
	Script      string `toml:"script"`
	Multirun    bool   `toml:"multirun"`
	Chdir       bool   `toml:"chdir"`
	Repeats     int    `toml:"repeats"`
}

// Training holds the top-level training overrides.
// LLCTrain and EDTrain are pass-through flag strings ("True"/"False"),
// forwarded to the training process verbatim.
type Training struct {
	NumTrainingIter int    `toml:"num_training_iter"`
	EvalFrequency   int    `toml:"eval_frequency"`
	LLCTrain        string `toml:"llc_train"`
	EDTrain         string `toml:"ed_train"`
}

// Task selects the automaton task. Type and Length are opaque strings so
// that comma-joined sweep axes pass through unmodified.
type Task struct {
	Type   string `toml:"type"`
	Length string `toml:"length"`
	Size   int    `toml:"size"`
}

// Model holds the architecture overrides.
type Model struct {
	NLayers int `toml:"n_layers"`
}

// Optimizer holds the optimizer overrides. DefaultLR is an opaque string
// and typically a comma-joined sweep axis.
type Optimizer struct {
	DefaultLR string `toml:"default_lr"`
}

// RLCT holds the sampling hyperparameters for the RLCT estimator.
type RLCT struct {
	NumChains       int     `toml:"num_chains"`
	NumDraws        int     `toml:"num_draws"`
	NumStepsBwDraws int     `toml:"num_steps_bw_draws"`
	TrainBatchSize  int     `toml:"train_batch_size"`
	EDEvalFrequency int     `toml:"ed_eval_frequency"`
	SGLDLr          float64 `toml:"sgld_lr"`
	SGLDWeightDecay float64 `toml:"sgld_weight_decay"`
}

// Experiment is the full launcher configuration. It is immutable after
// Load returns: defaults are applied, fields validated, and derived
// values computed exactly once.
type Experiment struct {
	Runner    Runner    `toml:"runner"`
	Training  Training  `toml:"training"`
	Task      Task      `toml:"task"`
	Model     Model     `toml:"model"`
	Optimizer Optimizer `toml:"optimizer"`
	RLCT      RLCT      `toml:"rlct"`

	// Extra holds additional override tokens appended verbatim after the
	// configured ones (e.g. from --set flags). Each entry is a complete
	// key=value token.
	Extra []string `toml:"-"`

	// Derived fields, computed by derive.
	RunName    string `toml:"-"`
	NumEpochs  int    `toml:"-"`
	NumSamples int    `toml:"-"`
}

// applyDefaults fills zero values with the standard experiment defaults.
func (e *Experiment) applyDefaults() {
	if e.Runner.Interpreter == "" {
		e.Runner.Interpreter = "python"
	}
	if e.Runner.Script == "" {
		e.Runner.Script = "run.py"
	}
	if e.Runner.Repeats == 0 {
		e.Runner.Repeats = 1
	}
	if e.Training.LLCTrain == "" {
		e.Training.LLCTrain = "False"
	}
	if e.Training.EDTrain == "" {
		e.Training.EDTrain = "False"
	}
	if e.Task.Size == 0 {
		e.Task.Size = 600000
	}
	if e.RLCT.NumStepsBwDraws == 0 {
		e.RLCT.NumStepsBwDraws = 1
	}
	if e.RLCT.TrainBatchSize == 0 {
		e.RLCT.TrainBatchSize = 64
	}
	if e.RLCT.SGLDWeightDecay == 0 {
		e.RLCT.SGLDWeightDecay = 1e-6
	}
	// Evaluations default to once per pass over the dataset.
	if e.Training.EvalFrequency == 0 {
		e.Training.EvalFrequency = e.Task.Size
	}
}

// Validate checks the structured fields. Pass-through string fields
// (task type, length, learning rates, flag strings) are deliberately not
// inspected: the training process owns their interpretation.
func (e *Experiment) Validate() error {
	if e.Runner.Interpreter == "" {
		return fmt.Errorf("runner.interpreter is required")
	}
	if e.Runner.Script == "" {
		return fmt.Errorf("runner.script is required")
	}
	if e.Runner.Repeats < 1 {
		return fmt.Errorf("runner.repeats must be at least 1 (got %d)", e.Runner.Repeats)
	}
	if e.Training.NumTrainingIter <= 0 {
		return fmt.Errorf("training.num_training_iter must be positive (got %d)", e.Training.NumTrainingIter)
	}
	if e.Training.EvalFrequency <= 0 {
		return fmt.Errorf("training.eval_frequency must be positive (got %d)", e.Training.EvalFrequency)
	}
	if e.Task.Type == "" {
		return fmt.Errorf("task.type is required")
	}
	if e.Task.Length == "" {
		return fmt.Errorf("task.length is required")
	}
	if e.Model.NLayers <= 0 {
		return fmt.Errorf("model.n_layers must be positive (got %d)", e.Model.NLayers)
	}
	if e.Optimizer.DefaultLR == "" {
		return fmt.Errorf("optimizer.default_lr is required")
	}
	if e.RLCT.NumChains <= 0 {
		return fmt.Errorf("rlct.num_chains must be positive (got %d)", e.RLCT.NumChains)
	}
	if e.RLCT.NumDraws <= 0 {
		return fmt.Errorf("rlct.num_draws must be positive (got %d)", e.RLCT.NumDraws)
	}
	if e.RLCT.EDEvalFrequency <= 0 {
		return fmt.Errorf("rlct.ed_eval_frequency must be positive (got %d)", e.RLCT.EDEvalFrequency)
	}
	if e.RLCT.SGLDLr <= 0 {
		return fmt.Errorf("rlct.sgld_lr must be positive (got %g)", e.RLCT.SGLDLr)
	}
	if e.RLCT.SGLDWeightDecay < 0 {
		return fmt.Errorf("rlct.sgld_weight_decay must not be negative (got %g)", e.RLCT.SGLDWeightDecay)
	}
	return nil
}

// derive computes the run name, epoch count, and sample bound.
func (e *Experiment) derive() {
	e.RunName = fmt.Sprintf("%s_%s_LR%s_its%d_layers%d_seqlen%s",
		e.Task.Type, ModelType, e.Optimizer.DefaultLR,
		e.Training.NumTrainingIter, e.Model.NLayers, e.Task.Length)

	e.NumEpochs = (e.Training.NumTrainingIter + e.Training.EvalFrequency - 1) / e.Training.EvalFrequency

	// Total unique samples seen during RLCT sampling: the draw-based bound,
	// capped by the number of distinct sequences when the task and length
	// pin it down. A sweep axis in either field leaves the cap off.
	drawBound := e.RLCT.NumDraws * e.RLCT.NumStepsBwDraws * e.RLCT.TrainBatchSize
	e.NumSamples = drawBound

	spec, err := task.DefaultSpec(task.Type(e.Task.Type))
	if err != nil {
		return
	}
	length, err := strconv.Atoi(e.Task.Length)
	if err != nil {
		return
	}
	vocab, err := spec.VocabSize()
	if err != nil {
		return
	}

	sequenceBound := math.Pow(float64(vocab), float64(length))
	if sequenceBound < float64(drawBound) {
		e.NumSamples = int(sequenceBound)
	}
}

// FormatFloat renders a float the way it appears on the command line:
// the shortest representation that round-trips.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Load reads, validates, and derives an experiment configuration from a
// TOML file.
func Load(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment config: %w", err)
	}

	// Multirun and chdir default to true. Seeding them before the decode
	// means an absent key keeps the default while an explicit false wins.
	experiment := Experiment{
		Runner: Runner{Multirun: true, Chdir: true},
	}
	if err := toml.Unmarshal(data, &experiment); err != nil {
		return nil, fmt.Errorf("failed to parse experiment config %s: %w", filepath.Base(path), err)
	}

	experiment.applyDefaults()

	if err := experiment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment config %s: %w", filepath.Base(path), err)
	}

	experiment.derive()

	return &experiment, nil
}

// TaskTypes splits a task selection into its swept values. This is a
// read-only convenience for display; the launch path never uses it.
func (e *Experiment) TaskTypes() []string {
	parts := strings.Split(e.Task.Type, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
