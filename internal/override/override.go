package override

import (
	"strconv"

	"github.com/di-automata/sweepctl/internal/config"
)

// Token is a single key=value override on the training command line.
type Token struct {
	Key   string
	Value string

	// ForceAdd emits the token with a "++" prefix, which tells the
	// configuration engine to add the key even if the base config does
	// not declare it.
	ForceAdd bool
}

// String renders the token as it appears on the command line.
func (t Token) String() string {
	if t.ForceAdd {
		return "++" + t.Key + "=" + t.Value
	}
	return t.Key + "=" + t.Value
}

// Tokens assembles the override tokens for an experiment, in the order
// the training command line expects. Values are emitted verbatim:
// comma-joined sweep axes are never split or re-joined here, the
// multirun engine owns their expansion.
func Tokens(e *config.Experiment) []Token {
	tokens := []Token{
		{Key: "num_training_iter", Value: strconv.Itoa(e.Training.NumTrainingIter)},
		{Key: "optimizer_config.default_lr", Value: e.Optimizer.DefaultLR},
		{Key: "eval_frequency", Value: strconv.Itoa(e.Training.EvalFrequency)},
		{Key: "task_config", Value: e.Task.Type},
		{Key: "task_config.length", Value: e.Task.Length, ForceAdd: true},
		{Key: "nano_gpt_config.n_layers", Value: strconv.Itoa(e.Model.NLayers)},
		{Key: "rlct_config.num_chains", Value: strconv.Itoa(e.RLCT.NumChains)},
		{Key: "rlct_config.ed_config.eval_frequency", Value: strconv.Itoa(e.RLCT.EDEvalFrequency)},
		{Key: "rlct_config.sgld_kwargs.lr", Value: config.FormatFloat(e.RLCT.SGLDLr)},
		{Key: "rlct_config.sgld_kwargs.weight_decay", Value: config.FormatFloat(e.RLCT.SGLDWeightDecay)},
		{Key: "llc_train", Value: e.Training.LLCTrain},
		{Key: "ed_train", Value: e.Training.EDTrain},
		{Key: "rlct_config.num_draws", Value: strconv.Itoa(e.RLCT.NumDraws)},
	}
	return tokens
}

// Args builds the complete argument list for the interpreter: the script,
// the multirun flag, every override token, any extra tokens, and the
// per-run working-directory setting.
func Args(e *config.Experiment) []string {
	args := []string{e.Runner.Script}
	if e.Runner.Multirun {
		args = append(args, "-m")
	}

	for _, token := range Tokens(e) {
		args = append(args, token.String())
	}

	args = append(args, e.Extra...)

	if e.Runner.Chdir {
		args = append(args, "hydra.job.chdir=True")
	}

	return args
}
