package task

import (
	"fmt"
	"sort"
)

// Type identifies an automaton task.
type Type string

const (
	ABAB             Type = "abab"
	Adder            Type = "adder"
	Alternating      Type = "alternating"
	Cyclic           Type = "cyclic"
	Dihedral         Type = "dihedral"
	FlipFlop         Type = "flipflop"
	Gridworld        Type = "gridworld"
	Parity           Type = "parity"
	PermutationReset Type = "permutation_reset"
	Quaternion       Type = "quaternion"
	Symmetric        Type = "symmetric"
)

// Label selects which aspect of the automaton state is predicted.
// Not every task supports every label.
type Label string

const (
	LabelState      Label = "state"
	LabelParity     Label = "parity"
	LabelBoundary   Label = "boundary"
	LabelDigit      Label = "digit"
	LabelPosition   Label = "position"
	LabelToggle     Label = "toggle"
	LabelFirstChair Label = "first_chair"
)

// Spec describes one automaton task instance. Zero-valued fields take the
// task's defaults via DefaultSpec.
type Spec struct {
	Type Type

	// N is the state/group-size parameter for tasks that have one
	// (gridworld states, flipflop states, cyclic states, dihedral cycle
	// size, symmetric/alternating group size, permutation_reset group
	// size).
	N int

	// NAddends is the number of binary numbers summed by the adder task.
	NAddends int

	// NGenerators is the number of group generators for permutation_reset.
	NGenerators int

	// Label selects the prediction target for tasks that support one.
	Label Label
}

// DefaultSpec returns the Spec for a task type with the standard
// experiment defaults.
func DefaultSpec(t Type) (Spec, error) {
	switch t {
	case ABAB:
		return Spec{Type: t, Label: LabelState}, nil
	case Adder:
		return Spec{Type: t, NAddends: 2, Label: LabelState}, nil
	case Alternating, Symmetric:
		return Spec{Type: t, N: 5, Label: LabelState}, nil
	case Cyclic:
		return Spec{Type: t, N: 5}, nil
	case Dihedral:
		return Spec{Type: t, N: 4, Label: LabelState}, nil
	case FlipFlop:
		return Spec{Type: t, N: 2}, nil
	case Gridworld:
		return Spec{Type: t, N: 9, Label: LabelState}, nil
	case Parity:
		return Spec{Type: t}, nil
	case PermutationReset:
		return Spec{Type: t, N: 4, NGenerators: 2}, nil
	case Quaternion:
		return Spec{Type: t}, nil
	}
	return Spec{}, fmt.Errorf("unknown task type: %s", t)
}

// Known reports whether t names a registered task type.
func Known(t Type) bool {
	_, err := DefaultSpec(t)
	return err == nil
}

// All returns every registered task type in lexical order.
func All() []Type {
	types := []Type{
		ABAB, Adder, Alternating, Cyclic, Dihedral, FlipFlop,
		Gridworld, Parity, PermutationReset, Quaternion, Symmetric,
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// VocabSize returns the input vocabulary size of the transformer for
// this task.
func (s Spec) VocabSize() (int, error) {
	switch s.Type {
	case ABAB, Parity, Gridworld, Dihedral:
		return 2, nil
	case Adder:
		// Per-position sums range over 0..3 once carries are included.
		return 4, nil
	case FlipFlop:
		return s.N + 1, nil
	case Cyclic:
		return s.N, nil
	case Alternating, Symmetric:
		return s.N, nil
	case PermutationReset:
		// One reset action per reachable permutation plus the generators.
		return factorial(s.N) + s.NGenerators, nil
	case Quaternion:
		return 4, nil
	}
	return 0, fmt.Errorf("unknown task type: %s", s.Type)
}

// OutputVocabSize returns the output vocabulary size of the transformer
// for this task, which depends on the label type where one applies.
func (s Spec) OutputVocabSize() (int, error) {
	switch s.Type {
	case Parity:
		return 2, nil
	case Gridworld:
		switch s.Label {
		case LabelState:
			return s.N, nil
		case LabelParity, LabelBoundary:
			return 2, nil
		}
	case ABAB:
		switch s.Label {
		case LabelState:
			return 4, nil
		case LabelBoundary:
			return 2, nil
		}
	case Adder:
		switch s.Label {
		case LabelState:
			return 2 * (1<<s.NAddends - 1), nil
		case LabelDigit:
			return s.NAddends, nil
		case LabelPosition:
			return 2, nil
		}
	case FlipFlop:
		return s.N + 1, nil
	case Cyclic:
		return s.N, nil
	case Dihedral:
		switch s.Label {
		case LabelState:
			return s.N * 2, nil
		case LabelToggle:
			return 2, nil
		case LabelPosition:
			return s.N, nil
		}
	case Alternating, Symmetric:
		switch s.Label {
		case LabelState:
			return factorial(s.N), nil
		case LabelFirstChair:
			return s.N, nil
		}
	case PermutationReset:
		return factorial(s.N), nil
	case Quaternion:
		return 8, nil
	default:
		return 0, fmt.Errorf("unknown task type: %s", s.Type)
	}
	return 0, fmt.Errorf("task %s does not support label %q", s.Type, s.Label)
}

func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}
