package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/di-automata/sweepctl/internal/config"
)

func testEntries() []PresetEntry {
	return []PresetEntry{
		{
			Name: "baseline",
			Experiment: &config.Experiment{
				Runner:    config.Runner{Repeats: 1},
				Training:  config.Training{NumTrainingIter: 5000},
				Task:      config.Task{Type: "quaternion", Length: "100"},
				Model:     config.Model{NLayers: 12},
				Optimizer: config.Optimizer{DefaultLR: "1e-4,1e-5,1e-6"},
			},
		},
		{
			Name: "parity-short",
			Experiment: &config.Experiment{
				Runner:    config.Runner{Repeats: 3},
				Training:  config.Training{NumTrainingIter: 1000},
				Task:      config.Task{Type: "parity", Length: "20"},
				Model:     config.Model{NLayers: 4},
				Optimizer: config.Optimizer{DefaultLR: "1e-3"},
			},
		},
	}
}

func TestPresetItem(t *testing.T) {
	item := presetItem{entry: testEntries()[0]}

	if item.Title() != "baseline" {
		t.Errorf("Title() = %q, want %q", item.Title(), "baseline")
	}
	if item.FilterValue() != "baseline" {
		t.Errorf("FilterValue() = %q, want %q", item.FilterValue(), "baseline")
	}

	desc := item.Description()
	for _, want := range []string{"quaternion", "5000 iters", "12 layers", "seqlen 100", "x1"} {
		if !strings.Contains(desc, want) {
			t.Errorf("Description() = %q, missing %q", desc, want)
		}
	}
}

func TestTruncateAxis(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"parity", 10, "parity"},
		{"1e-4,1e-5,1e-6,1e-7", 10, "1e-4,1e..."},
	}

	for _, tt := range tests {
		if got := truncateAxis(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncateAxis(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestPicker_Enter(t *testing.T) {
	m := NewPicker(testEntries())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := updated.(Model).Result()

	if result.Action != ActionLaunch {
		t.Errorf("Action = %d, want ActionLaunch", result.Action)
	}
	if result.Preset != "baseline" {
		t.Errorf("Preset = %q, want %q", result.Preset, "baseline")
	}
}

func TestPicker_Preview(t *testing.T) {
	m := NewPicker(testEntries())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	result := updated.(Model).Result()

	if result.Action != ActionPreview {
		t.Errorf("Action = %d, want ActionPreview", result.Action)
	}
}

func TestPicker_Quit(t *testing.T) {
	m := NewPicker(testEntries())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	result := updated.(Model).Result()

	if result.Action != ActionQuit {
		t.Errorf("Action = %d, want ActionQuit", result.Action)
	}
}

func TestPicker_ViewAfterQuit(t *testing.T) {
	m := NewPicker(testEntries())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if view := updated.(Model).View(); view != "" {
		t.Errorf("View() after quit = %q, want empty", view)
	}
}

func TestRunPicker_Empty(t *testing.T) {
	result, err := RunPicker(nil)
	if err != nil {
		t.Fatalf("RunPicker failed: %v", err)
	}
	if result.Action != ActionQuit {
		t.Errorf("Action = %d, want ActionQuit for empty entries", result.Action)
	}
}

func TestSimpleList(t *testing.T) {
	out := SimpleList(testEntries())

	for _, want := range []string{"baseline", "parity-short", "quaternion", "1e-4,1e-5,1e-6"} {
		if !strings.Contains(out, want) {
			t.Errorf("SimpleList output missing %q", want)
		}
	}
}

func TestSimpleList_Empty(t *testing.T) {
	out := SimpleList(nil)
	if !strings.Contains(out, "No presets found") {
		t.Errorf("SimpleList output = %q, want empty-state message", out)
	}
}
