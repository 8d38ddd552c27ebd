// Package tui provides terminal user interface components for sweepctl
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/di-automata/sweepctl/internal/config"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionLaunch
	ActionPreview
	ActionQuit
)

// PresetEntry pairs a preset name with its loaded experiment.
type PresetEntry struct {
	Name       string
	Experiment *config.Experiment
}

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Preset string
}

// presetItem implements list.Item for preset display
type presetItem struct {
	entry PresetEntry
}

func (i presetItem) Title() string {
	return i.entry.Name
}

func (i presetItem) Description() string {
	e := i.entry.Experiment
	return fmt.Sprintf("%s | lr %s | %d iters | %d layers | seqlen %s | x%d",
		truncateAxis(e.Task.Type, 24),
		truncateAxis(e.Optimizer.DefaultLR, 24),
		e.Training.NumTrainingIter,
		e.Model.NLayers,
		e.Task.Length,
		e.Runner.Repeats,
	)
}

func (i presetItem) FilterValue() string {
	return i.entry.Name
}

// truncateAxis shortens long sweep-axis strings for display only.
func truncateAxis(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen-3] + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the preset picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new preset picker
func NewPicker(entries []PresetEntry) Model {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = presetItem{entry: entry}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "sweepctl - Select Preset"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				m.result = PickerResult{
					Action: ActionLaunch,
					Preset: item.entry.Name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "p":
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				m.result = PickerResult{
					Action: ActionPreview,
					Preset: item.entry.Name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Launch  [p] Preview  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive preset picker
func RunPicker(entries []PresetEntry) (PickerResult, error) {
	if len(entries) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(entries)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimpleList is a non-interactive fallback that renders the presets.
func SimpleList(entries []PresetEntry) string {
	var sb strings.Builder

	sb.WriteString("sweepctl - Presets\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(entries) == 0 {
		sb.WriteString("No presets found.\n")
		sb.WriteString("Add TOML experiment files to the presets directory.\n")
		return sb.String()
	}

	for i, entry := range entries {
		e := entry.Experiment
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, entry.Name))
		sb.WriteString(fmt.Sprintf("   Task: %s | LR: %s | Iterations: %d | Repeats: %d\n\n",
			e.Task.Type, e.Optimizer.DefaultLR, e.Training.NumTrainingIter, e.Runner.Repeats))
	}

	return sb.String()
}
