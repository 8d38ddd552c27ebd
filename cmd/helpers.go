package cmd

import (
	"path/filepath"

	"github.com/di-automata/sweepctl/internal/config"
	"github.com/di-automata/sweepctl/internal/errors"
)

// paths returns the path configuration, honoring the directory overrides.
func paths() *config.Paths {
	p := config.DefaultPaths()
	if configDir != "" {
		p.ConfigDir = configDir
		p.PresetsDir = filepath.Join(configDir, "presets")
	}
	if stateDir != "" {
		p.StateDir = stateDir
	}
	return p
}

// loadExperiment resolves an experiment from either an explicit config
// file path or a named preset, then applies command-line overrides.
func loadExperiment(configPath string, args, extras []string, repeats int) (*config.Experiment, error) {
	var (
		experiment *config.Experiment
		err        error
	)

	switch {
	case configPath != "":
		experiment, err = config.Load(configPath)
		if err != nil {
			return nil, errors.ConfigError("failed to load experiment config", err)
		}
	case len(args) > 0:
		name := args[0]
		if !config.PresetExists(paths().PresetsDir, name) {
			return nil, errors.PresetNotFound(name)
		}
		experiment, err = config.LoadPreset(paths().PresetsDir, name)
		if err != nil {
			return nil, errors.ConfigError("failed to load preset", err)
		}
	default:
		return nil, errors.ValidationError("specify a preset name or --config <file>")
	}

	experiment.Extra = extras

	if repeats > 0 {
		experiment.Runner.Repeats = repeats
	}
	if err := experiment.Validate(); err != nil {
		return nil, errors.ConfigError("invalid experiment", err)
	}

	return experiment, nil
}

// loadPresetEntries loads every valid preset for listing and picking.
func loadPresetEntries() ([]presetEntry, error) {
	presetsDir := paths().PresetsDir

	names, err := config.ListPresets(presetsDir)
	if err != nil {
		return nil, errors.ConfigError("failed to list presets", err)
	}

	var entries []presetEntry
	for _, name := range names {
		experiment, err := config.LoadPreset(presetsDir, name)
		if err != nil {
			continue
		}
		entries = append(entries, presetEntry{name: name, experiment: experiment})
	}

	return entries, nil
}

type presetEntry struct {
	name       string
	experiment *config.Experiment
}
