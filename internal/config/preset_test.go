package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePresetName(t *testing.T) {
	valid := []string{"baseline", "quaternion-sweep", "lr_sweep_3", "a", "0run"}
	for _, name := range valid {
		if err := ValidatePresetName(name); err != nil {
			t.Errorf("ValidatePresetName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "Baseline", "../escape", "a/b", "-leading", "_leading",
		"name with spaces", "x" + string(make([]byte, 64))}
	for _, name := range invalid {
		if err := ValidatePresetName(name); err == nil {
			t.Errorf("ValidatePresetName(%q) = nil, want error", name)
		}
	}
}

func setupPresetsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "baseline.toml"), []byte(validExperiment), 0644); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}
	return dir
}

func TestLoadPreset(t *testing.T) {
	dir := setupPresetsDir(t)

	experiment, err := LoadPreset(dir, "baseline")
	if err != nil {
		t.Fatalf("LoadPreset failed: %v", err)
	}
	if experiment.Task.Type != "quaternion" {
		t.Errorf("Task.Type = %q, want %q", experiment.Task.Type, "quaternion")
	}
}

func TestLoadPreset_NotFound(t *testing.T) {
	dir := setupPresetsDir(t)

	if _, err := LoadPreset(dir, "missing"); err == nil {
		t.Error("Expected error for missing preset, got nil")
	}
}

func TestLoadPreset_TraversalRejected(t *testing.T) {
	dir := setupPresetsDir(t)

	// Write a file outside the presets directory that a traversal would hit.
	outside := filepath.Join(filepath.Dir(dir), "outside.toml")
	if err := os.WriteFile(outside, []byte(validExperiment), 0644); err != nil {
		t.Fatalf("Failed to write outside file: %v", err)
	}

	if _, err := LoadPreset(dir, "../outside"); err == nil {
		t.Error("Expected error for path traversal, got nil")
	}
}

func TestPresetExists(t *testing.T) {
	dir := setupPresetsDir(t)

	if !PresetExists(dir, "baseline") {
		t.Error("PresetExists should be true for existing preset")
	}
	if PresetExists(dir, "missing") {
		t.Error("PresetExists should be false for missing preset")
	}
	if PresetExists(dir, "../baseline") {
		t.Error("PresetExists should be false for invalid name")
	}
}

func TestListPresets(t *testing.T) {
	dir := setupPresetsDir(t)

	// An invalid preset is skipped, not an error.
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("not [toml"), 0644); err != nil {
		t.Fatalf("Failed to write broken preset: %v", err)
	}
	// Non-TOML files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write notes file: %v", err)
	}

	names, err := ListPresets(dir)
	if err != nil {
		t.Fatalf("ListPresets failed: %v", err)
	}
	if len(names) != 1 || names[0] != "baseline" {
		t.Errorf("ListPresets = %v, want [baseline]", names)
	}
}

func TestListPresets_MissingDir(t *testing.T) {
	names, err := ListPresets(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ListPresets failed: %v", err)
	}
	if names != nil {
		t.Errorf("ListPresets = %v, want nil for missing directory", names)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")

	paths := DefaultPaths()

	if paths.ConfigDir != "/tmp/xdg-config/sweepctl" {
		t.Errorf("ConfigDir = %q, want %q", paths.ConfigDir, "/tmp/xdg-config/sweepctl")
	}
	if paths.PresetsDir != filepath.Join(paths.ConfigDir, "presets") {
		t.Errorf("PresetsDir = %q, want %q", paths.PresetsDir, filepath.Join(paths.ConfigDir, "presets"))
	}
	if paths.StateDir != "/tmp/xdg-state/sweepctl" {
		t.Errorf("StateDir = %q, want %q", paths.StateDir, "/tmp/xdg-state/sweepctl")
	}
}
