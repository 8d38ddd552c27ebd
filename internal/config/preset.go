package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// presetNameRegex validates preset names.
// Names must start with a lowercase letter or digit, followed by lowercase
// letters, digits, underscores, or hyphens. Maximum length is 63 characters.
var presetNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidatePresetName checks if a preset name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators or special characters
func ValidatePresetName(name string) error {
	if name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}

	if !presetNameRegex.MatchString(name) {
		return fmt.Errorf("invalid preset name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// Paths holds the configured directories.
type Paths struct {
	ConfigDir  string
	PresetsDir string
	StateDir   string
}

// DefaultPaths returns the default path configuration, rooted at the
// user's config and state directories.
func DefaultPaths() *Paths {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}

	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".local", "state")
	}

	configDir = filepath.Join(configDir, "sweepctl")
	return &Paths{
		ConfigDir:  configDir,
		PresetsDir: filepath.Join(configDir, "presets"),
		StateDir:   filepath.Join(stateDir, "sweepctl"),
	}
}

// presetPath resolves a preset name to its file path, confined to the
// presets directory.
func presetPath(presetsDir, name string) (string, error) {
	if err := ValidatePresetName(name); err != nil {
		return "", err
	}
	return securejoin.SecureJoin(presetsDir, name+".toml")
}

// LoadPreset loads a named experiment preset from the presets directory.
func LoadPreset(presetsDir, name string) (*Experiment, error) {
	path, err := presetPath(presetsDir, name)
	if err != nil {
		return nil, fmt.Errorf("invalid preset name: %w", err)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("preset %s not found: %w", name, err)
	}

	return Load(path)
}

// PresetExists checks if a named preset exists.
func PresetExists(presetsDir, name string) bool {
	path, err := presetPath(presetsDir, name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// ListPresets returns the names of all loadable presets, in directory order.
func ListPresets(presetsDir string) ([]string, error) {
	entries, err := os.ReadDir(presetsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read presets directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")
		if _, err := LoadPreset(presetsDir, name); err != nil {
			continue // Skip invalid presets
		}
		names = append(names, name)
	}

	return names, nil
}
