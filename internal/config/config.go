// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Project values override global ones; missing files are not errors

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Backend names accepted by the backend setting.
const (
	BackendANSI      = "ansi"
	BackendTcell     = "tcell"
	BackendBubbleTea = "bubbletea"
)

// Backends lists the valid backend names.
var Backends = []string{BackendANSI, BackendTcell, BackendBubbleTea}

// ErrUnknownBackend is returned by Validate for an unrecognised backend.
var ErrUnknownBackend = errors.New("unknown backend")

// Settings holds the merged configuration.
type Settings struct {
	Backend      string `yaml:"backend,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
	Instructions *bool  `yaml:"instructions,omitempty"`
	Keys         Keys   `yaml:"keys,omitempty"`
}

// Keys holds per-widget key overrides: action name to key names.
type Keys struct {
	List   map[string][]string `yaml:"list,omitempty"`
	Editor map[string][]string `yaml:"editor,omitempty"`
}

// ShowInstructions reports whether widgets draw their key help text.
// It defaults to true.
func (s *Settings) ShowInstructions() bool {
	return s.Instructions == nil || *s.Instructions
}

// BackendOrDefault returns the configured backend, or ansi.
func (s *Settings) BackendOrDefault() string {
	if s.Backend == "" {
		return BackendANSI
	}
	return s.Backend
}

// Validate checks values that can be wrong independently of the keymap.
// Key overrides are validated when applied to a keymap.
func (s *Settings) Validate() error {
	if s.Backend != "" && !slices.Contains(Backends, s.Backend) {
		return fmt.Errorf("%w %q (want one of %v)", ErrUnknownBackend, s.Backend, Backends)
	}
	return nil
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadFiles(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

// LoadFiles merges the settings at projectPath over those at globalPath.
func LoadFiles(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; key overrides merge
// per action.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Backend != "" {
		result.Backend = project.Backend
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Instructions != nil {
		result.Instructions = project.Instructions
	}
	result.Keys.List = mergeKeys(global.Keys.List, project.Keys.List)
	result.Keys.Editor = mergeKeys(global.Keys.Editor, project.Keys.Editor)

	return &result
}

func mergeKeys(global, project map[string][]string) map[string][]string {
	if len(global) == 0 && len(project) == 0 {
		return nil
	}
	out := maps.Clone(global)
	if out == nil {
		out = make(map[string][]string, len(project))
	}
	maps.Copy(out, project)
	return out
}
