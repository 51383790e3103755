// ABOUTME: Tests for config loading, merging and validation
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Backend: "tcell", LogLevel: "debug", Instructions: boolPtr(false)}
	project := &Settings{Backend: "bubbletea"}

	result := merge(global, project)

	if result.Backend != "bubbletea" {
		t.Errorf("Backend = %q, want %q", result.Backend, "bubbletea")
	}
	if result.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", result.LogLevel, "debug")
	}
	if result.ShowInstructions() {
		t.Error("ShowInstructions() = true, want global false kept")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
	if result.Keys.List != nil || result.Keys.Editor != nil {
		t.Errorf("merge(nil, nil) keys = %+v, want empty", result.Keys)
	}
}

func TestMerge_KeysPerAction(t *testing.T) {
	t.Parallel()

	global := &Settings{Keys: Keys{List: map[string][]string{
		"up":   {"up", "w"},
		"down": {"down", "s"},
	}}}
	project := &Settings{Keys: Keys{
		List:   map[string][]string{"down": {"ctrl+n"}},
		Editor: map[string][]string{"accept": {"tab"}},
	}}

	result := merge(global, project)

	if got := result.Keys.List["up"]; !slices.Equal(got, []string{"up", "w"}) {
		t.Errorf("list up = %v, want global value", got)
	}
	if got := result.Keys.List["down"]; !slices.Equal(got, []string{"ctrl+n"}) {
		t.Errorf("list down = %v, want project value", got)
	}
	if got := result.Keys.Editor["accept"]; !slices.Equal(got, []string{"tab"}) {
		t.Errorf("editor accept = %v", got)
	}
	if _, ok := global.Keys.List["down"]; !ok || len(global.Keys.List["down"]) != 2 {
		t.Error("merge mutated the global map")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if s == nil {
		t.Fatal("expected zero Settings, got nil")
	}
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	global := writeFile(t, dir, "config.yaml", `
backend: tcell
log_level: warn
keys:
  list:
    up: [up, w]
`)
	project := writeFile(t, dir, ".termform.yaml", `
backend: ansi
instructions: false
keys:
  editor:
    cancel: [escape]
`)

	s, err := LoadFiles(global, project)
	if err != nil {
		t.Fatalf("LoadFiles() error: %v", err)
	}
	if s.Backend != BackendANSI {
		t.Errorf("Backend = %q, want project value", s.Backend)
	}
	if s.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want global value", s.LogLevel)
	}
	if s.ShowInstructions() {
		t.Error("ShowInstructions() = true, want false")
	}
	if got := s.Keys.List["up"]; !slices.Equal(got, []string{"up", "w"}) {
		t.Errorf("list up = %v", got)
	}
	if got := s.Keys.Editor["cancel"]; !slices.Equal(got, []string{"escape"}) {
		t.Errorf("editor cancel = %v", got)
	}
}

func TestLoadFiles_MissingFilesAreDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := LoadFiles(filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml"))
	if err != nil {
		t.Fatalf("LoadFiles() error: %v", err)
	}
	if s.BackendOrDefault() != BackendANSI {
		t.Errorf("BackendOrDefault() = %q", s.BackendOrDefault())
	}
	if !s.ShowInstructions() {
		t.Error("ShowInstructions() default should be true")
	}
}

func TestLoadFiles_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		global  string
		project string
		want    string
	}{
		{name: "bad global yaml", global: "backend: [", want: "loading global config"},
		{name: "bad project yaml", project: "keys: 3", want: "loading project config"},
		{name: "unknown backend", project: "backend: curses", want: `unknown backend "curses"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			gp, pp := filepath.Join(dir, "g.yaml"), filepath.Join(dir, "p.yaml")
			if tt.global != "" {
				writeFile(t, dir, "g.yaml", tt.global)
			}
			if tt.project != "" {
				writeFile(t, dir, "p.yaml", tt.project)
			}
			_, err := LoadFiles(gp, pp)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("LoadFiles() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestValidate_UnknownBackendIsSentinel(t *testing.T) {
	t.Parallel()

	s := &Settings{Backend: "gtk"}
	if err := s.Validate(); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Validate() = %v, want ErrUnknownBackend", err)
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := GlobalConfigFile(); got != filepath.Join("/xdg", "termform", "config.yaml") {
		t.Errorf("GlobalConfigFile() = %q", got)
	}
	if got := ProjectConfigFile("/proj"); got != filepath.Join("/proj", ".termform.yaml") {
		t.Errorf("ProjectConfigFile() = %q", got)
	}
}

func TestGlobalDir_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	if got := GlobalDir(); got != filepath.Join(home, ".config", "termform") {
		t.Errorf("GlobalDir() = %q", got)
	}
}
