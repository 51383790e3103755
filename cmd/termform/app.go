// ABOUTME: Root cobra command, persistent flags and the settings every subcommand shares
// ABOUTME: Loads YAML config, applies log level and log file, and resolves the backend

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termform/internal/config"
	tflog "github.com/mauromedda/termform/internal/log"
	"github.com/mauromedda/termform/pkg/tui/keymap"
)

// errCancelled reports that the user dismissed a widget. main exits 1
// without printing anything for it.
var errCancelled = errors.New("cancelled")

type app struct {
	stdout io.Writer
	stderr io.Writer

	backend    string
	verbose    bool
	logFile    string
	configPath string

	settings *config.Settings
	logOut   io.Closer
	prevLog  io.Writer

	// open is replaced in tests with a host over an in-memory grid.
	open func(backend string) (host, error)
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		settings: &config.Settings{},
		open:     openHost,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "termform",
		Short:             "Terminal form widgets: a scrolling select list and a line editor",
		Version:           fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.backend, "backend", "", "drawing backend: ansi, tcell or bubbletea (default from config, else ansi)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	flags.StringVar(&a.logFile, "log-file", "", "append log output to this file instead of stderr")
	flags.StringVar(&a.configPath, "config", "", "read settings from this file instead of the global and project files")

	root.AddCommand(a.selectCmd(), a.inputCmd(), a.keysCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}
	a.settings = settings

	if a.backend != "" {
		a.settings.Backend = a.backend
		if err := a.settings.Validate(); err != nil {
			return err
		}
	}

	if settings.LogLevel != "" {
		lvl, err := tflog.ParseLevel(settings.LogLevel)
		if err != nil {
			return err
		}
		tflog.SetLevel(lvl)
	}
	if a.verbose {
		tflog.SetLevel(tflog.LevelDebug)
	}

	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		a.logOut = f
		a.prevLog = tflog.SetOutput(f)
	}

	tflog.Debug("command=%s backend=%s", cmd.Name(), a.settings.BackendOrDefault())
	return nil
}

func (a *app) loadSettings() (*config.Settings, error) {
	if a.configPath != "" {
		s, err := config.LoadFiles(a.configPath, "")
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return s, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	s, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s, nil
}

func (a *app) teardown() {
	if a.logOut == nil {
		return
	}
	tflog.SetOutput(a.prevLog)
	_ = a.logOut.Close()
	a.logOut = nil
}

// listKeys returns the list keymap with configured overrides applied.
func (a *app) listKeys() (*keymap.Map, error) {
	m := keymap.List()
	if err := m.Override(a.settings.Keys.List); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return m, nil
}

// editorKeys returns the editor keymap with configured overrides applied.
func (a *app) editorKeys() (*keymap.Map, error) {
	m := keymap.Editor()
	if err := m.Override(a.settings.Keys.Editor); err != nil {
		return nil, fmt.Errorf("editor keys: %w", err)
	}
	return m, nil
}

func warnConflicts(name string, m *keymap.Map) {
	for _, c := range m.Conflicts() {
		tflog.Warn("%s keys: %q is bound to %v; %s wins", name, c.Key, c.Actions, c.Actions[0])
	}
}
