// ABOUTME: Keymap resolves key presses to widget actions with O(1) lookup.
// ABOUTME: Ships list and editor defaults; user overrides replace an action's keys wholesale.

package keymap

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/mauromedda/termform/pkg/tui/key"
)

// Action is something a widget does in response to a key.
type Action string

const (
	ActionUp        Action = "up"
	ActionDown      Action = "down"
	ActionSelect    Action = "select"
	ActionLeft      Action = "left"
	ActionRight     Action = "right"
	ActionBackspace Action = "backspace"
	ActionDelete    Action = "delete"
	ActionHome      Action = "home"
	ActionEnd       Action = "end"
	ActionKillEnd   Action = "kill_to_end"
	ActionKillStart Action = "kill_to_start"
	ActionYank      Action = "yank"
	ActionUndo      Action = "undo"
	ActionAccept    Action = "accept"
	ActionCancel    Action = "cancel"
)

// ErrUnknownAction is returned by Override for an action the map does not have.
var ErrUnknownAction = errors.New("unknown action")

// Map binds key names (as produced by key.Key.Name) to actions.
type Map struct {
	order    []Action
	bindings map[Action][]string
	lookup   map[string]Action
}

// Conflict describes a key bound to more than one action.
type Conflict struct {
	Key     string
	Actions []Action
}

// New builds a map whose actions appear in the given order.
func New(order []Action, bindings map[Action][]string) *Map {
	m := &Map{
		order:    slices.Clone(order),
		bindings: make(map[Action][]string, len(bindings)),
	}
	for a, keys := range bindings {
		m.bindings[a] = slices.Clone(keys)
	}
	m.buildLookup()
	return m
}

// List returns the default bindings for a selection list.
func List() *Map {
	return New(
		[]Action{ActionUp, ActionDown, ActionSelect, ActionCancel},
		map[Action][]string{
			ActionUp:     {"up", "k"},
			ActionDown:   {"down", "j"},
			ActionSelect: {"space"},
			ActionCancel: {"escape", "ctrl+c"},
		},
	)
}

// Editor returns the default bindings for a line editor.
func Editor() *Map {
	return New(
		[]Action{
			ActionLeft, ActionRight, ActionBackspace, ActionDelete,
			ActionHome, ActionEnd, ActionKillEnd, ActionKillStart, ActionYank, ActionUndo,
			ActionAccept, ActionCancel,
		},
		map[Action][]string{
			ActionLeft:      {"left", "ctrl+b"},
			ActionRight:     {"right", "ctrl+f"},
			ActionBackspace: {"backspace", "ctrl+h"},
			ActionDelete:    {"delete"},
			ActionHome:      {"home", "ctrl+a"},
			ActionEnd:       {"end", "ctrl+e"},
			ActionKillEnd:   {"ctrl+k"},
			ActionKillStart: {"ctrl+u"},
			ActionYank:      {"ctrl+y"},
			ActionUndo:      {"ctrl+z"},
			ActionAccept:    {"enter"},
			ActionCancel:    {"escape", "ctrl+c"},
		},
	)
}

// Lookup returns the action bound to k.
func (m *Map) Lookup(k key.Key) (Action, bool) {
	name := k.Name()
	if name == "" {
		return "", false
	}
	a, ok := m.lookup[name]
	return a, ok
}

// Keys returns the key names bound to a.
func (m *Map) Keys(a Action) []string {
	return slices.Clone(m.bindings[a])
}

// Actions returns the map's actions in display order.
func (m *Map) Actions() []Action {
	return slices.Clone(m.order)
}

// Override replaces the keys of each named action. Unknown action names
// and empty key names are rejected before anything changes.
func (m *Map) Override(overrides map[string][]string) error {
	for name, keys := range overrides {
		if _, ok := m.bindings[Action(name)]; !ok {
			return fmt.Errorf("overriding %q: %w", name, ErrUnknownAction)
		}
		if slices.Contains(keys, "") {
			return fmt.Errorf("overriding %q: empty key name", name)
		}
	}
	for name, keys := range overrides {
		m.bindings[Action(name)] = slices.Clone(keys)
	}
	m.buildLookup()
	return nil
}

// Conflicts lists keys bound to several actions, sorted by key. The
// action listed first in the map's order wins at lookup time.
func (m *Map) Conflicts() []Conflict {
	byKey := make(map[string][]Action)
	for _, a := range m.order {
		for _, k := range m.bindings[a] {
			byKey[k] = append(byKey[k], a)
		}
	}

	var out []Conflict
	for k, actions := range byKey {
		if len(actions) > 1 {
			out = append(out, Conflict{Key: k, Actions: actions})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Markdown renders the map as a two-column markdown table under a heading.
func (m *Map) Markdown(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n| Action | Keys |\n|---|---|\n", title)
	for _, a := range m.order {
		keys := m.bindings[a]
		quoted := make([]string, len(keys))
		for i, k := range keys {
			quoted[i] = "`" + k + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", a, strings.Join(quoted, ", "))
	}
	return b.String()
}

func (m *Map) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings)*2)
	// Reverse order so earlier actions overwrite later ones on conflict.
	for _, a := range slices.Backward(m.order) {
		for _, k := range m.bindings[a] {
			m.lookup[k] = a
		}
	}
}
