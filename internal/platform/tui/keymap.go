package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Rotate key.Binding
	Drop   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Rotate, k.Drop},
		{k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Left:   binding(c.Left, "move left"),
		Right:  binding(c.Right, "move right"),
		Rotate: binding(c.Rotate, "rotate"),
		Drop:   binding(c.Drop, "drop"),
		Quit:   binding(c.Quit, "quit"),
	}
}

// DefaultKeyMap returns the arrow-key layout.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Controls)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// MapKey translates a key message to a round action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Drop):
		return core.ActionForceDown
	}
	return core.ActionNone
}
