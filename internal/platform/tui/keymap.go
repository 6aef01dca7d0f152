package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/run-for-love/internal/core"
)

// KeyCommand is what a key press asks the host to do. KeyInput forwards
// the returned event to the game; KeyBack leaves the game for the menu.
type KeyCommand int

const (
	KeyNone KeyCommand = iota
	KeyInput
	KeyQuit
	KeyBack
	KeyToggleMusic
	KeyScreenshot
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. primary is the game's current primary
// action; space and enter map to it.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, primary core.Action) (KeyCommand, core.InputEvent) {
	switch msg.String() {
	case "ctrl+c", "q":
		return KeyQuit, core.InputEvent{}
	case "m":
		return KeyToggleMusic, core.InputEvent{}
	case "ctrl+s":
		return KeyScreenshot, core.InputEvent{}
	case "b", "esc":
		return KeyBack, core.InputEvent{}
	case " ", "enter":
		if primary == core.ActionNone {
			return KeyNone, core.InputEvent{}
		}
		return KeyInput, core.NewInputEvent(primary)
	case "w", "up":
		return KeyInput, core.NewInputEvent(core.ActionJump)
	case "r":
		return KeyInput, core.NewInputEvent(core.ActionReset)
	}
	return KeyNone, core.InputEvent{}
}

// MapMouse translates a left click into a positioned click event. Only the
// intro targets are clickable.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, primary core.Action, vp Viewport) (core.InputEvent, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.InputEvent{}, false
	}
	switch primary {
	case core.ActionEnvelopeClick, core.ActionLetterStartClick:
		x, y := vp.ToWorld(msg.X, msg.Y)
		return core.NewClickEvent(primary, x, y), true
	}
	return core.InputEvent{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
