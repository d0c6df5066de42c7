package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinoterm/internal/game"
)

// MapKey translates a Bubble Tea key message into the game's key event
// shape: a symbolic name for special keys, a literal rune otherwise, and
// the ctrl modifier. The game owns the actual bindings.
func MapKey(msg tea.KeyMsg) game.Key {
	switch msg.String() {
	case "ctrl+c":
		return game.Key{Rune: 'c', Ctrl: true}
	case "esc":
		return game.Key{Name: "escape"}
	case "up":
		return game.Key{Name: "up"}
	case "down":
		return game.Key{Name: "down"}
	case " ":
		return game.Key{Name: "space"}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return game.Key{Rune: msg.Runes[0]}
	}
	return game.Key{}
}
