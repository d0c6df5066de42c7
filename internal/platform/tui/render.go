package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dinoterm/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	plainFrame  = lipgloss.NewStyle().Padding(0, 1)
)

// renderSession composes the full terminal view: header, game frame and
// the state-dependent prompt line.
func renderSession(g *game.Game, width int) string {
	var sb strings.Builder

	header := headerStyle.Render("dinoterm") + "  " +
		scoreStyle.Render(fmt.Sprintf("score %05d  hi %05d", g.Score(), g.HighScore()))
	sb.WriteString(header)
	sb.WriteString("\n")

	sb.WriteString(renderGameFrame(g))
	sb.WriteString("\n")
	sb.WriteString(promptFor(g, width))
	return sb.String()
}

// renderGameFrame joins the game's colored lines, optionally boxed.
func renderGameFrame(g *game.Game) string {
	lines := g.Frame()
	if len(lines) == 0 {
		return renderPlaceholder(g)
	}
	body := strings.Join(lines, "\n")
	if g.BorderVisible() {
		return borderStyle.Render(body)
	}
	return plainFrame.Render(body)
}

// renderPlaceholder covers the LOADING state and degenerate viewports.
func renderPlaceholder(g *game.Game) string {
	if errs := g.LoadErrors(); len(errs) > 0 {
		var sb strings.Builder
		sb.WriteString(errorStyle.Render("sprite assets failed to load:"))
		for _, err := range errs {
			sb.WriteString("\n  " + errorStyle.Render(err.Error()))
		}
		return sb.String()
	}
	return promptStyle.Render("loading...")
}

// promptFor picks the hint line for the current state. The textual
// GAME OVER banner here doubles as the fallback for windows too narrow
// for the sprite-based banner.
func promptFor(g *game.Game, width int) string {
	switch g.State() {
	case game.StateWaiting:
		return promptStyle.Render("press space to start - down duck, esc quit")
	case game.StateGameOver:
		banner := "GAME OVER - space restart, c continue"
		if len(banner) > width && width > 0 {
			banner = "GAME OVER"
		}
		return promptStyle.Render(banner)
	default:
		return ""
	}
}
