package game

import "github.com/vovakirdan/dinoterm/internal/sprite"

// Key is a single discrete key event as delivered by the host: a symbolic
// name (for special keys), an optional literal character, and the ctrl
// modifier. Key handling runs immediately per event, independent of tick
// cadence, and never concurrently with Tick.
type Key struct {
	Name string // "space", "up", "down", "escape" or "" for plain runes
	Rune rune
	Ctrl bool
}

// HandleKey applies one key event to the state machine.
func (g *Game) HandleKey(k Key) {
	// Quit works from any state.
	if (k.Ctrl && k.Rune == 'c') || k.Name == "escape" {
		g.closed = true
		return
	}

	// Any key other than a repeated down press cancels ducking; the host
	// environment reports key-down only, so ducking otherwise relies on
	// its auto-expiry timer.
	if k.Name != "down" && g.ducking {
		g.ducking = false
	}

	switch {
	case k.Name == "space" || k.Name == "up":
		g.handleJumpKey()
	case k.Name == "down":
		if g.state == StatePlaying {
			g.ducking = true
			g.duckExpiry = g.ticks + g.cfg.Player.DuckTicks
		}
	case k.Rune == 'c' && !k.Ctrl:
		g.handleC()
	case k.Rune == 'p':
		if g.state == StatePlaying {
			g.spawnPtero()
		}
	case k.Rune == 'g':
		if g.state == StatePlaying {
			g.spawnLogo()
		}
	case k.Rune == 's':
		g.halfSpeed = !g.halfSpeed
	case k.Rune == 'v':
		g.tenthSpeed = !g.tenthSpeed
	case k.Rune == 'b':
		g.showBorder = !g.showBorder
	case k.Rune == 'i':
		g.infinite = !g.infinite
	}
}

// handleJumpKey is the space/up-arrow transition: start from WAITING,
// jump while PLAYING, restart after the game-over cooldown.
func (g *Game) handleJumpKey() {
	switch g.state {
	case StateWaiting:
		g.startRun()
	case StatePlaying:
		// Jumping requires ground contact unless a slow-motion mode
		// relaxes it, and is never allowed while ducking.
		if g.ducking {
			return
		}
		if g.grounded() || g.timeScale() != 1.0 {
			g.playerVel = g.cfg.Physics.JumpVelocity
		}
	case StateGameOver:
		if g.rawTicks-g.gameOverAt >= int(g.cfg.Player.RestartCooldown) {
			g.startRun()
		}
	}
}

// handleC is the dual-purpose 'c' key: continue without reset after game
// over, or debug-spawn the next ground obstacle pose while playing.
func (g *Game) handleC() {
	switch g.state {
	case StateGameOver:
		g.continueRun()
	case StatePlaying:
		g.spawnCactusRotation()
	}
}

// spawnCactusRotation force-spawns ground obstacle variants in fixed order.
func (g *Game) spawnCactusRotation() {
	frame := sprite.CactusFrames[g.debugCactus%len(sprite.CactusFrames)]
	g.debugCactus++
	g.spawnCactus(frame)
}
