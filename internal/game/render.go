package game

import (
	"github.com/vovakirdan/dinoterm/internal/core"
	"github.com/vovakirdan/dinoterm/internal/sprite"
)

const (
	viewportPad  = 6 // Pixels kept visible above the player
	scoreMargin  = 4 // Right margin of the score block
	scoreDigits  = 5
	scoreY       = 2
	bannerOffset = 12 // Banner position below the viewport top
)

// Frame renders the world into the canvas and returns the colored text
// lines of the visible viewport. Only the visible window is packed, so the
// output size is bounded by the host grid regardless of the virtual canvas
// height. Before loading completes (or with a degenerate viewport) no lines
// are produced and the host shows its own placeholder.
func (g *Game) Frame() []string {
	if g.cols <= 0 || g.rows <= 0 || g.assets == nil {
		return nil
	}

	g.canvas.Clear()
	g.drawGround()
	for _, d := range g.clouds {
		sprite.DrawFull(g.canvas, g.assets.Cloud, d.X, d.Y, core.ColorGray)
	}
	for _, d := range g.logos {
		sprite.DrawGradient(g.canvas, g.assets.Logo, d.X, d.Y, 0, 0, g.assets.Logo.Width, g.assets.Logo.Height)
	}
	for _, o := range g.obstacles {
		frame := o.Frame
		if o.Kind == KindPtero {
			frame = g.pteroFrame()
		}
		sprite.Draw(g.canvas, g.obstacleSprite(o), o.X, o.Y, frame.X, frame.Y, frame.W, frame.H, core.ColorDefault)
	}
	g.drawPlayer()
	g.drawScore()

	minY := g.viewportMinY()
	if g.state == StateGameOver {
		g.drawGameOverBanner(minY)
	}
	return g.canvas.Lines(minY, minY+g.rows*2)
}

// viewportMinY computes the top of the visible vertical window. The default
// window touches the bottom of the canvas; when the player's top minus the
// padding would rise above it, the window follows just enough to keep the
// player visible, clamped to the canvas.
func (g *Game) viewportMinY() int {
	visible := g.rows * 2
	def := core.Max(g.canvas.Height()-visible, 0)
	minY := def
	if top := int(g.playerY) - viewportPad; top < minY {
		minY = top
	}
	return core.Clamp(minY, 0, def)
}

// drawGround renders the scrolling dotted ground line with occasional
// bumps, derived from the ground offset so the pattern moves with the world.
func (g *Game) drawGround() {
	w := g.canvas.Width()
	mask := [][]bool{make([]bool, w), make([]bool, w)}
	off := int(g.groundOff)
	for x := 0; x < w; x++ {
		world := x + off
		if world%3 != 0 {
			mask[1][x] = true
		}
		if world%37 == 0 {
			mask[0][x] = true
			if x+1 < w {
				mask[0][x+1] = true
			}
		}
	}
	core.DrawMask(g.canvas, mask, 0, float64(g.groundY()-1), core.ColorDefault)
}

// drawPlayer renders the current pose at the player position.
func (g *Game) drawPlayer() {
	frame := g.playerFrame()
	sheet := g.assets.Dino
	if g.ducking {
		sheet = g.assets.Duck
	}
	sprite.Draw(g.canvas, sheet, g.cfg.Player.X, g.playerY, frame.X, frame.Y, frame.W, frame.H, core.ColorDefault)
}

// drawScore renders the current score and, when set, the gray "HI" block to
// its left, both as sprite digits in the top-right corner.
func (g *Game) drawScore() {
	w := g.canvas.Width()
	scoreX := w - scoreMargin - scoreDigits*sprite.DigitWidth
	g.drawNumber(scoreX, scoreY, g.Score(), core.ColorDefault)

	if g.highScore > 0 {
		hiX := scoreX - 8 - scoreDigits*sprite.DigitWidth
		g.drawNumber(hiX, scoreY, g.HighScore(), core.ColorGray)
		labelX := hiX - 4 - sprite.HIFrame.W
		f := sprite.HIFrame
		sprite.Draw(g.canvas, g.assets.Digits, float64(labelX), scoreY, f.X, f.Y, f.W, f.H, core.ColorGray)
	}
}

// drawNumber renders a zero-padded number with the digit sheet.
func (g *Game) drawNumber(x, y, value int, color core.Color) {
	if value < 0 {
		value = 0
	}
	for i := scoreDigits - 1; i >= 0; i-- {
		f := sprite.DigitFrame(value % 10)
		value /= 10
		dx := float64(x + i*sprite.DigitWidth)
		sprite.Draw(g.canvas, g.assets.Digits, dx, float64(y), f.X, f.Y, f.W, f.H, color)
	}
}

// drawGameOverBanner renders the sprite-based GAME OVER banner centered in
// the visible window. On canvases too narrow for the sprite letters the
// banner is skipped; the host falls back to a textual banner based on the
// state tag.
func (g *Game) drawGameOverBanner(minY int) {
	total := len(sprite.GameOverIndices) * sprite.GameOverLetterW
	w := g.canvas.Width()
	if w < total+scoreMargin {
		return
	}
	x := (w - total) / 2
	y := minY + bannerOffset
	for i, idx := range sprite.GameOverIndices {
		if idx == sprite.GameOverSpace {
			continue
		}
		f := sprite.GameOverLetterFrame(idx)
		dx := float64(x + i*sprite.GameOverLetterW)
		sprite.Draw(g.canvas, g.assets.GameOver, dx, float64(y), f.X, f.Y, f.W, f.H, core.ColorDefault)
	}
}
