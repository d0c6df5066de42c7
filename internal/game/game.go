// Package game owns the world state and the deterministic per-tick
// simulation: physics, scrolling, spawning, collision resolution and the
// LOADING -> WAITING -> PLAYING -> GAME_OVER state machine. It renders into
// the quadrant canvas and exposes colored text lines for the visible
// viewport; the host terminal layer stays outside.
package game

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinoterm/internal/config"
	"github.com/vovakirdan/dinoterm/internal/core"
	"github.com/vovakirdan/dinoterm/internal/sprite"
)

// State is the coarse game state the host uses to pick surrounding chrome.
type State int

const (
	StateLoading State = iota
	StateWaiting
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const (
	// Canvas geometry, in pixels (half-characters).
	minCanvasHeight = 70 // Keeps the jump arc addressable on short windows
	groundMargin    = 4  // Pixels below the ground line

	// Pose dimensions, matching the sprite sheets.
	standWidth  = 16
	standHeight = 16
	duckWidth   = 22
	duckHeight  = 10

	// Animation cadences, in scaled ticks.
	runFramePeriod   = 6
	duckFramePeriod  = 6
	pteroFramePeriod = 10
)

// Game is the simulation context. It is single-threaded by design: the tick
// handler and the key handler must never run concurrently (the host's event
// loop guarantees ordering), so no locking is needed.
type Game struct {
	cfg    config.Config
	logger *log.Logger
	assets *sprite.Set

	state  State
	canvas *core.Canvas
	cols   int
	rows   int

	rawTicks int     // Unscaled tick count; advances in every state
	ticks    float64 // Scaled elapsed ticks; advances only while playing

	score     float64
	highScore float64
	speed     float64
	groundOff float64 // Scrolling ground offset in pixels

	playerY   float64 // Top of the player's current pose
	playerVel float64

	ducking    bool
	duckExpiry float64 // Scaled-tick timestamp; checked every tick

	obstacles []Obstacle
	clouds    []Decoration
	logos     []Decoration

	halfSpeed  bool
	tenthSpeed bool
	infinite   bool
	showBorder bool

	lastSpawn    float64 // Scaled ticks at last obstacle spawn
	lastPtero    float64
	lastHit      float64 // Scaled ticks at last collision (infinite mode)
	gameOverAt   int     // Raw ticks at the game-over transition
	debugCactus  int     // Rotation index for the debug spawn key
	loadProblems []error

	rng    *rand.Rand
	closed bool
}

// New creates a game in the LOADING state. The seed fixes the RNG so that a
// run is a pure function of (seed, viewport, inputs).
func New(cfg config.Config, seed int64, logger *log.Logger) *Game {
	g := &Game{
		cfg:        cfg,
		logger:     logger,
		state:      StateLoading,
		canvas:     core.NewCanvas(0, 0),
		speed:      cfg.Physics.BaseSpeed,
		rng:        rand.New(rand.NewSource(seed)),
		showBorder: true,
		lastHit:    math.Inf(-1),
	}
	return g
}

// SetViewport tells the game the current character grid size. The canvas is
// two pixels per cell in both axes, with a floor on the virtual height so
// the jump arc can leave the visible window.
func (g *Game) SetViewport(cols, rows int) {
	g.cols = core.Max(cols, 0)
	g.rows = core.Max(rows, 0)
	g.canvas.Resize(g.cols*2, core.Max(g.rows*2, minCanvasHeight))
	if g.state != StateLoading && g.state != StatePlaying {
		g.resetPlayer()
	}
}

// FinishLoad delivers the decoded sprite set. With any load error the game
// reports the problem and stays in LOADING rather than partially rendering
// undefined sprites.
func (g *Game) FinishLoad(set *sprite.Set, errs []error) {
	if len(errs) > 0 {
		g.loadProblems = errs
		if g.logger != nil {
			for _, err := range errs {
				g.logger.Error("asset load failed", "error", err)
			}
		}
		return
	}
	g.assets = set
	g.state = StateWaiting
	g.resetPlayer()
}

// LoadErrors returns the asset problems that keep the game in LOADING.
func (g *Game) LoadErrors() []error {
	return g.loadProblems
}

// groundY returns the pixel row of the ground line.
func (g *Game) groundY() int {
	return g.canvas.Height() - groundMargin
}

// playerWidth returns the width of the current pose.
func (g *Game) playerWidth() int {
	if g.ducking {
		return duckWidth
	}
	return standWidth
}

// playerHeight returns the height of the current pose.
func (g *Game) playerHeight() int {
	if g.ducking {
		return duckHeight
	}
	return standHeight
}

// groundTop returns the player top position when resting on the ground.
func (g *Game) groundTop() float64 {
	return float64(g.groundY() - g.playerHeight())
}

// grounded reports whether the player is resting on the ground line.
func (g *Game) grounded() bool {
	return g.playerY >= g.groundTop()-1e-9
}

// resetPlayer puts the player on the ground with zero velocity.
func (g *Game) resetPlayer() {
	g.playerY = g.groundTop()
	g.playerVel = 0
}

// timeScale returns the current simulation time factor.
func (g *Game) timeScale() float64 {
	switch {
	case g.tenthSpeed:
		return 0.1
	case g.halfSpeed:
		return 0.5
	default:
		return 1.0
	}
}

// Tick advances the simulation by one nominal tick. The raw counter always
// advances (it drives game-over cooldowns and idle animation); the world
// only moves while playing.
func (g *Game) Tick() {
	g.rawTicks++
	if g.state != StatePlaying {
		return
	}

	ts := g.timeScale()
	g.ticks += ts
	g.score += ts
	g.groundOff += g.speed * ts

	// Duck auto-expiry: explicit deadline re-armed on every down press.
	if g.ducking && g.ticks >= g.duckExpiry {
		g.ducking = false
	}

	// Vertical physics: integrate, then clamp to the ground line. The clamp
	// uses the same tolerance as grounded() so a descending arc that stops a
	// hair above the line still snaps down with zero velocity.
	g.playerVel += g.cfg.Physics.Gravity * ts
	g.playerY += g.playerVel * ts
	if g.grounded() {
		g.resetPlayer()
	}

	// Speed ramps up to the cap.
	g.speed += g.cfg.Physics.Acceleration * ts
	if g.speed > g.cfg.Physics.MaxSpeed {
		g.speed = g.cfg.Physics.MaxSpeed
	}

	g.moveObstacles(ts)
	g.moveDecorations()
	g.spawnObstacle()
	g.spawnDecorations()
	g.resolveCollisions()
}

// moveObstacles translates obstacles left and drops the off-screen ones.
func (g *Game) moveObstacles(ts float64) {
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		dx := g.speed
		if o.Kind == KindPtero {
			dx *= 2
		}
		o.X -= dx * ts
		if o.X+float64(o.Frame.W) > 0 {
			live = append(live, o)
		}
	}
	g.obstacles = live
}

// moveDecorations advances clouds and logos one character width at a time
// on a coarse cadence, keeping their motion grid-aligned and jitter-free.
// The cadence stretches with slow-motion modes.
func (g *Game) moveDecorations() {
	period := int(math.Round(2.0 / g.timeScale()))
	if period < 1 {
		period = 1
	}
	if g.rawTicks%period != 0 {
		return
	}
	g.clouds = shiftDecorations(g.clouds, g.assets.Cloud.Width)
	g.logos = shiftDecorations(g.logos, g.assets.Logo.Width)
}

func shiftDecorations(ds []Decoration, width int) []Decoration {
	live := ds[:0]
	for _, d := range ds {
		d.X -= 2 // One character width
		if d.X+float64(width) > 0 {
			live = append(live, d)
		}
	}
	return live
}

// resolveCollisions tests the player's current hitbox against every live
// obstacle. The hitbox depends on the ducking state and the animation frame
// parity, so it is recomputed for the tick.
func (g *Game) resolveCollisions() {
	if g.infinite && g.ticks-g.lastHit < g.cfg.Player.InvincibilityTicks {
		return
	}
	player := g.playerBox()
	for _, o := range g.obstacles {
		obstacle := sprite.Box{
			Sprite: g.obstacleSprite(o),
			X:      o.X,
			Y:      o.Y,
			W:      o.Frame.W,
			H:      o.Frame.H,
			SrcX:   o.Frame.X,
			SrcY:   o.Frame.Y,
		}
		if o.Kind == KindPtero {
			obstacle.SrcX = g.pteroFrame().X
		}
		if sprite.Collides(player, obstacle) {
			if g.infinite {
				g.lastHit = g.ticks
				return
			}
			g.gameOver()
			return
		}
	}
}

// playerBox returns the collision box for the player's current pose.
func (g *Game) playerBox() sprite.Box {
	frame := g.playerFrame()
	sheet := g.assets.Dino
	if g.ducking {
		sheet = g.assets.Duck
	}
	return sprite.Box{
		Sprite: sheet,
		X:      g.cfg.Player.X,
		Y:      g.playerY,
		W:      frame.W,
		H:      frame.H,
		SrcX:   frame.X,
		SrcY:   frame.Y,
	}
}

// playerFrame picks the pose frame for the current tick.
func (g *Game) playerFrame() sprite.Frame {
	switch {
	case g.state == StateGameOver:
		return sprite.FrameDinoDead
	case g.ducking:
		if int(g.ticks/duckFramePeriod)%2 == 0 {
			return sprite.FrameDuck0
		}
		return sprite.FrameDuck1
	case g.state == StatePlaying && !g.grounded():
		return sprite.FrameDinoJump
	case g.state == StateWaiting:
		// Occasional blink while idling on the start screen.
		if (g.rawTicks/30)%8 == 0 {
			return sprite.FrameDinoBlink
		}
		return sprite.FrameDinoRun0
	default:
		if int(g.ticks/runFramePeriod)%2 == 0 {
			return sprite.FrameDinoRun0
		}
		return sprite.FrameDinoRun1
	}
}

// pteroFrame picks the shared wing frame for the current tick.
func (g *Game) pteroFrame() sprite.Frame {
	return sprite.PteroFrames[int(g.ticks/pteroFramePeriod)%2]
}

// obstacleSprite returns the sheet an obstacle is cut from.
func (g *Game) obstacleSprite(o Obstacle) *sprite.Sprite {
	if o.Kind == KindPtero {
		return g.assets.Ptero
	}
	return g.assets.Cactus
}

// startRun begins a fresh run from WAITING or GAME_OVER: score, player,
// entity lists, speed and spawn timers all return to their initial values.
func (g *Game) startRun() {
	g.state = StatePlaying
	g.score = 0
	g.speed = g.cfg.Physics.BaseSpeed
	g.ticks = 0
	g.groundOff = 0
	g.obstacles = nil
	g.clouds = nil
	g.logos = nil
	g.ducking = false
	g.duckExpiry = 0
	g.lastSpawn = 0
	g.lastPtero = 0
	g.lastHit = math.Inf(-1)
	g.resetPlayer()
}

// continueRun resumes after game over without resetting score or speed.
// Only obstacles near the player are removed, to avoid an instant
// re-collision.
func (g *Game) continueRun() {
	clearBefore := g.cfg.Player.X + float64(standWidth) + g.cfg.Player.ContinueClearance
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.X >= clearBefore {
			live = append(live, o)
		}
	}
	g.obstacles = live
	g.state = StatePlaying
	g.ducking = false
	g.resetPlayer()
}

// gameOver records the transition and folds the score into the high score.
// Ducking ends with the run: the dead pose comes from the standing sheet,
// and a still-set duck flag would select the wrong sheet for it.
func (g *Game) gameOver() {
	g.state = StateGameOver
	g.gameOverAt = g.rawTicks
	g.ducking = false
	if g.playerY > g.groundTop() {
		g.resetPlayer()
	}
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// State returns the current coarse state.
func (g *Game) State() State {
	return g.state
}

// Score returns the floored display score.
func (g *Game) Score() int {
	return int(g.score)
}

// HighScore returns the floored high score for the process lifetime.
func (g *Game) HighScore() int {
	return int(g.highScore)
}

// Speed returns the current horizontal world speed in pixels per tick.
func (g *Game) Speed() float64 {
	return g.speed
}

// BorderVisible reports whether the host should draw the frame border.
func (g *Game) BorderVisible() bool {
	return g.showBorder
}

// Closed reports whether a quit input was received.
func (g *Game) Closed() bool {
	return g.closed
}
