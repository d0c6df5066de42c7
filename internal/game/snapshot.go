package game

// ObstacleSnapshot is the externally visible state of one obstacle.
type ObstacleSnapshot struct {
	Kind ObstacleKind
	X, Y float64
	W, H int
}

// Snapshot captures the complete simulation state for determinism testing
// and replay.
type Snapshot struct {
	State     State
	RawTicks  int
	Ticks     float64
	Score     float64
	HighScore float64
	Speed     float64
	PlayerY   float64
	PlayerVel float64
	Ducking   bool
	Obstacles []ObstacleSnapshot
	Clouds    int
	Logos     int
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ObstacleSnapshot, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = ObstacleSnapshot{
			Kind: o.Kind,
			X:    o.X,
			Y:    o.Y,
			W:    o.Frame.W,
			H:    o.Frame.H,
		}
	}
	return Snapshot{
		State:     g.state,
		RawTicks:  g.rawTicks,
		Ticks:     g.ticks,
		Score:     g.score,
		HighScore: g.highScore,
		Speed:     g.speed,
		PlayerY:   g.playerY,
		PlayerVel: g.playerVel,
		Ducking:   g.ducking,
		Obstacles: obstacles,
		Clouds:    len(g.clouds),
		Logos:     len(g.logos),
	}
}
