package game

import (
	"github.com/vovakirdan/dinoterm/internal/config"
	"github.com/vovakirdan/dinoterm/internal/sprite"
)

// Pterodactyl altitudes as offsets from the ground line: low (jump over),
// mid (duck under) and high (run under).
var pteroAltitudes = []int{14, 24, 36}

// tierProbability returns the probability of the highest tier whose
// threshold has been reached.
func tierProbability(tiers []config.SpawnTier, elapsed float64) float64 {
	p := 0.0
	for _, tier := range tiers {
		if elapsed >= tier.After {
			p = tier.Probability
		}
	}
	return p
}

// spawnObstacle rolls the per-tick obstacle spawn. The roll is gated by a
// cap on simultaneous obstacles and by a minimum horizontal gap that grows
// with speed, so spacing stays jumpable at any velocity.
func (g *Game) spawnObstacle() {
	if len(g.obstacles) >= g.cfg.Spawn.MaxObstacles {
		return
	}
	spawnX := float64(g.canvas.Width())
	minGap := g.speed * g.cfg.Spawn.MinGapSpeedFactor
	for _, o := range g.obstacles {
		if o.X+float64(o.Frame.W) > spawnX-minGap {
			return
		}
	}

	p := tierProbability(g.cfg.Spawn.Tiers, g.ticks-g.lastSpawn)
	if g.rng.Float64() >= p {
		return
	}

	// Weighted kind draw: flying is only eligible past the score threshold
	// and carries its own ramp keyed to the last flying spawn.
	if g.score >= g.cfg.Spawn.PteroScoreMin && g.rng.Float64() < g.cfg.Spawn.PteroWeight {
		pp := tierProbability(g.cfg.Spawn.PteroTiers, g.ticks-g.lastPtero)
		if g.rng.Float64() < pp {
			g.spawnPtero()
			return
		}
	}
	g.spawnCactus(g.pickCactusFrame())
}

// pickCactusFrame draws one of the two ground obstacle families (small or
// large silhouettes), then a pose within the family.
func (g *Game) pickCactusFrame() sprite.Frame {
	small := []sprite.Frame{sprite.CactusFrames[0], sprite.CactusFrames[2]}
	large := []sprite.Frame{sprite.CactusFrames[1], sprite.CactusFrames[3]}
	family := small
	if g.rng.Float64() < 0.5 {
		family = large
	}
	return family[g.rng.Intn(len(family))]
}

// spawnCactus places a ground obstacle just past the right edge.
func (g *Game) spawnCactus(frame sprite.Frame) {
	g.obstacles = append(g.obstacles, Obstacle{
		Kind:  KindCactus,
		X:     float64(g.canvas.Width()),
		Y:     float64(g.groundY() - frame.H),
		Frame: frame,
	})
	g.lastSpawn = g.ticks
}

// spawnPtero places a flying obstacle at one of the fixed altitudes.
func (g *Game) spawnPtero() {
	alt := pteroAltitudes[g.rng.Intn(len(pteroAltitudes))]
	frame := sprite.PteroFrames[0]
	g.obstacles = append(g.obstacles, Obstacle{
		Kind:  KindPtero,
		X:     float64(g.canvas.Width()),
		Y:     float64(g.groundY() - alt),
		Frame: frame,
	})
	g.lastSpawn = g.ticks
	g.lastPtero = g.ticks
}

// spawnDecorations rolls the independent low-probability decoration draws.
func (g *Game) spawnDecorations() {
	if len(g.clouds) < g.cfg.Spawn.MaxClouds && g.rng.Float64() < g.cfg.Spawn.CloudProbability {
		g.spawnCloud()
	}
	if len(g.logos) < g.cfg.Spawn.MaxLogos && g.rng.Float64() < g.cfg.Spawn.LogoProbability {
		g.spawnLogo()
	}
}

// spawnCloud places a cloud at a random altitude above the ground strip,
// skipping the spawn when it would overlap an existing cloud.
func (g *Game) spawnCloud() {
	top := 4
	bottom := g.groundY() - standHeight*2 - g.assets.Cloud.Height
	if bottom <= top {
		return
	}
	d := Decoration{
		Kind: DecorCloud,
		X:    float64(g.canvas.Width()),
		Y:    float64(top + g.rng.Intn(bottom-top)),
	}
	if g.overlapsDecoration(g.clouds, d, g.assets.Cloud.Width, g.assets.Cloud.Height) {
		return
	}
	g.clouds = append(g.clouds, d)
}

// spawnLogo places the decorative gradient logo near the top of the sky.
func (g *Game) spawnLogo() {
	d := Decoration{
		Kind: DecorLogo,
		X:    float64(g.canvas.Width()),
		Y:    6,
	}
	if g.overlapsDecoration(g.logos, d, g.assets.Logo.Width, g.assets.Logo.Height) {
		return
	}
	g.logos = append(g.logos, d)
}

// overlapsDecoration checks the new decoration against existing ones of the
// same kind in world space.
func (g *Game) overlapsDecoration(existing []Decoration, d Decoration, w, h int) bool {
	for _, other := range existing {
		if d.X < other.X+float64(w) && d.X+float64(w) > other.X &&
			d.Y < other.Y+float64(h) && d.Y+float64(h) > other.Y {
			return true
		}
	}
	return false
}
