package game

import "github.com/vovakirdan/dinoterm/internal/sprite"

// ObstacleKind tags the obstacle variants.
type ObstacleKind int

const (
	KindCactus ObstacleKind = iota
	KindPtero
)

// Obstacle is a live obstacle instance: a world position plus the sheet
// frame it shows. Pterodactyls scroll at double the world speed and animate
// between two wing frames at draw time.
type Obstacle struct {
	Kind  ObstacleKind
	X, Y  float64 // World position, sub-pixel precision
	Frame sprite.Frame
}

// DecorationKind tags the non-colliding background entities.
type DecorationKind int

const (
	DecorCloud DecorationKind = iota
	DecorLogo
)

// Decoration is a background entity (cloud or gradient logo). Decorations
// move on a coarse character-aligned cadence and never collide.
type Decoration struct {
	Kind DecorationKind
	X, Y float64
}
