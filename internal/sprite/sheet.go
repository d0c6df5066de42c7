package sprite

// Frame identifies a sub-rectangle of a packed sprite sheet.
type Frame struct {
	X, Y, W, H int
}

// Dino sheet: five 16x16 poses packed horizontally.
var (
	FrameDinoRun0  = Frame{0, 0, 16, 16}
	FrameDinoRun1  = Frame{16, 0, 16, 16}
	FrameDinoJump  = Frame{32, 0, 16, 16}
	FrameDinoDead  = Frame{48, 0, 16, 16}
	FrameDinoBlink = Frame{64, 0, 16, 16}
)

// Duck sheet: two 22x10 poses packed horizontally.
var (
	FrameDuck0 = Frame{0, 0, 22, 10}
	FrameDuck1 = Frame{22, 0, 22, 10}
)

// CactusFrames are the obstacle poses cut from the cactus sheet, from the
// single small cactus up to the wide triple cluster. Spawning draws from
// this list; the debug key cycles through it in order.
var CactusFrames = []Frame{
	{0, 4, 8, 16},   // Small
	{10, 0, 10, 20}, // Large
	{22, 4, 16, 16}, // Double small
	{40, 0, 20, 20}, // Triple cluster
}

// Pterodactyl sheet: two 20x12 wing positions.
var PteroFrames = []Frame{
	{0, 0, 20, 12},
	{20, 0, 20, 12},
}

// Score sheet: digits 0-9 in 6x8 cells followed by the "HI" label.
const (
	DigitWidth  = 6
	DigitHeight = 8
	hiLabelX    = 60
)

// DigitFrame returns the cut rectangle for a decimal digit.
func DigitFrame(d int) Frame {
	if d < 0 || d > 9 {
		d = 0
	}
	return Frame{d * DigitWidth, 0, DigitWidth, DigitHeight}
}

// HIFrame is the "HI" label within the score sheet.
var HIFrame = Frame{hiLabelX, 0, 2 * DigitWidth, DigitHeight}

// Game-over sheet: the letters G A M E O V R in 8x10 cells.
const (
	GameOverLetterW = 8
	GameOverLetterH = 10

	// GameOverSpace marks a rendered space in GameOverIndices.
	GameOverSpace = -1
)

// GameOverIndices spells "GAME OVER" as indices into the letter sheet.
var GameOverIndices = []int{0, 1, 2, 3, GameOverSpace, 4, 5, 3, 6}

// GameOverLetterFrame returns the cut rectangle for a letter index.
func GameOverLetterFrame(idx int) Frame {
	return Frame{idx * GameOverLetterW, 0, GameOverLetterW, GameOverLetterH}
}
