package core

// DrawMask sets every true cell of a boolean grid at the given offset.
// Used for procedurally generated shapes like the scrolling ground line.
func DrawMask(c *Canvas, mask [][]bool, destX, destY float64, color Color) {
	for dy, row := range mask {
		for dx, on := range row {
			if on {
				c.Set(destX+float64(dx), destY+float64(dy), color)
			}
		}
	}
}
