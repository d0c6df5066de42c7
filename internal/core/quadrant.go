package core

// quadrantGlyphs maps a 4-bit pixel pattern to a Unicode block glyph.
// Bit order: top-left is the most significant bit, then top-right,
// bottom-left, bottom-right. Index 0 is a space, index 15 a full block.
// The table is a fixed bijection; changing it changes raster output
// byte-for-byte.
var quadrantGlyphs = [16]rune{
	' ', // 0000
	'▗', // 0001 BR
	'▖', // 0010 BL
	'▄', // 0011 BL+BR
	'▝', // 0100 TR
	'▐', // 0101 TR+BR
	'▞', // 0110 TR+BL
	'▟', // 0111 TR+BL+BR
	'▘', // 1000 TL
	'▚', // 1001 TL+BR
	'▌', // 1010 TL+BL
	'▙', // 1011 TL+BL+BR
	'▀', // 1100 TL+TR
	'▜', // 1101 TL+TR+BR
	'▛', // 1110 TL+TR+BL
	'█', // 1111
}

// quadrantGlyph selects the block glyph for a 2x2 pixel pattern.
// A pixel is "on" when its color code is nonzero.
func quadrantGlyph(tl, tr, bl, br Color) rune {
	idx := 0
	if tl > 0 {
		idx |= 8
	}
	if tr > 0 {
		idx |= 4
	}
	if bl > 0 {
		idx |= 2
	}
	if br > 0 {
		idx |= 1
	}
	return quadrantGlyphs[idx]
}
