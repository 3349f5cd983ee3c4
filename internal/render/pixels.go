package render

import (
	"image/color"

	"blockca/internal/core"
)

// PaletteColors extracts the swatch color of every element.
func PaletteColors(elems []core.Element) []color.RGBA {
	out := make([]color.RGBA, len(elems))
	for i, e := range elems {
		out[i] = e.Color
	}
	return out
}

// BlockRGBA returns the 2x2 RGBA pixels of b.
func BlockRGBA(b core.Block, palette []color.RGBA) []byte {
	buf := make([]byte, 4*len(b))
	fillPaletteRGBA(buf, b[:], palette)
	return buf
}

// fillPaletteRGBA converts element indices into RGBA pixels using a palette.
// Indices past the end clamp to the last color and negative ones to the
// first. When the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []int, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, idx := range cells {
		switch {
		case idx > last:
			idx = last
		case idx < 0:
			idx = 0
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
