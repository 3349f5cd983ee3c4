//go:build ebiten

package render

import (
	"image/color"

	"blockca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlockPainter draws 2x2 blocks as scaled swatch grids.
type BlockPainter struct {
	img *ebiten.Image
}

// NewBlockPainter allocates the 2x2 scratch image.
func NewBlockPainter() *BlockPainter {
	return &BlockPainter{img: ebiten.NewImage(2, 2)}
}

// Draw paints b onto dst with its top-left corner at (x, y), each cell
// cell pixels wide.
func (bp *BlockPainter) Draw(dst *ebiten.Image, b core.Block, palette []color.RGBA, x, y, cell int) {
	bp.img.WritePixels(BlockRGBA(b, palette))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell), float64(cell))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(bp.img, op)
}
