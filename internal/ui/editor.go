//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"blockca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Editor draws the palette, symmetry toggle and rule table, and turns mouse
// clicks into commands on its State.
type Editor struct {
	state   *State
	width   int
	height  int
	panel   *ebiten.Image
	pixel   *ebiten.Image
	painter *render.BlockPainter
	hits    []Hit

	cursorX, cursorY int
}

// NewEditor constructs an editor panel of the given width.
func NewEditor(state *State, width int) *Editor {
	if width <= 0 {
		width = 320
	}
	e := &Editor{state: state, width: width, painter: render.NewBlockPainter()}
	e.pixel = ebiten.NewImage(1, 1)
	e.pixel.Fill(color.White)
	e.hits = Layout(state, width)
	return e
}

// State returns the editor state.
func (e *Editor) State() *State { return e.state }

// Size returns the space the panel currently needs.
func (e *Editor) Size() (int, int) { return e.width, PanelHeight(e.hits) }

// Update handles input for this frame.
func (e *Editor) Update() {
	e.hits = Layout(e.state, e.width)
	e.cursorX, e.cursorY = ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.state.Click(e.hits, e.cursorX, e.cursorY)
		e.hits = Layout(e.state, e.width)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.state.Close()
	}
}

// Draw paints the panel onto screen.
func (e *Editor) Draw(screen *ebiten.Image) {
	_, height := e.Size()
	if e.panel == nil || e.height != height {
		e.panel = ebiten.NewImage(e.width, height)
		e.height = height
	}
	e.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	elems := e.state.Sim().Elements()
	palette := render.PaletteColors(elems)
	open, hasOpen := e.state.OpenSlot()
	face := basicfont.Face7x13
	textColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	var hover *Hit
	if h, ok := HitAt(e.hits, e.cursorX, e.cursorY); ok && (h.Kind == HitSwatch || h.Kind == HitChoice) {
		hover = &h
	}

	for _, h := range e.hits {
		switch h.Kind {
		case HitLabel:
			text.Draw(e.panel, h.Label, face, h.Rect.Min.X, h.Rect.Min.Y+labelBaseline, textColor)
		case HitSwatch:
			e.fillRect(h.Rect, palette[h.Index])
			text.Draw(e.panel, h.Label, face, h.Rect.Max.X+buttonGap, h.Rect.Min.Y+labelBaseline, textColor)
		case HitCell:
			if h.Slot.Cell == 0 {
				if b, ok := e.state.Block(h.Slot.Row, h.Slot.Side); ok {
					e.painter.Draw(e.panel, b, palette, h.Rect.Min.X, h.Rect.Min.Y, cellSize)
				}
			}
			if hasOpen && open == h.Slot {
				e.strokeRect(h.Rect, color.RGBA{R: 255, G: 200, B: 0, A: 255})
			}
		case HitChoice:
			e.fillRect(h.Rect.Inset(-popupPadding/2), color.RGBA{R: 54, G: 56, B: 64, A: 255})
			e.fillRect(h.Rect, palette[h.Index])
		default:
			e.drawButton(h.Rect, h.Label)
		}
	}
	if hover != nil {
		text.Draw(e.panel, hover.Label, face, e.cursorX+12, e.cursorY+4, color.RGBA{R: 255, G: 255, B: 200, A: 255})
	}

	screen.DrawImage(e.panel, nil)
}

func (e *Editor) fillRect(rect image.Rectangle, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	e.panel.DrawImage(e.pixel, op)
}

func (e *Editor) strokeRect(rect image.Rectangle, c color.Color) {
	e.fillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1), c)
	e.fillRect(image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y), c)
	e.fillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), c)
	e.fillRect(image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}

func (e *Editor) drawButton(rect image.Rectangle, label string) {
	e.fillRect(rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(e.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
