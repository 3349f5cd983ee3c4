//go:build ebiten

package app

import (
	"errors"

	"blockca/internal/config"
	"blockca/internal/core"
	"blockca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const minHeight = 480

// SaveFunc persists the sim being edited.
type SaveFunc func(*core.Sim) error

// Game adapts the rule editor to the ebiten.Game interface.
type Game struct {
	editor *ui.Editor
	save   SaveFunc
}

// New constructs a Game editing state. save may be nil.
func New(state *ui.State, width int, save SaveFunc) *Game {
	return &Game{editor: ui.NewEditor(state, width), save: save}
}

// Update handles global shortcuts, then the editor panel.
func (g *Game) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	state := g.editor.State()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Save()
	}
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyH) {
		state.ToggleHorizontal()
	}
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		state.AddElement()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		_ = state.CommitDraft()
	}
	g.editor.Update()
	return nil
}

// Save runs the save callback and reports the outcome in the status line.
func (g *Game) Save() {
	if g.save == nil {
		return
	}
	g.editor.State().Report(g.save(g.editor.State().Sim()), "saved")
}

// Draw renders the editor.
func (g *Game) Draw(screen *ebiten.Image) {
	g.editor.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.editor.Size()
	return w, max(h, minHeight)
}

// Run opens the editor window and blocks until it is closed.
func Run(state *ui.State, cfg config.EditorConfig, save SaveFunc) error {
	game := New(state, cfg.Width, save)
	w, h := game.editor.Size()

	ebiten.SetWindowTitle("blockca rule editor")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, max(h, minHeight)*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if save != nil {
		return save(state.Sim())
	}
	return nil
}
