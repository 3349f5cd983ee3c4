//go:build !ebiten

package app

import (
	"errors"

	"blockca/internal/config"
	"blockca/internal/core"
	"blockca/internal/ui"
)

// ErrNoGUI is returned when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the editor requires building with the 'ebiten' tag")

// SaveFunc persists the sim being edited.
type SaveFunc func(*core.Sim) error

// Run always fails in the headless build.
func Run(*ui.State, config.EditorConfig, SaveFunc) error {
	return ErrNoGUI
}
