//go:build !ebiten

package main

import (
	"path/filepath"
	"testing"

	"blockca/internal/app"

	"github.com/stretchr/testify/require"
)

func TestEditRequiresGUIBuild(t *testing.T) {
	_, err := run(t, "--store", filepath.Join(t.TempDir(), "sim.json"), "edit")
	require.ErrorIs(t, err, app.ErrNoGUI)
}
