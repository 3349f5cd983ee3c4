package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"blockca/internal/core"
)

// parseBlock reads a block written "a,b,c,d" in row-major order.
func parseBlock(s string) (core.Block, error) {
	var b core.Block
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return b, fmt.Errorf("block %q: want 4 comma separated indices", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return b, fmt.Errorf("block %q: %w", s, err)
		}
		if v < 0 {
			return b, fmt.Errorf("block %q: negative index %d", s, v)
		}
		b[i] = v
	}
	return b, nil
}

// parseIndex reads a non-negative element index or count.
func parseIndex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("index %q: must not be negative", s)
	}
	return v, nil
}

// parseColor reads #rrggbb or #rrggbbaa. Alpha defaults to opaque.
func parseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func formatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
