package main

import (
	"image/color"
	"testing"

	"blockca/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlock(t *testing.T) {
	b, err := parseBlock("0, 1,2 ,3")
	require.NoError(t, err)
	assert.Equal(t, core.Block{0, 1, 2, 3}, b)

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5", "a,0,0,0", "0,0,0,-1"} {
		_, err := parseBlock(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseIndex(t *testing.T) {
	v, err := parseIndex("7")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = parseIndex("-1")
	assert.Error(t, err)
	_, err = parseIndex("x")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, A: 0xff}, c)

	c, err = parseColor("10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	for _, bad := range []string{"", "#fff", "#gg0000", "#1234567"} {
		_, err := parseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#00ff00", "#12345678"} {
		c, err := parseColor(s)
		require.NoError(t, err)
		assert.Equal(t, s, formatColor(c))
	}
}
