package core

import (
	"fmt"
	"image/color"
)

// Element is a single cell state of the automaton. Elements are identified by
// their position in the palette, so neither name nor color needs to be unique.
type Element struct {
	Color color.RGBA
	Name  string
}

var (
	// ColorOff is the color of the built-in "Off" element.
	ColorOff = color.RGBA{A: 255}
	// ColorOn is the color of the built-in "On" element.
	ColorOn = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// ColorNew is the color given to freshly appended elements.
	ColorNew = color.RGBA{G: 255, A: 255}
)

// DefaultElementName is the name given to freshly appended elements.
const DefaultElementName = "New element"

// DefaultElement returns the element appended when the palette grows.
func DefaultElement() Element {
	return Element{Color: ColorNew, Name: DefaultElementName}
}

// Block is a 2x2 patch of element indices flattened row-major:
// 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right.
type Block [4]int

// Compare orders blocks lexicographically, returning -1, 0 or +1.
func (b Block) Compare(o Block) int {
	for i := range b {
		switch {
		case b[i] < o[i]:
			return -1
		case b[i] > o[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether b sorts before o.
func (b Block) Less(o Block) bool { return b.Compare(o) < 0 }

// Max returns the largest index in the block.
func (b Block) Max() int {
	m := b[0]
	for _, v := range b[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func (b Block) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", b[0], b[1], b[2], b[3])
}

// Rule maps one input block to the block it becomes.
type Rule struct {
	Input  Block
	Output Block
}

func (r Rule) String() string {
	return fmt.Sprintf("[%s] -> [%s]", r.Input, r.Output)
}
