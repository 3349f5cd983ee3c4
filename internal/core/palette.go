package core

// Palette is the ordered list of elements. An element's index is its identity.
type Palette struct {
	elements []Element
}

// DefaultPalette returns the built-in two element palette.
func DefaultPalette() *Palette {
	return &Palette{elements: []Element{
		{Color: ColorOff, Name: "Off"},
		{Color: ColorOn, Name: "On"},
	}}
}

// NewPalette builds a palette holding a copy of elems.
func NewPalette(elems ...Element) *Palette {
	return &Palette{elements: append([]Element(nil), elems...)}
}

// Len returns the number of elements.
func (p *Palette) Len() int { return len(p.elements) }

// Elements exposes a copy of the element list.
func (p *Palette) Elements() []Element {
	return append([]Element(nil), p.elements...)
}

// Valid reports whether idx refers to an element.
func (p *Palette) Valid(idx int) bool { return idx >= 0 && idx < len(p.elements) }

// Get returns the element at idx.
func (p *Palette) Get(idx int) (Element, error) {
	if !p.Valid(idx) {
		return Element{}, &IndexError{Index: idx, Len: len(p.elements)}
	}
	return p.elements[idx], nil
}

// Set replaces the element at idx.
func (p *Palette) Set(idx int, e Element) error {
	if !p.Valid(idx) {
		return &IndexError{Index: idx, Len: len(p.elements)}
	}
	p.elements[idx] = e
	return nil
}

// Resize grows the palette with default elements or truncates it to n.
// Negative sizes are treated as zero.
func (p *Palette) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(p.elements) {
		clear(p.elements[n:])
		p.elements = p.elements[:n]
		return
	}
	for len(p.elements) < n {
		p.elements = append(p.elements, DefaultElement())
	}
}

// Add appends a default element and returns its index.
func (p *Palette) Add() int {
	p.Resize(len(p.elements) + 1)
	return len(p.elements) - 1
}

// Remove deletes the element at idx; later elements shift down by one.
func (p *Palette) Remove(idx int) error {
	if !p.Valid(idx) {
		return &IndexError{Index: idx, Len: len(p.elements)}
	}
	p.elements = append(p.elements[:idx], p.elements[idx+1:]...)
	return nil
}

// ValidBlock returns an *IndexError for the first index of b outside the palette.
func (p *Palette) ValidBlock(b Block) error {
	for _, idx := range b {
		if !p.Valid(idx) {
			return &IndexError{Index: idx, Len: len(p.elements)}
		}
	}
	return nil
}
