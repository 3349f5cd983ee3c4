package ui

import (
	"fmt"
	"image"
)

// HitKind says what a region on screen does when clicked.
type HitKind int

const (
	// HitLabel is text only.
	HitLabel HitKind = iota
	HitSwatch
	HitAddElement
	HitRemoveElement
	HitSymmetry
	HitCell
	HitRemoveRule
	HitCommitDraft
	HitChoice
)

// Hit is one laid-out region of the editor panel.
type Hit struct {
	Kind  HitKind
	Rect  image.Rectangle
	Label string
	// Slot is set for HitCell.
	Slot Slot
	// Index is the element for HitSwatch, HitRemoveElement and HitChoice, or
	// the rule row for HitRemoveRule.
	Index int
}

const (
	panelPadding = 12
	lineHeight   = 26
	sectionGap   = 14
	swatchSize   = 20
	buttonSize   = 20
	buttonGap    = 6
	cellSize     = 20
	blockSize    = 2 * cellSize
	arrowWidth   = 36
	ruleHeight   = blockSize + 8
	popupPadding = 4

	// labelBaseline is the text baseline offset inside a lineHeight row.
	labelBaseline = 15
)

// Layout positions every element of the editor for a panel of the given
// width. The selector popup, if open, comes last so it is drawn on top and
// hit first.
func Layout(s *State, width int) []Hit {
	var hits []Hit
	y := panelPadding
	label := func(text string) {
		hits = append(hits, Hit{Kind: HitLabel, Rect: image.Rect(panelPadding, y, width-panelPadding, y+lineHeight), Label: text})
		y += lineHeight
	}
	button := func(kind HitKind, x int, text string, index int) Hit {
		w := max(buttonSize, 8*len(text)+8)
		return Hit{Kind: kind, Rect: image.Rect(x, y, x+w, y+buttonSize), Label: text, Index: index}
	}

	label("Elements")
	for i, e := range s.sim.Elements() {
		hits = append(hits,
			Hit{Kind: HitSwatch, Rect: image.Rect(panelPadding, y, panelPadding+swatchSize, y+swatchSize), Label: e.Name, Index: i},
			button(HitRemoveElement, width-panelPadding-buttonSize, "x", i),
		)
		y += lineHeight
	}
	hits = append(hits, button(HitAddElement, panelPadding, "+", 0))
	y += lineHeight + sectionGap

	label("Symmetry")
	box := "[ ] Horizontal"
	if s.sim.Symmetry().Horizontal {
		box = "[x] Horizontal"
	}
	hits = append(hits, button(HitSymmetry, panelPadding, box, 0))
	y += lineHeight + sectionGap

	label(fmt.Sprintf("Rules (%d)", s.sim.RuleCount()))
	cells := map[Slot]image.Rectangle{}
	ruleRow := func(row int) {
		x := panelPadding
		for side, sx := range []int{x, x + blockSize + arrowWidth} {
			for c := 0; c < 4; c++ {
				slot := Slot{Row: row, Side: Side(side), Cell: c}
				r := cellRect(sx, y, c)
				cells[slot] = r
				hits = append(hits, Hit{Kind: HitCell, Rect: r, Slot: slot})
			}
		}
		hits = append(hits, Hit{Kind: HitLabel, Rect: image.Rect(x+blockSize, y, x+blockSize+arrowWidth, y+blockSize), Label: "->"})
	}
	for row := range s.sim.Rules() {
		ruleRow(row)
		bx := panelPadding + 2*blockSize + arrowWidth + buttonGap
		hits = append(hits, Hit{Kind: HitRemoveRule, Rect: image.Rect(bx, y, bx+buttonSize, y+buttonSize), Label: "x", Index: row})
		y += ruleHeight
	}
	ruleRow(DraftRow)
	bx := panelPadding + 2*blockSize + arrowWidth + buttonGap
	hits = append(hits, Hit{Kind: HitCommitDraft, Rect: image.Rect(bx, y, bx+4*buttonSize, y+buttonSize), Label: "Add"})
	y += ruleHeight

	if status := s.Status(); status != "" {
		label(status)
	}

	if slot, ok := s.OpenSlot(); ok {
		if anchor, found := cells[slot]; found {
			hits = append(hits, popupHits(s, anchor)...)
		}
	}
	return hits
}

func popupHits(s *State, anchor image.Rectangle) []Hit {
	var hits []Hit
	x := anchor.Min.X
	y := anchor.Max.Y + popupPadding
	for i, e := range s.sim.Elements() {
		hits = append(hits, Hit{
			Kind:  HitChoice,
			Rect:  image.Rect(x, y, x+swatchSize, y+swatchSize),
			Label: e.Name,
			Index: i,
		})
		x += swatchSize + popupPadding
	}
	return hits
}

func cellRect(x, y, cell int) image.Rectangle {
	cx := x + (cell%2)*cellSize
	cy := y + (cell/2)*cellSize
	return image.Rect(cx, cy, cx+cellSize, cy+cellSize)
}

// PanelHeight returns the height the laid-out hits need.
func PanelHeight(hits []Hit) int {
	h := 0
	for _, hit := range hits {
		h = max(h, hit.Rect.Max.Y)
	}
	return h + panelPadding
}

// HitAt returns the topmost interactive region containing (x, y).
func HitAt(hits []Hit, x, y int) (Hit, bool) {
	for i := len(hits) - 1; i >= 0; i-- {
		h := hits[i]
		if h.Kind == HitLabel {
			continue
		}
		if pointInRect(x, y, h.Rect) {
			return h, true
		}
	}
	return Hit{}, false
}

// Click translates a press at (x, y) into an editor command. Clicking
// outside an open selector closes it.
func (s *State) Click(hits []Hit, x, y int) {
	h, ok := HitAt(hits, x, y)
	if !ok {
		s.Close()
		return
	}
	if h.Kind != HitChoice && h.Kind != HitCell {
		s.Close()
	}
	switch h.Kind {
	case HitAddElement:
		s.AddElement()
	case HitRemoveElement:
		_ = s.RemoveElement(h.Index)
	case HitSymmetry:
		s.ToggleHorizontal()
	case HitCell:
		s.Open(h.Slot)
	case HitRemoveRule:
		_ = s.RemoveRule(h.Index)
	case HitCommitDraft:
		_ = s.CommitDraft()
	case HitChoice:
		_ = s.Choose(h.Index)
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
