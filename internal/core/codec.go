package core

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// document is the persisted shape of a Sim. Pointer fields distinguish a
// missing field from an empty one so that defaults can be substituted.
type document struct {
	Palette  *[]elementDoc `json:"palette,omitempty"`
	Rules    *[]ruleDoc    `json:"rules,omitempty"`
	Symmetry *symmetryDoc  `json:"symmetry,omitempty"`
}

type elementDoc struct {
	Color [4]uint8 `json:"color"`
	Name  string   `json:"name"`
}

type ruleDoc struct {
	Input  Block `json:"input"`
	Output Block `json:"output"`
}

type symmetryDoc struct {
	Horizontal *bool `json:"horizontal,omitempty"`
}

// DecodeReport lists what Decode had to discard or resolve.
type DecodeReport struct {
	// Dropped holds rules that referenced elements outside the palette.
	Dropped []Rule
	// Conflicts holds mirror disagreements resolved in document order.
	Conflicts []SymmetryConflict
}

// MarshalJSON writes the document form with rules sorted by input.
func (s *Sim) MarshalJSON() ([]byte, error) {
	elems := make([]elementDoc, 0, s.palette.Len())
	for _, e := range s.palette.elements {
		elems = append(elems, elementDoc{
			Color: [4]uint8{e.Color.R, e.Color.G, e.Color.B, e.Color.A},
			Name:  e.Name,
		})
	}
	rules := make([]ruleDoc, 0, s.rules.Len())
	for _, r := range s.rules.Rules() {
		rules = append(rules, ruleDoc{Input: r.Input, Output: r.Output})
	}
	horizontal := s.Symmetry().Horizontal
	return json.Marshal(document{
		Palette:  &elems,
		Rules:    &rules,
		Symmetry: &symmetryDoc{Horizontal: &horizontal},
	})
}

// Decode parses a persisted document. Missing fields take their defaults and
// unknown fields are ignored. Rules that reference missing elements are
// dropped rather than failing the load.
func Decode(data []byte) (*Sim, DecodeReport, error) {
	var report DecodeReport
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, report, fmt.Errorf("decode sim: %w", err)
	}

	palette := DefaultPalette()
	if doc.Palette != nil {
		elems := make([]Element, 0, len(*doc.Palette))
		for _, e := range *doc.Palette {
			elems = append(elems, Element{
				Color: color.RGBA{R: e.Color[0], G: e.Color[1], B: e.Color[2], A: e.Color[3]},
				Name:  e.Name,
			})
		}
		palette = NewPalette(elems...)
	}

	sym := DefaultSymmetry()
	if doc.Symmetry != nil && doc.Symmetry.Horizontal != nil {
		sym.Horizontal = *doc.Symmetry.Horizontal
	}

	s := NewSim(palette, sym)
	if doc.Rules != nil {
		for _, r := range *doc.Rules {
			conflict, err := s.SetRule(r.Input, r.Output)
			if err != nil {
				report.Dropped = append(report.Dropped, Rule{Input: r.Input, Output: r.Output})
				continue
			}
			if conflict != nil {
				report.Conflicts = append(report.Conflicts, *conflict)
			}
		}
	}
	return s, report, nil
}
