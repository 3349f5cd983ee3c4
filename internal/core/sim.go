package core

import "iter"

// Sim is the unit an editor works on and the unit that gets persisted: a
// palette plus a rule table that never references an element outside it.
type Sim struct {
	palette *Palette
	rules   *RuleTable
}

// New returns the built-in default: Off/On palette, no rules and horizontal
// symmetry enabled.
func New() *Sim {
	return NewSim(DefaultPalette(), DefaultSymmetry())
}

// NewSim builds an empty rule table around p.
func NewSim(p *Palette, sym Symmetry) *Sim {
	if p == nil {
		p = DefaultPalette()
	}
	return &Sim{palette: p, rules: NewRuleTable(sym)}
}

// Len returns the palette size.
func (s *Sim) Len() int { return s.palette.Len() }

// Elements returns a copy of the palette.
func (s *Sim) Elements() []Element { return s.palette.Elements() }

// Element returns the element at idx.
func (s *Sim) Element(idx int) (Element, error) { return s.palette.Get(idx) }

// SetElement replaces the name and color of the element at idx.
func (s *Sim) SetElement(idx int, e Element) error { return s.palette.Set(idx, e) }

// AddElement appends a default element and returns its index.
func (s *Sim) AddElement() int { return s.palette.Add() }

// ResizePalette grows or shrinks the palette to n elements. Rules that
// reference a removed element are dropped and returned.
func (s *Sim) ResizePalette(n int) []Rule {
	s.palette.Resize(n)
	size := s.palette.Len()
	return s.rules.Retain(func(r Rule) (Rule, bool) {
		return r, r.Input.Max() < size && r.Output.Max() < size
	})
}

// RemoveElement deletes the element at idx. Rules that use it are dropped
// and returned; indices above idx shift down by one in the surviving rules.
func (s *Sim) RemoveElement(idx int) ([]Rule, error) {
	if err := s.palette.Remove(idx); err != nil {
		return nil, err
	}
	shift := func(b Block) (Block, bool) {
		for i, v := range b {
			switch {
			case v == idx:
				return b, false
			case v > idx:
				b[i] = v - 1
			}
		}
		return b, true
	}
	return s.rules.Retain(func(r Rule) (Rule, bool) {
		in, ok := shift(r.Input)
		if !ok {
			return r, false
		}
		out, ok := shift(r.Output)
		if !ok {
			return r, false
		}
		return Rule{Input: in, Output: out}, true
	}), nil
}

// SetRule maps in to out. Nothing is written when either block references
// an element outside the palette. A non-nil conflict means the write
// replaced a disagreeing mirrored rule.
func (s *Sim) SetRule(in, out Block) (*SymmetryConflict, error) {
	if err := s.palette.ValidBlock(in); err != nil {
		return nil, err
	}
	if err := s.palette.ValidBlock(out); err != nil {
		return nil, err
	}
	return s.rules.Set(in, out), nil
}

// RemoveRule deletes the rule for in, if any.
func (s *Sim) RemoveRule(in Block) { s.rules.Remove(in) }

// Lookup resolves in through the rule table.
func (s *Sim) Lookup(in Block) (Block, bool) { return s.rules.Lookup(in) }

// Rules returns the stored rules sorted by input.
func (s *Sim) Rules() []Rule { return s.rules.Rules() }

// RuleCount returns the number of stored rules.
func (s *Sim) RuleCount() int { return s.rules.Len() }

// AllRules iterates the stored rules in unspecified order.
func (s *Sim) AllRules() iter.Seq2[Block, Block] { return s.rules.All() }

// ExpandedRules iterates every input the table resolves, mirrors included.
func (s *Sim) ExpandedRules() iter.Seq2[Block, Block] { return s.rules.Expanded() }

// Symmetry returns the enabled axes.
func (s *Sim) Symmetry() Symmetry { return s.rules.Symmetry() }

// SetSymmetry turns axis on or off, returning conflicts found while merging
// mirror pairs.
func (s *Sim) SetSymmetry(axis Axis, on bool) []SymmetryConflict {
	return s.rules.SetSymmetry(s.rules.Symmetry().With(axis, on))
}

// ToggleSymmetry flips axis.
func (s *Sim) ToggleSymmetry(axis Axis) []SymmetryConflict {
	return s.SetSymmetry(axis, !s.Symmetry().Enabled(axis))
}

// Check verifies that every rule references elements inside the palette.
func (s *Sim) Check() error {
	for in, out := range s.rules.All() {
		if err := s.palette.ValidBlock(in); err != nil {
			return err
		}
		if err := s.palette.ValidBlock(out); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent deep copy.
func (s *Sim) Clone() *Sim {
	return &Sim{palette: NewPalette(s.palette.elements...), rules: s.rules.Clone()}
}
