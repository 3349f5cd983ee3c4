package ui

import (
	"errors"
	"fmt"

	"blockca/internal/core"
)

// Side selects the input or output half of a rule row.
type Side int

const (
	SideInput Side = iota
	SideOutput
)

func (s Side) String() string {
	if s == SideOutput {
		return "output"
	}
	return "input"
}

// DraftRow addresses the "new rule" row below the stored rules.
const DraftRow = -1

// Slot identifies one cell of one block on screen. It keys the element
// selector popup.
type Slot struct {
	Row  int
	Side Side
	Cell int
}

// Row is the render view of one stored rule.
type Row struct {
	Rule   core.Rule
	Input  [4]core.Element
	Output [4]core.Element
	// Err is set when a cell references an element that no longer exists.
	Err error
}

var errNoSelector = errors.New("no element selector is open")

// ErrInputTaken is returned when re-keying a rule onto an input another rule
// already answers.
var ErrInputTaken = errors.New("input already has a rule")

// State holds everything the editor needs between frames. Only the Sim is
// model state; the open popup, the draft rule and the status line are never
// persisted.
type State struct {
	sim *core.Sim

	open    Slot
	hasOpen bool

	draft  core.Rule
	status string
}

// NewState wraps sim for editing.
func NewState(sim *core.Sim) *State {
	if sim == nil {
		sim = core.New()
	}
	return &State{sim: sim}
}

// Sim returns the model being edited.
func (s *State) Sim() *core.Sim { return s.sim }

// Status returns the last message produced by a command.
func (s *State) Status() string { return s.status }

// Draft returns the rule being composed in the new-rule row.
func (s *State) Draft() core.Rule { return s.draft }

// Open shows the element selector for slot. Opening the slot that is already
// open closes it.
func (s *State) Open(slot Slot) {
	if s.hasOpen && s.open == slot {
		s.Close()
		return
	}
	s.open, s.hasOpen = slot, true
}

// Close hides the element selector.
func (s *State) Close() { s.hasOpen = false }

// OpenSlot returns the slot whose selector is showing.
func (s *State) OpenSlot() (Slot, bool) { return s.open, s.hasOpen }

// Choose assigns element idx to the open slot and closes the selector.
// Changing an input cell re-keys the rule; changing an output cell
// overwrites its output.
func (s *State) Choose(idx int) error {
	if !s.hasOpen {
		return errNoSelector
	}
	slot := s.open
	s.Close()
	if _, err := s.sim.Element(idx); err != nil {
		return s.fail(err)
	}
	if slot.Cell < 0 || slot.Cell > 3 {
		return s.fail(fmt.Errorf("cell %d out of range", slot.Cell))
	}

	if slot.Row == DraftRow {
		if slot.Side == SideInput {
			s.draft.Input[slot.Cell] = idx
		} else {
			s.draft.Output[slot.Cell] = idx
		}
		s.status = ""
		return nil
	}

	rules := s.sim.Rules()
	if slot.Row < 0 || slot.Row >= len(rules) {
		return s.fail(fmt.Errorf("rule row %d no longer exists", slot.Row))
	}
	r := rules[slot.Row]
	if slot.Side == SideOutput {
		r.Output[slot.Cell] = idx
		return s.apply(r)
	}

	old := r
	r.Input[slot.Cell] = idx
	if s.sameRule(old.Input, r.Input) {
		return s.apply(r)
	}
	if out, taken := s.sim.Lookup(r.Input); taken {
		return s.fail(fmt.Errorf("%w: %s", ErrInputTaken, core.Rule{Input: r.Input, Output: out}))
	}
	s.sim.RemoveRule(old.Input)
	if err := s.apply(r); err != nil {
		_, _ = s.sim.SetRule(old.Input, old.Output)
		return err
	}
	return nil
}

// CommitDraft stores the draft rule.
func (s *State) CommitDraft() error {
	return s.apply(s.draft)
}

// RemoveRule deletes the rule shown in row.
func (s *State) RemoveRule(row int) error {
	rules := s.sim.Rules()
	if row < 0 || row >= len(rules) {
		return s.fail(fmt.Errorf("rule row %d no longer exists", row))
	}
	s.Close()
	s.sim.RemoveRule(rules[row].Input)
	s.status = fmt.Sprintf("removed rule %s", rules[row])
	return nil
}

// AddElement appends a default element.
func (s *State) AddElement() int {
	idx := s.sim.AddElement()
	s.status = fmt.Sprintf("added element %d", idx)
	return idx
}

// RemoveElement deletes the element at idx and reports dropped rules.
func (s *State) RemoveElement(idx int) error {
	dropped, err := s.sim.RemoveElement(idx)
	if err != nil {
		return s.fail(err)
	}
	s.Close()
	s.draft = core.Rule{Input: shiftDraft(s.draft.Input, idx), Output: shiftDraft(s.draft.Output, idx)}
	s.status = fmt.Sprintf("removed element %d, dropped %d rule(s)", idx, len(dropped))
	return nil
}

// ResizePalette sets the palette size and reports dropped rules.
func (s *State) ResizePalette(n int) {
	dropped := s.sim.ResizePalette(n)
	s.Close()
	last := s.sim.Len() - 1
	for i := range s.draft.Input {
		s.draft.Input[i] = min(s.draft.Input[i], max(last, 0))
		s.draft.Output[i] = min(s.draft.Output[i], max(last, 0))
	}
	s.status = fmt.Sprintf("palette has %d element(s), dropped %d rule(s)", s.sim.Len(), len(dropped))
}

// SetElement renames or recolors the element at idx.
func (s *State) SetElement(idx int, e core.Element) error {
	if err := s.sim.SetElement(idx, e); err != nil {
		return s.fail(err)
	}
	return nil
}

// ToggleHorizontal flips horizontal symmetry.
func (s *State) ToggleHorizontal() {
	conflicts := s.sim.ToggleSymmetry(core.AxisHorizontal)
	s.status = fmt.Sprintf("symmetry: %s", s.sim.Symmetry())
	if len(conflicts) > 0 {
		s.status += fmt.Sprintf(", %d mirrored rule(s) overridden", len(conflicts))
	}
}

// Rows resolves every stored rule into elements for drawing.
func (s *State) Rows() []Row {
	rules := s.sim.Rules()
	rows := make([]Row, len(rules))
	for i, r := range rules {
		rows[i].Rule = r
		for c := 0; c < 4; c++ {
			var err error
			if rows[i].Input[c], err = s.sim.Element(r.Input[c]); err != nil && rows[i].Err == nil {
				rows[i].Err = err
			}
			if rows[i].Output[c], err = s.sim.Element(r.Output[c]); err != nil && rows[i].Err == nil {
				rows[i].Err = err
			}
		}
	}
	return rows
}

func (s *State) apply(r core.Rule) error {
	conflict, err := s.sim.SetRule(r.Input, r.Output)
	if err != nil {
		return s.fail(err)
	}
	s.status = fmt.Sprintf("set rule %s", r)
	if conflict != nil {
		s.status = conflict.Error()
	}
	return nil
}

// Report sets the status line to ok, or to err when it is non-nil.
func (s *State) Report(err error, ok string) {
	if err != nil {
		s.status = err.Error()
		return
	}
	s.status = ok
}

// sameRule reports whether a and b address the same stored rule under the
// active symmetry.
func (s *State) sameRule(a, b core.Block) bool {
	if s.sim.Symmetry().Horizontal {
		return core.CanonicalKey(a) == core.CanonicalKey(b)
	}
	return a == b
}

func (s *State) fail(err error) error {
	s.status = err.Error()
	return err
}

func shiftDraft(b core.Block, removed int) core.Block {
	for i, v := range b {
		switch {
		case v == removed:
			b[i] = 0
		case v > removed:
			b[i] = v - 1
		}
	}
	return b
}

// Block returns the block drawn for row and side; DraftRow reads the draft.
func (s *State) Block(row int, side Side) (core.Block, bool) {
	var r core.Rule
	if row == DraftRow {
		r = s.draft
	} else {
		rules := s.sim.Rules()
		if row < 0 || row >= len(rules) {
			return core.Block{}, false
		}
		r = rules[row]
	}
	if side == SideOutput {
		return r.Output, true
	}
	return r.Input, true
}
