package ui

import (
	"errors"
	"testing"

	"blockca/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTogglesSelector(t *testing.T) {
	s := NewState(core.New())
	slot := Slot{Row: DraftRow, Side: SideInput, Cell: 2}

	s.Open(slot)
	got, ok := s.OpenSlot()
	require.True(t, ok)
	assert.Equal(t, slot, got)

	s.Open(slot)
	_, ok = s.OpenSlot()
	assert.False(t, ok)
}

func TestChooseWithoutSelector(t *testing.T) {
	s := NewState(core.New())
	assert.Error(t, s.Choose(1))
}

func TestComposeAndCommitDraft(t *testing.T) {
	s := NewState(core.New())
	for cell, idx := range (core.Block{1, 0, 1, 0}) {
		s.Open(Slot{Row: DraftRow, Side: SideInput, Cell: cell})
		require.NoError(t, s.Choose(idx))
	}
	for cell, idx := range (core.Block{0, 0, 1, 1}) {
		s.Open(Slot{Row: DraftRow, Side: SideOutput, Cell: cell})
		require.NoError(t, s.Choose(idx))
	}
	assert.Equal(t, core.Rule{Input: core.Block{1, 0, 1, 0}, Output: core.Block{0, 0, 1, 1}}, s.Draft())

	require.NoError(t, s.CommitDraft())
	out, ok := s.Sim().Lookup(core.Block{0, 1, 0, 1})
	require.True(t, ok)
	assert.Equal(t, core.Block{0, 0, 1, 1}, out)
	assert.Contains(t, s.Status(), "set rule")
}

func TestChooseUnknownElementReportsIndexError(t *testing.T) {
	s := NewState(core.New())
	s.Open(Slot{Row: DraftRow, Side: SideInput, Cell: 0})
	err := s.Choose(5)
	assert.ErrorIs(t, err, core.ErrIndex)
	assert.Contains(t, s.Status(), "out of range")
	_, ok := s.OpenSlot()
	assert.False(t, ok)
}

func TestChooseOutputCellOverwrites(t *testing.T) {
	sim := core.New()
	_, err := sim.SetRule(core.Block{1, 1, 0, 0}, core.Block{0, 0, 0, 0})
	require.NoError(t, err)
	s := NewState(sim)

	s.Open(Slot{Row: 0, Side: SideOutput, Cell: 3})
	require.NoError(t, s.Choose(1))

	out, _ := sim.Lookup(core.Block{1, 1, 0, 0})
	assert.Equal(t, core.Block{0, 0, 0, 1}, out)
	assert.Equal(t, 1, sim.RuleCount())
}

func TestChooseInputCellRekeys(t *testing.T) {
	sim := core.New()
	_, err := sim.SetRule(core.Block{1, 1, 0, 0}, core.Block{0, 0, 1, 1})
	require.NoError(t, err)
	s := NewState(sim)

	s.Open(Slot{Row: 0, Side: SideInput, Cell: 2})
	require.NoError(t, s.Choose(1))

	_, ok := sim.Lookup(core.Block{1, 1, 0, 0})
	assert.False(t, ok, "old input no longer resolves")
	out, ok := sim.Lookup(core.Block{1, 1, 1, 0})
	require.True(t, ok)
	assert.Equal(t, core.Block{0, 0, 1, 1}, out)
}

func TestChooseInputCellRefusesTakenInput(t *testing.T) {
	sim := core.New()
	sim.SetSymmetry(core.AxisHorizontal, false)
	_, err := sim.SetRule(core.Block{0, 0, 0, 0}, core.Block{1, 1, 1, 1})
	require.NoError(t, err)
	_, err = sim.SetRule(core.Block{1, 0, 0, 0}, core.Block{0, 0, 0, 1})
	require.NoError(t, err)
	s := NewState(sim)
	before := sim.Rules()

	s.Open(Slot{Row: 1, Side: SideInput, Cell: 0})
	err = s.Choose(0)
	require.ErrorIs(t, err, ErrInputTaken)
	assert.Contains(t, s.Status(), "[0,0,0,0] -> [1,1,1,1]")
	assert.Equal(t, before, sim.Rules(), "neither rule may change")
}

func TestChooseInputCellRefusesTakenMirror(t *testing.T) {
	sim := core.New()
	_, err := sim.SetRule(core.Block{0, 1, 0, 0}, core.Block{1, 1, 1, 1})
	require.NoError(t, err)
	_, err = sim.SetRule(core.Block{1, 1, 0, 0}, core.Block{0, 0, 0, 1})
	require.NoError(t, err)
	s := NewState(sim)
	before := sim.Rules()

	// row 1 is [1,1,0,0]; clearing its second cell lands on [1,0,0,0],
	// the mirror of the stored [0,1,0,0]
	require.Equal(t, core.Block{1, 1, 0, 0}, before[1].Input)
	s.Open(Slot{Row: 1, Side: SideInput, Cell: 1})
	require.ErrorIs(t, s.Choose(0), ErrInputTaken)
	assert.Equal(t, before, sim.Rules())
}

func TestChooseInputCellMovesToFreeInput(t *testing.T) {
	sim := core.New()
	_, err := sim.SetRule(core.Block{1, 0, 0, 0}, core.Block{1, 0, 0, 0})
	require.NoError(t, err)
	s := NewState(sim)

	s.Open(Slot{Row: 0, Side: SideInput, Cell: 1})
	require.NoError(t, s.Choose(1))
	assert.Equal(t, 1, sim.RuleCount())
	out, ok := sim.Lookup(core.Block{1, 1, 0, 0})
	require.True(t, ok)
	assert.Equal(t, core.Block{1, 0, 0, 0}, out)

	// choosing the element already there rewrites the same rule
	s.Open(Slot{Row: 0, Side: SideInput, Cell: 0})
	require.NoError(t, s.Choose(1))
	assert.Equal(t, 1, sim.RuleCount())
}

func TestCommitDraftReportsConflict(t *testing.T) {
	sim := core.New()
	_, err := sim.SetRule(core.Block{1, 0, 1, 0}, core.Block{0, 0, 1, 1})
	require.NoError(t, err)
	s := NewState(sim)

	for cell, idx := range (core.Block{0, 1, 0, 1}) {
		s.Open(Slot{Row: DraftRow, Side: SideInput, Cell: cell})
		require.NoError(t, s.Choose(idx))
	}
	s.Open(Slot{Row: DraftRow, Side: SideOutput, Cell: 0})
	require.NoError(t, s.Choose(1))

	require.NoError(t, s.CommitDraft())
	assert.Contains(t, s.Status(), "symmetry conflict")
}

func TestRemoveElementFixesDraftAndDropsRules(t *testing.T) {
	sim := core.New()
	sim.ResizePalette(3)
	_, err := sim.SetRule(core.Block{2, 2, 2, 2}, core.Block{0, 0, 0, 0})
	require.NoError(t, err)
	s := NewState(sim)
	s.Open(Slot{Row: DraftRow, Side: SideInput, Cell: 0})
	require.NoError(t, s.Choose(2))
	s.Open(Slot{Row: DraftRow, Side: SideInput, Cell: 1})
	require.NoError(t, s.Choose(1))

	require.NoError(t, s.RemoveElement(1))
	assert.Equal(t, core.Block{1, 0, 0, 0}, s.Draft().Input)
	assert.Equal(t, 1, sim.RuleCount(), "rule on element 2 survives shifted")
	assert.Contains(t, s.Status(), "dropped 0 rule(s)")

	require.NoError(t, s.RemoveElement(1))
	assert.Equal(t, 0, sim.RuleCount())
	assert.Equal(t, core.Block{0, 0, 0, 0}, s.Draft().Input)
	assert.Contains(t, s.Status(), "dropped 1 rule(s)")
}

func TestResizePaletteClampsDraft(t *testing.T) {
	sim := core.New()
	sim.ResizePalette(4)
	s := NewState(sim)
	s.Open(Slot{Row: DraftRow, Side: SideOutput, Cell: 0})
	require.NoError(t, s.Choose(3))

	s.ResizePalette(2)
	assert.Equal(t, core.Block{1, 0, 0, 0}, s.Draft().Output)
}

func TestRemoveRuleByRow(t *testing.T) {
	sim := core.New()
	_, err := sim.SetRule(core.Block{1, 1, 1, 1}, core.Block{0, 0, 0, 0})
	require.NoError(t, err)
	s := NewState(sim)

	assert.Error(t, s.RemoveRule(3))
	require.NoError(t, s.RemoveRule(0))
	assert.Equal(t, 0, sim.RuleCount())
}

func TestToggleHorizontalStatus(t *testing.T) {
	s := NewState(core.New())
	s.ToggleHorizontal()
	assert.False(t, s.Sim().Symmetry().Horizontal)
	assert.Equal(t, "symmetry: none", s.Status())
}

func TestRowsResolveElements(t *testing.T) {
	sim := core.New()
	_, err := sim.SetRule(core.Block{1, 0, 0, 0}, core.Block{0, 0, 0, 1})
	require.NoError(t, err)

	rows := NewState(sim).Rows()
	require.Len(t, rows, 1)
	assert.NoError(t, rows[0].Err)
	assert.Equal(t, "On", rows[0].Input[0].Name)
	assert.Equal(t, "Off", rows[0].Input[1].Name)
	assert.Equal(t, "On", rows[0].Output[3].Name)
}

func TestStateNeverLeaksIntoSim(t *testing.T) {
	sim := core.New()
	s := NewState(sim)
	before := sim.Clone()

	s.Open(Slot{Row: DraftRow, Side: SideInput, Cell: 0})
	require.NoError(t, s.Choose(1))
	s.Open(Slot{Row: DraftRow, Side: SideOutput, Cell: 1})

	assert.Equal(t, before.Rules(), sim.Rules())
	assert.Equal(t, before.Elements(), sim.Elements())
}

func TestReportStatus(t *testing.T) {
	s := NewState(nil)
	s.Report(nil, "saved")
	assert.Equal(t, "saved", s.Status())
	s.Report(errors.New("disk full"), "saved")
	assert.Equal(t, "disk full", s.Status())
}
