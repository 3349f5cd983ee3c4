package core

import (
	"errors"
	"fmt"
)

// ErrIndex matches every *IndexError via errors.Is.
var ErrIndex = errors.New("element index out of range")

// IndexError reports a palette index that does not refer to an element.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("element index %d out of range [0,%d)", e.Index, e.Len)
}

// Is lets errors.Is(err, ErrIndex) match.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// SymmetryConflict reports a write that disagreed with the rule already
// implied for the same mirror orbit. The incoming rule has been applied.
type SymmetryConflict struct {
	// Input is the block that was just written.
	Input Block
	// Existing is the output Input resolved to before the write.
	Existing Block
	// Incoming is the output that replaced it.
	Incoming Block
}

func (c SymmetryConflict) Error() string {
	return fmt.Sprintf("symmetry conflict at [%s]: mirrored rule implied [%s], now [%s]", c.Input, c.Existing, c.Incoming)
}
