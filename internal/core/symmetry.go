package core

import "strings"

// Axis names a mirror axis a rule table can be symmetric over.
type Axis string

const (
	// AxisHorizontal mirrors blocks across the vertical centerline.
	AxisHorizontal Axis = "horizontal"
)

// Axes lists the supported axes.
func Axes() []Axis { return []Axis{AxisHorizontal} }

// Symmetry records which axes are enabled.
type Symmetry struct {
	Horizontal bool
}

// DefaultSymmetry has horizontal symmetry enabled.
func DefaultSymmetry() Symmetry { return Symmetry{Horizontal: true} }

// Enabled reports whether axis is on. Unknown axes are never enabled.
func (s Symmetry) Enabled(axis Axis) bool {
	switch axis {
	case AxisHorizontal:
		return s.Horizontal
	default:
		return false
	}
}

// With returns a copy with axis set to on.
func (s Symmetry) With(axis Axis, on bool) Symmetry {
	switch axis {
	case AxisHorizontal:
		s.Horizontal = on
	}
	return s
}

// Any reports whether any axis is enabled.
func (s Symmetry) Any() bool {
	for _, axis := range Axes() {
		if s.Enabled(axis) {
			return true
		}
	}
	return false
}

// Mirror swaps the two columns of b: [a,b,c,d] -> [b,a,d,c].
func Mirror(b Block) Block {
	return Block{b[1], b[0], b[3], b[2]}
}

// SelfMirrored reports whether b maps onto itself under Mirror.
func SelfMirrored(b Block) bool { return Mirror(b) == b }

// CanonicalKey returns the lexicographically smaller of b and Mirror(b).
func CanonicalKey(b Block) Block {
	if m := Mirror(b); m.Less(b) {
		return m
	}
	return b
}

// Orbit returns the distinct members of b's mirror orbit, canonical first.
func Orbit(b Block) []Block {
	k := CanonicalKey(b)
	m := Mirror(k)
	if m == k {
		return []Block{k}
	}
	return []Block{k, m}
}

func (s Symmetry) String() string {
	if !s.Any() {
		return "none"
	}
	var on []string
	for _, axis := range Axes() {
		if s.Enabled(axis) {
			on = append(on, string(axis))
		}
	}
	return strings.Join(on, "+")
}
