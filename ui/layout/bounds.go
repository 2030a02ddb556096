package layout

// BoundKind selects how a height bound is expressed.
type BoundKind int

const (
	// BoundNone leaves the axis unbounded.
	BoundNone BoundKind = iota

	// BoundCells is an explicit height in terminal rows, frame included.
	BoundCells

	// BoundRows is a height expressed as a number of content rows. It resolves
	// to rows plus the component's vertical frame size, so "3 rows" means the
	// same thing whatever border or padding the component carries.
	BoundRows
)

// String returns the string representation of the bound kind.
func (k BoundKind) String() string {
	switch k {
	case BoundNone:
		return "none"
	case BoundCells:
		return "cells"
	case BoundRows:
		return "rows"
	default:
		return "unknown"
	}
}

// Bound is a height bound for an auto-resizing component: unbounded, an
// explicit cell height, or a content row count.
type Bound struct {
	Kind  BoundKind
	Value int
}

// None returns an unbounded Bound.
func None() Bound {
	return Bound{Kind: BoundNone}
}

// Cells returns a Bound fixing the axis at n terminal rows, frame included.
func Cells(n int) Bound {
	return Bound{Kind: BoundCells, Value: n}
}

// Rows returns a Bound of n content rows plus the component's frame.
func Rows(n int) Bound {
	return Bound{Kind: BoundRows, Value: n}
}

// Resolved is the concrete form of a Bound for one evaluation pass.
type Resolved struct {
	Height  int
	Bounded bool
}

// Unbounded is the resolved form of an absent or unresolvable bound.
var Unbounded = Resolved{}

// Resolve converts the bound into a concrete height given the component's
// vertical frame size. The second return is false when the bound is absent or
// cannot be resolved; a bound with a non-positive count is unresolvable and
// degrades to unbounded (the caller decides whether to log it).
func (b Bound) Resolve(verticalFrame int) (Resolved, bool) {
	switch b.Kind {
	case BoundCells:
		if b.Value <= 0 {
			return Unbounded, false
		}
		return Resolved{Height: b.Value, Bounded: true}, true
	case BoundRows:
		if b.Value <= 0 {
			return Unbounded, false
		}
		// A content row is one terminal cell high.
		return Resolved{Height: b.Value + verticalFrame, Bounded: true}, true
	default:
		return Unbounded, true
	}
}

// IsZero reports whether the bound is the unbounded zero value.
func (b Bound) IsZero() bool {
	return b.Kind == BoundNone
}

// ClampHeight decides the target height for an ideal content height under the
// given bounds. The decision is ordered: the maximum wins over the minimum,
// and reaching the maximum is reported so the caller can flip its scroll
// affordance exactly on the edges.
func ClampHeight(ideal int, minBound, maxBound Resolved) (target int, atMax bool) {
	if maxBound.Bounded && ideal >= maxBound.Height {
		return maxBound.Height, true
	}
	if minBound.Bounded && ideal < minBound.Height {
		return minBound.Height, false
	}
	return ideal, false
}
