// Package rules implements the fifteen ergonomic rule evaluators that map
// a local window of (pitch, finger) context to a non-negative cost
// contribution. Every rule is 0 outside its stated precondition.
package rules

// Cost is a difficulty cost, represented internally in half-units so the
// single fractional constant used by R8 (0.5) can be tracked with exact
// integer arithmetic. Two costs are equal, for tie detection, iff the
// underlying integers are equal.
type Cost int64

// Value returns the cost as the real number the spec describes.
func (c Cost) Value() float64 {
	return float64(c) / 2
}

// whole converts a whole-unit integer weight into half-units.
func whole(n int) Cost { return Cost(2 * n) }

// halfUnit represents n discrete halves (used only by R8's 0.5 constant).
func halfUnit(n int) Cost { return Cost(n) }
