// Package distance holds the static finger-pair distance table and the
// orientation rules that turn it into per-hand, per-direction thresholds.
package distance

import "pianofinger/ferrors"

// Hand identifies which hand a pair of fingers belongs to.
type Hand int

const (
	Right Hand = iota
	Left
)

// Thresholds are the six nested-range bounds for a pair distance, in
// encoding units, oriented so that Min* describe the narrow/inward side
// and Max* the wide/outward side for the queried (f1, f2) direction.
type Thresholds struct {
	MinPrac, MinComf, MinRel int
	MaxRel, MaxComf, MaxPrac int
}

func (t Thresholds) negate() Thresholds {
	return Thresholds{
		MinPrac: -t.MaxPrac, MinComf: -t.MaxComf, MinRel: -t.MaxRel,
		MaxRel: -t.MinRel, MaxComf: -t.MinComf, MaxPrac: -t.MinPrac,
	}
}

// zero is the thresholds for a repeated finger: every bound is 0.
var zero = Thresholds{}

// baseTable gives the six thresholds in right-hand orientation for each
// unordered ascending finger pair (f_low, f_high), lower finger first.
var baseTable = map[[2]int]Thresholds{
	{1, 2}: {MinPrac: -8, MinComf: -6, MinRel: 1, MaxRel: 5, MaxComf: 8, MaxPrac: 10},
	{1, 3}: {MinPrac: -7, MinComf: -5, MinRel: 3, MaxRel: 9, MaxComf: 12, MaxPrac: 14},
	{1, 4}: {MinPrac: -5, MinComf: -3, MinRel: 5, MaxRel: 11, MaxComf: 13, MaxPrac: 15},
	{1, 5}: {MinPrac: -2, MinComf: 0, MinRel: 7, MaxRel: 12, MaxComf: 14, MaxPrac: 16},
	{2, 3}: {MinPrac: 1, MinComf: 1, MinRel: 1, MaxRel: 2, MaxComf: 5, MaxPrac: 7},
	{2, 4}: {MinPrac: 1, MinComf: 1, MinRel: 3, MaxRel: 4, MaxComf: 6, MaxPrac: 8},
	{2, 5}: {MinPrac: 2, MinComf: 2, MinRel: 5, MaxRel: 6, MaxComf: 10, MaxPrac: 12},
	{3, 4}: {MinPrac: 1, MinComf: 1, MinRel: 1, MaxRel: 2, MaxComf: 2, MaxPrac: 4},
	{3, 5}: {MinPrac: 1, MinComf: 1, MinRel: 3, MaxRel: 4, MaxComf: 6, MaxPrac: 8},
	{4, 5}: {MinPrac: 1, MinComf: 1, MinRel: 1, MaxRel: 2, MaxComf: 4, MaxPrac: 6},
}

// Oriented returns the (f1 -> f2) thresholds for the given hand: looked up
// in ascending order, swapped (and Min/Max-mirrored) if the query is
// descending, and negated a second time (with a second Min/Max swap) for
// the left hand.
func Oriented(f1, f2 int, hand Hand) (Thresholds, error) {
	if f1 < 1 || f1 > 5 || f2 < 1 || f2 > 5 {
		return Thresholds{}, ferrors.New(ferrors.InternalInconsistency,
			"finger out of range 1..5")
	}
	if f1 == f2 {
		return zero, nil
	}

	low, high, descending := f1, f2, false
	if f1 > f2 {
		low, high, descending = f2, f1, true
	}

	th, ok := baseTable[[2]int{low, high}]
	if !ok {
		return Thresholds{}, ferrors.New(ferrors.InternalInconsistency,
			"no distance entry for finger pair")
	}

	if descending {
		th = th.negate()
	}
	if hand == Left {
		th = th.negate()
	}
	return th, nil
}
