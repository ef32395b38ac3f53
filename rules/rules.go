package rules

import (
	"sort"

	"pianofinger/distance"
	"pianofinger/handslice"
	"pianofinger/pitch"
)

// pairWeights are the cascading tier weights (Rel, Comf, Prac) used by
// R1/R2/R13 for inter-note pairs.
var pairWeights = [3]int{1, 2, 10}

// intraWeights are the doubled cascading tier weights R14 applies within
// a chord.
var intraWeights = [3]int{2, 4, 10}

// cascade implements the shared cascading-threshold shape used by both
// R1/R2/R13 and R14: low-side violations accumulate tier by tier as d
// drops below MinRel, then MinComf, then MinPrac; the high side mirrors
// it as d rises above MaxRel, MaxComf, MaxPrac.
func cascade(d int, th distance.Thresholds, w [3]int) Cost {
	var c Cost
	if d < th.MinRel {
		c += whole(w[0] * (th.MinRel - d))
		if d < th.MinComf {
			c += whole(w[1] * (th.MinComf - d))
			if d < th.MinPrac {
				c += whole(w[2] * (th.MinPrac - d))
			}
		}
	}
	if d > th.MaxRel {
		c += whole(w[0] * (d - th.MaxRel))
		if d > th.MaxComf {
			c += whole(w[1] * (d - th.MaxComf))
			if d > th.MaxPrac {
				c += whole(w[2] * (d - th.MaxPrac))
			}
		}
	}
	return c
}

// PairCost is R1/R2/R13: the cascading inter-note pair cost between two
// consecutively struck pitches assigned f1 then f2.
func PairCost(p1, p2 pitch.Pitch, f1, f2 handslice.Finger, side handslice.Side) (Cost, error) {
	th, err := distance.Oriented(int(f1), int(f2), side.DistanceHand())
	if err != nil {
		return 0, err
	}
	return cascade(int(p2-p1), th, pairWeights), nil
}

// IntraChordCost is R14: the cascading cost, at doubled weights, for
// every pair of pitches struck simultaneously in one slice.
func IntraChordCost(s handslice.Slice, f handslice.Fingering, side handslice.Side) (Cost, error) {
	var total Cost
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			th, err := distance.Oriented(int(f[i]), int(f[j]), side.DistanceHand())
			if err != nil {
				return 0, err
			}
			total += cascade(int(s[j]-s[i]), th, intraWeights)
		}
	}
	return total, nil
}

// StickyCost is R15: for every pitch struck in both the previous and the
// current slice, add one whole unit if the assigned finger changed.
func StickyCost(prevS, currS handslice.Slice, prevF, currF handslice.Fingering) Cost {
	var total Cost
	for i, p := range prevS {
		for j, q := range currS {
			if p == q && prevF[i] != currF[j] {
				total += whole(1)
			}
		}
	}
	return total
}

// FourthFingerCost is R5: one whole unit for a monophonic note on finger 4.
func FourthFingerCost(mono bool, f handslice.Finger) Cost {
	if mono && f == 4 {
		return whole(1)
	}
	return 0
}

// ThirdFourthPairCost is R6: one whole unit when consecutive monophonic
// notes carry the unordered finger pair {3, 4}.
func ThirdFourthPairCost(mono1, mono2 bool, f1, f2 handslice.Finger) Cost {
	if !mono1 || !mono2 {
		return 0
	}
	if (f1 == 3 && f2 == 4) || (f1 == 4 && f2 == 3) {
		return whole(1)
	}
	return 0
}

// ThirdWhiteFourthBlackCost is R7: one whole unit when consecutive
// monophonic notes place (finger 3, white key) next to (finger 4, black
// key), in either order.
func ThirdWhiteFourthBlackCost(mono1, mono2 bool, p1 pitch.Pitch, f1 handslice.Finger, p2 pitch.Pitch, f2 handslice.Finger) Cost {
	if !mono1 || !mono2 {
		return 0
	}
	match := func(pa pitch.Pitch, fa handslice.Finger, pb pitch.Pitch, fb handslice.Finger) bool {
		return fa == 3 && pitch.IsWhite(pa) && fb == 4 && pitch.IsBlack(pb)
	}
	if match(p1, f1, p2, f2) || match(p2, f2, p1, f1) {
		return whole(1)
	}
	return 0
}

// NoteCtx is an optional monophonic neighbor used by R8 and R9.
type NoteCtx struct {
	Pitch  pitch.Pitch
	Finger handslice.Finger
	Exists bool
}

// ThumbOnBlackCost is R8: half a unit when the current monophonic note
// takes the thumb on a black key, plus a whole unit for each monophonic
// white-key, non-thumb neighbor (previous and/or next) that exists.
func ThumbOnBlackCost(curr NoteCtx, prev, next NoteCtx) Cost {
	if curr.Finger != 1 || !pitch.IsBlack(curr.Pitch) {
		return 0
	}
	c := halfUnit(1)
	if prev.Exists && prev.Finger != 1 && pitch.IsWhite(prev.Pitch) {
		c += whole(1)
	}
	if next.Exists && next.Finger != 1 && pitch.IsWhite(next.Pitch) {
		c += whole(1)
	}
	return c
}

// LittleFingerOnBlackCost is R9: a whole unit for each monophonic
// white-key, non-little-finger neighbor of a current note that takes the
// little finger on a black key.
func LittleFingerOnBlackCost(curr NoteCtx, prev, next NoteCtx) Cost {
	if curr.Finger != 5 || !pitch.IsBlack(curr.Pitch) {
		return 0
	}
	var c Cost
	if prev.Exists && prev.Finger != 5 && pitch.IsWhite(prev.Pitch) {
		c += whole(1)
	}
	if next.Exists && next.Finger != 5 && pitch.IsWhite(next.Pitch) {
		c += whole(1)
	}
	return c
}

// ThumbCrossSameColorCost is R10: one whole unit on consecutive
// monophonic notes, at least one fingered with the thumb, whose keys
// share the same color.
func ThumbCrossSameColorCost(mono1, mono2 bool, p1 pitch.Pitch, f1 handslice.Finger, p2 pitch.Pitch, f2 handslice.Finger) Cost {
	if !mono1 || !mono2 {
		return 0
	}
	if f1 != 1 && f2 != 1 {
		return 0
	}
	if pitch.IsBlack(p1) == pitch.IsBlack(p2) {
		return whole(1)
	}
	return 0
}

// ThumbBlackCrossedByWhiteCost is R11: two whole units on consecutive
// monophonic notes where one is (thumb, black) and the other is
// (non-thumb, white).
func ThumbBlackCrossedByWhiteCost(mono1, mono2 bool, p1 pitch.Pitch, f1 handslice.Finger, p2 pitch.Pitch, f2 handslice.Finger) Cost {
	if !mono1 || !mono2 {
		return 0
	}
	match := func(pa pitch.Pitch, fa handslice.Finger, pb pitch.Pitch, fb handslice.Finger) bool {
		return fa == 1 && pitch.IsBlack(pa) && fb != 1 && pitch.IsWhite(pb)
	}
	if match(p1, f1, p2, f2) || match(p2, f2, p1, f1) {
		return whole(2)
	}
	return 0
}

// TripletHandPositionCost is R3: evaluated over three consecutive
// monophonic notes (f1,p1)...(f3,p3).
func TripletHandPositionCost(p1 pitch.Pitch, f1 handslice.Finger, p2 pitch.Pitch, f2 handslice.Finger, p3 pitch.Pitch, f3 handslice.Finger, side handslice.Side) (Cost, error) {
	th, err := distance.Oriented(int(f1), int(f3), side.DistanceHand())
	if err != nil {
		return 0, err
	}
	d13 := int(p3 - p1)
	var c Cost
	if d13 < th.MinComf || d13 > th.MaxComf {
		c += whole(1)
	}

	sorted := []pitch.Pitch{p1, p2, p3}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	middle := sorted[1]
	if middle == p2 && f2 == 1 && (d13 < th.MinPrac || d13 > th.MaxPrac) {
		c += whole(1)
	}

	if p1 == p3 && f1 != f3 {
		c += whole(1)
	}
	return c, nil
}

// TripletSpanCost is R4: the linear (non-cascading) excess of the
// (f1 -> f3) span over the comfort range.
func TripletSpanCost(p1 pitch.Pitch, f1 handslice.Finger, p3 pitch.Pitch, f3 handslice.Finger, side handslice.Side) (Cost, error) {
	th, err := distance.Oriented(int(f1), int(f3), side.DistanceHand())
	if err != nil {
		return 0, err
	}
	d13 := int(p3 - p1)
	excess := 0
	if d := th.MinComf - d13; d > 0 {
		excess += d
	}
	if d := d13 - th.MaxComf; d > 0 {
		excess += d
	}
	return whole(excess), nil
}

// SameFingerRepetitionCost is R12: one whole unit over a monophonic
// triple sharing a finger across the outer two notes, when the middle
// pitch falls strictly between them.
func SameFingerRepetitionCost(p1, p2, p3 pitch.Pitch, f1, f3 handslice.Finger) Cost {
	if f1 != f3 || p1 == p3 {
		return 0
	}
	lo, hi := p1, p3
	if lo > hi {
		lo, hi = hi, lo
	}
	if p2 > lo && p2 < hi {
		return whole(1)
	}
	return 0
}
