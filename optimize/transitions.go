package optimize

import (
	"pianofinger/handslice"
	"pianofinger/rules"
)

// cost0 is the optimizer's base case for slice 0: R14 on the slice plus
// R5 if the slice is monophonic.
func cost0(slice handslice.Slice, a handslice.Fingering, side handslice.Side) (rules.Cost, error) {
	c, err := rules.IntraChordCost(slice, a, side)
	if err != nil {
		return 0, err
	}
	if slice.Mono() {
		c += rules.FourthFingerCost(true, a[0])
	}
	return c, nil
}

// transition computes the cost added when extending a fingered hand from
// slice t-1 (assignment a) to slice t (assignment b), given the slice
// before that (t-2, assignment z) when it exists.
func transition(side handslice.Side, slices []handslice.Slice, t int, z, a, b handslice.Fingering, hasZ bool) (rules.Cost, error) {
	prevSlice := slices[t-1]
	currSlice := slices[t]

	total, err := rules.IntraChordCost(currSlice, b, side)
	if err != nil {
		return 0, err
	}

	for i, pp := range prevSlice {
		for j, cp := range currSlice {
			pc, err := rules.PairCost(pp, cp, a[i], b[j], side)
			if err != nil {
				return 0, err
			}
			total += pc
		}
	}

	total += rules.StickyCost(prevSlice, currSlice, a, b)

	monoPrev := prevSlice.Mono()
	monoCurr := currSlice.Mono()
	if monoPrev && monoCurr {
		p1, f1 := prevSlice[0], a[0]
		p2, f2 := currSlice[0], b[0]
		total += rules.FourthFingerCost(true, f2)
		total += rules.ThirdFourthPairCost(true, true, f1, f2)
		total += rules.ThirdWhiteFourthBlackCost(true, true, p1, f1, p2, f2)
		total += rules.ThumbCrossSameColorCost(true, true, p1, f1, p2, f2)
		total += rules.ThumbBlackCrossedByWhiteCost(true, true, p1, f1, p2, f2)
	}

	if hasZ {
		prevPrevSlice := slices[t-2]
		if prevPrevSlice.Mono() && monoPrev && monoCurr {
			p0, f0 := prevPrevSlice[0], z[0]
			p1, f1 := prevSlice[0], a[0]
			p2, f2 := currSlice[0], b[0]

			c3, err := rules.TripletHandPositionCost(p0, f0, p1, f1, p2, f2, side)
			if err != nil {
				return 0, err
			}
			total += c3

			c4, err := rules.TripletSpanCost(p0, f0, p2, f2, side)
			if err != nil {
				return 0, err
			}
			total += c4

			total += rules.SameFingerRepetitionCost(p0, p1, p2, f0, f2)

			middle := rules.NoteCtx{Pitch: p1, Finger: f1, Exists: true}
			before := rules.NoteCtx{Pitch: p0, Finger: f0, Exists: true}
			after := rules.NoteCtx{Pitch: p2, Finger: f2, Exists: true}
			total += rules.ThumbOnBlackCost(middle, before, after)
			total += rules.LittleFingerOnBlackCost(middle, before, after)
		}
	}

	return total, nil
}
