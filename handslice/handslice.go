// Package handslice groups notes into the per-hand slice sequences the
// optimizer consumes: a Slice is the non-empty, deduplicated, ascending
// set of pitches struck at one instant by one hand.
package handslice

import (
	"sort"

	"pianofinger/distance"
	"pianofinger/ferrors"
	"pianofinger/pitch"
)

// Side identifies which hand a Note or Hand belongs to.
type Side int

const (
	Right Side = iota
	Left
)

// DistanceHand maps a Side to the orientation the distance table expects.
func (s Side) DistanceHand() distance.Hand {
	if s == Left {
		return distance.Left
	}
	return distance.Right
}

// Finger is one of the five digits, 1 = thumb, 5 = little finger.
type Finger int

const maxSliceSize = 5

// Note is a single notated pitch before slicing. Duration and Voice are
// carried through only for upstream grouping; the core never reads them.
type Note struct {
	Pitch             pitch.Pitch
	Side              Side
	ChordContinuation bool
	Voice             int
	Duration          float64
}

// Slice is the ascending, deduplicated set of pitches struck together.
type Slice []pitch.Pitch

// Len reports how many distinct pitches the slice holds.
func (s Slice) Len() int { return len(s) }

// Mono reports whether the slice is a single note.
func (s Slice) Mono() bool { return len(s) == 1 }

// Hand is an ordered sequence of Slices for one hand, earliest first.
type Hand struct {
	Side   Side
	Slices []Slice
}

// dedupSorted returns p deduplicated and sorted ascending.
func dedupSorted(pitches []pitch.Pitch) Slice {
	cp := append([]pitch.Pitch(nil), pitches...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, p := range cp {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return Slice(out)
}

// NewHand groups notes into slices: a chord-continuation note joins the
// previous slice of the same side; any other note opens a new one. Notes
// must already be in musical time order and all share the same Side.
func NewHand(side Side, notes []Note) (Hand, error) {
	var slices []Slice
	var pending []pitch.Pitch

	flush := func() error {
		if pending == nil {
			return nil
		}
		s := dedupSorted(pending)
		if len(s) == 0 || len(s) > maxSliceSize {
			return ferrors.New(ferrors.InvalidSliceSize,
				"slice must hold between 1 and 5 distinct pitches")
		}
		slices = append(slices, s)
		pending = nil
		return nil
	}

	for _, n := range notes {
		if n.Side != side {
			continue
		}
		if n.ChordContinuation && pending != nil {
			pending = append(pending, n.Pitch)
			continue
		}
		if err := flush(); err != nil {
			return Hand{}, err
		}
		pending = []pitch.Pitch{n.Pitch}
	}
	if err := flush(); err != nil {
		return Hand{}, err
	}

	return Hand{Side: side, Slices: slices}, nil
}

// Fingering assigns one finger to each pitch of a slice, in the same
// ascending order as the slice's pitches.
type Fingering []Finger

// HandFingering is a complete assignment, one Fingering per slice.
type HandFingering []Fingering

// Candidates returns every ordered injection of k distinct fingers from
// {1..5} into the k pitches of the slice, in deterministic lexicographic
// order. |Candidates| = 5!/(5-k)!.
func Candidates(s Slice) []Fingering {
	k := len(s)
	if k == 0 {
		return nil
	}
	used := make([]bool, 6) // index 1..5
	var out []Fingering
	cur := make(Fingering, k)

	var rec func(pos int)
	rec = func(pos int) {
		if pos == k {
			cp := append(Fingering(nil), cur...)
			out = append(out, cp)
			return
		}
		for f := 1; f <= 5; f++ {
			if used[f] {
				continue
			}
			used[f] = true
			cur[pos] = Finger(f)
			rec(pos + 1)
			used[f] = false
		}
	}
	rec(0)
	return out
}
