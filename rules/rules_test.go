package rules

import (
	"testing"

	"pianofinger/handslice"
	"pianofinger/pitch"
)

func enc(step pitch.Step, acc, oct int) pitch.Pitch {
	return pitch.Encode(step, acc, oct)
}

func TestIntraChordCostMajorTriadIsFree(t *testing.T) {
	c4 := enc(pitch.C, 0, 4)
	e4 := enc(pitch.E, 0, 4)
	g4 := enc(pitch.G, 0, 4)
	slice := handslice.Slice{c4, e4, g4}
	f := handslice.Fingering{1, 3, 5}

	got, err := IntraChordCost(slice, f, handslice.Right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("IntraChordCost = %v, want 0", got)
	}
}

func TestIntraChordCostWideSpanCascades(t *testing.T) {
	c4 := enc(pitch.C, 0, 4)
	g5 := enc(pitch.C, 0, 4) + 22 // span of 22 raw steps, matches the worked example
	slice := handslice.Slice{c4, g5}
	f := handslice.Fingering{1, 5}

	got, err := IntraChordCost(slice, f, handslice.Right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// th for {1,5}: MaxRel=12, MaxComf=14, MaxPrac=16; d=22.
	// cascade: 2*(22-12) + 4*(22-14) + 10*(22-16) = 20+32+60 = 112 whole units.
	want := whole(112)
	if got != want {
		t.Errorf("IntraChordCost = %v, want %v", got.Value(), want.Value())
	}
}

func TestThumbOnBlackRequiresThumbAndBlackKey(t *testing.T) {
	cSharp4 := enc(pitch.C, 1, 4)
	c4 := enc(pitch.C, 0, 4)

	curr := NoteCtx{Pitch: cSharp4, Finger: 1, Exists: true}
	noNeighbor := NoteCtx{}
	if got := ThumbOnBlackCost(curr, noNeighbor, noNeighbor); got != halfUnit(1) {
		t.Errorf("ThumbOnBlackCost base = %v, want %v", got, halfUnit(1))
	}

	whiteNeighbor := NoteCtx{Pitch: c4, Finger: 2, Exists: true}
	if got := ThumbOnBlackCost(curr, whiteNeighbor, noNeighbor); got != halfUnit(1)+whole(1) {
		t.Errorf("ThumbOnBlackCost with white neighbor = %v, want %v", got, halfUnit(1)+whole(1))
	}

	// Not a thumb: no cost at all.
	curr2 := NoteCtx{Pitch: cSharp4, Finger: 2, Exists: true}
	if got := ThumbOnBlackCost(curr2, whiteNeighbor, noNeighbor); got != 0 {
		t.Errorf("ThumbOnBlackCost for non-thumb = %v, want 0", got)
	}
}

func TestFourthFingerCostOnlyMonophonic(t *testing.T) {
	if got := FourthFingerCost(true, 4); got != whole(1) {
		t.Errorf("FourthFingerCost(mono, 4) = %v, want %v", got, whole(1))
	}
	if got := FourthFingerCost(false, 4); got != 0 {
		t.Errorf("FourthFingerCost(poly, 4) = %v, want 0", got)
	}
	if got := FourthFingerCost(true, 3); got != 0 {
		t.Errorf("FourthFingerCost(mono, 3) = %v, want 0", got)
	}
}

func TestThumbCrossSameColorRequiresSharedColor(t *testing.T) {
	e4 := enc(pitch.E, 0, 4)
	f4 := enc(pitch.F, 0, 4)
	// E4 (white) -> F4 (white), thumb involved, same color: cost 1.
	if got := ThumbCrossSameColorCost(true, true, e4, 1, f4, 3); got != whole(1) {
		t.Errorf("ThumbCrossSameColorCost = %v, want %v", got, whole(1))
	}
	// Non-thumb pairing: no cost from this rule regardless of color.
	if got := ThumbCrossSameColorCost(true, true, e4, 2, f4, 3); got != 0 {
		t.Errorf("ThumbCrossSameColorCost non-thumb = %v, want 0", got)
	}
}

func TestSameFingerRepetitionRequiresStrictlyBetween(t *testing.T) {
	c4 := enc(pitch.C, 0, 4)
	d4 := enc(pitch.D, 0, 4)
	e4 := enc(pitch.E, 0, 4)

	if got := SameFingerRepetitionCost(c4, d4, e4, 2, 2); got != whole(1) {
		t.Errorf("SameFingerRepetitionCost strictly between = %v, want %v", got, whole(1))
	}
	// Same finger but p2 not strictly between p1,p3: no cost.
	if got := SameFingerRepetitionCost(c4, e4, d4, 2, 2); got != 0 {
		t.Errorf("SameFingerRepetitionCost out of range = %v, want 0", got)
	}
	// Different outer fingers: no cost regardless of p2.
	if got := SameFingerRepetitionCost(c4, d4, e4, 2, 3); got != 0 {
		t.Errorf("SameFingerRepetitionCost different fingers = %v, want 0", got)
	}
}

func TestStickyCostOnlyChargesChangedFingersOnSharedPitches(t *testing.T) {
	c4 := enc(pitch.C, 0, 4)
	e4 := enc(pitch.E, 0, 4)
	prevS := handslice.Slice{c4, e4}
	currS := handslice.Slice{c4, e4}
	prevF := handslice.Fingering{1, 3}

	same := handslice.Fingering{1, 3}
	if got := StickyCost(prevS, currS, prevF, same); got != 0 {
		t.Errorf("StickyCost unchanged = %v, want 0", got)
	}

	changed := handslice.Fingering{2, 3}
	if got := StickyCost(prevS, currS, prevF, changed); got != whole(1) {
		t.Errorf("StickyCost one changed = %v, want %v", got, whole(1))
	}
}
