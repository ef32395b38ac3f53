package handslice

import (
	"errors"
	"testing"

	"pianofinger/ferrors"
	"pianofinger/pitch"
)

func TestNewHandGroupsChordContinuations(t *testing.T) {
	c4 := pitch.Encode(pitch.C, 0, 4)
	e4 := pitch.Encode(pitch.E, 0, 4)
	g4 := pitch.Encode(pitch.G, 0, 4)
	d4 := pitch.Encode(pitch.D, 0, 4)

	notes := []Note{
		{Pitch: c4, Side: Right},
		{Pitch: e4, Side: Right, ChordContinuation: true},
		{Pitch: g4, Side: Right, ChordContinuation: true},
		{Pitch: d4, Side: Right},
	}

	hand, err := NewHand(Right, notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hand.Slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(hand.Slices))
	}
	if hand.Slices[0].Len() != 3 {
		t.Errorf("first slice has %d pitches, want 3", hand.Slices[0].Len())
	}
	if !hand.Slices[1].Mono() {
		t.Errorf("second slice should be monophonic")
	}
}

func TestNewHandSkipsOtherSide(t *testing.T) {
	c4 := pitch.Encode(pitch.C, 0, 4)
	c3 := pitch.Encode(pitch.C, 0, 3)
	notes := []Note{
		{Pitch: c4, Side: Right},
		{Pitch: c3, Side: Left},
	}
	hand, err := NewHand(Right, notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hand.Slices) != 1 {
		t.Fatalf("got %d slices, want 1", len(hand.Slices))
	}
}

func TestNewHandRejectsOversizedChord(t *testing.T) {
	var notes []Note
	for i, step := range []pitch.Step{pitch.C, pitch.D, pitch.E, pitch.F, pitch.G, pitch.A} {
		notes = append(notes, Note{
			Pitch:             pitch.Encode(step, 0, 4),
			Side:              Right,
			ChordContinuation: i > 0,
		})
	}
	_, err := NewHand(Right, notes)
	if !errors.Is(err, ferrors.ErrInvalidSliceSize) {
		t.Errorf("expected InvalidSliceSize, got %v", err)
	}
}

func TestNewHandDedupsRepeatedPitchInOneChord(t *testing.T) {
	c4 := pitch.Encode(pitch.C, 0, 4)
	notes := []Note{
		{Pitch: c4, Side: Right},
		{Pitch: c4, Side: Right, ChordContinuation: true},
	}
	hand, err := NewHand(Right, notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hand.Slices) != 1 || hand.Slices[0].Len() != 1 {
		t.Errorf("expected one deduplicated single-pitch slice, got %v", hand.Slices)
	}
}

func TestCandidatesCount(t *testing.T) {
	c4 := pitch.Encode(pitch.C, 0, 4)
	e4 := pitch.Encode(pitch.E, 0, 4)
	g4 := pitch.Encode(pitch.G, 0, 4)
	slice := Slice{c4, e4, g4}

	cands := Candidates(slice)
	want := 5 * 4 * 3 // 5!/(5-3)!
	if len(cands) != want {
		t.Fatalf("got %d candidates, want %d", len(cands), want)
	}

	seen := map[string]bool{}
	for _, f := range cands {
		if len(f) != 3 {
			t.Fatalf("fingering has %d entries, want 3", len(f))
		}
		used := map[Finger]bool{}
		for _, finger := range f {
			if finger < 1 || finger > 5 {
				t.Fatalf("finger %d out of range", finger)
			}
			if used[finger] {
				t.Fatalf("finger %d repeated within one fingering", finger)
			}
			used[finger] = true
		}
		key := ""
		for _, finger := range f {
			key += string(rune('0' + finger))
		}
		if seen[key] {
			t.Fatalf("duplicate fingering %v", f)
		}
		seen[key] = true
	}
}

func TestCandidatesEmptySlice(t *testing.T) {
	if got := Candidates(Slice{}); got != nil {
		t.Errorf("Candidates(empty) = %v, want nil", got)
	}
}

func TestDistanceHandMapping(t *testing.T) {
	if Right.DistanceHand() != 0 {
		t.Errorf("Right.DistanceHand() should be distance.Right (0)")
	}
	if Left.DistanceHand() == Right.DistanceHand() {
		t.Errorf("Left and Right must map to distinct distance.Hand values")
	}
}
