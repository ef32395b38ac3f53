// Package samplescore builds the fixture hands used throughout the test
// suite, combinatorially from scale degrees the way etudes.go builds its
// midi triples, rather than hand-authoring each fixture file.
package samplescore

import (
	"pianofinger/handslice"
	"pianofinger/pitch"
)

// majorScaleSteps are the seven diatonic step/accidental pairs of a major
// scale starting on C, in ascending scientific-pitch order.
var majorScaleSteps = []struct {
	step Step
	acc  int
}{
	{StepC, 0}, {StepD, 0}, {StepE, 0}, {StepF, 0},
	{StepG, 0}, {StepA, 0}, {StepB, 0},
}

// Step mirrors pitch.Step so callers of this package need not import
// pitch directly for the common fixtures.
type Step = pitch.Step

const (
	StepC = pitch.C
	StepD = pitch.D
	StepE = pitch.E
	StepF = pitch.F
	StepG = pitch.G
	StepA = pitch.A
	StepB = pitch.B
)

func mono(side handslice.Side, pitches []pitch.Pitch) handslice.Hand {
	var notes []handslice.Note
	for _, p := range pitches {
		notes = append(notes, handslice.Note{Pitch: p, Side: side})
	}
	hand, err := handslice.NewHand(side, notes)
	if err != nil {
		panic(err)
	}
	return hand
}

func chord(side handslice.Side, pitches []pitch.Pitch) handslice.Hand {
	var notes []handslice.Note
	for i, p := range pitches {
		notes = append(notes, handslice.Note{Pitch: p, Side: side, ChordContinuation: i > 0})
	}
	hand, err := handslice.NewHand(side, notes)
	if err != nil {
		panic(err)
	}
	return hand
}

// MajorScale builds one octave of an ascending C major scale (8 notes,
// e.g. C4..C5 for startOctave 4) starting at the given octave, monophonic.
func MajorScale(side handslice.Side, startOctave int) handslice.Hand {
	var pitches []pitch.Pitch
	for _, deg := range majorScaleSteps {
		pitches = append(pitches, pitch.Encode(deg.step, deg.acc, startOctave))
	}
	pitches = append(pitches, pitch.Encode(StepC, 0, startOctave+1))
	return mono(side, pitches)
}

// Alternation builds a repeated two-note monophonic figure, n repeats of
// (low, high).
func Alternation(side handslice.Side, low, high pitch.Pitch, repeats int) handslice.Hand {
	var pitches []pitch.Pitch
	for i := 0; i < repeats; i++ {
		pitches = append(pitches, low, high)
	}
	return mono(side, pitches)
}

// MajorTriad builds a single root-position major triad as one chord
// slice: root, a major third (4 semitones) and a perfect fifth (7
// semitones) above it, counted in semitones so the imaginary keys of the
// 14-per-octave encoding are stepped over (C4 gives C4, E4, G4).
func MajorTriad(side handslice.Side, root pitch.Pitch) handslice.Hand {
	var pitches []pitch.Pitch
	p := root
	for semitone := 0; semitone <= 7; semitone++ {
		if semitone == 0 || semitone == 4 || semitone == 7 {
			pitches = append(pitches, p)
		}
		p++
		if r := ((int(p) % pitch.StepsPerOctave) + pitch.StepsPerOctave) % pitch.StepsPerOctave; r == 5 || r == 13 {
			p++
		}
	}
	return chord(side, pitches)
}

// MinorSecond builds two consecutive monophonic notes a minor second
// apart (e.g. C4 then C#4), the classic R7 3-white/4-black trap.
func MinorSecond(side handslice.Side, low pitch.Pitch) handslice.Hand {
	high := low + 1
	if r := ((int(high) % pitch.StepsPerOctave) + pitch.StepsPerOctave) % pitch.StepsPerOctave; r == 5 || r == 13 {
		high++ // step over the imaginary key between E/F and B/C
	}
	return mono(side, []pitch.Pitch{low, high})
}

// ThumbCrossingPair builds two consecutive monophonic notes from the two
// given pitches, unmodified (E4 then F4, two encoding units apart, in the
// thumb-crossing scenario the tests use).
func ThumbCrossingPair(side handslice.Side, first, second pitch.Pitch) handslice.Hand {
	return mono(side, []pitch.Pitch{first, second})
}

// WideChordSpan builds a single chord covering the given pitches
// unmodified, for wide-span threshold-cascade fixtures.
func WideChordSpan(side handslice.Side, pitches []pitch.Pitch) handslice.Hand {
	return chord(side, pitches)
}

// AllPermutedTriples returns every ordered 3-pitch monophonic hand drawn
// from pitches, mirroring etudes.go's permutation-of-scale-degrees
// combinatorics, for exhaustive small-window property tests.
func AllPermutedTriples(side handslice.Side, pitches []pitch.Pitch) []handslice.Hand {
	var hands []handslice.Hand
	n := len(pitches)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				hands = append(hands, mono(side, []pitch.Pitch{pitches[i], pitches[j], pitches[k]}))
			}
		}
	}
	return hands
}
