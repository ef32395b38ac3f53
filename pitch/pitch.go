// Package pitch implements the 14-step-per-octave integer pitch encoding
// used throughout the fingering cost model. Each octave carries two
// "imaginary" keys (raw steps 5 and 13) that never survive enharmonic
// normalization; they exist only to keep the base-step arithmetic regular.
package pitch

import "strconv"

// Pitch is an absolute pitch in encoding units: octave*14 + normalized step.
type Pitch int

// StepsPerOctave is the number of encoding units per octave.
const StepsPerOctave = 14

// Step is a diatonic letter name.
type Step int

const (
	C Step = iota
	D
	E
	F
	G
	A
	B
)

// baseStep gives the raw (pre-accidental) step index for each diatonic letter.
var baseStep = map[Step]int{
	C: 0, D: 2, E: 4, F: 6, G: 8, A: 10, B: 12,
}

// blackSteps are the raw step indices (mod 14) that land on a black key.
var blackSteps = map[int]bool{1: true, 3: true, 7: true, 9: true, 11: true}

// Encode derives an absolute Pitch from a diatonic step, accidental
// (-1 = flat, 0 = natural, +1 = sharp) and octave, applying the
// enharmonic normalization for raw values 5, 13 and -1.
func Encode(step Step, accidental int, octave int) Pitch {
	raw := baseStep[step] + accidental

	switch raw {
	case 5: // E#/Fb
		if accidental > 0 {
			raw = 6
		} else {
			raw = 4
		}
	case 13: // B#
		raw = 0
		octave++
	case -1: // Cb
		raw = 12
		octave--
	}

	return Pitch(octave*StepsPerOctave + raw)
}

// IsBlack reports whether p lands on a black key.
func IsBlack(p Pitch) bool {
	raw := ((int(p) % StepsPerOctave) + StepsPerOctave) % StepsPerOctave
	return blackSteps[raw]
}

// IsWhite reports whether p lands on a white key.
func IsWhite(p Pitch) bool {
	return !IsBlack(p)
}

// noteNames gives the canonical (sharp-spelled) name for each raw step;
// indices 5 and 13 never appear in a normalized pitch.
var noteNames = map[int]string{
	0: "C", 1: "C#", 2: "D", 3: "D#", 4: "E",
	6: "F", 7: "F#", 8: "G", 9: "G#", 10: "A", 11: "A#", 12: "B",
}

// Name renders p as a note name plus octave, e.g. "C#4", using the inverse
// of the step map. Octave numbering follows scientific pitch notation where
// raw step 0 (C) begins the octave.
func Name(p Pitch) string {
	octave := int(p) / StepsPerOctave
	raw := int(p) % StepsPerOctave
	if raw < 0 {
		raw += StepsPerOctave
		octave--
	}
	name, ok := noteNames[raw]
	if !ok {
		name = "?"
	}
	return name + strconv.Itoa(octave)
}
