// Package scorefile reads the YAML score format used for hand-authored
// and golden-set fixtures: a textual description of notes per hand, in
// the struct-tag style of a BTML track file.
package scorefile

import (
	"os"

	"gopkg.in/yaml.v3"

	"pianofinger/ferrors"
	"pianofinger/handslice"
	"pianofinger/pitch"
)

// Doc is the top-level YAML document: one entry per note, in musical
// time order, for either hand.
type Doc struct {
	Notes []NoteDef `yaml:"notes"`
}

// NoteDef is one notated pitch.
type NoteDef struct {
	Step         string  `yaml:"step"`               // C, D, E, F, G, A, B
	Accidental   int     `yaml:"accidental"`         // -1, 0, +1
	Octave       int     `yaml:"octave"`             // scientific pitch octave
	Staff        int     `yaml:"staff"`              // 1 = right hand, 2 = left hand
	Chord        bool    `yaml:"chord,omitempty"`    // chord-continuation flag
	Voice        int     `yaml:"voice,omitempty"`    // upstream-only
	Duration     float64 `yaml:"duration,omitempty"` // upstream-only, in beats
}

var stepNames = map[string]pitch.Step{
	"C": pitch.C, "D": pitch.D, "E": pitch.E, "F": pitch.F,
	"G": pitch.G, "A": pitch.A, "B": pitch.B,
}

// Load reads a score file and returns the right- and left-hand note
// streams, each already encoded to absolute Pitch but not yet sliced.
func Load(filename string) (right, left []handslice.Note, err error) {
	data, readErr := os.ReadFile(filename)
	if readErr != nil {
		return nil, nil, ferrors.Wrap(ferrors.ParseUpstream, "reading score file", readErr)
	}

	var doc Doc
	if unmarshalErr := yaml.Unmarshal(data, &doc); unmarshalErr != nil {
		return nil, nil, ferrors.Wrap(ferrors.ParseUpstream, "parsing score YAML", unmarshalErr)
	}

	for _, nd := range doc.Notes {
		step, ok := stepNames[nd.Step]
		if !ok {
			return nil, nil, ferrors.New(ferrors.ParseUpstream, "unknown diatonic step: "+nd.Step)
		}
		p := pitch.Encode(step, nd.Accidental, nd.Octave)

		side := handslice.Right
		if nd.Staff == 2 {
			side = handslice.Left
		}

		note := handslice.Note{
			Pitch:             p,
			Side:              side,
			ChordContinuation: nd.Chord,
			Voice:             nd.Voice,
			Duration:          nd.Duration,
		}

		if side == handslice.Left {
			left = append(left, note)
		} else {
			right = append(right, note)
		}
	}

	return right, left, nil
}

// Hands builds the two per-hand slice sequences from a loaded score file,
// surfacing InvalidSliceSize untouched from handslice.NewHand.
func Hands(filename string) (right, left handslice.Hand, err error) {
	rightNotes, leftNotes, err := Load(filename)
	if err != nil {
		return handslice.Hand{}, handslice.Hand{}, err
	}
	right, err = handslice.NewHand(handslice.Right, rightNotes)
	if err != nil {
		return handslice.Hand{}, handslice.Hand{}, err
	}
	left, err = handslice.NewHand(handslice.Left, leftNotes)
	if err != nil {
		return handslice.Hand{}, handslice.Hand{}, err
	}
	return right, left, nil
}
