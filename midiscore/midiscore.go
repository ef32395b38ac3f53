// Package midiscore reads a Standard MIDI File into the two per-hand note
// streams the fingering core consumes, mirroring the teacher's SMF
// writing path in reverse: channel 0 is the right hand, channel 1 the
// left hand, and simultaneous note-ons at one tick form a chord.
package midiscore

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"pianofinger/ferrors"
	"pianofinger/handslice"
	"pianofinger/pitch"
)

// rawBySemitone gives the 14-per-octave raw step for each of the 12
// semitones, always spelling accidentals as sharps.
var rawBySemitone = [12]int{0, 1, 2, 3, 4, 6, 7, 8, 9, 10, 11, 12}

// midiToPitch converts a MIDI note number (60 = middle C = our C4) to the
// 14-per-octave encoding.
func midiToPitch(note uint8) pitch.Pitch {
	semitone := int(note) - 60
	octaveShift := 0
	for semitone < 0 {
		semitone += 12
		octaveShift--
	}
	for semitone >= 12 {
		semitone -= 12
		octaveShift++
	}
	return pitch.Pitch((4+octaveShift)*pitch.StepsPerOctave + rawBySemitone[semitone])
}

type rawEvent struct {
	tick    uint32
	channel uint8
	key     uint8
	isOn    bool
}

// Load reads filename and returns the right- and left-hand note streams,
// in musical time order, ready for handslice.NewHand.
func Load(filename string) (right, left []handslice.Note, err error) {
	file, readErr := smf.ReadFile(filename)
	if readErr != nil {
		return nil, nil, ferrors.Wrap(ferrors.ParseUpstream, "reading MIDI file", readErr)
	}

	var events []rawEvent
	for _, track := range file.Tracks {
		var tick uint32
		for _, ev := range track {
			tick += ev.Delta
			var channel, key, vel uint8
			switch {
			case ev.Message.GetNoteOn(&channel, &key, &vel) && vel > 0:
				events = append(events, rawEvent{tick: tick, channel: channel, key: key, isOn: true})
			case ev.Message.GetNoteOn(&channel, &key, &vel):
				events = append(events, rawEvent{tick: tick, channel: channel, key: key, isOn: false})
			case ev.Message.GetNoteOff(&channel, &key, &vel):
				events = append(events, rawEvent{tick: tick, channel: channel, key: key, isOn: false})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].tick < events[j].tick })

	lastTickBySide := map[handslice.Side]int64{handslice.Right: -1, handslice.Left: -1}

	for _, e := range events {
		if !e.isOn {
			continue
		}
		side := handslice.Right
		if e.channel == 1 {
			side = handslice.Left
		}

		note := handslice.Note{
			Pitch: midiToPitch(e.key),
			Side:  side,
		}
		if lastTickBySide[side] == int64(e.tick) {
			note.ChordContinuation = true
		}
		lastTickBySide[side] = int64(e.tick)

		if side == handslice.Left {
			left = append(left, note)
		} else {
			right = append(right, note)
		}
	}

	return right, left, nil
}

// Hands builds the two per-hand slice sequences straight from a MIDI file.
func Hands(filename string) (rightHand, leftHand handslice.Hand, err error) {
	rightNotes, leftNotes, err := Load(filename)
	if err != nil {
		return handslice.Hand{}, handslice.Hand{}, err
	}
	rightHand, err = handslice.NewHand(handslice.Right, rightNotes)
	if err != nil {
		return handslice.Hand{}, handslice.Hand{}, err
	}
	leftHand, err = handslice.NewHand(handslice.Left, leftNotes)
	if err != nil {
		return handslice.Hand{}, handslice.Hand{}, err
	}
	return rightHand, leftHand, nil
}
