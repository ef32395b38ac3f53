package goldenset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const fixtureYAML = `
notes:
  - step: C
    accidental: 0
    octave: 4
    staff: 1
  - step: E
    accidental: 0
    octave: 4
    staff: 1
    chord: true
  - step: G
    accidental: 0
    octave: 4
    staff: 1
    chord: true
`

func writeFixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "triad.yaml"), []byte(fixtureYAML), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return dir
}

func TestRecordThenRunIsClean(t *testing.T) {
	dir := writeFixtureDir(t)

	baseline, err := Record(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := baseline["triad.yaml"]; !ok {
		t.Fatalf("baseline missing triad.yaml: %v", baseline)
	}

	mismatches, err := Run(dir, baseline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("freshly recorded baseline should be clean, got %v", mismatches)
	}
}

func TestRunDetectsDrift(t *testing.T) {
	dir := writeFixtureDir(t)
	stale := Baseline{"triad.yaml": 999}

	mismatches, err := Run(dir, stale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mismatches) != 1 {
		t.Fatalf("got %d mismatches, want 1", len(mismatches))
	}
	if mismatches[0].Want != 999 {
		t.Errorf("Want = %v, want 999", mismatches[0].Want)
	}
	if !strings.Contains(mismatches[0].Solutions, "solution ") {
		t.Errorf("Solutions should list the co-optimal fingerings, got %q", mismatches[0].Solutions)
	}
}

func writeFixtureSMF(t *testing.T, dir, name string) {
	t.Helper()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	var tempoTrack smf.Track
	tempoTrack.Add(0, smf.MetaTempo(120))
	tempoTrack.Close(0)
	if err := s.Add(tempoTrack); err != nil {
		t.Fatalf("adding tempo track: %v", err)
	}

	var rightTrack smf.Track
	rightTrack.Add(0, midi.NoteOn(0, 60, 100))
	rightTrack.Add(480, midi.NoteOff(0, 60))
	rightTrack.Close(0)
	if err := s.Add(rightTrack); err != nil {
		t.Fatalf("adding right-hand track: %v", err)
	}

	if err := s.WriteFile(filepath.Join(dir, name)); err != nil {
		t.Fatalf("writing fixture MIDI: %v", err)
	}
}

func TestRecordAndRunIncludeMidiFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixtureSMF(t, dir, "single-note.mid")

	baseline, err := Record(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := baseline["single-note.mid"]; !ok {
		t.Fatalf("baseline missing single-note.mid: %v", baseline)
	}

	mismatches, err := Run(dir, baseline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("freshly recorded MIDI baseline should be clean, got %v", mismatches)
	}
}

func TestLoadBaselineRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.json")
	data, err := json.Marshal(Baseline{"a.yaml": 1.5})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	baseline, err := LoadBaseline(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if baseline["a.yaml"] != 1.5 {
		t.Errorf("baseline[a.yaml] = %v, want 1.5", baseline["a.yaml"])
	}
}
