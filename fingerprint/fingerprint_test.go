package fingerprint

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pianofinger/handslice"
	"pianofinger/optimize"
	"pianofinger/pitch"
)

func sampleModel(t *testing.T) *Model {
	t.Helper()
	c4 := pitch.Encode(pitch.C, 0, 4)
	d4 := pitch.Encode(pitch.D, 0, 4)
	notes := []handslice.Note{
		{Pitch: c4, Side: handslice.Right},
		{Pitch: d4, Side: handslice.Right},
	}
	hand, err := handslice.NewHand(handslice.Right, notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := optimize.Optimize(hand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(handslice.Right, hand, result)
}

func TestNavigationWrapsAround(t *testing.T) {
	m := sampleModel(t)
	n := len(m.result.Solutions)
	initial := m.solIdx

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if n > 1 && m.solIdx == initial {
		t.Error("left should move to a different solution when more than one exists")
	}
	afterLeft := m.solIdx

	for i := 0; i < n; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.solIdx != afterLeft {
		t.Errorf("solIdx after a full right cycle = %d, want back to %d", m.solIdx, afterLeft)
	}
}

func TestQuitSetsQuitting(t *testing.T) {
	m := sampleModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.quitting {
		t.Error("esc should set quitting")
	}
	if cmd == nil {
		t.Error("esc should return a quit command")
	}
	if m.View() != "" {
		t.Error("View should render empty once quitting")
	}
}

func TestViewRendersFingerLabels(t *testing.T) {
	m := sampleModel(t)
	out := m.View()
	if !strings.Contains(out, "fingering browser") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "solution 1") {
		t.Error("missing solution index")
	}
}
