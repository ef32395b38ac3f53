// Package fingerprint is an interactive bubbletea browser over a hand's
// co-optimal solution set, re-skinned from the teacher's fretboard/TUI
// idiom onto a piano keyboard: left/right cycles solutions, up/down
// cycles slices, each key drawn white or black with its assigned finger.
package fingerprint

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pianofinger/handslice"
	"pianofinger/optimize"
	"pianofinger/pitch"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	whiteKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EEEEEE"))
	blackKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	activeKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// Model is the Bubbletea model for browsing one hand's Result.
type Model struct {
	side     handslice.Side
	hand     handslice.Hand
	result   optimize.Result
	solIdx   int
	sliceIdx int
	quitting bool
}

// New builds a browser model over one hand's optimization result.
func New(side handslice.Side, hand handslice.Hand, result optimize.Result) *Model {
	return &Model{side: side, hand: hand, result: result}
}

// Init satisfies tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key navigation between solutions and slices.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left":
		if len(m.result.Solutions) > 0 {
			m.solIdx = (m.solIdx - 1 + len(m.result.Solutions)) % len(m.result.Solutions)
		}
	case "right":
		if len(m.result.Solutions) > 0 {
			m.solIdx = (m.solIdx + 1) % len(m.result.Solutions)
		}
	case "up":
		if len(m.hand.Slices) > 0 {
			m.sliceIdx = (m.sliceIdx - 1 + len(m.hand.Slices)) % len(m.hand.Slices)
		}
	case "down":
		if len(m.hand.Slices) > 0 {
			m.sliceIdx = (m.sliceIdx + 1) % len(m.hand.Slices)
		}
	}
	return m, nil
}

// View renders the header, current slice's keyboard strip, and footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.result.Solutions) == 0 {
		return "no solutions\n"
	}

	label := "Right hand"
	if m.side == handslice.Left {
		label = "Left hand"
	}
	title := titleStyle.Render(fmt.Sprintf(" %s fingering browser ", label))
	info := headerStyle.Render(fmt.Sprintf("cost %.1f | solution %d/%d | slice %d/%d",
		m.result.Cost.Value(), m.solIdx+1, len(m.result.Solutions), m.sliceIdx+1, len(m.hand.Slices)))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(info)
	b.WriteString("\n\n")
	b.WriteString(m.renderKeyboard())
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("  [←/→] solution  [↑/↓] slice  [q] quit"))
	return b.String()
}

// renderKeyboard draws one row of ASCII keys spanning the current slice's
// pitches plus one octave on either side, labeling the keys struck in the
// current slice with their assigned finger.
func (m *Model) renderKeyboard() string {
	if len(m.hand.Slices) == 0 {
		return ""
	}
	slice := m.hand.Slices[m.sliceIdx]
	fingering := m.result.Solutions[m.solIdx][m.sliceIdx]

	fingerOf := map[pitch.Pitch]handslice.Finger{}
	for i, p := range slice {
		fingerOf[p] = fingering[i]
	}

	lo, hi := slice[0], slice[len(slice)-1]
	lo -= pitch.StepsPerOctave
	hi += pitch.StepsPerOctave

	var keys []string
	for p := lo; p <= hi; p++ {
		f, struck := fingerOf[p]
		label := " "
		if struck {
			label = fmt.Sprintf("%d", f)
		}
		style := whiteKeyStyle
		if pitch.IsBlack(p) {
			style = blackKeyStyle
		}
		if struck {
			style = activeKeyStyle
		}
		keys = append(keys, style.Render(fmt.Sprintf("[%s]", label)))
	}
	return " " + strings.Join(keys, "")
}

// Run launches the interactive browser.
func Run(side handslice.Side, hand handslice.Hand, result optimize.Result) error {
	p := tea.NewProgram(New(side, hand, result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
