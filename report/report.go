// Package report formats an optimize.Result as human-readable text or JSON,
// in the box-drawing style display.ShowTrack uses for a track summary.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"pianofinger/handslice"
	"pianofinger/optimize"
	"pianofinger/pitch"
)

// Text renders one hand's result as a boxed summary followed by one line
// per co-optimal solution, each note shown as "Name/finger".
func Text(side handslice.Side, hand handslice.Hand, result optimize.Result) string {
	var sb strings.Builder

	label := "Right hand"
	if side == handslice.Left {
		label = "Left hand"
	}
	info := fmt.Sprintf("%s | %d slices | cost %.1f | %d solution(s)",
		label, len(hand.Slices), result.Cost.Value(), len(result.Solutions))

	maxLen := len(info)
	fmt.Fprintf(&sb, "┌─ %s\n", strings.Repeat("─", maxLen+1))
	fmt.Fprintf(&sb, "│ %s\n", info)
	fmt.Fprintf(&sb, "└%s\n\n", strings.Repeat("─", maxLen+2))

	for i, sol := range result.Solutions {
		fmt.Fprintf(&sb, "solution %d: %s\n", i+1, formatFingering(hand, sol))
	}

	return sb.String()
}

func formatFingering(hand handslice.Hand, sol handslice.HandFingering) string {
	var parts []string
	for t, slice := range hand.Slices {
		f := sol[t]
		var notes []string
		for i, p := range slice {
			notes = append(notes, fmt.Sprintf("%s/%d", pitch.Name(p), f[i]))
		}
		parts = append(parts, strings.Join(notes, "+"))
	}
	return strings.Join(parts, "  ")
}

// JSONResult is the wire shape of JSON serializes to.
type JSONResult struct {
	Hand      string     `json:"hand"`
	Cost      float64    `json:"cost"`
	Solutions [][][]slot `json:"solutions"`
}

type slot struct {
	Note   string `json:"note"`
	Finger int    `json:"finger"`
}

// JSON renders one hand's result as a JSON document.
func JSON(side handslice.Side, hand handslice.Hand, result optimize.Result) (string, error) {
	label := "right"
	if side == handslice.Left {
		label = "left"
	}

	out := JSONResult{Hand: label, Cost: result.Cost.Value()}
	for _, sol := range result.Solutions {
		var solSlots [][]slot
		for t, slice := range hand.Slices {
			f := sol[t]
			var sliceSlots []slot
			for i, p := range slice {
				sliceSlots = append(sliceSlots, slot{Note: pitch.Name(p), Finger: int(f[i])})
			}
			solSlots = append(solSlots, sliceSlots)
		}
		out.Solutions = append(out.Solutions, solSlots)
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
