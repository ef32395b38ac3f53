// Package goldenset drives a directory of scorefile YAML and MIDI fixtures
// against a baseline.json of known-optimal costs, mirroring the original
// project's generate_baseline_scores.py regression harness: one fixture in,
// one recorded total score out, compared for an exact match.
package goldenset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pianofinger/ferrors"
	"pianofinger/handslice"
	"pianofinger/midiscore"
	"pianofinger/optimize"
	"pianofinger/report"
	"pianofinger/scorefile"
)

// Baseline maps a fixture file name (relative to the fixture directory)
// to its previously recorded total cost (both hands summed).
type Baseline map[string]float64

// LoadBaseline reads a baseline.json produced by Record.
func LoadBaseline(path string) (Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ParseUpstream, "reading baseline file", err)
	}
	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, ferrors.Wrap(ferrors.ParseUpstream, "parsing baseline JSON", err)
	}
	return b, nil
}

// Mismatch describes one fixture whose computed cost disagrees with the
// recorded baseline.
type Mismatch struct {
	Fixture   string
	Want      float64
	Got       float64
	Solutions string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %.1f, got %.1f\n%s", m.Fixture, m.Want, m.Got, m.Solutions)
}

// isFixture reports whether name is a fixture file this package knows how
// to load: a scorefile YAML document or a Standard MIDI File.
func isFixture(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".mid", ".midi":
		return true
	default:
		return false
	}
}

// loadFixture reads a fixture, dispatching on extension the same way
// main.go's loadHands does.
func loadFixture(path string) (right, left handslice.Hand, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		return midiscore.Hands(path)
	default:
		return scorefile.Hands(path)
	}
}

// fixtureScore is the full result of scoring one fixture: the total cost
// plus both hands' optimizer results, kept so a mismatch can report the
// solutions that produced the actual cost.
type fixtureScore struct {
	total       float64
	rightHand   handslice.Hand
	rightResult optimize.Result
	leftHand    handslice.Hand
	leftResult  optimize.Result
}

// scoreFixture loads one fixture and returns its total cost: the sum of
// the optimal cost of both hands.
func scoreFixture(path string) (fixtureScore, error) {
	right, left, err := loadFixture(path)
	if err != nil {
		return fixtureScore{}, err
	}
	leftResult, rightResult, err := optimize.OptimizeBothHands(left, right)
	if err != nil {
		return fixtureScore{}, err
	}
	return fixtureScore{
		total:       rightResult.Cost.Value() + leftResult.Cost.Value(),
		rightHand:   right,
		rightResult: rightResult,
		leftHand:    left,
		leftResult:  leftResult,
	}, nil
}

// solutionsText renders the solutions that produced fs's actual cost, one
// boxed report per hand, for a Mismatch to carry alongside its numbers.
func solutionsText(fs fixtureScore) string {
	var sb strings.Builder
	sb.WriteString(report.Text(handslice.Right, fs.rightHand, fs.rightResult))
	sb.WriteString(report.Text(handslice.Left, fs.leftHand, fs.leftResult))
	return sb.String()
}

// fixtureNames lists every *.yaml/*.yml/*.mid/*.midi fixture in dir, sorted.
func fixtureNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ParseUpstream, "reading fixture directory", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isFixture(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Run scores every *.yaml/*.mid fixture in dir that has an entry in
// baseline and returns the fixtures whose score disagrees; fixtures with
// no baseline entry are skipped. An empty result means the golden set is
// clean.
func Run(dir string, baseline Baseline) ([]Mismatch, error) {
	names, err := fixtureNames(dir)
	if err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for _, name := range names {
		want, ok := baseline[name]
		if !ok {
			continue
		}
		fs, err := scoreFixture(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", name, err)
		}
		if fs.total != want {
			mismatches = append(mismatches, Mismatch{
				Fixture:   name,
				Want:      want,
				Got:       fs.total,
				Solutions: solutionsText(fs),
			})
		}
	}
	return mismatches, nil
}

// Record scores every *.yaml/*.mid fixture in dir and returns a fresh
// baseline, the Go equivalent of generate_baseline_scores.py's output.
func Record(dir string) (Baseline, error) {
	names, err := fixtureNames(dir)
	if err != nil {
		return nil, err
	}

	baseline := Baseline{}
	for _, name := range names {
		fs, err := scoreFixture(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", name, err)
		}
		baseline[name] = fs.total
	}
	return baseline, nil
}
