// Package optimize implements the windowed dynamic program that finds the
// minimum-cost fingering of a hand and every fingering tied for that
// minimum, plus the direct cost_of evaluator used to score a fingering
// without optimizing.
package optimize

import (
	"sort"
	"strings"
	"sync"

	"pianofinger/ferrors"
	"pianofinger/handslice"
	"pianofinger/rules"
)

// Result is what Optimize returns for one hand.
type Result struct {
	Cost      rules.Cost
	Solutions []handslice.HandFingering
}

// cell0 is a step-0 DP entry: the cumulative cost of assigning A to slice 0.
type cell0 struct {
	cost rules.Cost
	a    handslice.Fingering
}

// cell is a step-t>=1 DP entry for pair state (A, B): the cumulative cost
// through slice t, plus the keys of every predecessor in the previous
// step's table (or, at t==1, none — the chain starts there) that achieved
// that cost.
type cell struct {
	cost  rules.Cost
	a, b  handslice.Fingering
	preds []string
}

func fingerKey(f handslice.Fingering) string {
	var sb strings.Builder
	for _, x := range f {
		sb.WriteByte(byte('0' + int(x)))
	}
	return sb.String()
}

func pairKey(a, b handslice.Fingering) string {
	return fingerKey(a) + "#" + fingerKey(b)
}

// Optimize runs the exact DP over one hand and returns the minimum cost
// together with every fingering sequence that attains it, deterministic
// and duplicate-free.
func Optimize(hand handslice.Hand) (Result, error) {
	n := len(hand.Slices)
	if n == 0 {
		return Result{Cost: 0, Solutions: []handslice.HandFingering{{}}}, nil
	}

	cands := make([][]handslice.Fingering, n)
	for i, s := range hand.Slices {
		cands[i] = handslice.Candidates(s)
	}

	table0 := map[string]cell0{}
	for _, a := range cands[0] {
		c, err := cost0(hand.Slices[0], a, hand.Side)
		if err != nil {
			return Result{}, err
		}
		key := fingerKey(a)
		if existing, ok := table0[key]; !ok || c < existing.cost {
			table0[key] = cell0{cost: c, a: a}
		}
	}

	if n == 1 {
		min, keys := minCells0(table0)
		var sols []handslice.HandFingering
		for _, k := range keys {
			sols = append(sols, handslice.HandFingering{table0[k].a})
		}
		return Result{Cost: min, Solutions: dedupFingerings(sols)}, nil
	}

	tables := make([]map[string]*cell, n) // tables[t] valid for t=1..n-1
	for t := 1; t < n; t++ {
		table := map[string]*cell{}

		if t == 1 {
			for _, a := range cands[0] {
				prevCell, ok := table0[fingerKey(a)]
				if !ok {
					continue
				}
				for _, b := range cands[1] {
					tc, err := transition(hand.Side, hand.Slices, 1, nil, a, b, false)
					if err != nil {
						return Result{}, err
					}
					total := prevCell.cost + tc
					addCell(table, a, b, total, nil)
				}
			}
		} else {
			prevTable := tables[t-1]
			for pk, parent := range prevTable {
				a := parent.b // slice t-1 fingering
				for _, b := range cands[t] {
					tc, err := transition(hand.Side, hand.Slices, t, parent.a, a, b, true)
					if err != nil {
						return Result{}, err
					}
					total := parent.cost + tc
					addCell(table, a, b, total, []string{pk})
				}
			}
		}
		tables[t] = table
	}

	final := tables[n-1]
	min, finalKeys := minCellsPair(final)

	var paths [][]handslice.Fingering
	for _, k := range finalKeys {
		paths = append(paths, expand(tables, n-1, k)...)
	}

	var sols []handslice.HandFingering
	for _, p := range paths {
		sols = append(sols, handslice.HandFingering(p))
	}
	return Result{Cost: min, Solutions: dedupFingerings(sols)}, nil
}

// addCell keeps, for a given (a,b) pair key, the minimum cost seen and the
// full set of predecessor keys that achieve it (ties retained).
func addCell(table map[string]*cell, a, b handslice.Fingering, total rules.Cost, preds []string) {
	key := pairKey(a, b)
	existing, ok := table[key]
	if !ok {
		table[key] = &cell{cost: total, a: a, b: b, preds: append([]string(nil), preds...)}
		return
	}
	if total < existing.cost {
		existing.cost = total
		existing.preds = append([]string(nil), preds...)
	} else if total == existing.cost {
		existing.preds = append(existing.preds, preds...)
	}
}

func minCells0(table map[string]cell0) (rules.Cost, []string) {
	var min rules.Cost
	first := true
	var keys []string
	for _, c := range table {
		if first || c.cost < min {
			min = c.cost
			first = false
		}
	}
	for k, c := range table {
		if c.cost == min {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return min, keys
}

func minCellsPair(table map[string]*cell) (rules.Cost, []string) {
	var min rules.Cost
	first := true
	for _, c := range table {
		if first || c.cost < min {
			min = c.cost
			first = false
		}
	}
	var keys []string
	for k, c := range table {
		if c.cost == min {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return min, keys
}

// expand walks the predecessor chain backward from step t's state key and
// returns every full path of fingerings (slice 0..t) consistent with it.
func expand(tables []map[string]*cell, t int, key string) [][]handslice.Fingering {
	c := tables[t][key]
	if t == 1 {
		return [][]handslice.Fingering{{c.a, c.b}}
	}
	preds := append([]string(nil), c.preds...)
	sort.Strings(preds)
	var out [][]handslice.Fingering
	for _, pk := range preds {
		for _, prefix := range expand(tables, t-1, pk) {
			full := append(append([]handslice.Fingering(nil), prefix...), c.b)
			out = append(out, full)
		}
	}
	return out
}

func dedupFingerings(sols []handslice.HandFingering) []handslice.HandFingering {
	seen := map[string]bool{}
	var out []handslice.HandFingering
	for _, s := range sols {
		var sb strings.Builder
		for _, f := range s {
			sb.WriteString(fingerKey(f))
			sb.WriteByte('|')
		}
		k := sb.String()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

// CostOf evaluates the full rule set for a complete, given fingering of a
// hand, without optimizing. Useful for regression tests and reporting.
func CostOf(hand handslice.Hand, fingering handslice.HandFingering) (rules.Cost, error) {
	n := len(hand.Slices)
	if len(fingering) != n {
		return 0, ferrors.New(ferrors.InternalInconsistency,
			"fingering length does not match slice count")
	}
	if n == 0 {
		return 0, nil
	}

	total, err := cost0(hand.Slices[0], fingering[0], hand.Side)
	if err != nil {
		return 0, err
	}

	for t := 1; t < n; t++ {
		var z handslice.Fingering
		hasZ := t >= 2
		if hasZ {
			z = fingering[t-2]
		}
		tc, err := transition(hand.Side, hand.Slices, t, z, fingering[t-1], fingering[t], hasZ)
		if err != nil {
			return 0, err
		}
		total += tc
	}
	return total, nil
}

// OptimizeBothHands runs Optimize on the left and right hands concurrently,
// since neither shares mutable state with the other.
func OptimizeBothHands(left, right handslice.Hand) (leftResult, rightResult Result, err error) {
	var wg sync.WaitGroup
	var leftErr, rightErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		leftResult, leftErr = Optimize(left)
	}()
	go func() {
		defer wg.Done()
		rightResult, rightErr = Optimize(right)
	}()
	wg.Wait()
	if leftErr != nil {
		return Result{}, Result{}, leftErr
	}
	if rightErr != nil {
		return Result{}, Result{}, rightErr
	}
	return leftResult, rightResult, nil
}
