package diff

import (
	"sort"

	"datadiff/core/table"
)

// Assignment is an injective partial map from source row index to target row index.
// Pairs are only ever added.
type Assignment struct {
	bySource map[int]int
	consumed map[int]bool
}

// NewAssignment returns an empty assignment.
func NewAssignment() *Assignment {
	return &Assignment{
		bySource: make(map[int]int),
		consumed: make(map[int]bool),
	}
}

// Assign pairs source with target. It refuses (and returns false) when either side is
// already paired.
func (a *Assignment) Assign(source, target int) bool {
	if _, ok := a.bySource[source]; ok {
		return false
	}
	if a.consumed[target] {
		return false
	}
	a.bySource[source] = target
	a.consumed[target] = true
	return true
}

// Target returns the target paired with source.
func (a *Assignment) Target(source int) (int, bool) {
	t, ok := a.bySource[source]
	return t, ok
}

// Consumed reports whether target has been paired.
func (a *Assignment) Consumed(target int) bool {
	return a.consumed[target]
}

// Len returns the number of pairs.
func (a *Assignment) Len() int {
	return len(a.bySource)
}

// Aligner pairs rows of two tables by content similarity.
type Aligner struct {
	PrefilterThreshold float64
	MatchThreshold     float64
	MaxCandidates      int
}

// NewAligner builds an aligner from comparison options.
func NewAligner(opts Options) *Aligner {
	return &Aligner{
		PrefilterThreshold: opts.PrefilterThreshold,
		MatchThreshold:     opts.MatchThreshold,
		MaxCandidates:      opts.MaxCandidates,
	}
}

type candidate struct {
	index int
	score float64
}

// Align pairs source rows with target rows.
//
// Source rows are processed in order. For each one, the unpaired targets whose
// fingerprint similarity exceeds PrefilterThreshold are kept (the best MaxCandidates
// of them when there are more), fully scored with RowSimilarity, and the best one
// (earliest on ties) is paired when its score is at least MatchThreshold. A paired
// target is never offered again, so the outcome depends on source order.
func (a *Aligner) Align(source, target []table.Row) *Assignment {
	assignment := NewAssignment()

	targetPrints := make([]Fingerprint, len(target))
	for i, row := range target {
		targetPrints[i] = NewFingerprint(row)
	}

	for si, srcRow := range source {
		fp := NewFingerprint(srcRow)

		var candidates []candidate
		for ti := range target {
			if assignment.Consumed(ti) {
				continue
			}
			score := FingerprintSimilarity(fp, targetPrints[ti])
			if score > a.PrefilterThreshold {
				candidates = append(candidates, candidate{index: ti, score: score})
			}
		}

		if a.MaxCandidates > 0 && len(candidates) > a.MaxCandidates {
			sort.SliceStable(candidates, func(i, j int) bool {
				return candidates[i].score > candidates[j].score
			})
			candidates = candidates[:a.MaxCandidates]
			// Restore target order so ties resolve to the earliest target.
			sort.Slice(candidates, func(i, j int) bool {
				return candidates[i].index < candidates[j].index
			})
		}

		best, bestScore := -1, -1.0
		for _, c := range candidates {
			score := RowSimilarity(srcRow, target[c.index])
			if score > bestScore {
				best, bestScore = c.index, score
			}
		}

		if best >= 0 && bestScore >= a.MatchThreshold {
			assignment.Assign(si, best)
		}
	}

	return assignment
}
