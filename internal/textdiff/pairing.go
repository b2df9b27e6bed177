package textdiff

import (
	"github.com/jonathan/doc-intelligence/internal/similarity"
	"github.com/jonathan/doc-intelligence/internal/types"
)

// PairThreshold is the similarity a deletion/addition pair must strictly
// exceed to be reported as a modification instead of two independent changes.
const PairThreshold = 0.6

// Pairer reclassifies deletion/addition pairs as modifications. It exists as
// an interface so the greedy heuristic can later be swapped for an optimal
// assignment without touching callers.
type Pairer interface {
	// Pair returns the modifications plus the deletions and additions that
	// remained unmatched, preserving input order.
	Pair(deletions, additions []string) (mods []types.Modification, restDel, restAdd []string)
}

// GreedyPairer matches each deletion, in order, to the highest-similarity
// still-unmatched addition above PairThreshold. Ties go to the
// earliest-indexed addition. The first deletion therefore gets the first
// best match; this order dependence is intentional and load-bearing for
// report stability.
type GreedyPairer struct{}

// Pair implements Pairer.
func (GreedyPairer) Pair(deletions, additions []string) ([]types.Modification, []string, []string) {
	mods := []types.Modification{}
	usedAdd := make([]bool, len(additions))
	usedDel := make([]bool, len(deletions))

	for i, del := range deletions {
		bestScore := 0.0
		bestIdx := -1
		for j, add := range additions {
			if usedAdd[j] {
				continue
			}
			score := similarity.Ratio(del, add)
			if score > PairThreshold && score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}
		if bestIdx >= 0 {
			mods = append(mods, types.Modification{
				Old:        del,
				New:        additions[bestIdx],
				Similarity: similarity.Round3(bestScore),
			})
			usedDel[i] = true
			usedAdd[bestIdx] = true
		}
	}

	restDel := []string{}
	for i, del := range deletions {
		if !usedDel[i] {
			restDel = append(restDel, del)
		}
	}
	restAdd := []string{}
	for j, add := range additions {
		if !usedAdd[j] {
			restAdd = append(restAdd, add)
		}
	}
	return mods, restDel, restAdd
}
