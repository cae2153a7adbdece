package dice

import "sort"

// Modifier selects which outcomes of a roll count toward its total. The set
// of modifiers is closed; every implementation lives in this package.
type Modifier interface {
	// Select splits the outcomes into the ones that count and the ones that
	// are dropped. The input slice is left untouched.
	Select(outcomes []int) (kept, dropped []int)

	modifier()
}

// KeepAll counts every outcome. It is the default when a roll names no
// modifier.
type KeepAll struct{}

func (KeepAll) Select(outcomes []int) ([]int, []int) {
	return outcomes, nil
}

func (KeepAll) modifier() {}

// KeepHighest counts only the N highest outcomes.
type KeepHighest struct {
	N int
}

func (keep KeepHighest) Select(outcomes []int) ([]int, []int) {
	sorted := sortedCopy(outcomes)
	cut := len(sorted) - clampKeep(keep.N, len(sorted))
	return sorted[cut:], sorted[:cut]
}

func (KeepHighest) modifier() {}

// KeepLowest counts only the N lowest outcomes.
type KeepLowest struct {
	N int
}

func (keep KeepLowest) Select(outcomes []int) ([]int, []int) {
	sorted := sortedCopy(outcomes)
	cut := clampKeep(keep.N, len(sorted))
	return sorted[:cut], sorted[cut:]
}

func (KeepLowest) modifier() {}

func sortedCopy(outcomes []int) []int {
	sorted := append([]int(nil), outcomes...)
	sort.Ints(sorted)
	return sorted
}

// clampKeep keeps the count within the number of outcomes that exist
func clampKeep(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
