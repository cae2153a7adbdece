package dice

import "math/rand"

// Roller generates die outcomes from a deterministic random source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller that draws outcomes from the given source
func NewRoller(src rand.Source) *Roller {
	return &Roller{rand.New(src)}
}

// NewRollerFromSeed creates a roller that replays the same outcomes for the
// same seed.
func NewRollerFromSeed(seed int64) *Roller {
	return NewRoller(rand.NewSource(seed))
}

// Roll generates outcomes for the given number of dice, each one uniform in
// [1, size], and sums the ones the modifier keeps. The returned slice holds
// every outcome in generation order, dropped ones included. A count below
// zero rolls nothing. A size below one lands every die on zero without
// drawing from the random source, so the stream of outcomes stays aligned
// across rolls that mix real and zero-faced dice.
func (roller *Roller) Roll(count, size int, keep Modifier) (int, []int) {
	if count < 0 {
		count = 0
	}
	outcomes := make([]int, count)
	if size > 0 {
		for i := range outcomes {
			outcomes[i] = roller.rng.Intn(size) + 1
		}
	}
	if keep == nil {
		keep = KeepAll{}
	}
	kept, _ := keep.Select(outcomes)
	total := 0
	for _, outcome := range kept {
		total += outcome
	}
	return total, outcomes
}
