package engine

import (
	"fmt"

	"github.com/lixenwraith/solitaire/card"
)

// Intn is the random source used by Shuffle
// Implementations must return a value in [0, n)
type Intn interface {
	Intn(n int) int
}

// Shuffle permutes ids uniformly at random in place
// Indices are drawn over the whole range and rejected when already taken,
// so every index is sampled from [0, len(ids)-1] only
func Shuffle(ids []card.ID, rng Intn) {
	n := len(ids)
	if n < 2 {
		return
	}

	drawn := make([]bool, n)
	acc := make([]card.ID, 0, n)
	for len(acc) < n {
		i := rng.Intn(n)
		if i < 0 || i >= n {
			panic(fmt.Errorf("%w: shuffle index %d outside [0, %d]", ErrInvariantViolation, i, n-1))
		}
		if drawn[i] {
			continue
		}
		drawn[i] = true
		acc = append(acc, ids[i])
	}
	copy(ids, acc)
}
