package random

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Source is the single randomness dependency of every engine.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

const WeightsTolerance = 1e-6

// New returns a seeded generator. Seed 0 means "seed from the clock".
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ValidateWeights checks that weights form a probability distribution
// with strictly positive entries.
func ValidateWeights(weights []float64) error {
	if len(weights) == 0 {
		return fmt.Errorf("no weights")
	}
	sum := 0.0
	for i, w := range weights {
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("weight %d is %v, must be positive", i, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > WeightsTolerance {
		return fmt.Errorf("invalid weights sum %v != 1", sum)
	}
	return nil
}

// Sample picks an index with probability proportional to its weight.
func Sample(rng *rand.Rand, weights []float64) (int, error) {
	if err := ValidateWeights(weights); err != nil {
		return 0, err
	}
	r := rng.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}
