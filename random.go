package otlearn

import (
	"math/rand"

	"github.com/golang/glog"
)

// Random is the single PRNG that every mutation, Metropolis
// acceptance, and random-constraint/bundle generator in this package
// draws from (see the concurrency model: exactly one PRNG, so a run
// is reproducible by seeding it once). math/rand's global source is
// used only by NewRandom, to pick a fresh seed when RANDOM_SEED is
// set.
type Random struct {
	*rand.Rand
	seed int64
}

// NewRandom seeds a Random either from cfg.Seed or, if cfg.RandomSeed
// is set, from a freshly chosen seed (logged so the run can be
// reproduced later).
func NewRandom(cfg *Config) *Random {
	seed := cfg.Seed
	if cfg.RandomSeed {
		seed = rand.New(rand.NewSource(rand.Int63())).Int63()
	}
	glog.Infof("seeding PRNG with %d", seed)
	return &Random{rand.New(rand.NewSource(seed)), seed}
}

// Seed returns the seed this Random was constructed with.
func (r *Random) Seed() int64 { return r.seed }

// WeightedChoice picks an index into weights with probability
// proportional to its (non-negative) weight. It returns -1 if every
// weight is zero.
func WeightedChoice(r *Random, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	x := r.Intn(total)
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}
