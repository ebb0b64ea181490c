package otlearn

import (
	"math"

	"github.com/golang/glog"
)

// Annealer runs Metropolis simulated annealing over Hypothesis
// neighbors, cooling the temperature geometrically by
// cfg.CoolingParameter every step until either the temperature drops
// below cfg.Threshold or cfg.StepsLimitation steps have run.
type Annealer struct {
	Config   *Config
	Table    *FeatureTable
	Caches   *Caches
	Random   *Random
	Notifier *Notifier
}

// NewAnnealer wires an Annealer from its shared dependencies.
func NewAnnealer(cfg *Config, table *FeatureTable, r *Random, notifier *Notifier) *Annealer {
	return &Annealer{Config: cfg, Table: table, Caches: NewCaches(), Random: r, Notifier: notifier}
}

// Run anneals starting from start and returns the best (lowest
// energy) hypothesis found.
func (a *Annealer) Run(start *Hypothesis) *Hypothesis {
	cfg := a.Config
	current := start
	currentEnergy := current.Energy(a.Caches)
	best := current
	bestEnergy := currentEnergy

	temperature := cfg.InitialTemperature
	for step := 0; temperature > cfg.Threshold && float64(step) < cfg.StepsLimitation; step++ {
		neighbor := current.GetNeighbor(a.Random, a.Caches)
		neighborEnergy := neighbor.Energy(a.Caches)

		if a.accept(currentEnergy, neighborEnergy, temperature) {
			current = neighbor
			currentEnergy = neighborEnergy
			if currentEnergy < bestEnergy {
				best = current
				bestEnergy = currentEnergy
			}
		}

		if cfg.DebugLoggingInterval > 0 && step%cfg.DebugLoggingInterval == 0 {
			glog.V(1).Infof("step=%d temperature=%.4f energy=%.2f best=%.2f", step, temperature, currentEnergy, bestEnergy)
		}
		if cfg.ClearModulesCachingInterval > 0 && step%cfg.ClearModulesCachingInterval == 0 {
			a.Caches.ClearAll()
		}
		if a.Notifier != nil && cfg.SlackNotificationInterval > 0 && step%cfg.SlackNotificationInterval == 0 {
			a.Notifier.Notify(step, currentEnergy, bestEnergy)
		}

		temperature *= cfg.CoolingParameter
	}
	return best
}

// accept implements the Metropolis acceptance rule: always accept an
// improving (or equal) neighbor, otherwise accept with probability
// exp(-(delta)/temperature).
func (a *Annealer) accept(currentEnergy, neighborEnergy, temperature float64) bool {
	if neighborEnergy <= currentEnergy {
		return true
	}
	delta := neighborEnergy - currentEnergy
	p := math.Exp(-delta / temperature)
	return a.Random.Float64() < p
}
