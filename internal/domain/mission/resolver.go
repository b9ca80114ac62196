// Package mission resolves expired away-missions: one stochastic roll per
// instance plus a narrated log bracketing the journey. Resolution never
// touches resources; the warrior cost was already spent at mission start.
package mission

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
)

// Resolver performs success/failure rolls for missions past their deadline
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver. A nil rng defaults to a time-seeded source.
func NewResolver(rng *rand.Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{rng: rng}
}

// Resolve performs exactly one independent Bernoulli trial with success
// probability 1-risk and builds the result. Rewards are copied from the
// config on success and empty on failure.
func (r *Resolver) Resolve(cfg *content.MissionConfig, now time.Time) game.MissionResult {
	success := r.rng.Float64() > cfg.Risk

	var rewards []game.MissionReward
	if success {
		rewards = make([]game.MissionReward, len(cfg.Rewards))
		for i, rw := range cfg.Rewards {
			rewards[i] = game.MissionReward{Resource: rw.Resource, Amount: rw.Amount}
		}
	} else {
		rewards = []game.MissionReward{}
	}

	return game.MissionResult{
		Success: success,
		Rewards: rewards,
		Log:     narrate(cfg, success, now),
	}
}

// narrate builds the ordered journey log: departure, optional mid-journey
// flavor for longer missions, then the outcome entries.
func narrate(cfg *content.MissionConfig, success bool, now time.Time) []game.MissionLogEntry {
	duration := time.Duration(cfg.Duration * float64(time.Second))

	log := []game.MissionLogEntry{
		{
			Timestamp: now.Add(-duration),
			Message:   fmt.Sprintf("Squad departed for %s.", cfg.Name),
			Kind:      game.LogInfo,
		},
	}

	if cfg.Duration > 5 {
		log = append(log, game.MissionLogEntry{
			Timestamp: now.Add(-duration / 2),
			Message:   "Encountered local fauna.",
			Kind:      game.LogInfo,
		})
	}

	if success {
		log = append(log,
			game.MissionLogEntry{Timestamp: now, Message: "Mission successful! Resources secured.", Kind: game.LogSuccess},
			game.MissionLogEntry{Timestamp: now, Message: "Squad returning home.", Kind: game.LogInfo},
		)
	} else {
		log = append(log,
			game.MissionLogEntry{Timestamp: now, Message: "Ambush! Squad was overwhelmed.", Kind: game.LogDanger},
			game.MissionLogEntry{Timestamp: now, Message: "Signal lost. No survivors.", Kind: game.LogDanger},
		)
	}

	return log
}
