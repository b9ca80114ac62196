// Package engine owns the live game state: every transition is serialized
// through a single reducer behind the engine's lock, and background drivers
// read fresh immutable snapshots from it.
package engine

import (
	"math/rand"
	"sync"

	"github.com/sporelab/fungal-evolution/internal/application/common"
	"github.com/sporelab/fungal-evolution/internal/domain/achievement"
	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// Engine is the owned instance holding the current state. All dispatches are
// serialized; the held state value is immutable and safe to share with
// readers after it is swapped in.
type Engine struct {
	mu      sync.RWMutex
	state   *game.State
	reducer *game.Reducer
	clock   shared.Clock
	logger  common.GameLogger
}

// New creates an engine around an initial state. A nil clock defaults to the
// real clock, a nil rng to a time-seeded source, a nil logger to a no-op.
func New(initial *game.State, clock shared.Clock, rng *rand.Rand, logger common.GameLogger) *Engine {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if logger == nil {
		logger = common.NopLogger()
	}
	return &Engine{
		state:   initial,
		reducer: game.NewReducer(clock, rng),
		clock:   clock,
		logger:  logger,
	}
}

// Dispatch reduces one action, runs the achievement evaluator over the
// candidate next state, and swaps the result in. Returns the new snapshot.
func (e *Engine) Dispatch(action game.Action) *game.State {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.state
	next := e.reducer.Reduce(prev, action)
	next, unlocked := achievement.Apply(next)
	e.state = next

	e.logTransitions(prev, next, unlocked)
	return next
}

// CurrentState returns the latest immutable snapshot. Callers must read a
// fresh reference each time they need current data; held snapshots go stale.
func (e *Engine) CurrentState() *game.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Stats returns the derived production stats for the current snapshot
func (e *Engine) Stats() game.DerivedStats {
	return game.CalculateStats(e.CurrentState().UpgradeLevels)
}

func (e *Engine) logTransitions(prev, next *game.State, unlocked []string) {
	if next.ClickLevel > prev.ClickLevel {
		e.logger.Log("INFO", "click level up", map[string]interface{}{
			"level": next.ClickLevel,
		})
	}
	for i := len(prev.UnlockedModes); i < len(next.UnlockedModes); i++ {
		e.logger.Log("INFO", "mode unlocked", map[string]interface{}{
			"mode": string(next.UnlockedModes[i]),
		})
	}
	for _, id := range unlocked {
		e.logger.Log("INFO", "achievement unlocked", map[string]interface{}{
			"achievement": id,
		})
	}
}

// Click dispatches one manual mushroom click
func (e *Engine) Click() *game.State {
	return e.Dispatch(game.ClickMushroom{})
}

// ClickGolden claims the active golden shroom, if any
func (e *Engine) ClickGolden() *game.State {
	return e.Dispatch(game.ClickGolden{})
}

// SwitchMode changes the active gameplay mode after checking it is unlocked
func (e *Engine) SwitchMode(mode shared.GameMode) error {
	if !e.CurrentState().ModeUnlocked(mode) {
		return shared.NewModeLockedError(mode)
	}
	e.Dispatch(game.SwitchMode{Mode: mode})
	return nil
}

// BuyUpgrade checks affordability at the current level price and purchases
// one level of the upgrade
func (e *Engine) BuyUpgrade(upgradeID string) error {
	cfg := content.UpgradeByID(upgradeID)
	if cfg == nil {
		return shared.NewUnknownContentError("upgrade", upgradeID)
	}
	s := e.CurrentState()
	cost := content.UpgradeCost(cfg, s.UpgradeLevel(upgradeID))
	if s.Resource(shared.ResourceSpores) < cost {
		return shared.NewInsufficientResourcesError(shared.ResourceSpores, cost, s.Resource(shared.ResourceSpores))
	}
	e.Dispatch(game.BuyUpgrade{UpgradeID: upgradeID, Cost: cost})
	return nil
}

// UnlockPlot opens a garden plot at its scaling spore price
func (e *Engine) UnlockPlot(plotID int) error {
	s := e.CurrentState()
	plot := s.FindPlot(plotID)
	if plot == nil {
		return shared.NewValidationError("plot", "no such plot")
	}
	if plot.Unlocked {
		return shared.NewValidationError("plot", "already unlocked")
	}
	cost := content.PlotUnlockCost(plotID)
	if s.Resource(shared.ResourceSpores) < cost {
		return shared.NewInsufficientResourcesError(shared.ResourceSpores, cost, s.Resource(shared.ResourceSpores))
	}
	e.Dispatch(game.UnlockPlot{PlotID: plotID, Cost: cost})
	return nil
}

// PlantSeed plants a seed variety in an unlocked, empty plot
func (e *Engine) PlantSeed(plotID int, seedID string) error {
	seed := content.SeedByID(seedID)
	if seed == nil {
		return shared.NewUnknownContentError("seed", seedID)
	}
	s := e.CurrentState()
	plot := s.FindPlot(plotID)
	if plot == nil || !plot.Unlocked {
		return shared.NewValidationError("plot", "not unlocked")
	}
	if plot.Planted() {
		return shared.NewValidationError("plot", "already planted")
	}
	if s.Resource(shared.ResourceSpores) < seed.Cost {
		return shared.NewInsufficientResourcesError(shared.ResourceSpores, seed.Cost, s.Resource(shared.ResourceSpores))
	}
	e.Dispatch(game.PlantSeed{PlotID: plotID, SeedID: seedID, Cost: seed.Cost})
	return nil
}

// HarvestPlot harvests a fully grown seed, crediting its warrior yield
func (e *Engine) HarvestPlot(plotID int) error {
	s := e.CurrentState()
	plot := s.FindPlot(plotID)
	if plot == nil || !plot.Planted() {
		return shared.NewValidationError("plot", "nothing planted")
	}
	seed := content.SeedByID(plot.SeedID)
	if seed == nil {
		return shared.NewUnknownContentError("seed", plot.SeedID)
	}
	grown := e.clock.Now().Sub(*plot.PlantTime).Seconds()
	if grown < seed.GrowthTime {
		return shared.NewPlotNotReadyError(plotID, seed.GrowthTime-grown)
	}
	e.Dispatch(game.HarvestPlot{PlotID: plotID, WarriorYield: seed.WarriorYield})
	return nil
}

// StartMission commits warriors to a new instance of a mission template
func (e *Engine) StartMission(missionID string) error {
	cfg := content.MissionByID(missionID)
	if cfg == nil {
		return shared.NewUnknownContentError("mission", missionID)
	}
	s := e.CurrentState()
	if s.Resource(shared.ResourceWarriors) < cfg.Cost {
		return shared.NewInsufficientResourcesError(shared.ResourceWarriors, cfg.Cost, s.Resource(shared.ResourceWarriors))
	}
	e.Dispatch(game.StartMission{MissionID: missionID, Duration: cfg.Duration, Cost: cfg.Cost})
	return nil
}

// ClaimMission removes a completed instance, applying its rewards on success
func (e *Engine) ClaimMission(instanceID string) error {
	m := e.CurrentState().FindMission(instanceID)
	if m == nil {
		return shared.NewValidationError("mission", "no such mission instance")
	}
	if m.Status != game.MissionCompleted {
		return shared.NewValidationError("mission", "mission still underway")
	}
	e.Dispatch(game.ClaimMission{InstanceID: instanceID})
	return nil
}
