package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sporelab/fungal-evolution/internal/application/common"
	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/mission"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// TickDriver emits elapsed-time ticks into the engine to realize passive
// production and timed expiries. It measures real elapsed time between fires
// rather than assuming the interval, so a delayed fire still credits the full
// delta.
type TickDriver struct {
	engine   *Engine
	clock    shared.Clock
	interval time.Duration
}

// NewTickDriver creates a tick driver firing at the given interval
func NewTickDriver(e *Engine, clock shared.Clock, interval time.Duration) *TickDriver {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &TickDriver{engine: e, clock: clock, interval: interval}
}

// Run drives ticks until the context is cancelled
func (d *TickDriver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	last := d.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := d.clock.Now()
			delta := now.Sub(last).Seconds()
			last = now
			d.engine.Dispatch(game.Tick{DeltaTime: delta})
		}
	}
}

// MissionPoller is the low-frequency pass that resolves missions past their
// deadline: one roll per due instance, dispatched back as a completion.
type MissionPoller struct {
	engine   *Engine
	resolver *mission.Resolver
	clock    shared.Clock
	interval time.Duration
}

// NewMissionPoller creates a poller resolving due missions at the given cadence
func NewMissionPoller(e *Engine, resolver *mission.Resolver, clock shared.Clock, interval time.Duration) *MissionPoller {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &MissionPoller{engine: e, resolver: resolver, clock: clock, interval: interval}
}

// Run polls until the context is cancelled
func (p *MissionPoller) Run(ctx context.Context) {
	logger := common.LoggerFromContext(ctx)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ResolveDue(logger)
		}
	}
}

// ResolveDue resolves every active instance whose deadline has elapsed.
// Resolution is keyed off the active status, so a completed instance is never
// rerolled.
func (p *MissionPoller) ResolveDue(logger common.GameLogger) {
	now := p.clock.Now()
	state := p.engine.CurrentState()

	for _, m := range state.ActiveMissions {
		if m.Status != game.MissionActive || now.Before(m.EndTime) {
			continue
		}
		cfg := content.MissionByID(m.MissionID)
		if cfg == nil {
			continue
		}
		result := p.resolver.Resolve(cfg, now)
		p.engine.Dispatch(game.CompleteMission{InstanceID: m.InstanceID, Result: result})

		outcome := "succeeded"
		if !result.Success {
			outcome = "failed"
		}
		logger.Log("INFO", fmt.Sprintf("mission %s %s", cfg.Name, outcome), map[string]interface{}{
			"mission":  m.MissionID,
			"instance": m.InstanceID,
		})
	}
}

// Autosaver periodically snapshots the current state through the persistence
// gateway. It reads a fresh reference at every fire; a captured snapshot
// would go stale and persist torn progress.
type Autosaver struct {
	engine   *Engine
	repo     SaveRepository
	interval time.Duration
}

// NewAutosaver creates an autosaver writing at the given cadence
func NewAutosaver(e *Engine, repo SaveRepository, interval time.Duration) *Autosaver {
	return &Autosaver{engine: e, repo: repo, interval: interval}
}

// Run saves until the context is cancelled, then writes one final snapshot
func (a *Autosaver) Run(ctx context.Context) {
	logger := common.LoggerFromContext(ctx)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Best-effort final save on shutdown
			if err := a.repo.Save(context.Background(), a.engine.CurrentState()); err != nil {
				logger.Log("WARN", fmt.Sprintf("final save failed: %v", err), nil)
			}
			return
		case <-ticker.C:
			if err := a.repo.Save(ctx, a.engine.CurrentState()); err != nil {
				logger.Log("WARN", fmt.Sprintf("autosave failed: %v", err), nil)
			}
		}
	}
}
