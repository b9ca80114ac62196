package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sporelab/fungal-evolution/internal/application/common"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// Saves accrue passive production only when at least this much wall-clock
// time has passed since the last save point
const minOfflineSeconds = 1

// LoadState loads the last snapshot and reconciles offline progress. It runs
// once, before the engine accepts any action. Absent or corrupt snapshots
// fall back to the default initial state; corruption is never surfaced to the
// player.
func LoadState(ctx context.Context, repo SaveRepository, clock shared.Clock, logger common.GameLogger) *game.State {
	now := clock.Now()

	loaded, err := repo.Load(ctx)
	if err != nil {
		logger.Log("WARN", fmt.Sprintf("failed to load save, starting fresh: %v", err), nil)
		return game.NewState(now)
	}
	if loaded == nil {
		return game.NewState(now)
	}

	applyDefaults(loaded, now)
	reconcile(loaded, now, logger)
	return loaded
}

// applyDefaults fills fields a pre-release save may be missing, so decoding is
// a single defaulted step rather than presence checks scattered at use sites.
func applyDefaults(s *game.State, now time.Time) {
	if s.Resources == nil {
		s.Resources = map[shared.ResourceKind]float64{}
	}
	for _, kind := range shared.ResourceKinds() {
		if _, ok := s.Resources[kind]; !ok {
			s.Resources[kind] = 0
		}
	}
	if len(s.UnlockedModes) == 0 {
		s.UnlockedModes = []shared.GameMode{shared.ModeClicker}
	}
	if !s.CurrentMode.IsValid() || !s.ModeUnlocked(s.CurrentMode) {
		s.CurrentMode = shared.ModeClicker
	}
	if s.UpgradeLevels == nil {
		s.UpgradeLevels = map[string]int{}
	}
	if len(s.Plots) != game.PlotCount {
		// Pad or truncate to the standard layout, keeping whatever plot
		// records the save did carry
		plots := game.NewState(now).Plots
		for i := 0; i < len(s.Plots) && i < game.PlotCount; i++ {
			plots[i] = s.Plots[i]
			plots[i].ID = i
		}
		s.Plots = plots
	}
	if s.ActiveMissions == nil {
		s.ActiveMissions = []game.ActiveMission{}
	}
	if s.ClickLevel < 1 {
		s.ClickLevel = 1
	}
	if s.ClickXP < 0 || s.ClickXP >= s.ClickLevel {
		s.ClickXP = 0
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
	if s.LastSaveTime.IsZero() {
		s.LastSaveTime = now
	}
}

// reconcile credits passive production for the time the engine was not
// running. Per-tick effects like golden expiry do not apply retroactively, so
// the credit bypasses the Tick action.
func reconcile(s *game.State, now time.Time, logger common.GameLogger) {
	elapsed := now.Sub(s.LastSaveTime).Seconds()
	if elapsed > minOfflineSeconds {
		stats := game.CalculateStats(s.UpgradeLevels)
		gained := stats.PassiveRate * elapsed
		if gained > 0 {
			s.Resources[shared.ResourceSpores] += gained
			logger.Log("INFO", fmt.Sprintf("offline for %.1fs, gained %.0f spores", elapsed, gained), nil)
		}
	}
	s.LastSaveTime = now
}
