package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

const (
	gardenUnlockSpores        = 100
	missionUnlockWarriors     = 1
	goldenSpawnChancePerLevel = 0.005
	goldenBonusPerLevel       = 100
)

// Reducer is the deterministic state machine: given the current state and an
// action it produces the next state. It never mutates its input; ineligible or
// unrecognized actions return the input state unchanged (same reference), so
// callers can detect "nothing happened" without a deep comparison.
//
// Time and randomness are injected so transitions are reproducible in tests.
type Reducer struct {
	clock shared.Clock
	rng   *rand.Rand
	newID func() string
}

// NewReducer creates a reducer. A nil clock defaults to the real clock and a
// nil rng to a time-seeded source; mission instance IDs come from uuid.
func NewReducer(clock shared.Clock, rng *rand.Rand) *Reducer {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Reducer{
		clock: clock,
		rng:   rng,
		newID: uuid.NewString,
	}
}

// Reduce applies one action. Debit-bearing actions (buy, unlock, plant, start
// mission) are rejected as no-ops when the balance cannot cover the cost, so
// no resource ever goes negative regardless of caller-side checks.
func (r *Reducer) Reduce(s *State, action Action) *State {
	switch a := action.(type) {

	case AddResource:
		// A negative credit is a disguised debit; reject it outright
		if !a.Resource.IsValid() || a.Amount <= 0 {
			return s
		}
		next := s.clone()
		next.Resources[a.Resource] += a.Amount
		return r.applyModeUnlocks(next)

	case SpendResource:
		if !a.Resource.IsValid() || a.Amount <= 0 {
			return s
		}
		next := s.clone()
		balance := next.Resources[a.Resource] - a.Amount
		if balance < 0 {
			balance = 0
		}
		next.Resources[a.Resource] = balance
		return next

	case BuyUpgrade:
		if content.UpgradeByID(a.UpgradeID) == nil {
			return s
		}
		if s.Resource(shared.ResourceSpores) < a.Cost {
			return s
		}
		next := s.clone()
		next.Resources[shared.ResourceSpores] -= a.Cost
		next.UpgradeLevels[a.UpgradeID]++
		return next

	case UnlockMode:
		if !a.Mode.IsValid() || s.ModeUnlocked(a.Mode) {
			return s
		}
		next := s.clone()
		next.UnlockedModes = append(next.UnlockedModes, a.Mode)
		return next

	case SwitchMode:
		if !s.ModeUnlocked(a.Mode) || s.CurrentMode == a.Mode {
			return s
		}
		next := s.clone()
		next.CurrentMode = a.Mode
		return next

	case LoadGame:
		if a.State == nil {
			return s
		}
		return a.State

	case Tick:
		if a.DeltaTime < 0 {
			return s
		}
		now := r.clock.Now()
		next := s.clone()
		stats := CalculateStats(next.UpgradeLevels)
		if stats.PassiveRate > 0 {
			next.Resources[shared.ResourceSpores] += stats.PassiveRate * a.DeltaTime
		}
		if next.GoldenShroom != nil && now.After(next.GoldenShroom.ExpiresAt) {
			next.GoldenShroom = nil
		}
		next.LastSaveTime = now
		return r.applyModeUnlocks(next)

	case UnlockPlot:
		plot := s.FindPlot(a.PlotID)
		if plot == nil || plot.Unlocked {
			return s
		}
		if s.Resource(shared.ResourceSpores) < a.Cost {
			return s
		}
		next := s.clone()
		next.Resources[shared.ResourceSpores] -= a.Cost
		next.FindPlot(a.PlotID).Unlocked = true
		return next

	case PlantSeed:
		plot := s.FindPlot(a.PlotID)
		if plot == nil || !plot.Unlocked || plot.Planted() {
			return s
		}
		if content.SeedByID(a.SeedID) == nil {
			return s
		}
		if s.Resource(shared.ResourceSpores) < a.Cost {
			return s
		}
		now := r.clock.Now()
		next := s.clone()
		next.Resources[shared.ResourceSpores] -= a.Cost
		target := next.FindPlot(a.PlotID)
		target.SeedID = a.SeedID
		target.PlantTime = &now
		return next

	case HarvestPlot:
		plot := s.FindPlot(a.PlotID)
		if plot == nil || !plot.Planted() {
			return s
		}
		next := s.clone()
		next.Resources[shared.ResourceWarriors] += a.WarriorYield
		target := next.FindPlot(a.PlotID)
		target.SeedID = ""
		target.PlantTime = nil
		return r.applyModeUnlocks(next)

	case StartMission:
		if content.MissionByID(a.MissionID) == nil {
			return s
		}
		if s.Resource(shared.ResourceWarriors) < a.Cost {
			return s
		}
		now := r.clock.Now()
		next := s.clone()
		next.Resources[shared.ResourceWarriors] -= a.Cost
		next.ActiveMissions = append(next.ActiveMissions, ActiveMission{
			InstanceID: r.newID(),
			MissionID:  a.MissionID,
			StartTime:  now,
			EndTime:    now.Add(time.Duration(a.Duration * float64(time.Second))),
			Status:     MissionActive,
		})
		return next

	case CompleteMission:
		mission := s.FindMission(a.InstanceID)
		if mission == nil || mission.Status != MissionActive {
			return s
		}
		next := s.clone()
		target := next.FindMission(a.InstanceID)
		target.Status = MissionCompleted
		result := a.Result
		target.Result = &result
		return next

	case ClaimMission:
		mission := s.FindMission(a.InstanceID)
		if mission == nil || mission.Status != MissionCompleted || mission.Result == nil {
			return s
		}
		cfg := content.MissionByID(mission.MissionID)
		if cfg == nil {
			return s
		}
		next := s.clone()
		if mission.Result.Success {
			// The committed warriors come home alongside the loot
			next.Resources[shared.ResourceWarriors] += cfg.Cost
			for _, reward := range mission.Result.Rewards {
				next.Resources[reward.Resource] += reward.Amount
			}
		}
		kept := next.ActiveMissions[:0]
		for _, m := range next.ActiveMissions {
			if m.InstanceID != a.InstanceID {
				kept = append(kept, m)
			}
		}
		next.ActiveMissions = kept
		return r.applyModeUnlocks(next)

	case ClickMushroom:
		now := r.clock.Now()
		next := s.clone()
		next.Stats.TotalClicks++

		stats := CalculateStats(next.UpgradeLevels)
		next.Resources[shared.ResourceSpores] += stats.ClickPower

		// XP carry: clicks add exactly 1 XP, so at most one level-up per click
		next.ClickXP++
		if next.ClickXP >= next.ClickLevel {
			next.ClickXP -= next.ClickLevel
			next.ClickLevel++
		}

		// A spawn roll is skipped entirely while a golden shroom is active
		if next.GoldenShroom == nil {
			chance := float64(next.ClickLevel) * goldenSpawnChancePerLevel
			if r.rng.Float64() < chance {
				next.GoldenShroom = &GoldenShroom{
					X:         10 + r.rng.Float64()*80,
					Y:         10 + r.rng.Float64()*80,
					ExpiresAt: now.Add(GoldenLifetime),
				}
			}
		}
		return r.applyModeUnlocks(next)

	case SpawnGolden:
		next := s.clone()
		next.GoldenShroom = &GoldenShroom{
			X:         a.X,
			Y:         a.Y,
			ExpiresAt: r.clock.Now().Add(GoldenLifetime),
		}
		return next

	case ClickGolden:
		if !s.GoldenActive(r.clock.Now()) {
			return s
		}
		next := s.clone()
		next.Resources[shared.ResourceSpores] += float64(next.ClickLevel) * goldenBonusPerLevel
		next.GoldenShroom = nil
		return r.applyModeUnlocks(next)

	case DespawnGolden:
		if s.GoldenShroom == nil {
			return s
		}
		next := s.clone()
		next.GoldenShroom = nil
		return next
	}

	return s
}

// applyModeUnlocks appends any newly qualified modes. Unlocks are
// one-directional and idempotent: garden at 100 accumulated spores, missions
// at the first warrior.
func (r *Reducer) applyModeUnlocks(next *State) *State {
	if next.Resource(shared.ResourceSpores) >= gardenUnlockSpores && !next.ModeUnlocked(shared.ModeGarden) {
		next.UnlockedModes = append(next.UnlockedModes, shared.ModeGarden)
	}
	if next.Resource(shared.ResourceWarriors) >= missionUnlockWarriors && !next.ModeUnlocked(shared.ModeMissions) {
		next.UnlockedModes = append(next.UnlockedModes, shared.ModeMissions)
	}
	return next
}
