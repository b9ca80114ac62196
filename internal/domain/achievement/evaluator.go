// Package achievement observes reduced states and appends newly satisfied
// achievement identifiers. It runs after every transition, uniformly across
// action kinds; achievements never re-lock.
package achievement

import (
	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
)

// Evaluate returns the identifiers of achievements the state newly satisfies.
// Already-unlocked achievements are skipped; secret achievements evaluate the
// same as visible ones.
func Evaluate(s *game.State) []string {
	var unlocked []string
	for i := range content.Achievements {
		cfg := &content.Achievements[i]
		if s.HasAchievement(cfg.ID) {
			continue
		}
		if satisfied(cfg, s) {
			unlocked = append(unlocked, cfg.ID)
		}
	}
	return unlocked
}

// Apply evaluates the state and returns it extended with any newly unlocked
// identifiers, plus the new identifiers themselves. When nothing unlocks the
// input state is returned unchanged (same reference).
func Apply(s *game.State) (*game.State, []string) {
	unlocked := Evaluate(s)
	if len(unlocked) == 0 {
		return s, nil
	}
	next := *s
	next.Achievements = append(append([]string(nil), s.Achievements...), unlocked...)
	return &next, unlocked
}

func satisfied(cfg *content.AchievementConfig, s *game.State) bool {
	switch cfg.Kind {
	case content.AchievementClickCount:
		return float64(s.Stats.TotalClicks) >= cfg.Threshold
	case content.AchievementResourceCount:
		return s.Resource(cfg.Resource) >= cfg.Threshold
	case content.AchievementModeUnlock:
		return s.ModeUnlocked(cfg.Mode)
	}
	return false
}
