package game

import "github.com/sporelab/fungal-evolution/internal/domain/content"

// DerivedStats folds owned upgrade levels into effective production numbers
type DerivedStats struct {
	ClickPower  float64 // Spores per manual click
	PassiveRate float64 // Spores per second
}

// CalculateStats computes the derived stats for a set of upgrade levels.
// Base click power is 1, base passive rate is 0; each owned level adds its
// upgrade's effect value to the matching total.
func CalculateStats(upgradeLevels map[string]int) DerivedStats {
	stats := DerivedStats{ClickPower: 1, PassiveRate: 0}

	for i := range content.Upgrades {
		cfg := &content.Upgrades[i]
		level := upgradeLevels[cfg.ID]
		if level <= 0 {
			continue
		}
		switch cfg.EffectKind {
		case content.EffectClickPower:
			stats.ClickPower += cfg.EffectValue * float64(level)
		case content.EffectAutoSpores:
			stats.PassiveRate += cfg.EffectValue * float64(level)
		}
	}

	return stats
}
