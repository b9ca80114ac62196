package content

import "math"

// EffectKind determines which derived stat an upgrade contributes to
type EffectKind string

const (
	EffectClickPower EffectKind = "click_power"
	EffectAutoSpores EffectKind = "auto_spores"
)

// UpgradeConfig describes one purchasable upgrade line
type UpgradeConfig struct {
	ID             string
	Name           string
	Description    string
	BaseCost       float64
	CostMultiplier float64
	EffectKind     EffectKind
	EffectValue    float64
}

// Upgrades is the full upgrade table
var Upgrades = []UpgradeConfig{
	{
		ID:             "sharper_spores",
		Name:           "Sharper Spores",
		Description:    "+1 Spore per click",
		BaseCost:       15,
		CostMultiplier: 1.8,
		EffectKind:     EffectClickPower,
		EffectValue:    1,
	},
	{
		ID:             "mycelial_network",
		Name:           "Mycelial Network",
		Description:    "+1 Spore per second",
		BaseCost:       50,
		CostMultiplier: 1.5,
		EffectKind:     EffectAutoSpores,
		EffectValue:    1,
	},
	{
		ID:             "dense_clusters",
		Name:           "Dense Clusters",
		Description:    "+5 Spores per click",
		BaseCost:       250,
		CostMultiplier: 2.0,
		EffectKind:     EffectClickPower,
		EffectValue:    5,
	},
	{
		ID:             "fungal_growth",
		Name:           "Fungal Growth",
		Description:    "+10 Spores per second",
		BaseCost:       500,
		CostMultiplier: 1.6,
		EffectKind:     EffectAutoSpores,
		EffectValue:    10,
	},
}

// UpgradeByID looks up an upgrade config, returning nil when the ID is unknown
func UpgradeByID(id string) *UpgradeConfig {
	for i := range Upgrades {
		if Upgrades[i].ID == id {
			return &Upgrades[i]
		}
	}
	return nil
}

// UpgradeCost returns the price of the next level of an upgrade given how many
// levels are already owned: floor(baseCost * multiplier^level)
func UpgradeCost(cfg *UpgradeConfig, currentLevel int) float64 {
	return math.Floor(cfg.BaseCost * math.Pow(cfg.CostMultiplier, float64(currentLevel)))
}
