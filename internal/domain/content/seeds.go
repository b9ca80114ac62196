package content

// SeedConfig describes one plantable seed variety
type SeedConfig struct {
	ID           string
	Name         string
	Cost         float64 // Spores
	GrowthTime   float64 // Seconds
	WarriorYield float64
	Tier         int
}

// Seeds is the full seed table, ordered by tier
var Seeds = []SeedConfig{
	{
		ID:           "basic_spore",
		Name:         "Basic Spore",
		Cost:         50,
		GrowthTime:   10,
		WarriorYield: 1,
		Tier:         1,
	},
	{
		ID:           "poison_cap",
		Name:         "Poison Cap",
		Cost:         200,
		GrowthTime:   30,
		WarriorYield: 3,
		Tier:         2,
	},
	{
		ID:           "glow_shroom",
		Name:         "Glow Shroom",
		Cost:         1000,
		GrowthTime:   60,
		WarriorYield: 8,
		Tier:         3,
	},
}

// SeedByID looks up a seed config, returning nil when the ID is unknown
func SeedByID(id string) *SeedConfig {
	for i := range Seeds {
		if Seeds[i].ID == id {
			return &Seeds[i]
		}
	}
	return nil
}

// PlotUnlockCost returns the spore price of unlocking a garden plot.
// Plots scale linearly with position: the second plot costs 200, the third 300.
func PlotUnlockCost(plotID int) float64 {
	return 100 * float64(plotID+1)
}
