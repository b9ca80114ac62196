package content

import "github.com/sporelab/fungal-evolution/internal/domain/shared"

// MissionReward is one resource credit granted when a successful mission is claimed
type MissionReward struct {
	Resource shared.ResourceKind
	Amount   float64
}

// MissionConfig describes one away-mission template
type MissionConfig struct {
	ID          string
	Name        string
	Description string
	Duration    float64 // Seconds
	Risk        float64 // 0-1 probability of losing the squad
	Cost        float64 // Warriors committed
	Rewards     []MissionReward
}

// Missions is the full mission table
var Missions = []MissionConfig{
	{
		ID:          "scout_surroundings",
		Name:        "Scout Surroundings",
		Description: "Send a warrior to explore nearby caves.",
		Duration:    5,
		Risk:        0.1,
		Cost:        1,
		Rewards: []MissionReward{
			{Resource: shared.ResourceSpores, Amount: 50},
		},
	},
	{
		ID:          "gather_nutrients",
		Name:        "Gather Nutrients",
		Description: "Collect nutrient-rich soil for the garden.",
		Duration:    15,
		Risk:        0.2,
		Cost:        2,
		Rewards: []MissionReward{
			{Resource: shared.ResourceMycelium, Amount: 10},
		},
	},
	{
		ID:          "raid_termite_mound",
		Name:        "Raid Termite Mound",
		Description: "Attack a termite colony for massive resources.",
		Duration:    30,
		Risk:        0.5,
		Cost:        5,
		Rewards: []MissionReward{
			{Resource: shared.ResourceSpores, Amount: 500},
			{Resource: shared.ResourceMycelium, Amount: 50},
		},
	},
}

// MissionByID looks up a mission config, returning nil when the ID is unknown
func MissionByID(id string) *MissionConfig {
	for i := range Missions {
		if Missions[i].ID == id {
			return &Missions[i]
		}
	}
	return nil
}
