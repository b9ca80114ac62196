package content

import "github.com/sporelab/fungal-evolution/internal/domain/shared"

// AchievementKind selects which state observation an achievement tests
type AchievementKind string

const (
	AchievementClickCount    AchievementKind = "click_count"
	AchievementResourceCount AchievementKind = "resource_count"
	AchievementModeUnlock    AchievementKind = "mode_unlock"
)

// AchievementConfig describes one achievement criterion. Secret achievements
// evaluate identically; secrecy only hides name and description until unlocked.
type AchievementConfig struct {
	ID          string
	Name        string
	Description string
	Secret      bool
	Kind        AchievementKind
	Threshold   float64
	Resource    shared.ResourceKind // Set for resource_count
	Mode        shared.GameMode     // Set for mode_unlock
}

// Achievements is the full achievement table
var Achievements = []AchievementConfig{
	{
		ID:          "first_steps",
		Name:        "First Steps",
		Description: "Click the mushroom 100 times",
		Secret:      false,
		Kind:        AchievementClickCount,
		Threshold:   100,
	},
	{
		ID:          "dedicated_mycologist",
		Name:        "Dedicated Mycologist",
		Description: "Click the mushroom 1,000 times",
		Secret:      false,
		Kind:        AchievementClickCount,
		Threshold:   1000,
	},
	{
		ID:          "spore_hoarder",
		Name:        "Spore Hoarder",
		Description: "Accumulate 1,000 Spores",
		Secret:      true,
		Kind:        AchievementResourceCount,
		Threshold:   1000,
		Resource:    shared.ResourceSpores,
	},
	{
		ID:          "green_thumb",
		Name:        "Green Thumb",
		Description: "Unlock the Garden",
		Secret:      true,
		Kind:        AchievementModeUnlock,
		Mode:        shared.ModeGarden,
	},
	{
		ID:          "colony_builder",
		Name:        "Colony Builder",
		Description: "Have 50 Warriors",
		Secret:      true,
		Kind:        AchievementResourceCount,
		Threshold:   50,
		Resource:    shared.ResourceWarriors,
	},
}

// AchievementByID looks up an achievement config, returning nil when unknown
func AchievementByID(id string) *AchievementConfig {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}
