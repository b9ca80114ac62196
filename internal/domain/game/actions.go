package game

import "github.com/sporelab/fungal-evolution/internal/domain/shared"

// Action is a discrete named request to transform state. The set of variants
// is closed: every action kind is a struct in this file, and the reducer
// switches over all of them so adding a variant forces a new case.
type Action interface {
	isAction()
}

// AddResource credits a quantity of a resource from an external source
type AddResource struct {
	Resource shared.ResourceKind
	Amount   float64
}

// SpendResource debits a resource, clamping the balance at zero
type SpendResource struct {
	Resource shared.ResourceKind
	Amount   float64
}

// BuyUpgrade purchases one level of an upgrade at the supplied spore cost
type BuyUpgrade struct {
	UpgradeID string
	Cost      float64
}

// UnlockMode adds a gameplay mode to the unlocked set
type UnlockMode struct {
	Mode shared.GameMode
}

// SwitchMode changes the active gameplay mode
type SwitchMode struct {
	Mode shared.GameMode
}

// LoadGame wholesale-replaces the state. Used only by startup reconciliation.
type LoadGame struct {
	State *State
}

// Tick advances passive production by the elapsed wall-clock delta in seconds
type Tick struct {
	DeltaTime float64
}

// UnlockPlot opens a garden plot at the supplied spore cost
type UnlockPlot struct {
	PlotID int
	Cost   float64
}

// PlantSeed plants a seed in an unlocked empty plot at the supplied spore cost
type PlantSeed struct {
	PlotID int
	SeedID string
	Cost   float64
}

// HarvestPlot clears a planted plot and credits the supplied warrior yield
type HarvestPlot struct {
	PlotID       int
	WarriorYield float64
}

// StartMission commits warriors to a new mission instance
type StartMission struct {
	MissionID string
	Duration  float64
	Cost      float64
}

// CompleteMission transitions an instance to completed and attaches its
// result. Issued only by the mission resolver.
type CompleteMission struct {
	InstanceID string
	Result     MissionResult
}

// ClaimMission removes a completed instance, applying its rewards on success
type ClaimMission struct {
	InstanceID string
}

// ClickMushroom is one manual click on the colony mushroom
type ClickMushroom struct{}

// SpawnGolden places a golden shroom at the given presentation coordinates
type SpawnGolden struct {
	X float64
	Y float64
}

// ClickGolden claims the active golden shroom bonus
type ClickGolden struct{}

// DespawnGolden clears the golden shroom without awarding anything
type DespawnGolden struct{}

func (AddResource) isAction()     {}
func (SpendResource) isAction()   {}
func (BuyUpgrade) isAction()      {}
func (UnlockMode) isAction()      {}
func (SwitchMode) isAction()      {}
func (LoadGame) isAction()        {}
func (Tick) isAction()            {}
func (UnlockPlot) isAction()      {}
func (PlantSeed) isAction()       {}
func (HarvestPlot) isAction()     {}
func (StartMission) isAction()    {}
func (CompleteMission) isAction() {}
func (ClaimMission) isAction()    {}
func (ClickMushroom) isAction()   {}
func (SpawnGolden) isAction()     {}
func (ClickGolden) isAction()     {}
func (DespawnGolden) isAction()   {}
