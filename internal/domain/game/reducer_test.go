package game_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

func testReducer(t *testing.T) (*game.Reducer, *shared.MockClock, *game.State) {
	t.Helper()
	clock := shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	reducer := game.NewReducer(clock, rand.New(rand.NewSource(42)))
	return reducer, clock, game.NewState(clock.Now())
}

func TestReduce_FirstClick(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)

	// Act
	next := r.Reduce(state, game.ClickMushroom{})

	// Assert: 1 spore, 1 lifetime click, and the 1 XP immediately carries
	// into level 2 with 0 XP
	assert.Equal(t, 1.0, next.Resource(shared.ResourceSpores))
	assert.Equal(t, int64(1), next.Stats.TotalClicks)
	assert.Equal(t, 2, next.ClickLevel)
	assert.Equal(t, 0, next.ClickXP)
}

func TestReduce_LevelingArithmetic(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)

	// Act: levels 1, 2, 3 need 1+2+3 clicks to clear
	for i := 0; i < 6; i++ {
		state = r.Reduce(state, game.ClickMushroom{})
	}

	// Assert
	assert.Equal(t, 4, state.ClickLevel)
	assert.Equal(t, 0, state.ClickXP)
	assert.Equal(t, int64(6), state.Stats.TotalClicks)
}

func TestReduce_ClickLevelNeverShrinks(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)

	// Act / Assert
	level := state.ClickLevel
	for i := 0; i < 50; i++ {
		state = r.Reduce(state, game.ClickMushroom{})
		require.GreaterOrEqual(t, state.ClickLevel, level)
		level = state.ClickLevel
	}
}

func TestReduce_ClickUsesClickPower(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 20})
	state = r.Reduce(state, game.BuyUpgrade{UpgradeID: "sharper_spores", Cost: 15})
	before := state.Resource(shared.ResourceSpores)

	// Act
	next := r.Reduce(state, game.ClickMushroom{})

	// Assert: base 1 + one level of sharper_spores
	assert.Equal(t, before+2, next.Resource(shared.ResourceSpores))
}

func TestReduce_TickLinearity(t *testing.T) {
	// Arrange: two levels of mycelial_network = 2 spores/s
	r, clock, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 200})
	state = r.Reduce(state, game.BuyUpgrade{UpgradeID: "mycelial_network", Cost: 50})
	state = r.Reduce(state, game.BuyUpgrade{UpgradeID: "mycelial_network", Cost: 75})
	before := state.Resource(shared.ResourceSpores)
	clock.Advance(3500 * time.Millisecond)

	// Act
	next := r.Reduce(state, game.Tick{DeltaTime: 3.5})

	// Assert
	assert.InDelta(t, before+7.0, next.Resource(shared.ResourceSpores), 1e-9)
	assert.Equal(t, clock.Now(), next.LastSaveTime)
	assert.Equal(t, state.ClickLevel, next.ClickLevel)
	assert.Equal(t, state.Stats.TotalClicks, next.Stats.TotalClicks)
}

func TestReduce_NegativeTickIsNoOp(t *testing.T) {
	r, _, state := testReducer(t)

	next := r.Reduce(state, game.Tick{DeltaTime: -1})

	assert.Same(t, state, next)
}

func TestReduce_GardenUnlocksAtHundredSpores(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 99})
	require.False(t, state.ModeUnlocked(shared.ModeGarden))

	// Act: the credit that crosses the threshold unlocks in the same transition
	next := r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 1})

	// Assert
	assert.True(t, next.ModeUnlocked(shared.ModeGarden))
}

func TestReduce_MissionsUnlockAtFirstWarrior(t *testing.T) {
	r, _, state := testReducer(t)

	next := r.Reduce(state, game.AddResource{Resource: shared.ResourceWarriors, Amount: 1})

	assert.True(t, next.ModeUnlocked(shared.ModeMissions))
}

func TestReduce_UnlockedModesNeverShrink(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 150})
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceWarriors, Amount: 2})
	modes := len(state.UnlockedModes)

	// Act: spend everything back down
	state = r.Reduce(state, game.SpendResource{Resource: shared.ResourceSpores, Amount: 150})
	state = r.Reduce(state, game.SpendResource{Resource: shared.ResourceWarriors, Amount: 2})

	// Assert
	assert.Len(t, state.UnlockedModes, modes)
}

func TestReduce_SpendClampsAtZero(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 5})

	// Act
	next := r.Reduce(state, game.SpendResource{Resource: shared.ResourceSpores, Amount: 10})

	// Assert
	assert.Equal(t, 0.0, next.Resource(shared.ResourceSpores))
}

func TestReduce_NegativeCreditIsRejected(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 5})

	// Act: a negative credit must not sneak a balance below zero
	next := r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: -50})

	// Assert
	assert.Same(t, state, next)
	assert.Equal(t, 5.0, next.Resource(shared.ResourceSpores))
}

func TestReduce_BuyUpgrade(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 20})

	// Act
	next := r.Reduce(state, game.BuyUpgrade{UpgradeID: "sharper_spores", Cost: 15})

	// Assert
	assert.Equal(t, 5.0, next.Resource(shared.ResourceSpores))
	assert.Equal(t, 1, next.UpgradeLevel("sharper_spores"))
}

func TestReduce_BuyUpgradeInsufficientSporesIsNoOp(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 10})

	// Act: a debit that would go negative is rejected outright
	next := r.Reduce(state, game.BuyUpgrade{UpgradeID: "sharper_spores", Cost: 15})

	// Assert
	assert.Same(t, state, next)
}

func TestReduce_BuyUnknownUpgradeIsNoOp(t *testing.T) {
	r, _, state := testReducer(t)

	next := r.Reduce(state, game.BuyUpgrade{UpgradeID: "quantum_caps", Cost: 0})

	assert.Same(t, state, next)
}

func TestReduce_PlantAndHarvest(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 60})

	// Act: plant in the starting plot
	state = r.Reduce(state, game.PlantSeed{PlotID: 0, SeedID: "basic_spore", Cost: 50})

	// Assert
	plot := state.FindPlot(0)
	require.True(t, plot.Planted())
	assert.Equal(t, "basic_spore", plot.SeedID)
	assert.Equal(t, 10.0, state.Resource(shared.ResourceSpores))

	// Act: harvest
	state = r.Reduce(state, game.HarvestPlot{PlotID: 0, WarriorYield: 1})

	// Assert: warriors credited, plot cleared, missions unlocked
	assert.Equal(t, 1.0, state.Resource(shared.ResourceWarriors))
	assert.False(t, state.FindPlot(0).Planted())
	assert.True(t, state.ModeUnlocked(shared.ModeMissions))
}

func TestReduce_HarvestEmptyPlotIsNoOp(t *testing.T) {
	r, _, state := testReducer(t)

	next := r.Reduce(state, game.HarvestPlot{PlotID: 0, WarriorYield: 1})

	assert.Same(t, state, next)
}

func TestReduce_PlantOnLockedPlotIsNoOp(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 500})

	// Act: plot 5 starts locked
	next := r.Reduce(state, game.PlantSeed{PlotID: 5, SeedID: "basic_spore", Cost: 50})

	// Assert
	assert.Same(t, state, next)
}

func TestReduce_UnlockPlot(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 250})

	// Act
	next := r.Reduce(state, game.UnlockPlot{PlotID: 1, Cost: 200})

	// Assert
	assert.True(t, next.FindPlot(1).Unlocked)
	assert.Equal(t, 50.0, next.Resource(shared.ResourceSpores))
}

func TestReduce_StartMission(t *testing.T) {
	// Arrange
	r, clock, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceWarriors, Amount: 1})

	// Act
	next := r.Reduce(state, game.StartMission{MissionID: "scout_surroundings", Duration: 5, Cost: 1})

	// Assert
	require.Len(t, next.ActiveMissions, 1)
	m := next.ActiveMissions[0]
	assert.NotEmpty(t, m.InstanceID)
	assert.Equal(t, game.MissionActive, m.Status)
	assert.Equal(t, clock.Now().Add(5*time.Second), m.EndTime)
	assert.Equal(t, 0.0, next.Resource(shared.ResourceWarriors))
}

func TestReduce_StartMissionWithoutWarriorsIsNoOp(t *testing.T) {
	r, _, state := testReducer(t)

	next := r.Reduce(state, game.StartMission{MissionID: "scout_surroundings", Duration: 5, Cost: 1})

	assert.Same(t, state, next)
}

func TestReduce_CompleteMissionOnce(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceWarriors, Amount: 1})
	state = r.Reduce(state, game.StartMission{MissionID: "scout_surroundings", Duration: 5, Cost: 1})
	instanceID := state.ActiveMissions[0].InstanceID
	result := game.MissionResult{Success: true, Rewards: []game.MissionReward{{Resource: shared.ResourceSpores, Amount: 50}}}

	// Act
	completed := r.Reduce(state, game.CompleteMission{InstanceID: instanceID, Result: result})

	// Assert
	m := completed.FindMission(instanceID)
	require.NotNil(t, m)
	assert.Equal(t, game.MissionCompleted, m.Status)
	require.NotNil(t, m.Result)
	assert.True(t, m.Result.Success)

	// Act: completing an already-completed instance is idempotent
	again := r.Reduce(completed, game.CompleteMission{InstanceID: instanceID, Result: result})

	// Assert
	assert.Same(t, completed, again)
}

func TestReduce_ClaimSuccessfulMission(t *testing.T) {
	// Arrange: scout mission costs 1 warrior and rewards 50 spores
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceWarriors, Amount: 1})
	state = r.Reduce(state, game.StartMission{MissionID: "scout_surroundings", Duration: 5, Cost: 1})
	instanceID := state.ActiveMissions[0].InstanceID
	state = r.Reduce(state, game.CompleteMission{
		InstanceID: instanceID,
		Result: game.MissionResult{
			Success: true,
			Rewards: []game.MissionReward{{Resource: shared.ResourceSpores, Amount: 50}},
		},
	})

	// Act
	next := r.Reduce(state, game.ClaimMission{InstanceID: instanceID})

	// Assert: warrior cost refunded plus the reward, instance removed
	assert.Equal(t, 1.0, next.Resource(shared.ResourceWarriors))
	assert.Equal(t, 50.0, next.Resource(shared.ResourceSpores))
	assert.Empty(t, next.ActiveMissions)
}

func TestReduce_ClaimFailedMissionPaysNothing(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceWarriors, Amount: 1})
	state = r.Reduce(state, game.StartMission{MissionID: "scout_surroundings", Duration: 5, Cost: 1})
	instanceID := state.ActiveMissions[0].InstanceID
	state = r.Reduce(state, game.CompleteMission{
		InstanceID: instanceID,
		Result:     game.MissionResult{Success: false, Rewards: []game.MissionReward{}},
	})

	// Act
	next := r.Reduce(state, game.ClaimMission{InstanceID: instanceID})

	// Assert: the squad is gone and nothing comes back
	assert.Equal(t, 0.0, next.Resource(shared.ResourceWarriors))
	assert.Equal(t, 0.0, next.Resource(shared.ResourceSpores))
	assert.Empty(t, next.ActiveMissions)
}

func TestReduce_ClaimIneligibleMissionIsNoOp(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceWarriors, Amount: 1})
	state = r.Reduce(state, game.StartMission{MissionID: "scout_surroundings", Duration: 5, Cost: 1})
	instanceID := state.ActiveMissions[0].InstanceID

	// Act / Assert: still active
	assert.Same(t, state, r.Reduce(state, game.ClaimMission{InstanceID: instanceID}))
	// Act / Assert: unknown instance
	assert.Same(t, state, r.Reduce(state, game.ClaimMission{InstanceID: "nope"}))
}

func TestReduce_GoldenShroomLifecycle(t *testing.T) {
	// Arrange
	r, clock, state := testReducer(t)

	// Act: spawn, then claim
	state = r.Reduce(state, game.SpawnGolden{X: 42, Y: 17})
	require.NotNil(t, state.GoldenShroom)
	next := r.Reduce(state, game.ClickGolden{})

	// Assert: level 1 pays 100 spores and the target clears
	assert.Equal(t, 100.0, next.Resource(shared.ResourceSpores))
	assert.Nil(t, next.GoldenShroom)

	// Act / Assert: clicking with no target is a no-op
	assert.Same(t, next, r.Reduce(next, game.ClickGolden{}))

	// Act: an expired target cannot be claimed
	expired := r.Reduce(next, game.SpawnGolden{X: 1, Y: 1})
	clock.Advance(4 * time.Second)
	assert.Same(t, expired, r.Reduce(expired, game.ClickGolden{}))

	// Act: a tick sweeps the expired target away
	swept := r.Reduce(expired, game.Tick{DeltaTime: 0})
	assert.Nil(t, swept.GoldenShroom)
}

func TestReduce_SwitchMode(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)

	// Act / Assert: garden is still locked
	assert.Same(t, state, r.Reduce(state, game.SwitchMode{Mode: shared.ModeGarden}))

	// Arrange: unlock it
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 100})

	// Act
	next := r.Reduce(state, game.SwitchMode{Mode: shared.ModeGarden})

	// Assert
	assert.Equal(t, shared.ModeGarden, next.CurrentMode)
}

func TestReduce_LoadGameReplacesWholesale(t *testing.T) {
	// Arrange
	r, clock, state := testReducer(t)
	replacement := game.NewState(clock.Now())
	replacement.Resources[shared.ResourceSpores] = 777

	// Act
	next := r.Reduce(state, game.LoadGame{State: replacement})

	// Assert
	assert.Same(t, replacement, next)
}

func TestReduce_InputStateIsNeverMutated(t *testing.T) {
	// Arrange
	r, _, state := testReducer(t)
	state = r.Reduce(state, game.AddResource{Resource: shared.ResourceSpores, Amount: 60})
	spores := state.Resource(shared.ResourceSpores)
	clicks := state.Stats.TotalClicks

	// Act: a pile of transitions off the same snapshot
	r.Reduce(state, game.ClickMushroom{})
	r.Reduce(state, game.PlantSeed{PlotID: 0, SeedID: "basic_spore", Cost: 50})
	r.Reduce(state, game.BuyUpgrade{UpgradeID: "sharper_spores", Cost: 15})

	// Assert: the old snapshot still reads the same
	assert.Equal(t, spores, state.Resource(shared.ResourceSpores))
	assert.Equal(t, clicks, state.Stats.TotalClicks)
	assert.False(t, state.FindPlot(0).Planted())
	assert.Equal(t, 0, state.UpgradeLevel("sharper_spores"))
}
