package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporelab/fungal-evolution/internal/adapters/persistence"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
	"github.com/sporelab/fungal-evolution/test/helpers"
)

func TestSaveRepository_LoadReturnsNilWhenAbsent(t *testing.T) {
	// Arrange
	repo := persistence.NewGormSaveRepository(helpers.NewTestDB(t))

	// Act
	state, err := repo.Load(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSaveRepository_RoundTrip(t *testing.T) {
	// Arrange
	repo := persistence.NewGormSaveRepository(helpers.NewTestDB(t))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := game.NewState(now)
	state.Resources[shared.ResourceSpores] = 123.5
	state.Resources[shared.ResourceWarriors] = 2
	state.UpgradeLevels["sharper_spores"] = 3
	state.ClickLevel = 5
	state.ClickXP = 2
	state.UnlockedModes = append(state.UnlockedModes, shared.ModeGarden)
	state.Achievements = []string{"first_steps"}
	plantTime := now.Add(-5 * time.Second)
	state.Plots[0].SeedID = "basic_spore"
	state.Plots[0].PlantTime = &plantTime
	state.ActiveMissions = []game.ActiveMission{{
		InstanceID: "abc-123",
		MissionID:  "scout_surroundings",
		StartTime:  now,
		EndTime:    now.Add(5 * time.Second),
		Status:     game.MissionActive,
	}}

	// Act
	require.NoError(t, repo.Save(context.Background(), state))
	loaded, err := repo.Load(context.Background())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 123.5, loaded.Resource(shared.ResourceSpores))
	assert.Equal(t, 2.0, loaded.Resource(shared.ResourceWarriors))
	assert.Equal(t, 3, loaded.UpgradeLevel("sharper_spores"))
	assert.Equal(t, 5, loaded.ClickLevel)
	assert.Equal(t, 2, loaded.ClickXP)
	assert.True(t, loaded.ModeUnlocked(shared.ModeGarden))
	assert.True(t, loaded.HasAchievement("first_steps"))
	require.True(t, loaded.FindPlot(0).Planted())
	assert.True(t, loaded.FindPlot(0).PlantTime.Equal(plantTime))
	require.Len(t, loaded.ActiveMissions, 1)
	assert.Equal(t, "abc-123", loaded.ActiveMissions[0].InstanceID)
}

func TestSaveRepository_SaveOverwritesPreviousSnapshot(t *testing.T) {
	// Arrange
	repo := persistence.NewGormSaveRepository(helpers.NewTestDB(t))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	first := game.NewState(now)
	first.Resources[shared.ResourceSpores] = 10
	second := game.NewState(now)
	second.Resources[shared.ResourceSpores] = 99

	// Act
	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))
	loaded, err := repo.Load(context.Background())

	// Assert: one row per namespace, last write wins
	require.NoError(t, err)
	assert.Equal(t, 99.0, loaded.Resource(shared.ResourceSpores))
}

func TestSaveRepository_KeysIsolateNamespaces(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repoA := persistence.NewGormSaveRepositoryWithKey(db, "slot_a")
	repoB := persistence.NewGormSaveRepositoryWithKey(db, "slot_b")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stateA := game.NewState(now)
	stateA.Resources[shared.ResourceSpores] = 1

	// Act
	require.NoError(t, repoA.Save(context.Background(), stateA))
	loadedB, err := repoB.Load(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Nil(t, loadedB)
}

func TestSaveRepository_CorruptBlobSurfacesDecodeError(t *testing.T) {
	// Arrange: write garbage under the default key directly
	db := helpers.NewTestDB(t)
	require.NoError(t, db.Create(&persistence.SaveModel{
		Key:       persistence.DefaultSaveKey,
		StateJSON: "{not json",
		UpdatedAt: time.Now().UTC(),
	}).Error)
	repo := persistence.NewGormSaveRepository(db)

	// Act
	state, err := repo.Load(context.Background())

	// Assert
	assert.Error(t, err)
	assert.Nil(t, state)
}
