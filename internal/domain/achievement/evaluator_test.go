package achievement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporelab/fungal-evolution/internal/domain/achievement"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

func freshState() *game.State {
	return game.NewState(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestEvaluate_FreshStateUnlocksNothing(t *testing.T) {
	assert.Empty(t, achievement.Evaluate(freshState()))
}

func TestEvaluate_ClickCountThreshold(t *testing.T) {
	// Arrange
	state := freshState()
	state.Stats.TotalClicks = 99

	// Act / Assert: one short of the threshold
	assert.Empty(t, achievement.Evaluate(state))

	// Act / Assert: exactly at the threshold
	state.Stats.TotalClicks = 100
	assert.Equal(t, []string{"first_steps"}, achievement.Evaluate(state))
}

func TestEvaluate_SecretAchievementsEvaluateNormally(t *testing.T) {
	// Arrange: spore_hoarder is secret
	state := freshState()
	state.Resources[shared.ResourceSpores] = 1000

	// Act
	unlocked := achievement.Evaluate(state)

	// Assert
	assert.Contains(t, unlocked, "spore_hoarder")
}

func TestEvaluate_ModeUnlockCriterion(t *testing.T) {
	// Arrange
	state := freshState()
	state.UnlockedModes = append(state.UnlockedModes, shared.ModeGarden)

	// Act / Assert
	assert.Contains(t, achievement.Evaluate(state), "green_thumb")
}

func TestEvaluate_SkipsAlreadyUnlocked(t *testing.T) {
	// Arrange
	state := freshState()
	state.Stats.TotalClicks = 100
	state.Achievements = []string{"first_steps"}

	// Act / Assert
	assert.Empty(t, achievement.Evaluate(state))
}

func TestApply_ExtendsStateWithNewUnlocks(t *testing.T) {
	// Arrange
	state := freshState()
	state.Stats.TotalClicks = 1000

	// Act
	next, unlocked := achievement.Apply(state)

	// Assert: both click thresholds fire together, original untouched
	assert.Equal(t, []string{"first_steps", "dedicated_mycologist"}, unlocked)
	assert.True(t, next.HasAchievement("first_steps"))
	assert.True(t, next.HasAchievement("dedicated_mycologist"))
	assert.Empty(t, state.Achievements)

	// Act: applying again is a no-op on the same reference
	again, more := achievement.Apply(next)
	require.Same(t, next, again)
	assert.Empty(t, more)
}
