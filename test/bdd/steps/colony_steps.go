package steps

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cucumber/godog"

	"github.com/sporelab/fungal-evolution/internal/application/common"
	"github.com/sporelab/fungal-evolution/internal/application/engine"
	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/mission"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

type colonyContext struct {
	clock  *shared.MockClock
	engine *engine.Engine
	err    error
}

func (cc *colonyContext) reset() {
	cc.clock = shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cc.engine = engine.New(game.NewState(cc.clock.Now()), cc.clock, rand.New(rand.NewSource(1)), nil)
	cc.err = nil
}

// Setup steps

func (cc *colonyContext) aFreshColony() error {
	cc.reset()
	return nil
}

func (cc *colonyContext) theColonyHasResource(amount float64, resource string) error {
	kind := shared.ResourceKind(resource)
	if !kind.IsValid() {
		return fmt.Errorf("unknown resource: %s", resource)
	}
	cc.engine.Dispatch(game.AddResource{Resource: kind, Amount: amount})
	return nil
}

// Action steps

func (cc *colonyContext) thePlayerClicksTheMushroom(count int) error {
	for i := 0; i < count; i++ {
		cc.engine.Click()
	}
	return nil
}

func (cc *colonyContext) thePlayerBuysTheUpgrade(upgradeID string) error {
	cc.err = cc.engine.BuyUpgrade(upgradeID)
	return nil
}

func (cc *colonyContext) thePlayerUnlocksPlot(plotID int) error {
	cc.err = cc.engine.UnlockPlot(plotID)
	return nil
}

func (cc *colonyContext) thePlayerPlantsInPlot(seedID string, plotID int) error {
	cc.err = cc.engine.PlantSeed(plotID, seedID)
	return nil
}

func (cc *colonyContext) thePlayerHarvestsPlot(plotID int) error {
	cc.err = cc.engine.HarvestPlot(plotID)
	return nil
}

func (cc *colonyContext) thePlayerStartsTheMission(missionID string) error {
	cc.err = cc.engine.StartMission(missionID)
	return nil
}

func (cc *colonyContext) thePlayerClaimsTheMission() error {
	state := cc.engine.CurrentState()
	if len(state.ActiveMissions) == 0 {
		return fmt.Errorf("no mission to claim")
	}
	cc.err = cc.engine.ClaimMission(state.ActiveMissions[0].InstanceID)
	return nil
}

func (cc *colonyContext) secondsPass(seconds float64) error {
	cc.clock.Advance(time.Duration(seconds * float64(time.Second)))
	cc.engine.Dispatch(game.Tick{DeltaTime: seconds})
	return nil
}

// completeFirstMission injects a fixed outcome for the oldest underway
// mission, bypassing the resolver's roll so scenarios stay deterministic
func (cc *colonyContext) completeFirstMission(success bool) error {
	state := cc.engine.CurrentState()
	if len(state.ActiveMissions) == 0 {
		return fmt.Errorf("no mission underway")
	}
	instance := state.ActiveMissions[0]
	cfg := content.MissionByID(instance.MissionID)
	if cfg == nil {
		return fmt.Errorf("unknown mission: %s", instance.MissionID)
	}

	result := game.MissionResult{Success: success, Rewards: []game.MissionReward{}}
	if success {
		for _, rw := range cfg.Rewards {
			result.Rewards = append(result.Rewards, game.MissionReward{Resource: rw.Resource, Amount: rw.Amount})
		}
	}
	cc.engine.Dispatch(game.CompleteMission{InstanceID: instance.InstanceID, Result: result})
	return nil
}

func (cc *colonyContext) theMissionResolvesSuccessfully() error {
	return cc.completeFirstMission(true)
}

func (cc *colonyContext) theMissionEndsInDisaster() error {
	return cc.completeFirstMission(false)
}

func (cc *colonyContext) dueMissionsAreResolved() error {
	poller := engine.NewMissionPoller(cc.engine, mission.NewResolver(rand.New(rand.NewSource(1))), cc.clock, time.Second)
	poller.ResolveDue(common.NopLogger())
	return nil
}

// Assertion steps

func (cc *colonyContext) theColonyShouldHaveResource(amount float64, resource string) error {
	have := cc.engine.CurrentState().Resource(shared.ResourceKind(resource))
	if have != amount {
		return fmt.Errorf("expected %g %s, have %g", amount, resource, have)
	}
	return nil
}

func (cc *colonyContext) theClickLevelShouldBe(level int) error {
	if got := cc.engine.CurrentState().ClickLevel; got != level {
		return fmt.Errorf("expected click level %d, got %d", level, got)
	}
	return nil
}

func (cc *colonyContext) theClickXPShouldBe(xp int) error {
	if got := cc.engine.CurrentState().ClickXP; got != xp {
		return fmt.Errorf("expected click XP %d, got %d", xp, got)
	}
	return nil
}

func (cc *colonyContext) theModeShouldBeUnlocked(mode string) error {
	if !cc.engine.CurrentState().ModeUnlocked(shared.GameMode(mode)) {
		return fmt.Errorf("mode %s is not unlocked", mode)
	}
	return nil
}

func (cc *colonyContext) theOperationShouldSucceed() error {
	if cc.err != nil {
		return fmt.Errorf("expected success, got: %v", cc.err)
	}
	return nil
}

func (cc *colonyContext) theOperationShouldFailWithInsufficientResources() error {
	var insufficient *shared.InsufficientResourcesError
	if !errors.As(cc.err, &insufficient) {
		return fmt.Errorf("expected insufficient resources error, got: %v", cc.err)
	}
	return nil
}

func (cc *colonyContext) theOperationShouldFailBecauseThePlotIsNotReady() error {
	var notReady *shared.PlotNotReadyError
	if !errors.As(cc.err, &notReady) {
		return fmt.Errorf("expected plot not ready error, got: %v", cc.err)
	}
	return nil
}

func (cc *colonyContext) plotShouldBeUnlocked(plotID int) error {
	plot := cc.engine.CurrentState().FindPlot(plotID)
	if plot == nil || !plot.Unlocked {
		return fmt.Errorf("plot %d is not unlocked", plotID)
	}
	return nil
}

func (cc *colonyContext) missionsShouldBeUnderway(count int) error {
	if got := len(cc.engine.CurrentState().ActiveMissions); got != count {
		return fmt.Errorf("expected %d missions underway, got %d", count, got)
	}
	return nil
}

func (cc *colonyContext) theMissionShouldBeCompleted() error {
	state := cc.engine.CurrentState()
	if len(state.ActiveMissions) == 0 {
		return fmt.Errorf("no mission instance present")
	}
	if state.ActiveMissions[0].Status != game.MissionCompleted {
		return fmt.Errorf("expected completed, got %s", state.ActiveMissions[0].Status)
	}
	return nil
}

func (cc *colonyContext) theAchievementShouldBeUnlocked(id string) error {
	if !cc.engine.CurrentState().HasAchievement(id) {
		return fmt.Errorf("achievement %s is not unlocked", id)
	}
	return nil
}

// InitializeColonyScenario registers the colony step definitions
func InitializeColonyScenario(sc *godog.ScenarioContext) {
	cc := &colonyContext{}
	cc.reset()

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	sc.Step(`^a fresh colony$`, cc.aFreshColony)
	sc.Step(`^the colony has (\d+(?:\.\d+)?) (\w+)$`, cc.theColonyHasResource)
	sc.Step(`^the player clicks the mushroom (\d+) times?$`, cc.thePlayerClicksTheMushroom)
	sc.Step(`^the player buys the "([^"]*)" upgrade$`, cc.thePlayerBuysTheUpgrade)
	sc.Step(`^the player unlocks plot (\d+)$`, cc.thePlayerUnlocksPlot)
	sc.Step(`^the player plants "([^"]*)" in plot (\d+)$`, cc.thePlayerPlantsInPlot)
	sc.Step(`^the player harvests plot (\d+)$`, cc.thePlayerHarvestsPlot)
	sc.Step(`^the player starts the "([^"]*)" mission$`, cc.thePlayerStartsTheMission)
	sc.Step(`^the player claims the mission$`, cc.thePlayerClaimsTheMission)
	sc.Step(`^(\d+(?:\.\d+)?) seconds pass$`, cc.secondsPass)
	sc.Step(`^the mission resolves successfully$`, cc.theMissionResolvesSuccessfully)
	sc.Step(`^the mission ends in disaster$`, cc.theMissionEndsInDisaster)
	sc.Step(`^due missions are resolved$`, cc.dueMissionsAreResolved)
	sc.Step(`^the colony should have (\d+(?:\.\d+)?) (\w+)$`, cc.theColonyShouldHaveResource)
	sc.Step(`^the click level should be (\d+)$`, cc.theClickLevelShouldBe)
	sc.Step(`^the click XP should be (\d+)$`, cc.theClickXPShouldBe)
	sc.Step(`^the "([^"]*)" mode should be unlocked$`, cc.theModeShouldBeUnlocked)
	sc.Step(`^the operation should succeed$`, cc.theOperationShouldSucceed)
	sc.Step(`^the operation should fail with insufficient resources$`, cc.theOperationShouldFailWithInsufficientResources)
	sc.Step(`^the operation should fail because the plot is not ready$`, cc.theOperationShouldFailBecauseThePlotIsNotReady)
	sc.Step(`^plot (\d+) should be unlocked$`, cc.plotShouldBeUnlocked)
	sc.Step(`^(\d+) missions? should be underway$`, cc.missionsShouldBeUnderway)
	sc.Step(`^the mission should be completed$`, cc.theMissionShouldBeCompleted)
	sc.Step(`^the "([^"]*)" achievement should be unlocked$`, cc.theAchievementShouldBeUnlocked)
}
