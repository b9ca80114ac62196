package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the colony's current state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				state := s.engine.CurrentState()
				stats := s.engine.Stats()

				fmt.Println("Colony Status")
				fmt.Println("=============")
				for _, kind := range shared.ResourceKinds() {
					fmt.Printf("  %-10s %.0f\n", kind, state.Resource(kind))
				}
				fmt.Printf("\nClick level %d (%d/%d XP), %d lifetime clicks\n",
					state.ClickLevel, state.ClickXP, state.ClickLevel, state.Stats.TotalClicks)
				fmt.Printf("Click power %.0f, passive rate %.1f spores/s\n",
					stats.ClickPower, stats.PassiveRate)

				fmt.Printf("\nMode: %s (unlocked:", state.CurrentMode)
				for _, m := range state.UnlockedModes {
					fmt.Printf(" %s", m)
				}
				fmt.Println(")")

				planted := 0
				unlocked := 0
				for _, p := range state.Plots {
					if p.Unlocked {
						unlocked++
					}
					if p.Planted() {
						planted++
					}
				}
				fmt.Printf("Garden: %d/%d plots unlocked, %d growing\n", unlocked, len(state.Plots), planted)

				active, completed := 0, 0
				for _, m := range state.ActiveMissions {
					if m.Status == game.MissionCompleted {
						completed++
					} else {
						active++
					}
				}
				fmt.Printf("Missions: %d underway, %d awaiting claim\n", active, completed)
				fmt.Printf("Achievements: %d unlocked\n", len(state.Achievements))
				return nil
			})
		},
	}
}
