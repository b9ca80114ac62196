package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sporelab/fungal-evolution/internal/domain/content"
)

// NewGardenCommand creates the garden command group
func NewGardenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "garden",
		Short: "Manage the spore garden",
	}
	cmd.AddCommand(newGardenListCommand())
	cmd.AddCommand(newGardenUnlockCommand())
	cmd.AddCommand(newGardenPlantCommand())
	cmd.AddCommand(newGardenHarvestCommand())
	return cmd
}

func newGardenListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every plot and its growth progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				state := s.engine.CurrentState()
				now := time.Now().UTC()

				for _, p := range state.Plots {
					switch {
					case !p.Unlocked:
						fmt.Printf("plot %d: locked (%.0f spores to unlock)\n", p.ID, content.PlotUnlockCost(p.ID))
					case !p.Planted():
						fmt.Printf("plot %d: empty\n", p.ID)
					default:
						seed := content.SeedByID(p.SeedID)
						grown := now.Sub(*p.PlantTime).Seconds()
						if seed != nil && grown >= seed.GrowthTime {
							fmt.Printf("plot %d: %s READY (+%.0f warriors)\n", p.ID, p.SeedID, seed.WarriorYield)
						} else if seed != nil {
							fmt.Printf("plot %d: %s growing, %.0fs left\n", p.ID, p.SeedID, seed.GrowthTime-grown)
						}
					}
				}

				fmt.Println("\nSeeds:")
				for _, seed := range content.Seeds {
					fmt.Printf("  %-12s %.0f spores, %.0fs growth, +%.0f warriors\n",
						seed.ID, seed.Cost, seed.GrowthTime, seed.WarriorYield)
				}
				return nil
			})
		},
	}
}

func newGardenUnlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <plot>",
		Short: "Unlock a garden plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid plot number: %s", args[0])
			}
			return withSession(func(s *session) error {
				if err := s.engine.UnlockPlot(plotID); err != nil {
					return err
				}
				fmt.Printf("Plot %d unlocked\n", plotID)
				return nil
			})
		},
	}
}

func newGardenPlantCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plant <plot> <seed-id>",
		Short: "Plant a seed in an unlocked plot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid plot number: %s", args[0])
			}
			return withSession(func(s *session) error {
				if err := s.engine.PlantSeed(plotID, args[1]); err != nil {
					return err
				}
				fmt.Printf("Planted %s in plot %d\n", args[1], plotID)
				return nil
			})
		},
	}
}

func newGardenHarvestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "harvest <plot>",
		Short: "Harvest a fully grown plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid plot number: %s", args[0])
			}
			return withSession(func(s *session) error {
				if err := s.engine.HarvestPlot(plotID); err != nil {
					return err
				}
				fmt.Printf("Harvested plot %d\n", plotID)
				return nil
			})
		},
	}
}
