package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// NewUpgradeCommand creates the upgrade command group
func NewUpgradeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "List and buy production upgrades",
	}
	cmd.AddCommand(newUpgradeListCommand())
	cmd.AddCommand(newUpgradeBuyCommand())
	return cmd
}

func newUpgradeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List upgrades with current levels and prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				state := s.engine.CurrentState()
				spores := state.Resource(shared.ResourceSpores)

				fmt.Printf("%-20s %-8s %-10s %s\n", "ID", "LEVEL", "COST", "EFFECT")
				for i := range content.Upgrades {
					cfg := &content.Upgrades[i]
					level := state.UpgradeLevel(cfg.ID)
					cost := content.UpgradeCost(cfg, level)
					marker := " "
					if spores >= cost {
						marker = "*"
					}
					fmt.Printf("%-20s %-8d %-10.0f %s %s\n", cfg.ID, level, cost, cfg.Description, marker)
				}
				return nil
			})
		},
	}
}

func newUpgradeBuyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <upgrade-id>",
		Short: "Buy one level of an upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				if err := s.engine.BuyUpgrade(args[0]); err != nil {
					return err
				}
				state := s.engine.CurrentState()
				fmt.Printf("Bought %s (now level %d), %.0f spores left\n",
					args[0], state.UpgradeLevel(args[0]), state.Resource(shared.ResourceSpores))
				return nil
			})
		},
	}
}
