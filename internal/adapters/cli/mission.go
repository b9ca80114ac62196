package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
)

// NewMissionCommand creates the mission command group
func NewMissionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Send warriors on away-missions",
	}
	cmd.AddCommand(newMissionListCommand())
	cmd.AddCommand(newMissionStartCommand())
	cmd.AddCommand(newMissionClaimCommand())
	cmd.AddCommand(newMissionLogCommand())
	return cmd
}

func newMissionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List mission templates and running instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				fmt.Printf("%-22s %-10s %-6s %-6s\n", "ID", "DURATION", "RISK", "COST")
				for _, m := range content.Missions {
					fmt.Printf("%-22s %-10.0f %-6.0f%% %-6.0f\n", m.ID, m.Duration, m.Risk*100, m.Cost)
				}

				state := s.engine.CurrentState()
				if len(state.ActiveMissions) == 0 {
					return nil
				}

				fmt.Println("\nInstances:")
				now := time.Now().UTC()
				for _, m := range state.ActiveMissions {
					switch m.Status {
					case game.MissionCompleted:
						outcome := "failed"
						if m.Result != nil && m.Result.Success {
							outcome = "succeeded"
						}
						fmt.Printf("  %s  %s %s - claim with 'fungal mission claim %s'\n",
							m.InstanceID, m.MissionID, outcome, m.InstanceID)
					default:
						fmt.Printf("  %s  %s underway, %.0fs left\n",
							m.InstanceID, m.MissionID, m.EndTime.Sub(now).Seconds())
					}
				}
				return nil
			})
		},
	}
}

func newMissionStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <mission-id>",
		Short: "Commit warriors to a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				if err := s.engine.StartMission(args[0]); err != nil {
					return err
				}
				cfg := content.MissionByID(args[0])
				fmt.Printf("Squad of %.0f departed on %s (%.0fs)\n", cfg.Cost, cfg.Name, cfg.Duration)
				return nil
			})
		},
	}
}

func newMissionClaimCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <instance-id>",
		Short: "Claim a completed mission's rewards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				m := s.engine.CurrentState().FindMission(args[0])
				if err := s.engine.ClaimMission(args[0]); err != nil {
					return err
				}
				if m != nil && m.Result != nil {
					if m.Result.Success {
						fmt.Println("Mission succeeded:")
						for _, r := range m.Result.Rewards {
							fmt.Printf("  +%.0f %s\n", r.Amount, r.Resource)
						}
					} else {
						fmt.Println("The squad was lost. No rewards.")
					}
				}
				return nil
			})
		},
	}
}

func newMissionLogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "log <instance-id>",
		Short: "Show a mission's journey log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				m := s.engine.CurrentState().FindMission(args[0])
				if m == nil {
					return fmt.Errorf("no such mission instance: %s", args[0])
				}
				if m.Result == nil {
					fmt.Println("Still underway - no report yet.")
					return nil
				}
				for _, entry := range m.Result.Log {
					fmt.Printf("[%s] %-7s %s\n",
						entry.Timestamp.Format("15:04:05"), entry.Kind, entry.Message)
				}
				return nil
			})
		},
	}
}
