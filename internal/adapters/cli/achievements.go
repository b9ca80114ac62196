package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// NewAchievementsCommand creates the achievements command
func NewAchievementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				state := s.engine.CurrentState()

				for i := range content.Achievements {
					cfg := &content.Achievements[i]
					if state.HasAchievement(cfg.ID) {
						fmt.Printf("[x] %s - %s\n", cfg.Name, cfg.Description)
						continue
					}
					// Secrecy is presentation-only: locked secrets stay hidden
					if cfg.Secret {
						fmt.Println("[ ] ???")
						continue
					}
					fmt.Printf("[ ] %s - %s\n", cfg.Name, cfg.Description)
				}
				fmt.Printf("\n%d/%d unlocked\n", len(state.Achievements), len(content.Achievements))
				return nil
			})
		},
	}
}

// NewModeCommand creates the mode switch command
func NewModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mode <name>",
		Short: "Switch the active gameplay mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				if err := s.engine.SwitchMode(shared.GameMode(args[0])); err != nil {
					return err
				}
				fmt.Printf("Switched to %s\n", args[0])
				return nil
			})
		},
	}
}
