package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporelab/fungal-evolution/internal/adapters/persistence"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
	"github.com/sporelab/fungal-evolution/internal/infrastructure/config"
	"github.com/sporelab/fungal-evolution/internal/infrastructure/database"
)

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the save and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to wipe the save without --yes")
			}

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close(db)

			repo := persistence.NewGormSaveRepository(db)
			fresh := game.NewState(shared.NewRealClock().Now())
			if err := repo.Save(context.Background(), fresh); err != nil {
				return fmt.Errorf("failed to write fresh save: %w", err)
			}

			fmt.Println("Save wiped. The colony starts anew.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm the wipe")
	return cmd
}
