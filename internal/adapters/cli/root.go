package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fungal",
		Short: "Fungal Evolution CLI - Play the colony from your terminal",
		Long: `Fungal Evolution CLI runs the game engine in-process against the local save.
Elapsed time since your last command is credited as offline progress.

Examples:
  fungal click --count 50
  fungal upgrade list
  fungal upgrade buy sharper_spores
  fungal garden plant 0 basic_spore
  fungal mission start scout_surroundings
  fungal achievements
  fungal journal`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search standard locations)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewClickCommand())
	rootCmd.AddCommand(NewUpgradeCommand())
	rootCmd.AddCommand(NewGardenCommand())
	rootCmd.AddCommand(NewMissionCommand())
	rootCmd.AddCommand(NewModeCommand())
	rootCmd.AddCommand(NewAchievementsCommand())
	rootCmd.AddCommand(NewJournalCommand())
	rootCmd.AddCommand(NewResetCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
