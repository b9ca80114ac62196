package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewJournalCommand creates the journal command
func NewJournalCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recent engine events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session) error {
				entries, err := s.journal.Recent(limit)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println("No journal entries yet.")
					return nil
				}
				for _, e := range entries {
					fmt.Printf("[%s] %-5s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Level, e.Message)
					if len(e.Metadata) > 0 {
						fmt.Printf(" %v", e.Metadata)
					}
					fmt.Println()
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}
