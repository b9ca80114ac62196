package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// NewClickCommand creates the click command
func NewClickCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "click",
		Short: "Click the mushroom",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}
			return withSession(func(s *session) error {
				before := s.engine.CurrentState()
				for i := 0; i < count; i++ {
					s.engine.Click()

					// Golden shrooms are short-lived; grab one the moment it appears
					if s.engine.CurrentState().GoldenShroom != nil {
						s.engine.ClickGolden()
						fmt.Println("A golden shroom appeared - claimed!")
					}
				}
				after := s.engine.CurrentState()

				gained := after.Resource(shared.ResourceSpores) - before.Resource(shared.ResourceSpores)
				fmt.Printf("Clicked %d times: +%.0f spores (%.0f total)\n",
					count, gained, after.Resource(shared.ResourceSpores))
				if after.ClickLevel > before.ClickLevel {
					fmt.Printf("Level up! Click level is now %d\n", after.ClickLevel)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of clicks to dispatch")
	return cmd
}
