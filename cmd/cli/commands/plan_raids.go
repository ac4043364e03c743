package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/services"
)

// PlanRaidsCmd creates the planRaids command
func PlanRaidsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "planRaids <count>",
		Short: "Schedule the next raids from the configured raid nights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("count must be a number: %w", err)
			}

			dates, err := services.PlanRaids(app.Ctx, app.Database, app.Logger, app.Cfg.RaidSchedule, count)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Raids scheduled!\n\n")
			if len(dates) == 0 {
				fmt.Println("All upcoming raid nights already exist.")
				return nil
			}
			fmt.Printf("New raid dates:\n")
			for i, date := range dates {
				fmt.Printf("  %2d. %s\n", i+1, date.Format("2006-01-02 (Monday)"))
			}
			fmt.Println()

			return nil
		},
	}
}
