package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/bench"
)

// BenchCmd creates the bench command
func BenchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bench <date>",
		Short: "Show bench statistics for a raid's accepted players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			raid, err := app.Database.GetRaid(app.Ctx, date)
			if err != nil {
				return err
			}
			raids, err := app.Database.GetRaids(app.Ctx)
			if err != nil {
				return err
			}

			stats := bench.Compute(raids, raid, time.Now())
			if len(stats) == 0 {
				fmt.Println("\nNo players benched today.")
				return nil
			}

			fmt.Printf("\nBench for raid %s:\n\n", args[0])
			fmt.Printf("  %-25s %5s %9s %6s %6s\n", "Player", "Today", "TwoWeeks", "Month", "Total")
			for _, stat := range stats {
				fmt.Printf("  %-25s %5d %9d %6d %6d\n",
					stat.Player.ClassString(), stat.Today, stat.TwoWeeks, stat.Month, stat.Total)
			}
			fmt.Println()

			return nil
		},
	}
}
