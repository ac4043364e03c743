package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
	"github.com/superhelt/wow-raid-planner/pkg/core/planner"
)

// SuggestCmd creates the suggest command
func SuggestCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <date> <boss>",
		Short: "Suggest a roster for an encounter, favouring benched players",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			tanks, _ := cmd.Flags().GetInt("tanks")
			healers, _ := cmd.Flags().GetInt("healers")
			melee, _ := cmd.Flags().GetInt("melee")
			ranged, _ := cmd.Flags().GetInt("ranged")
			targets := planner.Targets{
				model.RoleTank:   tanks,
				model.RoleHealer: healers,
				model.RoleMelee:  melee,
				model.RoleRanged: ranged,
			}

			raid, err := app.Database.GetRaid(app.Ctx, date)
			if err != nil {
				return err
			}
			raids, err := app.Database.GetRaids(app.Ctx)
			if err != nil {
				return err
			}

			suggestion, err := planner.Suggest(raids, raid, model.Boss(args[1]), targets)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Suggested roster for %s on %s:\n\n", args[1], args[0])
			for _, role := range model.Roles() {
				players := suggestion.Roles[role]
				fmt.Printf("  %-7s (%d/%d):", role, len(players), targets[role])
				for i, player := range players {
					if i > 0 {
						fmt.Print(",")
					}
					fmt.Printf(" %s", player.ClassString())
				}
				fmt.Println()
			}

			fmt.Printf("\n  Bench (%d):", len(suggestion.Bench))
			for i, player := range suggestion.Bench {
				if i > 0 {
					fmt.Print(",")
				}
				fmt.Printf(" %s", player.Name)
			}
			fmt.Println()
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("tanks", 2, "Target number of tanks")
	cmd.Flags().Int("healers", 4, "Target number of healers")
	cmd.Flags().Int("melee", 7, "Target number of melee")
	cmd.Flags().Int("ranged", 7, "Target number of ranged")

	return cmd
}
