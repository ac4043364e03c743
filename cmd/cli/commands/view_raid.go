package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// ViewRaidCmd creates the viewRaid command
func ViewRaidCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewRaid <date>",
		Short: "Show a raid's signups, encounters, and events",
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

			status := "Open"
			if raid.IsFinalized() {
				status = fmt.Sprintf("Finalized at %s", raid.FinalizedAt.Format("2006-01-02 15:04"))
			}
			fmt.Printf("\nRaid %s (%s)\n\n", args[0], status)

			fmt.Printf("Signups (%d):\n", len(raid.Signups))
			for _, signup := range raid.Signups {
				line := fmt.Sprintf("  %-10s %s", signup.Type, signup.Player.ClassString())
				if signup.Comment != "" {
					line += fmt.Sprintf(" - %s", signup.Comment)
				}
				fmt.Println(line)
			}

			fmt.Printf("\nEncounters (%d):\n", len(raid.Encounters))
			for _, encounter := range raid.Encounters {
				fmt.Printf("  %s (%d assigned)\n", encounter.Boss, encounter.NumParticipants())
				for _, role := range model.Roles() {
					players := encounter.PlayersOfRole(role)
					if len(players) == 0 {
						continue
					}
					fmt.Printf("    %-7s", role+":")
					for i, player := range players {
						if i > 0 {
							fmt.Print(", ")
						}
						fmt.Print(player.Name)
					}
					fmt.Println()
				}
			}

			if len(raid.Events) > 0 {
				fmt.Printf("\nEvents (%d):\n", len(raid.Events))
				for _, event := range raid.Events {
					fmt.Printf("  %s  %-7s %s", event.Time.Format("2006-01-02 15:04:05"), event.Type, event.Player.Name)
					if event.Comment != "" {
						fmt.Printf(" - %s", event.Comment)
					}
					fmt.Println()
				}
			}
			fmt.Println()

			return nil
		},
	}
}
