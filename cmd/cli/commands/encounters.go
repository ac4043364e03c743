package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
	"github.com/superhelt/wow-raid-planner/pkg/core/services"
)

// AddEncounterCmd creates the addEncounter command
func AddEncounterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addEncounter <date> <boss>",
		Short: "Add a boss encounter to a raid's roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			if err := services.AddEncounter(app.Ctx, app.Database, app.Logger, date, model.Boss(args[1])); err != nil {
				return err
			}

			fmt.Printf("\n✓ Encounter %s added to raid %s\n\n", args[1], args[0])
			return nil
		},
	}
}

// DeleteEncounterCmd creates the deleteEncounter command
func DeleteEncounterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEncounter <date> <boss>",
		Short: "Remove a boss encounter and its assignments from a raid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			if err := services.DeleteEncounter(app.Ctx, app.Database, app.Logger, date, model.Boss(args[1])); err != nil {
				return err
			}

			fmt.Printf("\n✓ Encounter %s removed from raid %s\n\n", args[1], args[0])
			return nil
		},
	}
}
