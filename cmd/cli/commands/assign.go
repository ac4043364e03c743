package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
	"github.com/superhelt/wow-raid-planner/pkg/core/services"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <date> <boss> <player> <Tank|Healer|Melee|Ranged>",
		Short: "Assign a player to an encounter in the given role",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			err = services.AssignPlayer(app.Ctx, app.Database, app.Logger, date, model.Boss(args[1]), args[2], model.Role(args[3]))
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s assigned to %s as %s\n\n", args[2], args[1], args[3])
			return nil
		},
	}
}

// UnassignCmd creates the unassign command
func UnassignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <date> <boss> <player>",
		Short: "Remove a player from an encounter",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			err = services.RemovePlayer(app.Ctx, app.Database, app.Logger, date, model.Boss(args[1]), args[2])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s removed from %s\n\n", args[2], args[1])
			return nil
		},
	}
}
