package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
	"github.com/superhelt/wow-raid-planner/pkg/core/services"
)

// SignupCmd creates the signup command
func SignupCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup <date> <player> <Accepted|Tentative|Declined>",
		Short: "Record a player's availability for a raid",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}
			comment, _ := cmd.Flags().GetString("comment")

			requests := []services.SignupRequest{{
				Player:  args[1],
				Type:    model.SignupType(args[2]),
				Comment: comment,
			}}

			results, err := services.AddSignups(app.Ctx, app.Database, app.Database, app.Logger, date, requests)
			if err != nil {
				return err
			}
			if results[0].Err != nil {
				return results[0].Err
			}

			fmt.Printf("\n✓ Signup recorded for %s on %s\n\n", args[1], args[0])
			return nil
		},
	}

	cmd.Flags().String("comment", "", "Reason for a Tentative or Declined response")

	return cmd
}

// UnsignCmd creates the unsign command
func UnsignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unsign <date> <player>",
		Short: "Withdraw a player's signup from a raid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			if err := services.RemoveSignup(app.Ctx, app.Database, app.Logger, date, args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Signup removed for %s on %s\n\n", args[1], args[0])
			return nil
		},
	}
}
