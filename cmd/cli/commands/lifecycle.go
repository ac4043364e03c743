package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/services"
)

// FinalizeCmd creates the finalize command
func FinalizeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "finalize <date>",
		Short: "Lock a raid against further edits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			if err := services.FinalizeRaid(app.Ctx, app.Database, app.Logger, date, time.Now()); err != nil {
				return err
			}

			fmt.Printf("\n✓ Raid %s finalized\n\n", args[0])
			return nil
		},
	}
}

// ReopenCmd creates the reopen command
func ReopenCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <date>",
		Short: "Reopen a finalized raid for edits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			if err := services.ReopenRaid(app.Ctx, app.Database, app.Logger, date); err != nil {
				return err
			}

			fmt.Printf("\n✓ Raid %s reopened\n\n", args[0])
			return nil
		},
	}
}
