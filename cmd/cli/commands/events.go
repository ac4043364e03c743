package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
	"github.com/superhelt/wow-raid-planner/pkg/core/services"
)

// AddEventCmd creates the addEvent command
func AddEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addEvent <date> <player> <Late|Absent|Other>",
		Short: "Log a note against a raid, e.g. a late arrival",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}
			comment, _ := cmd.Flags().GetString("comment")

			err = services.AddEvent(app.Ctx, app.Database, app.Database, app.Logger, date, args[1], model.EventType(args[2]), comment)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event logged for %s on raid %s\n\n", args[1], args[0])
			return nil
		},
	}

	cmd.Flags().String("comment", "", "Free-form note")

	return cmd
}

// RemoveEventCmd creates the removeEvent command
func RemoveEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeEvent <date> <timestamp>",
		Short: "Remove a logged event by its exact timestamp (RFC 3339)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseRaidDate(args[0])
			if err != nil {
				return err
			}

			eventTime, err := time.Parse(time.RFC3339Nano, args[1])
			if err != nil {
				return fmt.Errorf("timestamp must be RFC 3339: %w", err)
			}

			if err := services.RemoveEvent(app.Ctx, app.Database, app.Logger, date, eventTime); err != nil {
				return err
			}

			fmt.Printf("\n✓ Event removed from raid %s\n\n", args[0])
			return nil
		},
	}
}
