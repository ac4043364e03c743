package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/pkg/core/services"
)

// SendSignupRemindersCmd creates the sendSignupReminders command
func SendSignupRemindersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sendSignupReminders",
		Short: "Email active players who haven't signed up for the next raid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gmail, err := app.Gmail()
			if err != nil {
				return err
			}

			sent, failed, err := services.SendSignupReminders(app.Ctx, app.Database, app.Database, gmail, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Signup reminders completed!\n\n")

			if len(sent) > 0 {
				fmt.Printf("Reminders sent to %d players:\n", len(sent))
				for _, reminder := range sent {
					fmt.Printf("  ✓ %s (%s)\n", reminder.Player, reminder.Email)
				}
				fmt.Println()
			}

			if len(failed) > 0 {
				fmt.Printf("⚠️  Failed to send %d emails:\n", len(failed))
				for _, failure := range failed {
					fmt.Printf("  ✗ %s (%s): %s\n", failure.Player, failure.Email, failure.Error)
				}
				fmt.Println()
			}

			if len(sent) == 0 && len(failed) == 0 {
				fmt.Println("No reminders to send - everyone has already responded.")
			}

			return nil
		},
	}
}
