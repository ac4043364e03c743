package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.uber.org/zap"
)

// ListPlayersCmd creates the listPlayers command
func ListPlayersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listPlayers",
		Short: "List all registered players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := app.Database.GetPlayers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list players: %w", err)
			}

			app.Logger.Info("Players fetched successfully", zap.Int("count", len(players)))

			fmt.Printf("\nFound %d players:\n\n", len(players))
			for _, player := range players {
				status := "active"
				if !player.Active {
					status = "inactive"
				}
				roles := make([]string, 0, len(player.Roles))
				for _, role := range player.Roles {
					roles = append(roles, string(role))
				}
				fmt.Printf("- %s - %s - %s [%s]\n",
					player.ClassString(),
					status,
					player.Email,
					strings.Join(roles, ", "),
				)
			}

			return nil
		},
	}
}
