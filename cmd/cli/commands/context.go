package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/internal/config"
	"github.com/superhelt/wow-raid-planner/pkg/clients/gmailclient"
	"github.com/superhelt/wow-raid-planner/pkg/core/model"
	"github.com/superhelt/wow-raid-planner/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context

	gmail *gmailclient.Client
}

// Gmail returns the Gmail client, running the OAuth flow on first use so
// commands that never send mail don't prompt for authentication.
func (app *AppContext) Gmail() (*gmailclient.Client, error) {
	if app.gmail != nil {
		return app.gmail, nil
	}

	oauthCfg, err := config.LoadOAuthClient()
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	client, err := gmailclient.NewClient(app.Ctx, oauthCfg, app.Cfg.GmailSender)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	app.gmail = client
	return client, nil
}

func parseRaidDate(arg string) (time.Time, error) {
	date, err := time.Parse(model.DateFormat, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("raid date must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}
