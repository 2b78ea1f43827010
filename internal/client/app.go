package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client services and ui are required")
	}
	return &App{services: services, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run bootstraps the session and alternates between sign in and the
// workspace until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		state, err := a.services.SessionService.Bootstrap(ctx)
		if err != nil {
			// the saved session is kept for the next start
			a.logger.Warn().Err(err).Msg("session was not restored")
		}
		a.logger.Info().Str("state", state.String()).Msg("session bootstrapped")

		user, ok := a.services.SessionService.CurrentUser()
		if !ok {
			user, err = a.ui.AuthFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("auth flow: %w", err)
			}
		}

		a.logger.Info().Str("user", user.Username).Msg("user signed in")
		logout, err := a.ui.MainLoop(ctx, user, a.cfg.RefreshInterval)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
	}
}
