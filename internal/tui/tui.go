package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo BuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// AuthFlow runs storage setup, then login or registration, and returns the
// signed-in user.
func (t *TUI) AuthFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageStorage:  NewStorageModel(ctx, t.services.StorageService),
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.SessionService),
		pageRegister: NewRegisterModel(ctx, t.services.SessionService),
	}

	root := NewRootModel(pages, pageStorage, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.user.ID == "" {
		return models.User{}, ErrUserQuit
	}

	return result.user, nil
}

// MainLoop shows the workspace of user until quit or logout. The workspace is
// reloaded in the background every refreshInterval.
func (t *TUI) MainLoop(ctx context.Context, user models.User, refreshInterval time.Duration) (logout bool, err error) {
	model := newWorkspaceModel(ctx, t.services, user)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	t.services.RefreshJob.Start(ctx, refreshInterval, func(ws models.Workspace, err error) {
		if err != nil {
			t.logger.Warn().Err(err).Msg("background refresh failed")
			return
		}
		program.Send(workspaceLoadedMsg{workspace: ws})
	})
	defer t.services.RefreshJob.Stop()

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(workspaceModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
