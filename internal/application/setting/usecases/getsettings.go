package usecases

import (
	"context"

	"itdesk/internal/domain/setting"
	"itdesk/internal/shared/logger"
)

// GetSettingsUseCase handles retrieval of system settings.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase.
func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Execute returns every user-visible setting. Keys missing from the store are
// filled with their documented defaults; the admin password hash is never
// returned.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (map[string]string, error) {
	stored, err := uc.settingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, err
	}

	result := setting.Defaults()
	for key, value := range stored {
		if key == setting.KeyAdminPasswordHash {
			continue
		}
		result[key] = value
	}

	return result, nil
}
