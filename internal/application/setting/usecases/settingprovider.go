package usecases

import (
	"context"

	"itdesk/internal/domain/setting"
	"itdesk/internal/shared/logger"
)

// SettingProvider exposes setting reads to other workflows. Ticket intake
// resolves the job-ID prefix through it; a store failure on that path falls
// back to the default so a settings outage never blocks intake.
type SettingProvider struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

// NewSettingProvider creates a new SettingProvider.
func NewSettingProvider(settingRepo setting.Repository, logger logger.Interface) *SettingProvider {
	return &SettingProvider{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// JobIDPrefix returns the configured job-ID prefix, or the default when the
// key is unset or the store is unavailable.
func (p *SettingProvider) JobIDPrefix(ctx context.Context) string {
	value, err := p.settingRepo.Get(ctx, setting.KeyJobIDPrefix)
	if err != nil || value == "" {
		if err != nil {
			p.logger.Warnw("failed to read job ID prefix, using default", "error", err)
		}
		return setting.Defaults()[setting.KeyJobIDPrefix]
	}
	return value
}
