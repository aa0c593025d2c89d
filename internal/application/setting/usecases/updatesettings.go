package usecases

import (
	"context"
	"strconv"

	"itdesk/internal/domain/setting"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

// KeyAdminPassword is the request key used to change the admin password.
// It is hashed before storage and never persisted in clear text.
const KeyAdminPassword = "admin_password"

const maxSettingValueLength = 1000

// PasswordHasher hashes admin passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UpdateSettingsUseCase handles batch updates of system settings.
type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	hasher      PasswordHasher
	logger      logger.Interface
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase.
func NewUpdateSettingsUseCase(
	settingRepo setting.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

// Execute upserts the given settings. Unknown keys are accepted so the admin
// screen can grow without a migration; known keys are validated.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	toStore := make(map[string]string, len(values))
	for key, value := range values {
		if err := uc.validate(key, value); err != nil {
			return err
		}

		if key == KeyAdminPassword {
			hash, err := uc.hasher.Hash(value)
			if err != nil {
				uc.logger.Errorw("failed to hash admin password", "error", err)
				return errors.NewInternalError("failed to update admin password")
			}
			toStore[setting.KeyAdminPasswordHash] = hash
			continue
		}

		toStore[key] = value
	}

	if err := uc.settingRepo.Upsert(ctx, toStore); err != nil {
		uc.logger.Errorw("failed to upsert settings", "error", err)
		return err
	}

	uc.logger.Infow("settings updated", "keys", len(toStore))
	return nil
}

func (uc *UpdateSettingsUseCase) validate(key, value string) error {
	if key == "" {
		return errors.NewValidationError("setting key cannot be empty")
	}
	if key == setting.KeyAdminPasswordHash {
		return errors.NewValidationError("admin_password_hash cannot be set directly")
	}
	if len(value) > maxSettingValueLength {
		return errors.NewValidationError("setting value for " + key + " exceeds maximum length")
	}

	switch key {
	case KeyAdminPassword:
		if len(value) < 4 {
			return errors.NewValidationError("admin password must be at least 4 characters")
		}
	case setting.KeyJobIDPrefix:
		if value == "" {
			return errors.NewValidationError("job ID prefix cannot be empty")
		}
		if len(value) > 10 {
			return errors.NewValidationError("job ID prefix exceeds maximum length of 10 characters")
		}
	case setting.KeyMaxFileSize:
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 {
			return errors.NewValidationError("max file size must be a positive integer")
		}
	}

	return nil
}
