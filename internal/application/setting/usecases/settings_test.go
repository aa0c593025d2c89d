package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itdesk/internal/domain/setting"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

type mockSettingRepository struct {
	GetAllFunc func(ctx context.Context) (map[string]string, error)
	GetFunc    func(ctx context.Context, key string) (string, error)
	UpsertFunc func(ctx context.Context, values map[string]string) error
}

func (m *mockSettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return map[string]string{}, nil
}

func (m *mockSettingRepository) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.NewNotFoundError("setting not found")
}

func (m *mockSettingRepository) Upsert(ctx context.Context, values map[string]string) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, values)
	}
	return nil
}

type mockPasswordHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func TestGetSettingsUseCase_Execute_FillsDefaults(t *testing.T) {
	mockRepo := &mockSettingRepository{
		GetAllFunc: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{
				setting.KeyOrgName: "Provincial Land Office",
			}, nil
		},
	}
	uc := NewGetSettingsUseCase(mockRepo, testLogger())

	settings, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Provincial Land Office", settings[setting.KeyOrgName])
	assert.Equal(t, "IT Manager Pro", settings[setting.KeySystemName])
	assert.Equal(t, "JOB", settings[setting.KeyJobIDPrefix])
	assert.Equal(t, "5", settings[setting.KeyMaxFileSize])
}

func TestGetSettingsUseCase_Execute_HidesPasswordHash(t *testing.T) {
	mockRepo := &mockSettingRepository{
		GetAllFunc: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{
				setting.KeyAdminPasswordHash: "$2a$10$secret",
				setting.KeySystemName:        "Service Desk",
			}, nil
		},
	}
	uc := NewGetSettingsUseCase(mockRepo, testLogger())

	settings, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, settings, setting.KeyAdminPasswordHash)
	assert.Equal(t, "Service Desk", settings[setting.KeySystemName])
}

func TestUpdateSettingsUseCase_Execute(t *testing.T) {
	var stored map[string]string
	mockRepo := &mockSettingRepository{
		UpsertFunc: func(ctx context.Context, values map[string]string) error {
			stored = values
			return nil
		},
	}
	uc := NewUpdateSettingsUseCase(mockRepo, &mockPasswordHasher{}, testLogger())

	err := uc.Execute(context.Background(), map[string]string{
		setting.KeySystemName:  "Helpdesk",
		setting.KeyJobIDPrefix: "SRV",
	})
	require.NoError(t, err)
	assert.Equal(t, "Helpdesk", stored[setting.KeySystemName])
	assert.Equal(t, "SRV", stored[setting.KeyJobIDPrefix])
}

func TestUpdateSettingsUseCase_Execute_HashesAdminPassword(t *testing.T) {
	var stored map[string]string
	mockRepo := &mockSettingRepository{
		UpsertFunc: func(ctx context.Context, values map[string]string) error {
			stored = values
			return nil
		},
	}
	uc := NewUpdateSettingsUseCase(mockRepo, &mockPasswordHasher{}, testLogger())

	err := uc.Execute(context.Background(), map[string]string{
		KeyAdminPassword: "s3cret",
	})
	require.NoError(t, err)

	assert.NotContains(t, stored, KeyAdminPassword)
	assert.Equal(t, "hashed:s3cret", stored[setting.KeyAdminPasswordHash])
}

func TestUpdateSettingsUseCase_Execute_Validation(t *testing.T) {
	uc := NewUpdateSettingsUseCase(&mockSettingRepository{}, &mockPasswordHasher{}, testLogger())

	tests := []struct {
		name   string
		values map[string]string
	}{
		{"empty key", map[string]string{"": "x"}},
		{"direct hash write", map[string]string{setting.KeyAdminPasswordHash: "x"}},
		{"short password", map[string]string{KeyAdminPassword: "ab"}},
		{"empty prefix", map[string]string{setting.KeyJobIDPrefix: ""}},
		{"long prefix", map[string]string{setting.KeyJobIDPrefix: "VERYLONGPREFIX"}},
		{"bad file size", map[string]string{setting.KeyMaxFileSize: "lots"}},
		{"negative file size", map[string]string{setting.KeyMaxFileSize: "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Execute(context.Background(), tt.values)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
		})
	}
}

func TestUpdateSettingsUseCase_Execute_EmptyMapIsNoop(t *testing.T) {
	called := false
	mockRepo := &mockSettingRepository{
		UpsertFunc: func(ctx context.Context, values map[string]string) error {
			called = true
			return nil
		},
	}
	uc := NewUpdateSettingsUseCase(mockRepo, &mockPasswordHasher{}, testLogger())

	require.NoError(t, uc.Execute(context.Background(), nil))
	assert.False(t, called)
}

func TestSettingProvider_JobIDPrefix(t *testing.T) {
	mockRepo := &mockSettingRepository{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, setting.KeyJobIDPrefix, key)
			return "SRV", nil
		},
	}
	provider := NewSettingProvider(mockRepo, testLogger())

	assert.Equal(t, "SRV", provider.JobIDPrefix(context.Background()))
}

func TestSettingProvider_JobIDPrefix_FallsBackOnError(t *testing.T) {
	mockRepo := &mockSettingRepository{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return "", errors.NewUnavailableError("store down")
		},
	}
	provider := NewSettingProvider(mockRepo, testLogger())

	assert.Equal(t, "JOB", provider.JobIDPrefix(context.Background()))
}
