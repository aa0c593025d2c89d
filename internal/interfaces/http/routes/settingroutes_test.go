package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	settingUC "itdesk/internal/application/setting/usecases"
	"itdesk/internal/infrastructure/auth"
	settinghandler "itdesk/internal/interfaces/http/handlers/setting"
	"itdesk/internal/interfaces/http/middleware"
	"itdesk/internal/shared/logger"
)

type stubSettingRepository struct{}

func (stubSettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

func (stubSettingRepository) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("setting not found")
}

func (stubSettingRepository) Upsert(ctx context.Context, values map[string]string) error {
	return nil
}

type stubPasswordHasher struct{}

func (stubPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

type rejectAllVerifier struct{}

func (rejectAllVerifier) Verify(token string) (*auth.SessionClaims, error) {
	return nil, errors.New("invalid session")
}

func newSettingRoutesEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()
	repo := stubSettingRepository{}
	handler := settinghandler.NewSettingHandler(
		settingUC.NewGetSettingsUseCase(repo, log),
		settingUC.NewUpdateSettingsUseCase(repo, stubPasswordHasher{}, log),
	)

	engine := gin.New()
	api := engine.Group("/api")
	SetupSettingRoutes(api, &SettingRouteConfig{
		SettingHandler: handler,
		AdminAuth:      middleware.NewAdminAuthMiddleware(rejectAllVerifier{}, log),
	})
	return engine
}

func TestSettingRoutes_GetIsPublic(t *testing.T) {
	engine := newSettingRoutesEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSettingRoutes_UpdateRequiresAdmin(t *testing.T) {
	engine := newSettingRoutesEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/settings",
		strings.NewReader(`{"settings":{"system_name":"Helpdesk"}}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
