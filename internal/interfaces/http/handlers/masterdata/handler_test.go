package masterdata

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"itdesk/internal/application/masterdata/usecases"
	domain "itdesk/internal/domain/masterdata"
	"itdesk/internal/interfaces/http/handlers/testutil"
	"itdesk/internal/shared/constants"
	"itdesk/internal/shared/logger"
)

// recordingItemRepository captures the list arguments the handler forwards.
type recordingItemRepository struct {
	gotIncludeInactive bool
}

func (r *recordingItemRepository) Save(ctx context.Context, item *domain.Item) error   { return nil }
func (r *recordingItemRepository) Update(ctx context.Context, item *domain.Item) error { return nil }
func (r *recordingItemRepository) Delete(ctx context.Context, itemID uint) error       { return nil }

func (r *recordingItemRepository) GetByID(ctx context.Context, itemID uint) (*domain.Item, error) {
	return nil, nil
}

func (r *recordingItemRepository) List(ctx context.Context, itemType domain.Type, includeInactive bool) ([]*domain.Item, error) {
	r.gotIncludeInactive = includeInactive
	return nil, nil
}

func newTestMasterDataHandler(repo *recordingItemRepository) *MasterDataHandler {
	log := logger.NewLogger()
	return NewMasterDataHandler(
		usecases.NewListMasterDataUseCase(repo, log),
		usecases.NewManageMasterDataUseCase(repo, log),
	)
}

func TestMasterDataHandler_List_AllIgnoredWithoutSession(t *testing.T) {
	repo := &recordingItemRepository{}
	handler := newTestMasterDataHandler(repo)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/master-data", nil)
	testutil.SetQueryParams(c, map[string]string{"all": "true"})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, repo.gotIncludeInactive)
}

func TestMasterDataHandler_List_AllHonoredForAdmin(t *testing.T) {
	repo := &recordingItemRepository{}
	handler := newTestMasterDataHandler(repo)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/master-data", nil)
	testutil.SetQueryParams(c, map[string]string{"all": "true"})
	c.Set(constants.ContextKeyAdminSession, struct{}{})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.gotIncludeInactive)
}
