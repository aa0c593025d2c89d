package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itdesk/internal/domain/masterdata"
	"itdesk/internal/shared/errors"
)

func TestSettingRepository_UpsertAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, map[string]string{
		"system_name": "IT Manager Pro",
		"org_name":    "Land Office",
	}))

	value, err := repo.Get(ctx, "system_name")
	require.NoError(t, err)
	assert.Equal(t, "IT Manager Pro", value)

	// Second upsert overwrites without duplicating rows.
	require.NoError(t, repo.Upsert(ctx, map[string]string{"system_name": "Helpdesk"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Helpdesk", all["system_name"])
	assert.Equal(t, "Land Office", all["org_name"])
	assert.Len(t, all, 2)
}

func TestSettingRepository_Get_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestMasterDataRepository_SaveAndList(t *testing.T) {
	database := setupTestDB(t)
	repo := NewMasterDataRepository(database)
	ctx := context.Background()

	for _, value := range []string{"North Branch", "Head Office"} {
		item, err := masterdata.NewItem(masterdata.TypeBranch, value)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, item))
	}

	tech, err := masterdata.NewItem(masterdata.TypeTechnician, "Anan")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tech))

	branches, err := repo.List(ctx, masterdata.TypeBranch, false)
	require.NoError(t, err)
	require.Len(t, branches, 2)
	// Ordered by value ascending.
	assert.Equal(t, "Head Office", branches[0].Value())
	assert.Equal(t, "North Branch", branches[1].Value())

	all, err := repo.List(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMasterDataRepository_Save_DuplicateValue(t *testing.T) {
	database := setupTestDB(t)
	repo := NewMasterDataRepository(database)
	ctx := context.Background()

	item, err := masterdata.NewItem(masterdata.TypeShop, "Quick Fix")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, item))

	dup, err := masterdata.NewItem(masterdata.TypeShop, "Quick Fix")
	require.NoError(t, err)

	err = repo.Save(ctx, dup)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestMasterDataRepository_InactiveFiltering(t *testing.T) {
	database := setupTestDB(t)
	repo := NewMasterDataRepository(database)
	ctx := context.Background()

	item, err := masterdata.NewItem(masterdata.TypeDept, "Accounting")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, item))

	item.SetActive(false)
	require.NoError(t, repo.Update(ctx, item))

	active, err := repo.List(ctx, masterdata.TypeDept, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	withInactive, err := repo.List(ctx, masterdata.TypeDept, true)
	require.NoError(t, err)
	require.Len(t, withInactive, 1)
	assert.False(t, withInactive[0].IsActive())
}
