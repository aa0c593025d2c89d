package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"itdesk/internal/domain/setting"
	"itdesk/internal/infrastructure/persistence/models"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(AutoMigrateModels()...))

	return database
}

// settingValue loads a setting row into a fresh model so the previous
// lookup's primary key never leaks into the next query's conditions.
func settingValue(t *testing.T, database *gorm.DB, key string) string {
	t.Helper()

	var row models.SettingModel
	require.NoError(t, database.Where("`key` = ?", key).First(&row).Error)
	return row.Value
}

func TestSeed_WritesDefaults(t *testing.T) {
	database := setupSeedDB(t)

	require.NoError(t, Seed(database, fakeHasher{}, "admin1234"))

	assert.Equal(t, "JOB", settingValue(t, database, setting.KeyJobIDPrefix))
	assert.Equal(t, "hashed:admin1234", settingValue(t, database, setting.KeyAdminPasswordHash))

	var masterCount int64
	require.NoError(t, database.Model(&models.MasterDataModel{}).Count(&masterCount).Error)
	assert.Equal(t, int64(len(defaultMasterData())), masterCount)
}

func TestSeed_NeverOverwrites(t *testing.T) {
	database := setupSeedDB(t)

	require.NoError(t, Seed(database, fakeHasher{}, "admin1234"))

	// Admin customizes a setting and hides a master data entry.
	require.NoError(t, database.Model(&models.SettingModel{}).
		Where("`key` = ?", setting.KeySystemName).
		Update("value", "Helpdesk").Error)
	require.NoError(t, database.Model(&models.MasterDataModel{}).
		Where("type = ? AND value = ?", "branch", "สาขาศรีราชา").
		Update("is_active", false).Error)

	require.NoError(t, Seed(database, fakeHasher{}, "other-password"))

	assert.Equal(t, "Helpdesk", settingValue(t, database, setting.KeySystemName))
	assert.Equal(t, "hashed:admin1234", settingValue(t, database, setting.KeyAdminPasswordHash))

	var item models.MasterDataModel
	require.NoError(t, database.Where("type = ? AND value = ?", "branch", "สาขาศรีราชา").First(&item).Error)
	assert.False(t, item.IsActive)

	var settingCount int64
	require.NoError(t, database.Model(&models.SettingModel{}).Count(&settingCount).Error)
	assert.Equal(t, int64(len(setting.Defaults())+1), settingCount)
}

func TestSeed_NoBootstrapPassword(t *testing.T) {
	database := setupSeedDB(t)

	require.NoError(t, Seed(database, fakeHasher{}, ""))

	var count int64
	require.NoError(t, database.Model(&models.SettingModel{}).
		Where("`key` = ?", setting.KeyAdminPasswordHash).
		Count(&count).Error)
	assert.Zero(t, count)
}
