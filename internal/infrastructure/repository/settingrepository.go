package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"itdesk/internal/infrastructure/persistence/models"
	"itdesk/internal/shared/db"
	"itdesk/internal/shared/errors"
)

// SettingRepository stores settings as one row per key.
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(gormDB *gorm.DB) *SettingRepository {
	return &SettingRepository{db: gormDB}
}

func (r *SettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.SettingModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, errors.NewUnavailableError("failed to load settings", err.Error())
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	return values, nil
}

func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row models.SettingModel
	if err := tx.Where("`key` = ?", key).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.NewNotFoundError("setting not found", key)
		}
		return "", errors.NewUnavailableError("failed to load setting", err.Error())
	}

	return row.Value, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	rows := make([]models.SettingModel, 0, len(values))
	for key, value := range values {
		rows = append(rows, models.SettingModel{Key: key, Value: value})
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return errors.NewUnavailableError("failed to upsert settings", err.Error())
	}

	return nil
}
