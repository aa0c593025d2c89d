package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"itdesk/internal/domain/masterdata"
	"itdesk/internal/infrastructure/persistence/mappers"
	"itdesk/internal/infrastructure/persistence/models"
	"itdesk/internal/shared/db"
	"itdesk/internal/shared/errors"
)

type MasterDataRepository struct {
	db     *gorm.DB
	mapper mappers.MasterDataMapper
}

func NewMasterDataRepository(gormDB *gorm.DB) *MasterDataRepository {
	return &MasterDataRepository{
		db:     gormDB,
		mapper: mappers.NewMasterDataMapper(),
	}
}

func (r *MasterDataRepository) Save(ctx context.Context, item *masterdata.Item) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.NewConflictError(fmt.Sprintf("%s %q already exists", item.Type(), item.Value()))
		}
		return errors.NewUnavailableError("failed to save master data item", err.Error())
	}

	return item.SetID(model.ID)
}

func (r *MasterDataRepository) Update(ctx context.Context, item *masterdata.Item) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MasterDataModel{}).
		Where("id = ?", model.ID).
		Select("value", "is_active", "updated_at").
		Updates(model)

	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return errors.NewConflictError(fmt.Sprintf("%s %q already exists", item.Type(), item.Value()))
		}
		return errors.NewUnavailableError("failed to update master data item", result.Error.Error())
	}

	return nil
}

func (r *MasterDataRepository) Delete(ctx context.Context, itemID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.MasterDataModel{}, itemID)
	if result.Error != nil {
		return errors.NewUnavailableError("failed to delete master data item", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("master data item not found")
	}

	return nil
}

func (r *MasterDataRepository) GetByID(ctx context.Context, itemID uint) (*masterdata.Item, error) {
	var model models.MasterDataModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("master data item not found")
		}
		return nil, errors.NewUnavailableError("failed to find master data item", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *MasterDataRepository) List(ctx context.Context, itemType masterdata.Type, includeInactive bool) ([]*masterdata.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.MasterDataModel{})

	if itemType != "" {
		query = query.Where("type = ?", itemType.String())
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var rows []models.MasterDataModel
	if err := query.Order("type ASC, value ASC").Find(&rows).Error; err != nil {
		return nil, errors.NewUnavailableError("failed to list master data", err.Error())
	}

	items := make([]*masterdata.Item, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
