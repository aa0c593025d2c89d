package mappers

import (
	"fmt"

	"itdesk/internal/domain/masterdata"
	"itdesk/internal/infrastructure/persistence/models"
)

// MasterDataMapper handles the conversion between master data items and persistence models.
type MasterDataMapper interface {
	ToModel(entity *masterdata.Item) *models.MasterDataModel
	ToDomain(model *models.MasterDataModel) (*masterdata.Item, error)
}

type MasterDataMapperImpl struct{}

// NewMasterDataMapper creates a new MasterDataMapper.
func NewMasterDataMapper() MasterDataMapper {
	return &MasterDataMapperImpl{}
}

func (m *MasterDataMapperImpl) ToModel(entity *masterdata.Item) *models.MasterDataModel {
	if entity == nil {
		return nil
	}
	return &models.MasterDataModel{
		ID:        entity.ID(),
		Type:      entity.Type().String(),
		Value:     entity.Value(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *MasterDataMapperImpl) ToDomain(model *models.MasterDataModel) (*masterdata.Item, error) {
	if model == nil {
		return nil, nil
	}

	itemType, err := masterdata.NewType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("stored master data item %d has invalid type: %w", model.ID, err)
	}

	entity, err := masterdata.ReconstructItem(model.ID, itemType, model.Value, model.IsActive, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct master data item %d: %w", model.ID, err)
	}

	return entity, nil
}
