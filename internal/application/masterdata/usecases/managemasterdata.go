package usecases

import (
	"context"

	"itdesk/internal/application/masterdata/dto"
	"itdesk/internal/domain/masterdata"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

// ManageMasterDataUseCase handles admin mutations of the reference lists.
type ManageMasterDataUseCase struct {
	itemRepo masterdata.Repository
	logger   logger.Interface
}

// NewManageMasterDataUseCase creates a new ManageMasterDataUseCase.
func NewManageMasterDataUseCase(itemRepo masterdata.Repository, logger logger.Interface) *ManageMasterDataUseCase {
	return &ManageMasterDataUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// AddItem creates a new active item in the given category.
func (uc *ManageMasterDataUseCase) AddItem(ctx context.Context, itemType, value string) (*dto.ItemDTO, error) {
	parsed, err := masterdata.NewType(itemType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	item, err := masterdata.NewItem(parsed, value)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.Save(ctx, item); err != nil {
		uc.logger.Errorw("failed to save master data item",
			"type", itemType,
			"value", value,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("master data item added",
		"id", item.ID(),
		"type", itemType,
		"value", value,
	)
	return dto.FromEntity(item), nil
}

// RenameItem changes an item's display value.
func (uc *ManageMasterDataUseCase) RenameItem(ctx context.Context, itemID uint, value string) (*dto.ItemDTO, error) {
	item, err := uc.loadItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.Rename(value); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to rename master data item", "id", itemID, "error", err)
		return nil, err
	}

	return dto.FromEntity(item), nil
}

// SetItemActive toggles an item's visibility on the intake form.
func (uc *ManageMasterDataUseCase) SetItemActive(ctx context.Context, itemID uint, active bool) (*dto.ItemDTO, error) {
	item, err := uc.loadItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.SetActive(active)

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to toggle master data item", "id", itemID, "error", err)
		return nil, err
	}

	return dto.FromEntity(item), nil
}

// DeleteItem removes an item permanently. Existing tickets keep the value
// they captured at intake, so deletion never rewrites history.
func (uc *ManageMasterDataUseCase) DeleteItem(ctx context.Context, itemID uint) error {
	if itemID == 0 {
		return errors.NewValidationError("item ID is required")
	}

	if err := uc.itemRepo.Delete(ctx, itemID); err != nil {
		uc.logger.Errorw("failed to delete master data item", "id", itemID, "error", err)
		return err
	}

	uc.logger.Infow("master data item deleted", "id", itemID)
	return nil
}

func (uc *ManageMasterDataUseCase) loadItem(ctx context.Context, itemID uint) (*masterdata.Item, error) {
	if itemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}
	return uc.itemRepo.GetByID(ctx, itemID)
}
