package usecases

import (
	"context"

	"itdesk/internal/application/masterdata/dto"
	"itdesk/internal/domain/masterdata"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

// ListMasterDataQuery selects which items to return. An empty Type lists
// every category; IncludeInactive adds items hidden from the intake form.
type ListMasterDataQuery struct {
	Type            string
	IncludeInactive bool
}

// ListMasterDataUseCase returns the reference lists that back the intake form.
type ListMasterDataUseCase struct {
	itemRepo masterdata.Repository
	logger   logger.Interface
}

// NewListMasterDataUseCase creates a new ListMasterDataUseCase.
func NewListMasterDataUseCase(itemRepo masterdata.Repository, logger logger.Interface) *ListMasterDataUseCase {
	return &ListMasterDataUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *ListMasterDataUseCase) Execute(ctx context.Context, query ListMasterDataQuery) ([]*dto.ItemDTO, error) {
	var itemType masterdata.Type
	if query.Type != "" {
		parsed, err := masterdata.NewType(query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		itemType = parsed
	}

	items, err := uc.itemRepo.List(ctx, itemType, query.IncludeInactive)
	if err != nil {
		uc.logger.Errorw("failed to list master data",
			"type", query.Type,
			"error", err,
		)
		return nil, err
	}

	return dto.FromEntities(items), nil
}
