package usecases

import (
	"context"

	"itdesk/internal/domain/masterdata"
	"itdesk/internal/shared/logger"
)

type mockItemRepository struct {
	SaveFunc    func(ctx context.Context, item *masterdata.Item) error
	UpdateFunc  func(ctx context.Context, item *masterdata.Item) error
	DeleteFunc  func(ctx context.Context, itemID uint) error
	GetByIDFunc func(ctx context.Context, itemID uint) (*masterdata.Item, error)
	ListFunc    func(ctx context.Context, itemType masterdata.Type, includeInactive bool) ([]*masterdata.Item, error)
}

func (m *mockItemRepository) Save(ctx context.Context, item *masterdata.Item) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Update(ctx context.Context, item *masterdata.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, itemID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, itemID)
	}
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, itemID uint) (*masterdata.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *mockItemRepository) List(ctx context.Context, itemType masterdata.Type, includeInactive bool) ([]*masterdata.Item, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, itemType, includeInactive)
	}
	return nil, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
