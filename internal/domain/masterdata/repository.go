package masterdata

import "context"

// Repository persists master data items.
type Repository interface {
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID uint) error
	GetByID(ctx context.Context, itemID uint) (*Item, error)
	// List returns items of a type ordered by value ascending. When
	// includeInactive is false only active items are returned. A zero-value
	// itemType lists all types.
	List(ctx context.Context, itemType Type, includeInactive bool) ([]*Item, error)
}
