// Package masterdata holds the reference lists that back the intake form:
// branches, departments, asset types, technicians and repair shops.
package masterdata

import (
	"fmt"
	"time"
)

// Type is a master data category.
type Type string

const (
	TypeBranch     Type = "branch"
	TypeDept       Type = "dept"
	TypeAssetType  Type = "asset"
	TypeTechnician Type = "tech"
	TypeShop       Type = "shop"
)

var validTypes = map[Type]bool{
	TypeBranch:     true,
	TypeDept:       true,
	TypeAssetType:  true,
	TypeTechnician: true,
	TypeShop:       true,
}

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool { return validTypes[t] }

// NewType parses a master data type string.
func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid master data type: %s", s)
	}
	return t, nil
}

// Item is a single reference entry. Inactive items stay in the store but are
// hidden from the intake form.
type Item struct {
	id        uint
	itemType  Type
	value     string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewItem creates an active master data item.
func NewItem(itemType Type, value string) (*Item, error) {
	if !itemType.IsValid() {
		return nil, fmt.Errorf("invalid master data type: %s", itemType)
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("value is required")
	}
	if len(value) > 200 {
		return nil, fmt.Errorf("value exceeds maximum length of 200 characters")
	}

	now := time.Now()
	return &Item{
		itemType:  itemType,
		value:     value,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructItem rebuilds an item from persistence.
func ReconstructItem(id uint, itemType Type, value string, isActive bool, createdAt, updatedAt time.Time) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if !itemType.IsValid() {
		return nil, fmt.Errorf("invalid master data type: %s", itemType)
	}
	return &Item{
		id:        id,
		itemType:  itemType,
		value:     value,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (i *Item) ID() uint             { return i.id }
func (i *Item) Type() Type           { return i.itemType }
func (i *Item) Value() string        { return i.value }
func (i *Item) IsActive() bool       { return i.isActive }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// SetID records the row identifier assigned by the store.
func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

// Rename changes the display value.
func (i *Item) Rename(value string) error {
	if len(value) == 0 {
		return fmt.Errorf("value is required")
	}
	i.value = value
	i.updatedAt = time.Now()
	return nil
}

// SetActive toggles visibility on the intake form.
func (i *Item) SetActive(active bool) {
	i.isActive = active
	i.updatedAt = time.Now()
}
