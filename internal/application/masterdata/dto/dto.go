// Package dto defines wire representations for master data items.
package dto

import "itdesk/internal/domain/masterdata"

// ItemDTO is the JSON shape of a master data item.
type ItemDTO struct {
	ID       uint   `json:"id"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	IsActive bool   `json:"isActive"`
}

// FromEntity converts a domain item to its DTO.
func FromEntity(item *masterdata.Item) *ItemDTO {
	return &ItemDTO{
		ID:       item.ID(),
		Type:     item.Type().String(),
		Value:    item.Value(),
		IsActive: item.IsActive(),
	}
}

// FromEntities converts a slice of domain items to DTOs.
func FromEntities(items []*masterdata.Item) []*ItemDTO {
	dtos := make([]*ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, FromEntity(item))
	}
	return dtos
}
