package mappers

import (
	"fmt"

	"itdesk/internal/domain/ticket"
	vo "itdesk/internal/domain/ticket/valueobjects"
	"itdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *ticket.Ticket) *models.TicketModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		ID:         entity.ID(),
		JobID:      entity.JobID(),
		Requester:  entity.Requester(),
		Branch:     entity.Branch(),
		Dept:       entity.Dept(),
		AssetType:  entity.AssetType(),
		AssetName:  entity.AssetName(),
		Issue:      entity.Issue(),
		ImageURL:   entity.ImageURL(),
		Status:     entity.Status().String(),
		Technician: entity.Technician(),
		Shop:       entity.Shop(),
		Result:     entity.Result(),
		Cost:       entity.Cost(),
		Note:       entity.Note(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("stored ticket %d has invalid status: %w", model.ID, err)
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.JobID,
		model.Requester, model.Branch, model.Dept, model.AssetType, model.AssetName, model.Issue, model.ImageURL,
		status,
		model.Technician, model.Shop, model.Result,
		model.Cost,
		model.Note,
		model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}

	return entity, nil
}
