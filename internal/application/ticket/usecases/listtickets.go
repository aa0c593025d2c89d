package usecases

import (
	"context"

	"itdesk/internal/application/ticket/dto"
	"itdesk/internal/domain/ticket"
	vo "itdesk/internal/domain/ticket/valueobjects"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

// ListTicketsQuery filters the ticket listing. Search matches job ID,
// requester and asset name case-insensitively.
type ListTicketsQuery struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

// ListTicketsResult carries one page of tickets, newest first.
type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.FromEntities(tickets),
		Total:   total,
	}, nil
}
