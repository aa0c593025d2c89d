package usecases

import (
	"context"

	"itdesk/internal/domain/ticket"
	vo "itdesk/internal/domain/ticket/valueobjects"
	"itdesk/internal/shared/logger"
)

// TicketStatsResult holds per-status counts for the admin dashboard.
type TicketStatsResult struct {
	Pending        int64 `json:"pending"`
	InProgress     int64 `json:"inProgress"`
	ExternalRepair int64 `json:"external"`
	Completed      int64 `json:"completed"`
	Unrepairable   int64 `json:"unrepairable"`
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*TicketStatsResult, error) {
	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}

	return &TicketStatsResult{
		Pending:        counts[vo.StatusPending],
		InProgress:     counts[vo.StatusInProgress],
		ExternalRepair: counts[vo.StatusExternalRepair],
		Completed:      counts[vo.StatusCompleted],
		Unrepairable:   counts[vo.StatusUnrepairable],
	}, nil
}
