package usecases

import (
	"context"

	"itdesk/internal/application/ticket/dto"
	"itdesk/internal/domain/ticket"
	vo "itdesk/internal/domain/ticket/valueobjects"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

// UpdateTicketCommand applies a partial administrative update. Nil fields are
// left unchanged; only the enumerated mutable fields can be touched.
type UpdateTicketCommand struct {
	TicketID   uint
	Status     *string
	Technician *string
	Shop       *string
	Result     *string
	Cost       *float64
	Note       *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := existing.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Technician != nil {
		existing.AssignTechnician(*cmd.Technician)
	}
	if cmd.Shop != nil {
		existing.SetShop(*cmd.Shop)
	}
	if cmd.Result != nil {
		existing.SetResult(*cmd.Result)
	}
	if cmd.Cost != nil {
		if err := existing.SetCost(*cmd.Cost); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Note != nil {
		existing.SetNote(*cmd.Note)
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID, "job_id", existing.JobID())

	return dto.FromEntity(existing), nil
}
