package usecases

import (
	"context"

	"itdesk/internal/application/ticket/dto"
	"itdesk/internal/domain/ticket"
	"itdesk/internal/shared/biztime"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

// CreateTicketCommand carries the intake form submission.
type CreateTicketCommand struct {
	Requester string
	Branch    string
	Dept      string
	AssetType string
	AssetName string
	Issue     string
	ImageURL  string
}

// CreateTicketUseCase creates a ticket with a freshly assigned job ID.
// Job-ID generation and the insert run inside one transaction so that two
// concurrent submissions can never mint the same ID.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	generator  ticket.JobIDGenerator
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	generator ticket.JobIDGenerator,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		generator:  generator,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Requester,
		cmd.Branch,
		cmd.Dept,
		cmd.AssetType,
		cmd.AssetName,
		cmd.Issue,
		cmd.ImageURL,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		jobID, err := uc.generator.Generate(txCtx, biztime.CurrentYear())
		if err != nil {
			return err
		}
		if err := newTicket.SetJobID(jobID); err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.ticketRepo.Save(txCtx, newTicket)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"job_id", newTicket.JobID(),
		"branch", newTicket.Branch())

	return dto.FromEntity(newTicket), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Requester) == 0 {
		return errors.NewValidationError("requester is required")
	}
	if len(cmd.Branch) == 0 {
		return errors.NewValidationError("branch is required")
	}
	if len(cmd.Dept) == 0 {
		return errors.NewValidationError("dept is required")
	}
	if len(cmd.AssetType) == 0 {
		return errors.NewValidationError("assetType is required")
	}
	if len(cmd.Issue) == 0 {
		return errors.NewValidationError("issue is required")
	}
	return nil
}
