package usecases

import (
	"context"

	"itdesk/internal/domain/ticket"
	"itdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc        func(ctx context.Context, ticketID uint) error
	GetByIDFunc       func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByJobIDFunc    func(ctx context.Context, jobID string) (*ticket.Ticket, error)
	ListFunc          func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc func(ctx context.Context) (ticket.StatusCounts, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByJobID(ctx context.Context, jobID string) (*ticket.Ticket, error) {
	if m.GetByJobIDFunc != nil {
		return m.GetByJobIDFunc(ctx, jobID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (ticket.StatusCounts, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return ticket.StatusCounts{}, nil
}

type mockJobIDGenerator struct {
	GenerateFunc func(ctx context.Context, year int) (string, error)
}

func (m *mockJobIDGenerator) Generate(ctx context.Context, year int) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, year)
	}
	return ticket.FormatJobID("JOB", year, 1), nil
}

// mockTransactionManager runs the function directly on the caller's context.
type mockTransactionManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
