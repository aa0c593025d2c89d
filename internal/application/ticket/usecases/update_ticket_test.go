package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itdesk/internal/domain/ticket"
	vo "itdesk/internal/domain/ticket/valueobjects"
	"itdesk/internal/shared/errors"
)

func storedTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.NewTicket("A", "B1", "D1", "Laptop", "", "won't boot", "")
	require.NoError(t, err)
	require.NoError(t, tkt.SetID(1))
	require.NoError(t, tkt.SetJobID("JOB2025-0001"))
	return tkt
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestUpdateTicketUseCase_Execute_PartialUpdate(t *testing.T) {
	existing := storedTicket(t)
	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updated = tkt
			return nil
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 1,
		Status:   strPtr("completed"),
		Cost:     f64Ptr(500),
	})

	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, float64(500), result.Cost)

	// Fields not named in the command are untouched.
	require.NotNil(t, updated)
	assert.Equal(t, "A", updated.Requester())
	assert.Empty(t, updated.Technician())
	assert.Empty(t, updated.Note())
	assert.Equal(t, "JOB2025-0001", updated.JobID())
}

func TestUpdateTicketUseCase_Execute_AllStatusesAccepted(t *testing.T) {
	for _, status := range vo.AllStatuses {
		t.Run(status.String(), func(t *testing.T) {
			existing := storedTicket(t)
			mockRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return existing, nil
				},
			}
			uc := NewUpdateTicketUseCase(mockRepo, testLogger())

			result, err := uc.Execute(context.Background(), UpdateTicketCommand{
				TicketID: 1,
				Status:   strPtr(status.String()),
			})
			require.NoError(t, err)
			assert.Equal(t, status.String(), result.Status)
		})
	}
}

func TestUpdateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpdateTicketCommand
	}{
		{"negative cost", UpdateTicketCommand{TicketID: 1, Cost: f64Ptr(-1)}},
		{"unknown status", UpdateTicketCommand{TicketID: 1, Status: strPtr("not_a_status")}},
		{"zero ticket ID", UpdateTicketCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := storedTicket(t)
			updateCalled := false
			mockRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return existing, nil
				},
				UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					updateCalled = true
					return nil
				},
			}
			uc := NewUpdateTicketUseCase(mockRepo, testLogger())

			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			assert.False(t, updateCalled)
		})
	}
}

func TestUpdateTicketUseCase_Execute_ZeroCostAccepted(t *testing.T) {
	existing := storedTicket(t)
	require.NoError(t, existing.SetCost(250))
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	uc := NewUpdateTicketUseCase(mockRepo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 1, Cost: f64Ptr(0)})
	require.NoError(t, err)
	assert.Zero(t, result.Cost)
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	uc := NewUpdateTicketUseCase(mockRepo, testLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 99, Note: strPtr("x")})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
