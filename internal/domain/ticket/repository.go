package ticket

import (
	"context"

	vo "itdesk/internal/domain/ticket/valueobjects"
)

// Repository persists tickets.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByJobID(ctx context.Context, jobID string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

// Filter narrows ticket listings. Search matches case-insensitively against
// job ID, requester and asset name. Results are ordered newest first.
type Filter struct {
	Search   string
	Status   *vo.Status
	Page     int
	PageSize int
}

// StatusCounts holds per-status ticket counts for the admin dashboard.
type StatusCounts map[vo.Status]int64
