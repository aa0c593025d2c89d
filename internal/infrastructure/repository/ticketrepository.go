package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"itdesk/internal/domain/ticket"
	vo "itdesk/internal/domain/ticket/valueobjects"
	"itdesk/internal/infrastructure/persistence/mappers"
	"itdesk/internal/infrastructure/persistence/models"
	"itdesk/internal/shared/db"
	"itdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.NewConflictError(fmt.Sprintf("job ID %s already exists", t.JobID()))
		}
		return errors.NewUnavailableError("failed to save ticket", err.Error())
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return errors.NewUnavailableError("failed to update ticket", result.Error.Error())
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return errors.NewUnavailableError("failed to delete ticket", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, errors.NewUnavailableError("failed to find ticket", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByJobID(ctx context.Context, jobID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("job_id = ?", jobID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, errors.NewUnavailableError("failed to find ticket", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(job_id) LIKE ? OR LOWER(requester) LIKE ? OR LOWER(asset_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewUnavailableError("failed to count tickets", err.Error())
	}

	var rows []models.TicketModel
	query = query.Order("created_at DESC, id DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, errors.NewUnavailableError("failed to list tickets", err.Error())
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (ticket.StatusCounts, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	err := tx.
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewUnavailableError("failed to count tickets by status", err.Error())
	}

	counts := make(ticket.StatusCounts, len(rows))
	for _, row := range rows {
		counts[vo.Status(row.Status)] = row.Count
	}

	return counts, nil
}

// isDuplicateKeyError matches unique constraint violations across MySQL and
// SQLite without importing driver-specific error types.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint")
}
