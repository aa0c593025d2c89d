package services

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"itdesk/internal/domain/setting"
	"itdesk/internal/domain/ticket"
	"itdesk/internal/infrastructure/persistence/models"
	"itdesk/internal/shared/db"
)

// JobIDGenerator issues sequential job IDs backed by a per-year counter row.
// Generate is called inside the ticket-creation transaction: the counter row
// is locked until the ticket insert commits, so two concurrent intakes can
// never observe the same sequence. On SQLite the row lock is a no-op but the
// database-level write lock gives the same guarantee. A unique index on
// tickets.job_id backstops both.
type JobIDGenerator struct {
	db       *gorm.DB
	settings setting.Provider
}

func NewJobIDGenerator(gormDB *gorm.DB, settings setting.Provider) *JobIDGenerator {
	return &JobIDGenerator{
		db:       gormDB,
		settings: settings,
	}
}

func (g *JobIDGenerator) Generate(ctx context.Context, year int) (string, error) {
	tx := db.GetTxFromContext(ctx, g.db)
	prefix := g.settings.JobIDPrefix(ctx)

	counter, err := g.lockCounter(ctx, tx, year, prefix)
	if err != nil {
		return "", err
	}

	counter.Seq++
	if err := tx.Save(counter).Error; err != nil {
		return "", fmt.Errorf("failed to advance job counter for %d: %w", year, err)
	}

	return ticket.FormatJobID(prefix, year, int(counter.Seq)), nil
}

// lockCounter loads the year's counter row under a row lock, creating and
// seeding it from existing job IDs on first use.
func (g *JobIDGenerator) lockCounter(ctx context.Context, tx *gorm.DB, year int, prefix string) (*models.JobCounterModel, error) {
	var counter models.JobCounterModel

	err := g.lockQuery(tx).Where("year = ?", year).First(&counter).Error
	if err == nil {
		return &counter, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to lock job counter for %d: %w", year, err)
	}

	seed, err := g.seedFromExisting(ctx, tx, year, prefix)
	if err != nil {
		return nil, err
	}

	counter = models.JobCounterModel{Year: year, Seq: seed}
	// Another transaction may create the row first; DoNothing plus the
	// re-locked read below handles the race.
	err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&counter).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create job counter for %d: %w", year, err)
	}

	err = g.lockQuery(tx).Where("year = ?", year).First(&counter).Error
	if err != nil {
		return nil, fmt.Errorf("failed to re-lock job counter for %d: %w", year, err)
	}

	return &counter, nil
}

// lockQuery adds FOR UPDATE on backends that support it. SQLite has no row
// locks; its single-writer transaction gives the same exclusion.
func (g *JobIDGenerator) lockQuery(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" || tx.Dialector.Name() == "sqlite3" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// seedFromExisting keeps the sequence monotonic when the counter table is
// introduced over an already populated tickets table.
func (g *JobIDGenerator) seedFromExisting(ctx context.Context, tx *gorm.DB, year int, prefix string) (int64, error) {
	yearPrefix := ticket.JobIDPrefix(prefix, year)

	// MAX over zero rows is NULL, so scan into a nullable string.
	var maxJobID sql.NullString
	err := tx.
		Model(&models.TicketModel{}).
		Select("MAX(job_id)").
		Where("job_id LIKE ?", yearPrefix+"%").
		Scan(&maxJobID).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to read max job ID for %d: %w", year, err)
	}

	if !maxJobID.Valid || maxJobID.String == "" {
		return 0, nil
	}

	seq, err := ticket.ParseJobIDSequence(maxJobID.String, yearPrefix)
	if err != nil {
		// A legacy ID with a non-numeric suffix must not block intake.
		return 0, nil
	}

	return int64(seq), nil
}
