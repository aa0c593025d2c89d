package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"itdesk/internal/infrastructure/persistence/models"
	"itdesk/internal/shared/db"
)

type fixedPrefixProvider struct {
	prefix string
}

func (p *fixedPrefixProvider) JobIDPrefix(ctx context.Context) string {
	return p.prefix
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(&models.TicketModel{}, &models.JobCounterModel{}))

	return database
}

func generateInTx(t *testing.T, database *gorm.DB, gen *JobIDGenerator, year int) string {
	t.Helper()

	var jobID string
	tm := db.NewTransactionManager(database)
	err := tm.RunInTransaction(context.Background(), func(txCtx context.Context) error {
		var genErr error
		jobID, genErr = gen.Generate(txCtx, year)
		return genErr
	})
	require.NoError(t, err)
	return jobID
}

func TestJobIDGenerator_Generate_Sequential(t *testing.T) {
	database := setupTestDB(t)
	gen := NewJobIDGenerator(database, &fixedPrefixProvider{prefix: "JOB"})

	assert.Equal(t, "JOB2025-0001", generateInTx(t, database, gen, 2025))
	assert.Equal(t, "JOB2025-0002", generateInTx(t, database, gen, 2025))
	assert.Equal(t, "JOB2025-0003", generateInTx(t, database, gen, 2025))
}

func TestJobIDGenerator_Generate_PerYearReset(t *testing.T) {
	database := setupTestDB(t)
	gen := NewJobIDGenerator(database, &fixedPrefixProvider{prefix: "JOB"})

	assert.Equal(t, "JOB2025-0001", generateInTx(t, database, gen, 2025))
	assert.Equal(t, "JOB2025-0002", generateInTx(t, database, gen, 2025))
	assert.Equal(t, "JOB2026-0001", generateInTx(t, database, gen, 2026))
	assert.Equal(t, "JOB2025-0003", generateInTx(t, database, gen, 2025))
}

func TestJobIDGenerator_Generate_SeedsFromExistingTickets(t *testing.T) {
	database := setupTestDB(t)

	// Tickets created before the counter table existed.
	now := time.Now()
	for _, jobID := range []string{"JOB2025-0001", "JOB2025-0007", "JOB2025-0003"} {
		require.NoError(t, database.Create(&models.TicketModel{
			JobID:     jobID,
			Requester: "x",
			Branch:    "x",
			Dept:      "x",
			AssetType: "x",
			AssetName: "x",
			Issue:     "x",
			Status:    "pending",
			CreatedAt: now,
			UpdatedAt: now,
		}).Error)
	}

	gen := NewJobIDGenerator(database, &fixedPrefixProvider{prefix: "JOB"})
	assert.Equal(t, "JOB2025-0008", generateInTx(t, database, gen, 2025))
}

func TestJobIDGenerator_Generate_CustomPrefix(t *testing.T) {
	database := setupTestDB(t)
	gen := NewJobIDGenerator(database, &fixedPrefixProvider{prefix: "SRV"})

	assert.Equal(t, "SRV2025-0001", generateInTx(t, database, gen, 2025))
}

func TestJobIDGenerator_Generate_WidthGrowsPast9999(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, database.Create(&models.JobCounterModel{Year: 2025, Seq: 9999}).Error)

	gen := NewJobIDGenerator(database, &fixedPrefixProvider{prefix: "JOB"})
	assert.Equal(t, "JOB2025-10000", generateInTx(t, database, gen, 2025))
}
