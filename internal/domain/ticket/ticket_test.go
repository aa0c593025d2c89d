package ticket

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "itdesk/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	ticket, err := NewTicket("Somchai", "Head Office", "Registration", "Laptop", "ThinkPad T14", "won't boot", "")
	require.NoError(t, err)
	return ticket
}

func TestNewTicket(t *testing.T) {
	ticket := newTestTicket(t)

	assert.Equal(t, vo.StatusPending, ticket.Status())
	assert.Zero(t, ticket.Cost())
	assert.Empty(t, ticket.JobID())
	assert.Empty(t, ticket.Technician())
	assert.NotZero(t, ticket.CreatedAt())
}

func TestNewTicketValidation(t *testing.T) {
	tests := []struct {
		name      string
		requester string
		branch    string
		dept      string
		assetType string
		issue     string
	}{
		{"missing requester", "", "B1", "D1", "Laptop", "broken"},
		{"requester too long", strings.Repeat("a", 101), "B1", "D1", "Laptop", "broken"},
		{"missing branch", "A", "", "D1", "Laptop", "broken"},
		{"missing dept", "A", "B1", "", "Laptop", "broken"},
		{"missing asset type", "A", "B1", "D1", "", "broken"},
		{"missing issue", "A", "B1", "D1", "Laptop", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.requester, tt.branch, tt.dept, tt.assetType, "", tt.issue, "")
			assert.Error(t, err)
		})
	}
}

func TestNewTicketAssetNameDefaultsToType(t *testing.T) {
	ticket, err := NewTicket("A", "B1", "D1", "Printer / Scanner", "", "paper jam", "")
	require.NoError(t, err)
	assert.Equal(t, "Printer / Scanner", ticket.AssetName())
}

func TestSetJobIDIsImmutable(t *testing.T) {
	ticket := newTestTicket(t)

	require.NoError(t, ticket.SetJobID("JOB2025-0001"))
	assert.Equal(t, "JOB2025-0001", ticket.JobID())

	assert.Error(t, ticket.SetJobID("JOB2025-0002"))
	assert.Equal(t, "JOB2025-0001", ticket.JobID())
}

func TestSetIDOnce(t *testing.T) {
	ticket := newTestTicket(t)

	assert.Error(t, ticket.SetID(0))
	require.NoError(t, ticket.SetID(7))
	assert.Error(t, ticket.SetID(8))
}

func TestChangeStatus(t *testing.T) {
	ticket := newTestTicket(t)

	require.NoError(t, ticket.ChangeStatus(vo.StatusCompleted))
	assert.Equal(t, vo.StatusCompleted, ticket.Status())

	// Permissive model: administrators may move a ticket back.
	require.NoError(t, ticket.ChangeStatus(vo.StatusPending))
	assert.Equal(t, vo.StatusPending, ticket.Status())

	assert.Error(t, ticket.ChangeStatus(vo.Status("resolved")))
}

func TestSetCost(t *testing.T) {
	ticket := newTestTicket(t)

	assert.Error(t, ticket.SetCost(-1))
	assert.Error(t, ticket.SetCost(math.NaN()))
	assert.Error(t, ticket.SetCost(math.Inf(1)))

	require.NoError(t, ticket.SetCost(0))
	require.NoError(t, ticket.SetCost(500))
	assert.Equal(t, float64(500), ticket.Cost())
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now()
	ticket, err := ReconstructTicket(
		3, "JOB2025-0003",
		"A", "B1", "D1", "Laptop", "ThinkPad", "dead screen", "",
		vo.StatusInProgress,
		"Korn", "", "", 250, "waiting for part",
		now, now,
	)
	require.NoError(t, err)
	assert.Equal(t, uint(3), ticket.ID())
	assert.Equal(t, "Korn", ticket.Technician())

	_, err = ReconstructTicket(0, "JOB2025-0003", "A", "B1", "D1", "Laptop", "ThinkPad", "x", "", vo.StatusPending, "", "", "", 0, "", now, now)
	assert.Error(t, err)

	_, err = ReconstructTicket(3, "", "A", "B1", "D1", "Laptop", "ThinkPad", "x", "", vo.StatusPending, "", "", "", 0, "", now, now)
	assert.Error(t, err)

	_, err = ReconstructTicket(3, "JOB2025-0003", "A", "B1", "D1", "Laptop", "ThinkPad", "x", "", vo.Status("bad"), "", "", "", 0, "", now, now)
	assert.Error(t, err)
}
