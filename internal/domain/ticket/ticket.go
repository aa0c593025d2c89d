package ticket

import (
	"fmt"
	"math"
	"time"

	vo "itdesk/internal/domain/ticket/valueobjects"
)

// Ticket is a repair request tracked from submission to resolution.
// Descriptive fields are fixed at creation; administrative fields (status,
// technician, shop, result, cost, note) change during triage.
type Ticket struct {
	id         uint
	jobID      string
	requester  string
	branch     string
	dept       string
	assetType  string
	assetName  string
	issue      string
	imageURL   string
	status     vo.Status
	technician string
	shop       string
	result     string
	cost       float64
	note       string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewTicket creates a ticket in pending status. The job ID is assigned
// separately when the ticket is persisted. An empty assetName falls back to
// the asset type, matching the intake form behavior.
func NewTicket(requester, branch, dept, assetType, assetName, issue, imageURL string) (*Ticket, error) {
	if len(requester) == 0 {
		return nil, fmt.Errorf("requester is required")
	}
	if len(requester) > 100 {
		return nil, fmt.Errorf("requester exceeds maximum length of 100 characters")
	}
	if len(branch) == 0 {
		return nil, fmt.Errorf("branch is required")
	}
	if len(dept) == 0 {
		return nil, fmt.Errorf("dept is required")
	}
	if len(assetType) == 0 {
		return nil, fmt.Errorf("asset type is required")
	}
	if len(issue) == 0 {
		return nil, fmt.Errorf("issue is required")
	}
	if len(issue) > 5000 {
		return nil, fmt.Errorf("issue exceeds maximum length of 5000 characters")
	}

	if assetName == "" {
		assetName = assetType
	}

	now := time.Now()
	return &Ticket{
		requester: requester,
		branch:    branch,
		dept:      dept,
		assetType: assetType,
		assetName: assetName,
		issue:     issue,
		imageURL:  imageURL,
		status:    vo.StatusPending,
		cost:      0,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	jobID string,
	requester, branch, dept, assetType, assetName, issue, imageURL string,
	status vo.Status,
	technician, shop, result string,
	cost float64,
	note string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(jobID) == 0 {
		return nil, fmt.Errorf("job ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:         id,
		jobID:      jobID,
		requester:  requester,
		branch:     branch,
		dept:       dept,
		assetType:  assetType,
		assetName:  assetName,
		issue:      issue,
		imageURL:   imageURL,
		status:     status,
		technician: technician,
		shop:       shop,
		result:     result,
		cost:       cost,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) JobID() string        { return t.jobID }
func (t *Ticket) Requester() string    { return t.requester }
func (t *Ticket) Branch() string       { return t.branch }
func (t *Ticket) Dept() string         { return t.dept }
func (t *Ticket) AssetType() string    { return t.assetType }
func (t *Ticket) AssetName() string    { return t.assetName }
func (t *Ticket) Issue() string        { return t.issue }
func (t *Ticket) ImageURL() string     { return t.imageURL }
func (t *Ticket) Status() vo.Status    { return t.status }
func (t *Ticket) Technician() string   { return t.technician }
func (t *Ticket) Shop() string         { return t.shop }
func (t *Ticket) Result() string       { return t.result }
func (t *Ticket) Cost() float64        { return t.cost }
func (t *Ticket) Note() string         { return t.note }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// SetID records the row identifier assigned by the store. It can be set once.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetJobID records the generated job ID. It is immutable once set.
func (t *Ticket) SetJobID(jobID string) error {
	if len(t.jobID) > 0 {
		return fmt.Errorf("job ID is already set")
	}
	if len(jobID) == 0 {
		return fmt.Errorf("job ID cannot be empty")
	}
	t.jobID = jobID
	return nil
}

// ChangeStatus sets a new status. Transitions are permissive within the
// valid status set.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}
	t.status = newStatus
	t.touch()
	return nil
}

// AssignTechnician records the technician working the ticket.
func (t *Ticket) AssignTechnician(name string) {
	t.technician = name
	t.touch()
}

// SetShop records the external repair shop.
func (t *Ticket) SetShop(shop string) {
	t.shop = shop
	t.touch()
}

// SetResult records the repair result narrative.
func (t *Ticket) SetResult(result string) {
	t.result = result
	t.touch()
}

// SetCost records the repair cost. Cost must be a finite number >= 0.
func (t *Ticket) SetCost(cost float64) error {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("cost must be a finite number")
	}
	if cost < 0 {
		return fmt.Errorf("cost must not be negative")
	}
	t.cost = cost
	t.touch()
	return nil
}

// SetNote records the administrative note.
func (t *Ticket) SetNote(note string) {
	t.note = note
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
}
