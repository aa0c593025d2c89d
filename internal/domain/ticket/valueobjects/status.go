package valueobjects

import "fmt"

// Status is the repair ticket status. The set is fixed; transitions are
// deliberately permissive so administrators can correct mistakes, e.g. move
// a completed ticket back to in_progress.
type Status string

const (
	StatusPending        Status = "pending"
	StatusInProgress     Status = "in_progress"
	StatusExternalRepair Status = "external_repair"
	StatusCompleted      Status = "completed"
	StatusUnrepairable   Status = "unrepairable"
)

// AllStatuses lists the valid statuses in display order.
var AllStatuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusExternalRepair,
	StatusCompleted,
	StatusUnrepairable,
}

var validStatuses = map[Status]bool{
	StatusPending:        true,
	StatusInProgress:     true,
	StatusExternalRepair: true,
	StatusCompleted:      true,
	StatusUnrepairable:   true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// CanTransitionTo reports whether the target status may be set from s.
// Any valid status may be set from any other valid status.
func (s Status) CanTransitionTo(target Status) bool {
	return s.IsValid() && target.IsValid()
}

func (s Status) IsPending() bool      { return s == StatusPending }
func (s Status) IsCompleted() bool    { return s == StatusCompleted }
func (s Status) IsUnrepairable() bool { return s == StatusUnrepairable }

// NewStatus parses a status string.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
