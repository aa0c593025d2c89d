package dto

import (
	"time"

	"itdesk/internal/domain/ticket"
)

// TicketDTO is the wire representation of a ticket.
type TicketDTO struct {
	ID         uint      `json:"id"`
	JobID      string    `json:"jobId"`
	Requester  string    `json:"requester"`
	Branch     string    `json:"branch"`
	Dept       string    `json:"dept"`
	AssetType  string    `json:"assetType"`
	AssetName  string    `json:"assetName"`
	Issue      string    `json:"issue"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Status     string    `json:"status"`
	Technician string    `json:"tech,omitempty"`
	Shop       string    `json:"shop,omitempty"`
	Result     string    `json:"result,omitempty"`
	Cost       float64   `json:"cost"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromEntity converts a domain ticket to its wire representation.
func FromEntity(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:         t.ID(),
		JobID:      t.JobID(),
		Requester:  t.Requester(),
		Branch:     t.Branch(),
		Dept:       t.Dept(),
		AssetType:  t.AssetType(),
		AssetName:  t.AssetName(),
		Issue:      t.Issue(),
		ImageURL:   t.ImageURL(),
		Status:     t.Status().String(),
		Technician: t.Technician(),
		Shop:       t.Shop(),
		Result:     t.Result(),
		Cost:       t.Cost(),
		Note:       t.Note(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

// FromEntities converts a slice of domain tickets.
func FromEntities(tickets []*ticket.Ticket) []*TicketDTO {
	out := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		out[i] = FromEntity(t)
	}
	return out
}
