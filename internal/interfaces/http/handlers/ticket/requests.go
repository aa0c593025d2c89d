package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"itdesk/internal/application/ticket/usecases"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/utils"
)

// CreateTicketRequest is the intake form payload.
type CreateTicketRequest struct {
	Requester string `json:"requester" validate:"required,max=100"`
	Branch    string `json:"branch" validate:"required,max=100"`
	Dept      string `json:"dept" validate:"required,max=100"`
	AssetType string `json:"assetType" validate:"required,max=100"`
	AssetName string `json:"assetName" validate:"max=200"`
	Issue     string `json:"issue" validate:"required"`
	ImageURL  string `json:"imageUrl" validate:"max=500"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Requester: r.Requester,
		Branch:    r.Branch,
		Dept:      r.Dept,
		AssetType: r.AssetType,
		AssetName: r.AssetName,
		Issue:     r.Issue,
		ImageURL:  r.ImageURL,
	}
}

// UpdateTicketRequest carries the admin's partial edits. Absent fields keep
// their current value.
type UpdateTicketRequest struct {
	Status     *string  `json:"status" validate:"omitempty,oneof=pending in_progress external_repair completed unrepairable"`
	Technician *string  `json:"tech" validate:"omitempty,max=100"`
	Shop       *string  `json:"shop" validate:"omitempty,max=200"`
	Result     *string  `json:"result"`
	Cost       *float64 `json:"cost" validate:"omitempty,gte=0"`
	Note       *string  `json:"note"`
}

func (r UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:   ticketID,
		Status:     r.Status,
		Technician: r.Technician,
		Shop:       r.Shop,
		Result:     r.Result,
		Cost:       r.Cost,
		Note:       r.Note,
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

func parseListQuery(c *gin.Context) usecases.ListTicketsQuery {
	pagination := utils.ParsePagination(c)
	return usecases.ListTicketsQuery{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
}
