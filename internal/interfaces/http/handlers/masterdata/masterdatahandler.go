package masterdata

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itdesk/internal/application/masterdata/usecases"
	"itdesk/internal/shared/constants"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
	"itdesk/internal/shared/utils"
)

type MasterDataHandler struct {
	listUC   *usecases.ListMasterDataUseCase
	manageUC *usecases.ManageMasterDataUseCase
	logger   logger.Interface
}

func NewMasterDataHandler(listUC *usecases.ListMasterDataUseCase, manageUC *usecases.ManageMasterDataUseCase) *MasterDataHandler {
	return &MasterDataHandler{
		listUC:   listUC,
		manageUC: manageUC,
		logger:   logger.NewLogger(),
	}
}

type addItemRequest struct {
	Type  string `json:"type" validate:"required,oneof=branch dept asset tech shop"`
	Value string `json:"value" validate:"required,max=200"`
}

type renameItemRequest struct {
	Value string `json:"value" validate:"required,max=200"`
}

type toggleItemRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// List handles GET /api/master-data. The intake form gets active entries
// only; the admin screen passes all=true to manage hidden ones. Without an
// admin session all=true is ignored rather than rejected.
func (h *MasterDataHandler) List(c *gin.Context) {
	_, isAdmin := c.Get(constants.ContextKeyAdminSession)
	includeInactive := isAdmin && c.Query("all") == "true"

	items, err := h.listUC.Execute(c.Request.Context(), usecases.ListMasterDataQuery{
		Type:            c.Query("type"),
		IncludeInactive: includeInactive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Add handles POST /api/master-data
func (h *MasterDataHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.manageUC.AddItem(c.Request.Context(), req.Type, req.Value)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, item, "Item added successfully")
}

// Rename handles PATCH /api/master-data/:id
func (h *MasterDataHandler) Rename(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req renameItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.manageUC.RenameItem(c.Request.Context(), itemID, req.Value)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item updated successfully", item)
}

// Toggle handles PATCH /api/master-data/:id/active
func (h *MasterDataHandler) Toggle(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req toggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.manageUC.SetItemActive(c.Request.Context(), itemID, *req.IsActive)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item updated successfully", item)
}

// Delete handles DELETE /api/master-data/:id
func (h *MasterDataHandler) Delete(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageUC.DeleteItem(c.Request.Context(), itemID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseItemID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid item ID")
	}
	return uint(id), nil
}
