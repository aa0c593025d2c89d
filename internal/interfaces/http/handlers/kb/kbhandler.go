package kb

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itdesk/internal/application/kb/usecases"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
	"itdesk/internal/shared/utils"
)

type KBHandler struct {
	browseUC *usecases.BrowseArticlesUseCase
	manageUC *usecases.ManageArticlesUseCase
	logger   logger.Interface
}

func NewKBHandler(browseUC *usecases.BrowseArticlesUseCase, manageUC *usecases.ManageArticlesUseCase) *KBHandler {
	return &KBHandler{
		browseUC: browseUC,
		manageUC: manageUC,
		logger:   logger.NewLogger(),
	}
}

type articleRequest struct {
	Title    string `json:"title" validate:"max=200"`
	Content  string `json:"content"`
	Category string `json:"category" validate:"max=100"`
}

// List handles GET /api/kb
func (h *KBHandler) List(c *gin.Context) {
	articles, err := h.browseUC.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", articles)
}

// Get handles GET /api/kb/:id
func (h *KBHandler) Get(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	article, err := h.browseUC.Get(c.Request.Context(), articleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", article)
}

// Create handles POST /api/kb
func (h *KBHandler) Create(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	article, err := h.manageUC.Create(c.Request.Context(), req.Title, req.Content, req.Category)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, article, "Article created successfully")
}

// Update handles PATCH /api/kb/:id
func (h *KBHandler) Update(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	article, err := h.manageUC.Update(c.Request.Context(), articleID, req.Title, req.Content, req.Category)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", article)
}

// Delete handles DELETE /api/kb/:id
func (h *KBHandler) Delete(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageUC.Delete(c.Request.Context(), articleID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseArticleID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid article ID")
	}
	return uint(id), nil
}
