package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itdesk/internal/application/setting/usecases"
	"itdesk/internal/shared/logger"
	"itdesk/internal/shared/utils"
)

type SettingHandler struct {
	getUC    *usecases.GetSettingsUseCase
	updateUC *usecases.UpdateSettingsUseCase
	logger   logger.Interface
}

func NewSettingHandler(getUC *usecases.GetSettingsUseCase, updateUC *usecases.UpdateSettingsUseCase) *SettingHandler {
	return &SettingHandler{
		getUC:    getUC,
		updateUC: updateUC,
		logger:   logger.NewLogger(),
	}
}

// Get handles GET /api/settings
func (h *SettingHandler) Get(c *gin.Context) {
	settings, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", settings)
}

type updateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

// Update handles POST /api/settings, a whole-map upsert.
func (h *SettingHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Settings == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "settings object is required")
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), req.Settings); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings saved successfully", nil)
}
