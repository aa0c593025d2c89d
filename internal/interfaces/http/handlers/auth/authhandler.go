package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"itdesk/internal/application/auth/usecases"
	"itdesk/internal/shared/config"
	"itdesk/internal/shared/logger"
	"itdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      *usecases.LoginUseCase
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(loginUC *usecases.LoginUseCase, cookieConfig config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		cookieConfig: cookieConfig,
		logger:       logger.NewLogger(),
	}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login. On success the session token is set as
// an HttpOnly cookie; the body never carries it.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Password: req.Password,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", gin.H{
		"expiresAt": result.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Session handles GET /api/auth/session. It sits behind the admin session
// middleware, so reaching it at all means the cookie is valid.
func (h *AuthHandler) Session(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"authenticated": true,
	})
}
