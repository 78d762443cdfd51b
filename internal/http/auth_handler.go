package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/i18n"
	"github.com/guttosm/export-go/internal/middleware"
	"github.com/guttosm/export-go/internal/service"
)

// AuthHandler provides HTTP handlers for the admin login.
type AuthHandler struct {
	authService    service.AuthService
	loggingService service.LoggingService
}

// NewAuthHandler creates a new authentication handler. loggingService may be nil.
func NewAuthHandler(authService service.AuthService, loggingService service.LoggingService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		loggingService: loggingService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Admin login
// @Description  Authenticates the site administrator and returns a short-lived JWT access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Admin login is not configured"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.LoginRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
				map[string]string{vErr.Field: vErr.Message}, nil)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	resp, err := h.authService.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			middleware.AuditLogError(h.loggingService, c, model.ActionLogin, "Failed admin login", err, map[string]interface{}{
				"email": email,
			})
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, nil)
		case errors.Is(err, service.ErrLoginDisabled):
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, nil)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set(middleware.ContextKeyUserEmail, email)
	middleware.AuditLog(h.loggingService, c, model.ActionLogin, "Admin logged in", map[string]interface{}{
		"email": email,
	})

	builder.SuccessOK(resp)
}

// Me handles GET /api/admin/me requests.
//
// @Summary      Current admin
// @Description  Returns the claims of the presented access token.
// @Tags         Auth
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.Claims}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Security     BearerAuth
// @Router       /api/admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		NewResponseBuilder(c).Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	NewResponseBuilder(c).SuccessOK(claims)
}
