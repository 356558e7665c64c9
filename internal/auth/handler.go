package auth

import (
	"net/http"
	"time"

	"esensi_dashboard_backend/platform/config"
	"esensi_dashboard_backend/platform/httpkit"
	"esensi_dashboard_backend/platform/logger"
	"esensi_dashboard_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const adminRole = "admin"

// Handler serves the session login/logout/me endpoints.
type Handler struct {
	service *Service
	session config.SessionConfig
	val     *validator.Validator
	log     *logger.Logger
}

// NewHandler creates the auth handler.
func NewHandler(service *Service, session config.SessionConfig, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{service: service, session: session, val: val, log: log}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=200"`
}

type userResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

// HandleLogin validates credentials and sets the session cookie.
func (h *Handler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if !h.service.Authenticate(req.Username, req.Password) {
		h.log.AuthEvent("login", req.Username, false, "invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	session := httpkit.Session{Username: req.Username, Role: adminRole}
	rawToken, err := httpkit.IssueSessionToken(h.session, session, time.Now())
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Failed to login", err.Error())
		return
	}

	httpkit.SetSessionCookie(c, h.session, rawToken)
	h.log.AuthEvent("login", req.Username, true, "")

	httpkit.OK(c, loginResponse{
		Success: true,
		User:    userResponse{Username: session.Username, Role: session.Role},
	})
}

// HandleLogout clears the session cookie.
func (h *Handler) HandleLogout(c *gin.Context) {
	httpkit.ClearSessionCookie(c, h.session)
	httpkit.OK(c, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// HandleMe reports the current authentication status. Responds 200 whether
// or not a valid session is present.
func (h *Handler) HandleMe(c *gin.Context) {
	rawToken, err := c.Cookie(h.session.GetSessionCookieName())
	if err != nil || rawToken == "" {
		httpkit.OK(c, gin.H{"authenticated": false})
		return
	}

	session, err := httpkit.ParseSessionToken(h.session, rawToken)
	if err != nil {
		httpkit.OK(c, gin.H{"authenticated": false})
		return
	}

	httpkit.OK(c, gin.H{
		"authenticated": true,
		"user":          userResponse{Username: session.Username, Role: session.Role},
	})
}
