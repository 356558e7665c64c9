// Package auth implements the dashboard session authentication module.
package auth

import (
	apphttp "esensi_dashboard_backend/internal/http"
	"esensi_dashboard_backend/platform/config"
	"esensi_dashboard_backend/platform/logger"
	"esensi_dashboard_backend/platform/validator"
)

// Config combines the config interfaces the auth module needs.
type Config interface {
	config.SessionConfig
	config.CredentialsConfig
}

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the auth module.
func NewModule(cfg Config, val *validator.Validator, log *logger.Logger) *Module {
	service := NewService(cfg)
	handler := NewHandler(service, cfg, val, log)

	return &Module{handler: handler}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts auth routes on the provided router context.
// Login sits behind the stricter auth rate limiter; logout and me are open
// since they only touch the caller's own cookie.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/auth")
	group.POST("/login", ctx.AuthRateLimiter.RateLimit(), m.handler.HandleLogin)
	group.POST("/logout", m.handler.HandleLogout)
	group.GET("/me", m.handler.HandleMe)
}

var _ apphttp.Module = (*Module)(nil)
