package auth

import (
	"crypto/subtle"

	"esensi_dashboard_backend/platform/config"

	"golang.org/x/crypto/bcrypt"
)

// Service validates dashboard credentials against the configured account.
// There is a single shared account; the role field is prepared for future
// multi-user support.
type Service struct {
	cfg config.CredentialsConfig
}

// NewService creates the credential service.
func NewService(cfg config.CredentialsConfig) *Service {
	return &Service{cfg: cfg}
}

// Authenticate reports whether the supplied credentials match the configured
// dashboard account. A bcrypt hash takes precedence over the plaintext
// password; the plaintext path uses a constant-time comparison.
func (s *Service) Authenticate(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare(
		[]byte(username), []byte(s.cfg.GetDashboardUsername()),
	) == 1

	passwordMatch := false
	if hash := s.cfg.GetDashboardPasswordHash(); hash != "" {
		passwordMatch = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	} else {
		passwordMatch = subtle.ConstantTimeCompare(
			[]byte(password), []byte(s.cfg.GetDashboardPassword()),
		) == 1
	}

	return usernameMatch && passwordMatch
}
