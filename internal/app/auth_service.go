// Package app holds the application services and business logic.
package app

import (
	"crypto/subtle"
	"errors"

	"mcafe/internal/session"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided admin password was incorrect.
	ErrInvalidCredentials = errors.New("invalid password")
	// ErrNotAdmin indicates that a provider-verified identity is not the configured admin.
	ErrNotAdmin = errors.New("identity is not an admin")
)

// AuthService authenticates the shared admin credential and manages
// sessions. There is a single admin; any number of sessions may be live at
// once.
type AuthService struct {
	password     string
	passwordHash string
	adminEmail   string
	sessions     *session.Manager
}

// NewAuthService creates an AuthService. passwordHash (bcrypt) takes
// precedence over password when non-empty. adminEmail is the identity
// allowed to sign in via SSO; empty disables the SSO path.
func NewAuthService(password, passwordHash, adminEmail string, sessions *session.Manager) *AuthService {
	return &AuthService{
		password:     password,
		passwordHash: passwordHash,
		adminEmail:   adminEmail,
		sessions:     sessions,
	}
}

// SignIn verifies the admin password and issues a session token. No session
// is created when the password mismatches.
func (s *AuthService) SignIn(password string) (string, error) {
	if password == "" || !s.verify(password) {
		return "", ErrInvalidCredentials
	}
	return s.sessions.Create()
}

func (s *AuthService) verify(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
}

// SignInSSO issues a session for an identity already verified by the OIDC
// provider, provided it matches the configured admin email.
func (s *AuthService) SignInSSO(email string) (string, error) {
	if s.adminEmail == "" || email == "" || email != s.adminEmail {
		return "", ErrNotAdmin
	}
	return s.sessions.Create()
}

// SignOut destroys the session. Unknown tokens are a no-op.
func (s *AuthService) SignOut(sessionID string) {
	s.sessions.Destroy(sessionID)
}

// ValidateSession reports whether the token refers to a live session and
// refreshes its last-activity time.
func (s *AuthService) ValidateSession(sessionID string) bool {
	if !s.sessions.Valid(sessionID) {
		return false
	}
	s.sessions.Touch(sessionID)
	return true
}
