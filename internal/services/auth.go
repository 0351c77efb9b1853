package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/pkg/response"
)

// AuthService checks the single configured credential pair and drives the
// token store. This is a placeholder login, not a user store: one static
// username/password, opaque tokens, no expiry.
type AuthService struct {
	tokens       auth.TokenStore
	username     string
	passwordHash []byte
}

func NewAuthService(cfg *config.AuthConfig, tokens auth.TokenStore) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		tokens:       tokens,
		username:     cfg.AdminUsername,
		passwordHash: hash,
	}, nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login issues a fresh token on credential match. Both fields are always
// compared so a mismatch never reveals which one was wrong.
func (s *AuthService) Login(req *LoginRequest) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))

	if !usernameOK || passwordErr != nil {
		return "", response.ErrInvalidCredentials
	}
	return s.tokens.Issue()
}

// Logout revokes the presented token. The middleware has already verified
// it, so revocation cannot miss; revoking twice is harmless anyway.
func (s *AuthService) Logout(token string) {
	s.tokens.Revoke(token)
}
