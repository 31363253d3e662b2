package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stable_backend/pkg/utils"
)

// --- Auth DTOs ---

// LoginRequest DTO
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// SessionResponse DTO
type SessionResponse struct {
	Token     string    `json:"token,omitempty"`
	SessionID string    `json:"session_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginObserver is told about every login attempt; *metrics.Metrics satisfies it.
type LoginObserver interface {
	RecordLogin(success bool)
}

// --- AuthService Interface ---

// AuthService implements the shared-password gate. There are no accounts:
// anyone who knows the password gets a session token.
type AuthService interface {
	Login(req LoginRequest) (*SessionResponse, error)
	ValidateSession(token string) (*SessionResponse, error)
}

type authService struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	observer     LoginObserver
	now          func() time.Time
}

// HashSharedPassword returns the bcrypt hash used to check login attempts.
func HashSharedPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// NewAuthService creates a new instance of AuthService. observer may be nil.
func NewAuthService(passwordHash, sessionSecret string, ttl time.Duration, observer LoginObserver) AuthService {
	return &authService{
		passwordHash: []byte(passwordHash),
		secret:       []byte(sessionSecret),
		ttl:          ttl,
		observer:     observer,
		now:          time.Now,
	}
}

func (s *authService) record(success bool) {
	if s.observer != nil {
		s.observer.RecordLogin(success)
	}
}

// Login checks the shared password and issues a session token.
func (s *authService) Login(req LoginRequest) (*SessionResponse, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		s.record(false)
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("checking password: %w", err)
	}

	token, claims, err := utils.GenerateSessionToken(s.secret, uuid.NewString(), s.now(), s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	s.record(true)
	return &SessionResponse{
		Token:     token,
		SessionID: claims.SessionID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ValidateSession verifies a token issued by Login.
func (s *authService) ValidateSession(token string) (*SessionResponse, error) {
	claims, err := utils.ValidateSessionToken(s.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	return &SessionResponse{
		SessionID: claims.SessionID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
