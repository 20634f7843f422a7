package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tasklist/internal/domain"
)

var (
	// ErrInvalidToken is returned when the token is invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// SessionConfig holds session token configuration.
type SessionConfig struct {
	SecretKey string
	TokenTTL  time.Duration
	Issuer    string
}

// SessionClaims carries the owner tag of the authenticated account. The tag
// is the GitHub account ID established during the OAuth callback.
type SessionClaims struct {
	OwnerTag string `json:"client_id"`
	Login    string `json:"login,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates signed session tokens.
type SessionManager struct {
	config SessionConfig
	clock  domain.Clock
}

// NewSessionManager creates a new SessionManager with the given configuration.
func NewSessionManager(config SessionConfig, clock domain.Clock) *SessionManager {
	return &SessionManager{
		config: config,
		clock:  clock,
	}
}

// IssueToken generates a signed session token for the given owner tag.
func (m *SessionManager) IssueToken(ownerTag, login string) (string, error) {
	now := m.clock.Now()
	claims := SessionClaims{
		OwnerTag: ownerTag,
		Login:    login,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   ownerTag,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

// ValidateToken validates a session token and returns its claims.
func (m *SessionManager) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.config.SecretKey), nil
	}, jwt.WithTimeFunc(m.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.OwnerTag == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
