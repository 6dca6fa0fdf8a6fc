package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrUnauthenticated marks a missing, invalid, or expired session token.
var ErrUnauthenticated = errors.New("unauthenticated")

// Token is the calendar-provider credential pair carried in a session.
type Token struct {
	AccessToken  string
	RefreshToken string
}

// Claims is the signed session payload wrapping the provider token pair.
type Claims struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens.
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

var signingMethod = jwt.SigningMethodHS256

// NewManager creates a Manager signing with the given secret.
func NewManager(secret string, tokenTTL time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), tokenTTL: tokenTTL}, nil
}

// Issue signs a session token carrying the provider credential pair.
func (m *Manager) Issue(token Token) (string, error) {
	if token.AccessToken == "" {
		return "", ErrUnauthenticated
	}

	claims := &Claims{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(signingMethod, claims).SignedString(m.secret)
}

// Verify parses a session token and returns the provider credential pair.
// Any parse or validation failure, and an empty access token, come back as
// ErrUnauthenticated so callers can fail fast before touching the provider.
func (m *Manager) Verify(tokenString string) (Token, error) {
	if tokenString == "" {
		return Token{}, ErrUnauthenticated
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != signingMethod {
			return nil, ErrUnauthenticated
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Token{}, ErrUnauthenticated
	}

	if claims.AccessToken == "" {
		return Token{}, ErrUnauthenticated
	}

	return Token{
		AccessToken:  claims.AccessToken,
		RefreshToken: claims.RefreshToken,
	}, nil
}
