package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenType distinguishes short-lived access tokens from long-lived refresh
// tokens. The type travels in the "type" claim so one kind can never be
// presented where the other is expected.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

var (
	// ErrInvalidToken covers malformed, expired, wrong-signature, and
	// wrong-type tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenPair is an access/refresh token pair issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims are the registered claims plus the token type discriminator.
type Claims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 JWT access and refresh tokens.
// The subject claim carries the user ID.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a TokenManager. Zero TTLs fall back to 30 minutes
// for access tokens and 7 days for refresh tokens.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// GeneratePair issues a fresh access/refresh token pair for the given user.
func (m *TokenManager) GeneratePair(userID string) (*TokenPair, error) {
	access, err := m.sign(userID, TokenAccess, m.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := m.sign(userID, TokenRefresh, m.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseAccess verifies an access token and returns the user ID it carries.
func (m *TokenManager) ParseAccess(token string) (string, error) {
	return m.parse(token, TokenAccess)
}

// ParseRefresh verifies a refresh token and returns the user ID it carries.
func (m *TokenManager) ParseRefresh(token string) (string, error) {
	return m.parse(token, TokenRefresh)
}

// Refresh mints a new access token from a valid refresh token.
func (m *TokenManager) Refresh(refreshToken string) (string, error) {
	userID, err := m.ParseRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return m.sign(userID, TokenAccess, m.accessTTL)
}

func (m *TokenManager) sign(userID string, typ TokenType, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *TokenManager) parse(token string, want TokenType) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Type != want {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
