// Package auth issues and validates the bearer tokens that identify the
// acting user of a request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// ErrEmptyToken is returned when validation is asked for an empty token.
var ErrEmptyToken = errors.New("token is empty")

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// actorClaims carries the identity recorded on change entries.
type actorClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Staff bool   `json:"staff,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the actor ID as
// subject and email and staff flag as custom claims.
func (m *JWTManager) GenerateAccessToken(actor domain.Actor) (string, error) {
	if actor.ID == uuid.Nil {
		return "", domain.NewValidationError("actor_id", "required")
	}

	now := m.now()
	claims := actorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: actor.Email,
		Staff: actor.IsStaff,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the actor it identifies.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &actorClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			return domain.Actor{}, fmt.Errorf("invalid issuer: expected %s: %w", m.issuer, err)
		}
		return domain.Actor{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*actorClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token claims")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid subject UUID: %w", err)
	}
	if id == uuid.Nil {
		return domain.Actor{}, fmt.Errorf("invalid subject: nil UUID")
	}

	return domain.Actor{ID: id, Email: claims.Email, IsStaff: claims.Staff}, nil
}

// ValidateToken adapts ValidateAccessToken to the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (domain.Actor, error) {
	return m.ValidateAccessToken(token)
}
