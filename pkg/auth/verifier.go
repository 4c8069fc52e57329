package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a presented token fails verification for
// any reason (bad signature, expiry, issuer/audience mismatch).
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier establishes a caller identity from a bearer token. The
// production implementation verifies JWTs; tests substitute a stub.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// JWTVerifier verifies HS256 JWTs issued by the external identity provider.
type JWTVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewJWTVerifier creates a verifier for the given signing secret. issuer and
// audience are checked only when non-empty.
func NewJWTVerifier(secret []byte, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{secret: secret, issuer: issuer, audience: audience}
}

// Ensure JWTVerifier implements TokenVerifier.
var _ TokenVerifier = (*JWTVerifier)(nil)

type tokenClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email,omitempty"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Verify checks the token's signature, expiry and issuer/audience, and maps
// its claims to an Identity.
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (Identity, error) {
	if len(v.secret) == 0 {
		return Identity{}, errors.New("auth: signing secret not configured")
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return v.secret, nil
	}, jwt.WithLeeway(30*time.Second))

	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return Identity{}, ErrInvalidToken
	}
	if v.audience != "" && !contains(claims.Audience, v.audience) {
		return Identity{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Roles: claims.Roles,
	}, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
