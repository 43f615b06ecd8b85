// Package auth verifies bearer tokens minted by the external identity
// provider and carries the resulting identity in the request context.
// Authentication mechanics (login, sessions, token issuance for real users)
// live with the provider, not here.
package auth

import (
	"context"
	"fmt"
	"time"

	"catalog/internal/model"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type contextKey struct{}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, ident *model.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, ident)
}

// IdentityFrom returns the authenticated identity, or nil for anonymous
// requests.
func IdentityFrom(ctx context.Context) *model.Identity {
	ident, _ := ctx.Value(contextKey{}).(*model.Identity)
	return ident
}

// ParseToken verifies an HS256 token and extracts the caller's identity.
// Expected claims: sub (subject UUID), name (display username), admin
// (optional bool), exp.
func ParseToken(tokenString, secret string) (*model.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	name, _ := claims["name"].(string)
	if name == "" {
		return nil, fmt.Errorf("missing name claim")
	}

	admin, _ := claims["admin"].(bool)

	return &model.Identity{
		ID:       id,
		Username: name,
		Admin:    admin,
	}, nil
}

// NewToken mints an HS256 token for the given identity. Used by tests and
// the token generator script; production tokens come from the identity
// provider.
func NewToken(ident *model.Identity, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["sub"] = ident.ID.String()
	claims["name"] = ident.Username
	claims["admin"] = ident.Admin
	claims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
