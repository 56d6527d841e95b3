package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/umputun/recipescope/pkg/domain"
)

// Claims carried by bearer tokens. Subject is the user id.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller
type Identity struct {
	UserID string
	Role   domain.Role
}

type identityKey struct{}

// IdentityFrom returns the identity stored by authMiddleware
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// authMiddleware verifies the HS256 bearer token and stores the caller identity in the request context
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseToken(r.Header.Get("Authorization"), []byte(s.config.GetAuthKey()))
		if err != nil {
			renderError(w, r, errors.New("unauthorized"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, id)))
	})
}

// requireAdmin rejects callers without the admin role, must run after authMiddleware
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok || id.Role != domain.RoleAdmin {
			renderError(w, r, errors.New("admin role required"), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseToken(header string, secret []byte) (Identity, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return Identity{}, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized)
	}
	if len(secret) == 0 {
		return Identity{}, fmt.Errorf("auth key is not set: %w", domain.ErrUnauthorized)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}
	if !token.Valid || claims.Subject == "" {
		return Identity{}, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}

	role := claims.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return Identity{}, fmt.Errorf("unknown role %q: %w", role, domain.ErrUnauthorized)
	}
	return Identity{UserID: claims.Subject, Role: role}, nil
}
