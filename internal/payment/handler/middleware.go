package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/pkg/auth"
)

type contextKey string

// ClaimsKey stores the verified identity in the request context
const ClaimsKey contextKey = "claims"

// AuthMiddleware validates the bearer token and injects claims
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondJSON(w, http.StatusUnauthorized, failure("authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondJSON(w, http.StatusUnauthorized, failure("invalid authorization header format"))
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			respondError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// EmployeeMiddleware requires the employee role on top of authentication
func EmployeeMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != auth.RoleEmployee {
			respondJSON(w, http.StatusForbidden, failure("employee access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext extracts the verified identity, if any
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims
}

// actorFromContext builds the audit actor for the current caller
func actorFromContext(ctx context.Context) domain.Actor {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return domain.Actor{}
	}
	name := claims.Name
	if name == "" {
		name = claims.Email
	}
	return domain.Actor{ID: claims.UserID, Name: name}
}
