package middleware

import (
	"context"
	"net/http"
	"strings"

	"campus-safety/internal/auth"
)

type contextKey string

const (
	ActorRefKey        contextKey = "actor_ref"
	ActorRolesKey      contextKey = "actor_roles"
	ActorDepartmentKey contextKey = "actor_department"
)

// AuthMiddleware validates JWT actor tokens
type AuthMiddleware struct {
	authService *auth.Service
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate validates the JWT token and adds the actor to context
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Get the Authorization header
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}

		// Extract the token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondWithError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		token := parts[1]

		// Validate the token
		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		// Add the actor to context
		ctx := context.WithValue(r.Context(), ActorRefKey, claims.ActorRef)
		ctx = context.WithValue(ctx, ActorRolesKey, claims.Roles)
		ctx = context.WithValue(ctx, ActorDepartmentKey, claims.Department)

		// Call the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth validates the JWT token if present but doesn't require it
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				claims, err := m.authService.ValidateToken(parts[1])
				if err == nil {
					ctx := context.WithValue(r.Context(), ActorRefKey, claims.ActorRef)
					ctx = context.WithValue(ctx, ActorRolesKey, claims.Roles)
					ctx = context.WithValue(ctx, ActorDepartmentKey, claims.Department)
					r = r.WithContext(ctx)
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}

// GetActorRef retrieves the actor ref from the request context
func GetActorRef(r *http.Request) (string, bool) {
	ref, ok := r.Context().Value(ActorRefKey).(string)
	return ref, ok
}

// GetActorRoles retrieves the actor's roles from the request context
func GetActorRoles(r *http.Request) ([]string, bool) {
	roles, ok := r.Context().Value(ActorRolesKey).([]string)
	return roles, ok
}

// GetActorDepartment retrieves the actor's department from the request
// context. Empty when the token carries no department claim.
func GetActorDepartment(r *http.Request) (string, bool) {
	department, ok := r.Context().Value(ActorDepartmentKey).(string)
	return department, ok
}

// ActorHasRole reports whether the request's actor holds the given role
func ActorHasRole(r *http.Request, role string) bool {
	roles, ok := GetActorRoles(r)
	if !ok {
		return false
	}
	for _, got := range roles {
		if got == role {
			return true
		}
	}
	return false
}

// Helper function to respond with JSON error
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
