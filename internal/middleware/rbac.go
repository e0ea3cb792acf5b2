package middleware

import (
	"net/http"
)

// Role names granted by the institutional identity provider
const (
	RoleStudent   = "student"
	RoleFaculty   = "faculty"
	RoleReviewer  = "reviewer"
	RoleResponder = "responder"
	RoleCounselor = "counselor"
	RoleAdmin     = "admin"
)

// RBACMiddleware handles role-based access control. Roles are carried in
// the actor token, so checks never touch the database.
type RBACMiddleware struct{}

// NewRBACMiddleware creates a new RBAC middleware
func NewRBACMiddleware() *RBACMiddleware {
	return &RBACMiddleware{}
}

// RequireRole checks if the actor has the required role
func (m *RBACMiddleware) RequireRole(roleName string) func(http.Handler) http.Handler {
	return m.RequireAnyRole(roleName)
}

// RequireAnyRole checks if the actor has any of the required roles
func (m *RBACMiddleware) RequireAnyRole(roleNames ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetActorRef(r); !ok {
				respondWithError(w, http.StatusUnauthorized, "Actor not authenticated")
				return
			}

			hasRole := false
			for _, requiredRole := range roleNames {
				if ActorHasRole(r, requiredRole) {
					hasRole = true
					break
				}
			}

			if !hasRole {
				respondWithError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
