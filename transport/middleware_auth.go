package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/contacts-api/application/auth"
	"github.com/muhammadheryan/contacts-api/constant"
	"github.com/muhammadheryan/contacts-api/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using
// AuthApp. Only the routes that act on the authenticated account require a
// token; everything else passes through.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			// Validate token via AuthApp
			userID, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRoute defines which endpoints do not require a session token
func isPublicRoute(method, path string) bool {
	if method == http.MethodPatch && path == "/api/users/avatars" {
		return false
	}

	return true
}
