package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/stockland/application/user"
	"github.com/muhammadheryan/stockland/constant"
	utilsContext "github.com/muhammadheryan/stockland/utils/context"
	"github.com/muhammadheryan/stockland/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (property browsing, /login, /register, /swagger/)
// without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

// RoleMiddleware lets through authenticated users holding role.
func RoleMiddleware(userApp user.UserApp, role string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utilsContext.GetUserID(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			profile, err := userApp.GetProfile(r.Context(), userID)
			if err != nil {
				writeError(w, err)
				return
			}
			if profile.Role != role {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}
	// browsing listings needs no account
	if method == http.MethodGet && (path == "/properties" || strings.HasPrefix(path, "/properties/")) {
		return true
	}

	return false
}
