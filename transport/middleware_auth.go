package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	authapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/auth"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
)

// AuthMiddleware verifies the session token on every non-public route and
// stores the claims plus the raw token in the request context.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
				return
			}

			claims, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			ctx := context.WithValue(r.Context(), constant.ClaimsKey, claims)
			ctx = context.WithValue(ctx, constant.AuthTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken is the single token extraction point. Priority order: the
// legacy authToken header first, then Authorization: Bearer.
func bearerToken(r *http.Request) string {
	if t := r.Header.Get("authToken"); t != "" {
		return t
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	switch path {
	case "/login/api", "/send-message/api", "/verify-otp/api", "/resend-otp/api", "/scraplist":
		return true
	}
	return false
}
