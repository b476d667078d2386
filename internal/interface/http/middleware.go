package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	domadmin "example.com/admin-console/internal/domain/admin"
	authuc "example.com/admin-console/internal/usecase/auth"
)

type ctxKey struct{}

var (
	ctxSessionKey      = ctxKey{}
	errUnauthenticated = errors.New("unauthenticated")
	errForbidden       = errors.New("forbidden")
)

func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := a.tokenSvc.ParseToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), ctxSessionKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets the request through when allowed accepts the session's role.
func (a *API) requireRole(allowed func(domadmin.RoleCode) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := getSession(r.Context())
			if session == nil {
				respondError(w, http.StatusUnauthorized, errUnauthenticated)
				return
			}
			if !allowed(session.RoleCode) {
				respondError(w, http.StatusForbidden, errForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getSession(ctx context.Context) *authuc.Claims {
	if c, ok := ctx.Value(ctxSessionKey).(*authuc.Claims); ok {
		return c
	}
	return nil
}
