package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/umputun/feedscope/pkg/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// authMiddleware resolves the bearer token to a user and stores it in the
// request context, unauthenticated requests get 401
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
			return
		}

		user, err := s.users.GetUserByToken(r.Context(), token)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid token"), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the authenticated user set by authMiddleware
func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
