package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authshell/internal/server/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// userIDFromContext returns the authenticated user ID installed by
// withAuth, or "" for unauthenticated requests.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// withAuth verifies the Authorization: Bearer header and installs the
// token's user ID into the request context. Requests without a valid
// token receive a structured 401 rejection.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, http.StatusUnauthorized, "Missing authorization token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	}
}
