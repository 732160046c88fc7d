package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth extracts the authenticated user id from the X-User-ID header set
// by the API gateway and stores it in the request context. Requests
// without a valid header are rejected.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing user ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid user ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user id stored by Auth.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
