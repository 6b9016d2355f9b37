package auth

import (
	"context"
	"net/http"
)

type contextKey string

const userIDKey = contextKey("user_id")

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated caller's id, or 0 when the request did
// not pass through the auth middleware.
func UserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}
