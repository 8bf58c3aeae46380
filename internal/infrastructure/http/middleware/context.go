package middleware

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser injects the authenticated user id into the context.
func WithUser(ctx context.Context, id domain.UserID) context.Context {
	return context.WithValue(ctx, userContextKey, id)
}

// UserFromContext returns the authenticated user id from the context.
func UserFromContext(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(userContextKey).(domain.UserID)
	return id, ok
}
