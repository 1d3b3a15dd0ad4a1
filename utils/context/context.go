package context

import (
	"context"

	"github.com/muhammadheryan/stockland/constant"
)

// WithUserID attaches the authenticated caller to ctx.
func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

// GetUserID returns the caller set by WithUserID. A zero id counts as absent.
func GetUserID(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(constant.UserIDKey).(uint64)
	return id, ok && id != 0
}
