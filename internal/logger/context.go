package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func SessionIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns logger with session_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	id := SessionIDFrom(ctx)
	if id == "" {
		return L()
	}
	return L().With(zap.String("session_id", id))
}
