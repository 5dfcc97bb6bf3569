package utils

import (
	"context"
	"reservation-center/internal/pkg/constvars"
)

// WithRequestID returns a copy of ctx carrying requestID for GetRequestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

// GetRequestID returns the id stored by WithRequestID, or "" when ctx has none.
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
