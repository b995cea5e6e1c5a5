package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	participantIDKey ctxKey = "participant_id"
	roleKey          ctxKey = "role"
	requestIDKey     ctxKey = "request_id"
)

// WithParticipantID stores the authenticated participant ID in the context.
func WithParticipantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, participantIDKey, id)
}

// ParticipantIDFromCtx extracts the participant ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func ParticipantIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(participantIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the token role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the token role. Returns "" if absent.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
