// Package ctxutil carries request-scoped values (actor, request id) through
// context.Context. Values are set by HTTP middleware at the start of each
// request and are gone when the request context is discarded.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the acting identity in the context.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx extracts the acting identity from the context.
// Returns false if the value is missing, has a nil ID, or has the wrong type.
// A missing actor is normal for system-initiated work.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || actor.ID == uuid.Nil {
		return domain.Actor{}, false
	}
	return actor, true
}

// WithUserID stores an actor that is known only by its ID.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return WithActor(ctx, domain.Actor{ID: id})
}

// UserIDFromCtx extracts the acting user ID from the context.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	actor, ok := ActorFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return actor.ID, true
}

// IsStaffCtx reports whether the context carries an authenticated staff actor.
func IsStaffCtx(ctx context.Context) bool {
	actor, ok := ActorFromCtx(ctx)
	return ok && actor.IsStaff
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
