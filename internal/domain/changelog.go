package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Actor is the identity a change is attributed to.
type Actor struct {
	ID      uuid.UUID
	Email   string
	IsStaff bool
}

// Change is one field-level record inside a change entry payload.
// Old and New hold canonical string forms; nil means "no value".
type Change struct {
	Field string  `json:"field"`
	Old   *string `json:"old"`
	New   *string `json:"new"`
}

// ChangeEntry is one immutable, append-only change log record.
type ChangeEntry struct {
	ID         uuid.UUID
	TargetType TargetType
	TargetID   *uuid.UUID
	CreatedAt  time.Time
	Actor      *Actor
	Operation  Operation
	IsRelation bool
	Changes    []Change
}

// Snapshot maps tracked field names to their current values.
type Snapshot map[string]any

// Clone returns a shallow copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// RelationEvent is a many-to-many membership notification. MemberIDs is the
// full membership of the relation at the time of the notification.
type RelationEvent struct {
	Relation  string
	Action    RelationAction
	MemberIDs []uuid.UUID
}

// Trackable is implemented by every domain object whose changes are logged.
type Trackable interface {
	TrackingKind() TargetType
	// TrackingID returns nil while the object has not been persisted.
	TrackingID() *uuid.UUID
	TrackingSnapshot() Snapshot
}

// ChangeLogStore is an append-only collection of change entries.
type ChangeLogStore interface {
	Create(ctx context.Context, entry ChangeEntry) (ChangeEntry, error)
	// Filter returns the entries of one target, newest first.
	Filter(ctx context.Context, targetType TargetType, targetID uuid.UUID, limit int) ([]ChangeEntry, error)
}
