package changelog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// recorder persists a computed payload. Implementations must not fail the
// caller.
type recorder interface {
	Record(ctx context.Context, spec *domain.TrackingSpec, targetID *uuid.UUID, op domain.Operation, changes []domain.Change, isRelation bool)
}

// Tracker observes the lifecycle of one tracked object instance and turns
// its saves, deletes and relation changes into change entries.
//
// A Tracker holds the baseline snapshot of its instance and is not safe for
// concurrent use. Create one per instance per unit of work.
type Tracker struct {
	spec     *domain.TrackingSpec
	rec      recorder
	log      *slog.Logger
	original domain.Snapshot
}

// NewTracker creates a tracker for a fresh (not yet loaded) instance.
func NewTracker(spec *domain.TrackingSpec, rec recorder, log *slog.Logger) *Tracker {
	return &Tracker{
		spec: spec,
		rec:  rec,
		log:  log.With("component", "tracker", "kind", spec.Kind.String()),
	}
}

// Load captures the baseline of an instance that was read from storage.
// Subsequent saves are diffed against it.
func (t *Tracker) Load(obj domain.Trackable) {
	snap := obj.TrackingSnapshot().Clone()
	if snap == nil {
		snap = domain.Snapshot{}
	}
	t.original = snap
}

// Loaded reports whether a baseline exists.
func (t *Tracker) Loaded() bool {
	return t.original != nil
}

// AfterSave records a CREATE (no baseline) or an UPDATE (baseline present)
// after the primary write succeeded. An UPDATE that changes no tracked field
// records nothing.
func (t *Tracker) AfterSave(ctx context.Context, obj domain.Trackable) {
	if !t.matches(ctx, obj) {
		return
	}

	current := obj.TrackingSnapshot().Clone()
	if current == nil {
		current = domain.Snapshot{}
	}

	var (
		op      domain.Operation
		changes []domain.Change
	)
	if t.original == nil {
		op = domain.OperationCreate
		changes = FullPayload(t.spec.Fields, current, op)
	} else {
		op = domain.OperationUpdate
		changes = DiffPayload(t.spec.Fields, t.original, current)
	}

	if len(changes) == 0 {
		t.log.DebugContext(ctx, "no tracked field changed", slog.Any("target_id", obj.TrackingID()))
		return
	}

	t.rec.Record(ctx, t.spec, obj.TrackingID(), op, changes, false)
	t.original = current
}

// BeforeDelete records a DELETE carrying the last-known value of every
// tracked field. Call it before the record is removed.
func (t *Tracker) BeforeDelete(ctx context.Context, obj domain.Trackable) {
	if !t.matches(ctx, obj) {
		return
	}

	changes := FullPayload(t.spec.Fields, obj.TrackingSnapshot(), domain.OperationDelete)
	t.rec.Record(ctx, t.spec, obj.TrackingID(), domain.OperationDelete, changes, false)
}

// RelationChanged records a snapshot of a many-to-many relation. Only
// settled (post_*) notifications on declared relations are recorded.
func (t *Tracker) RelationChanged(ctx context.Context, obj domain.Trackable, ev domain.RelationEvent) {
	if !ev.Action.IsSettled() {
		return
	}
	if !t.spec.HasRelation(ev.Relation) {
		t.log.WarnContext(ctx, "relation is not tracked",
			slog.String("relation", ev.Relation),
			slog.String("action", ev.Action.String()),
		)
		return
	}
	if !t.matches(ctx, obj) {
		return
	}

	t.rec.Record(ctx, t.spec, obj.TrackingID(), domain.OperationUpdate, RelationPayload(ev.Relation, ev.MemberIDs), true)
}

func (t *Tracker) matches(ctx context.Context, obj domain.Trackable) bool {
	if obj.TrackingKind() == t.spec.Kind {
		return true
	}
	t.log.ErrorContext(ctx, "tracked object kind does not match tracker",
		slog.String("object_kind", obj.TrackingKind().String()),
	)
	return false
}
