package changelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
	"github.com/heartmarshall/changetrail/pkg/ctxutil"
)

// Recorder writes change entries to the store of their TrackingSpec.
// Recording is best effort: Record never returns an error and never panics,
// so a failing log store cannot break the write being observed.
type Recorder struct {
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time
	timeout time.Duration
}

// DefaultRecordTimeout bounds a single store write.
const DefaultRecordTimeout = 5 * time.Second

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// WithMetrics attaches Prometheus counters to the recorder.
func WithMetrics(m *Metrics) RecorderOption {
	return func(r *Recorder) { r.metrics = m }
}

// WithRecordTimeout overrides DefaultRecordTimeout. Non-positive values are ignored.
func WithRecordTimeout(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewRecorder creates a Recorder.
func NewRecorder(log *slog.Logger, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		log:     log.With("component", "changelog_recorder"),
		now:     time.Now,
		timeout: DefaultRecordTimeout,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Record persists one change entry attributed to the actor in ctx, if any.
// All failures are logged and counted, then discarded.
func (r *Recorder) Record(ctx context.Context, spec *domain.TrackingSpec, targetID *uuid.UUID, op domain.Operation, changes []domain.Change, isRelation bool) {
	var kind domain.TargetType
	if spec != nil {
		kind = spec.Kind
	}

	// The entry must survive a cancelled request, but a store that cannot
	// get a connection must not hold the caller forever.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	entry, err := r.record(ctx, spec, targetID, op, changes, isRelation)
	if err != nil {
		r.log.ErrorContext(ctx, "change entry dropped",
			slog.String("kind", kind.String()),
			slog.Any("target_id", targetID),
			slog.String("operation", op.String()),
			slog.Bool("is_relation", isRelation),
			slog.String("error", err.Error()),
		)
		r.metrics.observeFailure(op, kind)
		return
	}

	r.log.DebugContext(ctx, "change entry recorded",
		slog.String("entry_id", entry.ID.String()),
		slog.String("kind", kind.String()),
		slog.String("operation", op.String()),
		slog.Int("changes", len(entry.Changes)),
	)
	r.metrics.observeRecorded(op, kind)
}

func (r *Recorder) record(ctx context.Context, spec *domain.TrackingSpec, targetID *uuid.UUID, op domain.Operation, changes []domain.Change, isRelation bool) (entry domain.ChangeEntry, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("change log store panicked: %v", p)
		}
	}()

	if spec == nil || spec.Store == nil {
		return domain.ChangeEntry{}, errors.New("no change log store configured")
	}
	if !op.IsValid() {
		return domain.ChangeEntry{}, domain.NewValidationError("operation", "unknown operation "+op.String())
	}
	if len(changes) == 0 {
		return domain.ChangeEntry{}, domain.NewValidationError("changes", "payload must not be empty")
	}

	entry = domain.ChangeEntry{
		ID:         uuid.New(),
		TargetType: spec.Kind,
		TargetID:   targetID,
		CreatedAt:  r.now().UTC().Truncate(time.Microsecond),
		Operation:  op,
		IsRelation: isRelation,
		Changes:    changes,
	}
	if actor, ok := ctxutil.ActorFromCtx(ctx); ok {
		entry.Actor = &actor
	}

	created, err := spec.Store.Create(ctx, entry)
	if err != nil {
		return domain.ChangeEntry{}, fmt.Errorf("store change entry: %w", err)
	}
	return created, nil
}
