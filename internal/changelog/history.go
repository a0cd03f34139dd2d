package changelog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// DefaultHistoryLimit caps history reads when no limit is configured.
const DefaultHistoryLimit = 100

// FullHistorian is implemented by tracked objects whose full history spans
// more than their own entries (for example, entries of owned children).
type FullHistorian interface {
	FullChangeHistory(ctx context.Context, h *History) ([]domain.ChangeEntry, error)
}

// History reads change entries back through the registry.
type History struct {
	specs *Registry
	limit int
}

// NewHistory creates a History. limit <= 0 selects DefaultHistoryLimit.
func NewHistory(specs *Registry, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{specs: specs, limit: limit}
}

// ChangeHistory returns the entries recorded for obj, newest first.
// An object that has not been persisted has no history.
func (h *History) ChangeHistory(ctx context.Context, obj domain.Trackable) ([]domain.ChangeEntry, error) {
	id := obj.TrackingID()
	if id == nil {
		return []domain.ChangeEntry{}, nil
	}
	return h.ByTarget(ctx, obj.TrackingKind(), *id, 0)
}

// FullChangeHistory delegates to obj when it implements FullHistorian and
// falls back to ChangeHistory otherwise.
func (h *History) FullChangeHistory(ctx context.Context, obj domain.Trackable) ([]domain.ChangeEntry, error) {
	if fh, ok := obj.(FullHistorian); ok {
		return fh.FullChangeHistory(ctx, h)
	}
	return h.ChangeHistory(ctx, obj)
}

// ByTarget returns the entries of one target, newest first. limit <= 0 or
// above the configured cap selects the cap.
func (h *History) ByTarget(ctx context.Context, kind domain.TargetType, id uuid.UUID, limit int) ([]domain.ChangeEntry, error) {
	spec, err := h.specs.Spec(kind)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > h.limit {
		limit = h.limit
	}

	entries, err := spec.Store.Filter(ctx, kind, id, limit)
	if err != nil {
		return nil, fmt.Errorf("change history %s/%s: %w", kind, id, err)
	}
	if entries == nil {
		entries = []domain.ChangeEntry{}
	}
	return entries, nil
}
