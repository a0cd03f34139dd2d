package changelog

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
	"github.com/heartmarshall/changetrail/pkg/ctxutil"
)

// ChangeLogsKey is the representation key the view filter writes to.
const ChangeLogsKey = "change_logs"

type historySource interface {
	FullChangeHistory(ctx context.Context, obj domain.Trackable) ([]domain.ChangeEntry, error)
}

// ViewFilter enriches read responses with the change history of the
// returned object.
type ViewFilter struct {
	history   historySource
	staffOnly bool
	log       *slog.Logger
}

// NewViewFilter creates a filter that attaches history to every read.
func NewViewFilter(history historySource, log *slog.Logger) *ViewFilter {
	return &ViewFilter{history: history, log: log.With("component", "changelog_view")}
}

// NewStaffViewFilter creates a filter that attaches history only when the
// acting identity is staff.
func NewStaffViewFilter(history historySource, log *slog.Logger) *ViewFilter {
	f := NewViewFilter(history, log)
	f.staffOnly = true
	return f
}

// Attach returns rep with ChangeLogsKey set to the history of obj when the
// request is a GET and the actor is permitted to see it. In every other
// case, including history lookup failures, rep is returned unmodified.
func (f *ViewFilter) Attach(ctx context.Context, method string, obj domain.Trackable, rep map[string]any) (out map[string]any) {
	if method != http.MethodGet || obj == nil {
		return rep
	}
	if f.staffOnly && !ctxutil.IsStaffCtx(ctx) {
		return rep
	}

	defer func() {
		if p := recover(); p != nil {
			f.log.ErrorContext(ctx, "change history view panicked", slog.Any("panic", p))
			out = rep
		}
	}()

	entries, err := f.history.FullChangeHistory(ctx, obj)
	if err != nil {
		f.log.ErrorContext(ctx, "load change history for view",
			slog.String("kind", obj.TrackingKind().String()),
			slog.String("error", err.Error()),
		)
		return rep
	}

	res := maps.Clone(rep)
	if res == nil {
		res = make(map[string]any, 1)
	}
	res[ChangeLogsKey] = NewEntryViews(entries)
	return res
}

// EntryView is the client-facing form of a change entry.
type EntryView struct {
	DateCreated    time.Time       `json:"date_created"`
	ObjID          *uuid.UUID      `json:"obj_id"`
	ObjContentType string          `json:"obj_content_type"`
	Type           string          `json:"type"`
	Changes        []domain.Change `json:"changes"`
	IsM2M          bool            `json:"is_m2m"`
	User           *UserView       `json:"user"`
}

// UserView is the actor snapshot shown with an entry.
type UserView struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	IsStaff bool      `json:"is_staff"`
}

// NewEntryView converts a change entry into its view.
func NewEntryView(e domain.ChangeEntry) EntryView {
	v := EntryView{
		DateCreated:    e.CreatedAt,
		ObjID:          e.TargetID,
		ObjContentType: e.TargetType.String(),
		Type:           e.Operation.String(),
		Changes:        e.Changes,
		IsM2M:          e.IsRelation,
	}
	if v.Changes == nil {
		v.Changes = []domain.Change{}
	}
	if e.Actor != nil {
		v.User = &UserView{ID: e.Actor.ID, Email: e.Actor.Email, IsStaff: e.Actor.IsStaff}
	}
	return v
}

// NewEntryViews converts entries preserving order. The result is never nil.
func NewEntryViews(entries []domain.ChangeEntry) []EntryView {
	out := make([]EntryView, len(entries))
	for i, e := range entries {
		out[i] = NewEntryView(e)
	}
	return out
}
