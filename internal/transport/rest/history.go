package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/changelog"
	"github.com/heartmarshall/changetrail/internal/domain"
)

type historyReader interface {
	ByTarget(ctx context.Context, kind domain.TargetType, id uuid.UUID, limit int) ([]domain.ChangeEntry, error)
}

type kindLister interface {
	Kinds() []domain.TargetType
}

// HistoryHandler serves raw change history of any registered kind to staff.
type HistoryHandler struct {
	history historyReader
	kinds   kindLister
	log     *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(history historyReader, kinds kindLister, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		kinds:   kinds,
		log:     logger.With("handler", "history"),
	}
}

// Kinds lists the tracked kinds.
// GET /api/v1/history
func (h *HistoryHandler) Kinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]domain.TargetType{"kinds": h.kinds.Kinds()})
}

// ByTarget returns the entries of one object, newest first.
// GET /api/v1/history/{kind}/{id}?limit=50
func (h *HistoryHandler) ByTarget(w http.ResponseWriter, r *http.Request) {
	kind := domain.TargetType(strings.ToUpper(chi.URLParam(r, "kind")))
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.history.ByTarget(r.Context(), kind, id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, changelog.NewEntryViews(entries))
}
