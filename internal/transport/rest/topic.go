package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/changelog"
	"github.com/heartmarshall/changetrail/internal/domain"
	topicsvc "github.com/heartmarshall/changetrail/internal/service/topic"
)

//go:generate moq -out topic_service_mock_test.go -pkg rest . topicService

type topicService interface {
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	EntryIDs(ctx context.Context, topicID uuid.UUID) ([]uuid.UUID, error)
	CreateTopic(ctx context.Context, input topicsvc.CreateTopicInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, input topicsvc.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error
	LinkEntry(ctx context.Context, input topicsvc.EntryLinkInput) error
	UnlinkEntry(ctx context.Context, input topicsvc.EntryLinkInput) error
	ClearEntries(ctx context.Context, topicID uuid.UUID) (int, error)
	History(ctx context.Context, input topicsvc.HistoryInput) ([]domain.ChangeEntry, error)
}

// representationFilter decorates an object's JSON representation, for
// example with its change log.
type representationFilter interface {
	Attach(ctx context.Context, method string, obj domain.Trackable, rep map[string]any) map[string]any
}

// TopicHandler serves the topic REST endpoints.
type TopicHandler struct {
	svc   topicService
	views representationFilter
	log   *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, views representationFilter, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		svc:   svc,
		views: views,
		log:   logger.With("handler", "topic"),
	}
}

type createTopicRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateTopicRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Get returns a topic with its linked entry IDs. Readers allowed by the view
// filter also get the topic's change_logs.
// GET /api/v1/topics/{id}
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, t)
}

// Create creates a topic.
// POST /api/v1/topics
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), topicsvc.CreateTopicInput{Name: req.Name, Description: req.Description})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.respond(w, r, http.StatusCreated, t)
}

// Update changes name and/or description. An empty description clears it.
// PATCH /api/v1/topics/{id}
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.UpdateTopic(r.Context(), topicsvc.UpdateTopicInput{
		TopicID:     id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, t)
}

// Delete removes a topic.
// DELETE /api/v1/topics/{id}
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LinkEntry links an entry to a topic.
// PUT /api/v1/topics/{id}/entries/{entryID}
func (h *TopicHandler) LinkEntry(w http.ResponseWriter, r *http.Request) {
	h.entryLink(w, r, h.svc.LinkEntry)
}

// UnlinkEntry removes a link between an entry and a topic.
// DELETE /api/v1/topics/{id}/entries/{entryID}
func (h *TopicHandler) UnlinkEntry(w http.ResponseWriter, r *http.Request) {
	h.entryLink(w, r, h.svc.UnlinkEntry)
}

func (h *TopicHandler) entryLink(w http.ResponseWriter, r *http.Request, fn func(context.Context, topicsvc.EntryLinkInput) error) {
	topicID, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := fn(r.Context(), topicsvc.EntryLinkInput{TopicID: topicID, EntryID: entryID}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearEntries removes every entry link of a topic.
// DELETE /api/v1/topics/{id}/entries
func (h *TopicHandler) ClearEntries(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.ClearEntries(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"cleared": n})
}

// History returns the raw change history of a topic, newest first. It
// stays readable after the topic is deleted.
// GET /api/v1/topics/{id}/history?limit=50
func (h *TopicHandler) History(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.svc.History(r.Context(), topicsvc.HistoryInput{TopicID: id, Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, changelog.NewEntryViews(entries))
}

// respond writes the topic representation passed through the view filter.
func (h *TopicHandler) respond(w http.ResponseWriter, r *http.Request, status int, t *domain.Topic) {
	ids, err := h.svc.EntryIDs(r.Context(), t.ID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, h.views.Attach(r.Context(), r.Method, t, topicRepresentation(t, ids)))
}

func topicRepresentation(t *domain.Topic, entryIDs []uuid.UUID) map[string]any {
	if entryIDs == nil {
		entryIDs = []uuid.UUID{}
	}
	return map[string]any{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"entry_ids":   entryIDs,
		"created_at":  t.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at":  t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// limitParam parses ?limit=. Absent means 0, which selects the default cap.
func limitParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError("limit", "must be a non-negative integer")
	}
	return n, nil
}
