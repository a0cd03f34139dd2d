package topic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/changelog"
	"github.com/heartmarshall/changetrail/internal/domain"
	"github.com/heartmarshall/changetrail/pkg/ctxutil"
)

//go:generate moq -out topic_repo_mock_test.go -pkg topic . topicRepo
//go:generate moq -out tx_manager_mock_test.go -pkg topic . txManager

type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	Update(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// M2M: topic <-> entry
	LinkEntry(ctx context.Context, topicID, entryID uuid.UUID) (bool, error)
	UnlinkEntry(ctx context.Context, topicID, entryID uuid.UUID) (bool, error)
	ClearEntries(ctx context.Context, topicID uuid.UUID) (int, error)
	EntryIDs(ctx context.Context, topicID uuid.UUID) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type changeRecorder interface {
	Record(ctx context.Context, spec *domain.TrackingSpec, targetID *uuid.UUID, op domain.Operation, changes []domain.Change, isRelation bool)
}

type historyReader interface {
	ByTarget(ctx context.Context, kind domain.TargetType, id uuid.UUID, limit int) ([]domain.ChangeEntry, error)
}

// Service provides topic management operations. Every write is observed by
// a changelog.Tracker; change entries are recorded after the primary write
// and never fail it.
type Service struct {
	topics  topicRepo
	tx      txManager
	spec    *domain.TrackingSpec
	rec     changeRecorder
	history historyReader
	log     *slog.Logger
}

// NewService creates a new Topic service. spec must be the registered
// TrackingSpec of domain.TargetTypeTopic.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	tx txManager,
	spec *domain.TrackingSpec,
	rec changeRecorder,
	history historyReader,
) *Service {
	return &Service{
		topics:  topics,
		tx:      tx,
		spec:    spec,
		rec:     rec,
		history: history,
		log:     log.With("service", "topic"),
	}
}

// tracker returns a fresh tracker for one topic instance.
func (s *Service) tracker() *changelog.Tracker {
	return changelog.NewTracker(s.spec, s.rec, s.log)
}

// relationChanged reports the settled membership of a topic's entries.
func (s *Service) relationChanged(ctx context.Context, topic *domain.Topic, action domain.RelationAction, ids []uuid.UUID) {
	s.tracker().RelationChanged(ctx, topic, domain.RelationEvent{
		Relation:  domain.TopicRelationEntries,
		Action:    action,
		MemberIDs: ids,
	})
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func actorAttr(ctx context.Context) slog.Attr {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return slog.String("actor_id", id.String())
	}
	return slog.String("actor_id", "system")
}
