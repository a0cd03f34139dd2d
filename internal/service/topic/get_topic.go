package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// GetTopic returns a topic by ID.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if err := validateID("topic_id", topicID); err != nil {
		return nil, err
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return topic, nil
}

// EntryIDs returns the IDs of the entries linked to a topic.
func (s *Service) EntryIDs(ctx context.Context, topicID uuid.UUID) ([]uuid.UUID, error) {
	if err := validateID("topic_id", topicID); err != nil {
		return nil, err
	}

	ids, err := s.topics.EntryIDs(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic entries: %w", err)
	}
	return ids, nil
}

// History returns the change entries of a topic, newest first. The history
// of a deleted topic stays readable.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.ChangeEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.history.ByTarget(ctx, domain.TargetTypeTopic, input.TopicID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("topic history: %w", err)
	}
	return entries, nil
}
