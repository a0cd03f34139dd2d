package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// CreateTopic creates a new topic and records a CREATE change entry.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.tracker().AfterSave(ctx, topic)

	s.log.InfoContext(ctx, "topic created",
		actorAttr(ctx),
		slog.String("topic_id", topic.ID.String()),
		slog.String("name", topic.Name),
	)

	return topic, nil
}
