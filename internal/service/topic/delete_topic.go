package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteTopic deletes a topic. A DELETE change entry carrying the last-known
// field values is recorded before the delete transaction opens, so the
// history stays retrievable by ID afterwards and recording never waits on a
// connection held by that transaction.
func (s *Service) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	if err := validateID("topic_id", topicID); err != nil {
		return err
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}

	tr := s.tracker()
	tr.Load(topic)
	tr.BeforeDelete(ctx, topic)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.topics.Delete(txCtx, topicID); deleteErr != nil {
			return fmt.Errorf("delete topic: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "topic deleted",
		actorAttr(ctx),
		slog.String("topic_id", topicID.String()),
		slog.String("name", topic.Name),
	)

	return nil
}
