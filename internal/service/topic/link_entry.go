package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// LinkEntry links an entry to a topic. Idempotent: re-linking is not an
// error and records nothing.
func (s *Service) LinkEntry(ctx context.Context, input EntryLinkInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	topic, ids, linked, err := s.mutateEntries(ctx, input.TopicID, func(txCtx context.Context) (bool, error) {
		return s.topics.LinkEntry(txCtx, input.TopicID, input.EntryID)
	})
	if err != nil {
		return fmt.Errorf("link entry: %w", err)
	}
	if !linked {
		return nil
	}

	s.relationChanged(ctx, topic, domain.RelationPostAdd, ids)

	s.log.InfoContext(ctx, "entry linked to topic",
		actorAttr(ctx),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("entry_id", input.EntryID.String()),
	)
	return nil
}

// UnlinkEntry removes a link between an entry and a topic. Idempotent:
// unlinking a missing link is not an error and records nothing.
func (s *Service) UnlinkEntry(ctx context.Context, input EntryLinkInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	topic, ids, removed, err := s.mutateEntries(ctx, input.TopicID, func(txCtx context.Context) (bool, error) {
		return s.topics.UnlinkEntry(txCtx, input.TopicID, input.EntryID)
	})
	if err != nil {
		return fmt.Errorf("unlink entry: %w", err)
	}
	if !removed {
		return nil
	}

	s.relationChanged(ctx, topic, domain.RelationPostRemove, ids)

	s.log.InfoContext(ctx, "entry unlinked from topic",
		actorAttr(ctx),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("entry_id", input.EntryID.String()),
	)
	return nil
}

// ClearEntries removes every entry link of a topic. The cleared relation is
// always recorded, as an empty member list.
func (s *Service) ClearEntries(ctx context.Context, topicID uuid.UUID) (int, error) {
	if err := validateID("topic_id", topicID); err != nil {
		return 0, err
	}

	var cleared int
	topic, ids, _, err := s.mutateEntries(ctx, topicID, func(txCtx context.Context) (bool, error) {
		n, clearErr := s.topics.ClearEntries(txCtx, topicID)
		cleared = n
		return true, clearErr
	})
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}

	s.relationChanged(ctx, topic, domain.RelationPostClear, ids)

	s.log.InfoContext(ctx, "topic entries cleared",
		actorAttr(ctx),
		slog.String("topic_id", topicID.String()),
		slog.Int("cleared", cleared),
	)
	return cleared, nil
}

// mutateEntries locks the topic, applies fn and reads the resulting
// membership in one transaction. changed is whatever fn reports.
func (s *Service) mutateEntries(
	ctx context.Context,
	topicID uuid.UUID,
	fn func(txCtx context.Context) (bool, error),
) (topic *domain.Topic, ids []uuid.UUID, changed bool, err error) {
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		topic, txErr = s.topics.GetForUpdate(txCtx, topicID)
		if txErr != nil {
			return fmt.Errorf("get topic: %w", txErr)
		}

		changed, txErr = fn(txCtx)
		if txErr != nil {
			return txErr
		}
		if !changed {
			return nil
		}

		ids, txErr = s.topics.EntryIDs(txCtx, topicID)
		if txErr != nil {
			return fmt.Errorf("get topic entries: %w", txErr)
		}
		return nil
	})
	return topic, ids, changed, err
}
