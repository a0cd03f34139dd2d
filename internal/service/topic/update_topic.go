package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// UpdateTopic updates an existing topic. The row is locked and loaded as the
// tracking baseline inside the transaction; the diff is recorded after
// commit. An update that changes nothing records nothing.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	params := input.params()
	tr := s.tracker()

	var updated *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.topics.GetForUpdate(txCtx, input.TopicID)
		if getErr != nil {
			return fmt.Errorf("get topic: %w", getErr)
		}
		tr.Load(current)

		next := *current
		applyParams(&next, params)

		var updateErr error
		updated, updateErr = s.topics.Update(txCtx, &next)
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tr.AfterSave(ctx, updated)

	s.log.InfoContext(ctx, "topic updated",
		actorAttr(ctx),
		slog.String("topic_id", input.TopicID.String()),
	)

	return updated, nil
}

func applyParams(t *domain.Topic, p domain.TopicUpdateParams) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = trimOrNil(p.Description)
	}
}
