package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTopic inserts a topic with a unique name and returns it.
func SeedTopic(t *testing.T, pool *pgxpool.Pool) domain.Topic {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "seeded topic"
	topic := domain.Topic{
		ID:          uuid.New(),
		Name:        "topic-" + uniqueSuffix(),
		Description: &desc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		topic.ID, topic.Name, topic.Description, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}
	return topic
}

// SeedTopicEntries links n fresh entry IDs to the topic and returns them.
func SeedTopicEntries(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID, n int) []uuid.UUID {
	t.Helper()

	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
		_, err := pool.Exec(context.Background(),
			`INSERT INTO topic_entries (topic_id, entry_id) VALUES ($1, $2)`,
			topicID, ids[i],
		)
		if err != nil {
			t.Fatalf("testhelper: SeedTopicEntries: %v", err)
		}
	}
	return ids
}

// CountChangeEntries returns the number of change entries stored for a target.
func CountChangeEntries(t *testing.T, pool *pgxpool.Pool, kind domain.TargetType, id uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM change_entries WHERE target_type = $1 AND target_id = $2`,
		string(kind), id,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountChangeEntries: %v", err)
	}
	return n
}
