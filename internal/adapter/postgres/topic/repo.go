// Package topic implements the Topic repository using PostgreSQL.
// It provides CRUD operations for topics and M2M entry linking via the
// topic_entries join table.
package topic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/changetrail/internal/adapter/postgres"
	"github.com/heartmarshall/changetrail/internal/domain"
)

const (
	topicsTable  = "topics"
	entriesTable = "topic_entries"
)

var topicColumns = []string{"id", "name", "description", "created_at", "updated_at"}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
	sb squirrel.StatementBuilderType
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Topic, error) {
	q := r.sb.Select(topicColumns...).From(topicsTable).Where(squirrel.Eq{"id": id})
	if suffix != "" {
		q = q.Suffix(suffix)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("topic build select: %w", err)
	}

	t, err := scanTopic(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// EntryIDs returns the entry IDs linked to a topic, ordered by ID.
// Returns an empty slice (not nil) when no entries are linked.
func (r *Repo) EntryIDs(ctx context.Context, topicID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := r.sb.
		Select("entry_id").
		From(entriesTable).
		Where(squirrel.Eq{"topic_id": topicID}).
		OrderBy("entry_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("topic_entry build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "topic_entry", topicID)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "topic_entry", topicID)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns the persisted domain.Topic.
// Returns domain.ErrAlreadyExists if a topic with the same name exists.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := r.sb.
		Insert(topicsTable).
		Columns("id", "name", "description").
		Values(id, t.Name, t.Description).
		Suffix("RETURNING " + strings.Join(topicColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("topic build insert: %w", err)
	}

	created, err := scanTopic(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return created, nil
}

// Update writes name and description of t and bumps updated_at.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Update(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	query, args, err := r.sb.
		Update(topicsTable).
		Set("name", t.Name).
		Set("description", t.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING " + strings.Join(topicColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("topic build update: %w", err)
	}

	updated, err := scanTopic(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}
	return updated, nil
}

// Delete removes a topic. CASCADE deletes topic_entries.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete(topicsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("topic build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// LinkEntry links an entry to a topic and reports whether a new link was
// created. Linking the same pair twice is not an error.
func (r *Repo) LinkEntry(ctx context.Context, topicID, entryID uuid.UUID) (bool, error) {
	query, args, err := r.sb.
		Insert(entriesTable).
		Columns("topic_id", "entry_id").
		Values(topicID, entryID).
		Suffix("ON CONFLICT (topic_id, entry_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("topic_entry build insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "topic_entry", topicID)
	}
	return tag.RowsAffected() > 0, nil
}

// UnlinkEntry removes one link and reports whether it existed.
func (r *Repo) UnlinkEntry(ctx context.Context, topicID, entryID uuid.UUID) (bool, error) {
	query, args, err := r.sb.
		Delete(entriesTable).
		Where(squirrel.Eq{"topic_id": topicID, "entry_id": entryID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("topic_entry build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "topic_entry", topicID)
	}
	return tag.RowsAffected() > 0, nil
}

// ClearEntries removes every link of a topic and returns how many were removed.
func (r *Repo) ClearEntries(ctx context.Context, topicID uuid.UUID) (int, error) {
	query, args, err := r.sb.Delete(entriesTable).Where(squirrel.Eq{"topic_id": topicID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("topic_entry build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "topic_entry", topicID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var (
		t         domain.Topic
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.CreatedAt = createdAt.UTC()
	t.UpdatedAt = updatedAt.UTC()
	return &t, nil
}
