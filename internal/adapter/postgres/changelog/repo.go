// Package changelog implements the append-only change log store on
// PostgreSQL. Each Repo writes to one table, so kinds can share the default
// table or keep their own.
package changelog

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/changetrail/internal/adapter/postgres"
	"github.com/heartmarshall/changetrail/internal/domain"
)

// DefaultTable is the table created by the bundled migrations.
const DefaultTable = "change_entries"

var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

var columns = []string{
	"id",
	"target_type",
	"target_id",
	"created_at",
	"actor_id",
	"actor_email",
	"actor_is_staff",
	"operation",
	"is_relation_change",
	"payload",
}

// Repo stores change entries in one table.
//
// Create never joins a transaction carried by ctx: a failed insert would
// abort the caller's transaction.
type Repo struct {
	db    postgres.Querier
	table string
	sb    squirrel.StatementBuilderType
}

// New creates a repository over table, which may be schema-qualified
// ("audit.topic_changes"). An empty table selects DefaultTable.
func New(db postgres.Querier, table string) (*Repo, error) {
	if table == "" {
		table = DefaultTable
	}
	quoted, err := quoteTable(table)
	if err != nil {
		return nil, err
	}
	return &Repo{
		db:    db,
		table: quoted,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Create appends an entry and returns it as stored.
func (r *Repo) Create(ctx context.Context, e domain.ChangeEntry) (domain.ChangeEntry, error) {
	if err := validateEntry(e); err != nil {
		return domain.ChangeEntry{}, err
	}

	payload, err := json.Marshal(e.Changes)
	if err != nil {
		return domain.ChangeEntry{}, fmt.Errorf("change_entry marshal payload: %w", err)
	}

	var (
		actorID    *uuid.UUID
		actorEmail *string
		actorStaff bool
	)
	if e.Actor != nil {
		id := e.Actor.ID
		actorID = &id
		if e.Actor.Email != "" {
			email := e.Actor.Email
			actorEmail = &email
		}
		actorStaff = e.Actor.IsStaff
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	query, args, err := r.sb.
		Insert(r.table).
		Columns(columns...).
		Values(e.ID, string(e.TargetType), e.TargetID, createdAt, actorID, actorEmail, actorStaff,
			string(e.Operation), e.IsRelation, payload).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ChangeEntry{}, fmt.Errorf("change_entry build insert: %w", err)
	}

	created, err := scanEntry(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ChangeEntry{}, postgres.MapError(err, "change_entry", e.ID)
	}
	return created, nil
}

// Filter returns the entries of one target, newest first. limit <= 0 means
// no limit.
func (r *Repo) Filter(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID, limit int) ([]domain.ChangeEntry, error) {
	q := r.sb.
		Select(columns...).
		From(r.table).
		Where(squirrel.Eq{"target_type": string(targetType), "target_id": targetID}).
		OrderBy("seq DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("change_entry build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "change_entry", targetType.String()+"/"+targetID.String())
	}
	defer rows.Close()

	entries := []domain.ChangeEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("change_entry scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "change_entry", targetType.String()+"/"+targetID.String())
	}
	return entries, nil
}

func validateEntry(e domain.ChangeEntry) error {
	var errs domain.FieldErrors
	if !e.TargetType.IsValid() {
		errs.Add("target_type", "required")
	}
	if !e.Operation.IsValid() {
		errs.Add("operation", "unknown operation "+e.Operation.String())
	}
	if len(e.Changes) == 0 {
		errs.Add("changes", "payload must not be empty")
	}
	return errs.Err()
}

func scanEntry(row pgx.Row) (domain.ChangeEntry, error) {
	var (
		e          domain.ChangeEntry
		targetType string
		operation  string
		actorID    *uuid.UUID
		actorEmail *string
		actorStaff bool
		payload    []byte
	)

	if err := row.Scan(&e.ID, &targetType, &e.TargetID, &e.CreatedAt, &actorID, &actorEmail, &actorStaff,
		&operation, &e.IsRelation, &payload); err != nil {
		return domain.ChangeEntry{}, err
	}

	e.TargetType = domain.TargetType(targetType)
	e.Operation = domain.Operation(operation)
	e.CreatedAt = e.CreatedAt.UTC()

	if actorID != nil {
		e.Actor = &domain.Actor{ID: *actorID, IsStaff: actorStaff}
		if actorEmail != nil {
			e.Actor.Email = *actorEmail
		}
	}

	if err := json.Unmarshal(payload, &e.Changes); err != nil {
		return domain.ChangeEntry{}, fmt.Errorf("unmarshal payload: %w", err)
	}
	return e, nil
}

// quoteTable validates a possibly schema-qualified table name and returns it
// quoted for use in SQL.
func quoteTable(table string) (string, error) {
	parts := strings.Split(table, ".")
	if len(parts) > 2 {
		return "", domain.NewValidationError("table", fmt.Sprintf("%q has too many parts", table))
	}
	for _, p := range parts {
		if !identPattern.MatchString(p) {
			return "", domain.NewValidationError("table", fmt.Sprintf("%q is not a valid identifier", table))
		}
	}
	return pgx.Identifier(parts).Sanitize(), nil
}
