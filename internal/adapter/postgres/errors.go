package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// PostgreSQL error codes mapped to domain errors.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNotNullViolation     = "23502"
	codeSerializationFailure = "40001"
	codeUndefinedTable       = "42P01"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and its key. Context errors pass through unmapped.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		case codeSerializationFailure:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrConflict)
		case codeUndefinedTable:
			return fmt.Errorf("%s %v: relation %s does not exist: %w", entity, key, pgErr.TableName, err)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
