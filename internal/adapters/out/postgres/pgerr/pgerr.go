// Package pgerr turns PostgreSQL constraint failures into the typed errors of
// the errs package so that no driver text reaches callers as a bare string.
package pgerr

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes of the integrity constraint violation class.
const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
)

// constraint name suffixes produced by the schema, longest first.
var constraintSuffixes = []string{"_fkey", "_check", "_key"}

// Translate maps foreign key, unique and check violations to an
// IntegrityViolationError naming the offending field (e.g. "pickupFrom",
// "email", "hub"). Any other error is returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case ForeignKeyViolation, UniqueViolation, CheckViolation:
		return errs.NewIntegrityViolationErrorWithCause(FieldOf(pgErr), nil, err)
	default:
		return err
	}
}

// FieldOf derives the domain field name from the violated constraint, e.g.
// orders_pickup_from_fkey on table orders becomes "pickupFrom".
func FieldOf(pgErr *pgconn.PgError) string {
	name := pgErr.ConstraintName
	if name == "" {
		if pgErr.ColumnName != "" {
			return camel(pgErr.ColumnName)
		}
		return pgErr.TableName
	}

	name = strings.TrimPrefix(name, pgErr.TableName+"_")
	for _, suffix := range constraintSuffixes {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			name = trimmed
			break
		}
	}
	return camel(name)
}

func camel(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
