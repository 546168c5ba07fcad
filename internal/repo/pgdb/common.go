package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"reciclame-api/internal/patch"
	"reciclame-api/internal/repo/repo_errors"
	"reciclame-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	uniqueViolation           = "23505"
	foreignKeyViolation       = "23503"
	notNullViolation          = "23502"
	checkViolation            = "23514"
	stringDataRightTruncation = "22001"
	numericValueOutOfRange    = "22003"
	invalidTextRepresentation = "22P02"
)

// updateByKey applies validated changes to the row of schema.Table identified by key.
func updateByKey(ctx context.Context, p *postgres.Postgres, schema patch.Schema, key any, changes map[string]any) error {
	if len(changes) == 0 {
		return patch.ErrNoFields
	}

	updateSql, args, err := p.SqlBuilder.
		Update(schema.Table).
		SetMap(changes).
		Where(squirrel.Eq{schema.KeyColumn: key}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := p.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(result)
}

func deleteByKey(ctx context.Context, p *postgres.Postgres, table string, keyColumn string, key any) error {
	deleteSql, args, _ := p.SqlBuilder.
		Delete(table).
		Where(squirrel.Eq{keyColumn: key}).
		ToSql()

	result, err := p.Database.ExecContext(ctx, deleteSql, args...)
	if err != nil {
		return translateError(err)
	}

	return expectAffected(result)
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

// translateError maps constraint and data violations reported by either driver to repository errors.
func translateError(err error) error {
	code, detail := "", ""

	var pqErr *pq.Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pqErr):
		code, detail = string(pqErr.Code), pqErr.Detail
	case errors.As(err, &pgErr):
		code, detail = pgErr.Code, pgErr.Detail
	default:
		return err
	}

	switch code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", repo_errors.ErrAlreadyExists, detail)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", repo_errors.ErrInvalidReference, detail)
	case notNullViolation, checkViolation, stringDataRightTruncation, numericValueOutOfRange, invalidTextRepresentation:
		return fmt.Errorf("%w: %s", repo_errors.ErrInvalidValue, detail)
	}

	return err
}

func rollback(tx *sql.Tx, err error) error {
	if e := tx.Rollback(); e != nil {
		return errors.Join(err, e)
	}

	return err
}
