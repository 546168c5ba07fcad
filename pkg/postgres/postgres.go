package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

const (
	DriverPq  = "postgres"
	DriverPgx = "pgx"

	defaultMaxConns = 10
)

type Postgres struct {
	Database   *sql.DB
	SqlBuilder squirrel.StatementBuilderType
}

type Option func(*sql.DB)

// WithMaxConns bounds the connection pool. Values below one keep the default of 10.
func WithMaxConns(n int) Option {
	return func(db *sql.DB) {
		if n < 1 {
			n = defaultMaxConns
		}
		db.SetMaxOpenConns(n)
		db.SetMaxIdleConns(n)
	}
}

func NewDB(driver string, url string, opts ...Option) (*Postgres, error) {
	if driver == "" {
		driver = DriverPq
	}
	if driver != DriverPq && driver != DriverPgx {
		return nil, fmt.Errorf("unsupported database driver `%s`", driver)
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error while opening database with driver `%s`. %w", driver, err)
	}

	db.SetMaxOpenConns(defaultMaxConns)
	db.SetMaxIdleConns(defaultMaxConns)
	for _, opt := range opts {
		opt(db)
	}

	return New(db), nil
}

// New wraps an already opened handle. Used by tests with sqlmock.
func New(db *sql.DB) *Postgres {
	return &Postgres{
		Database:   db,
		SqlBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.Database.PingContext(ctx)
}

func (p *Postgres) Close() error {
	if p.Database != nil {
		err := p.Database.Close()
		if err != nil {
			return err
		}

		return nil
	}

	return nil
}
