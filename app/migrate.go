package app

import (
	"database/sql"
	"errors"
	"fmt"

	"reciclame-api/migrations"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/labstack/gommon/log"
)

// runMigrations applies every embedded migration that is not yet recorded in the database.
func runMigrations(db *sql.DB, databaseName string, logger *log.Logger) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("error while reading embedded migrations. %w", err)
	}

	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		return fmt.Errorf("error while creating migration driver. %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return fmt.Errorf("error while preparing migrations. %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no change made by migration scripts")
			return nil
		}
		return fmt.Errorf("error while applying migrations. %w", err)
	}

	version, _, _ := m.Version()
	logger.Infof("database migrated to version %d", version)

	return nil
}
