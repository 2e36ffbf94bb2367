package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies every pending migration found at sourceURL (for example
// "file://migrations") and reports the schema version before and after.
func Migrate(db *sql.DB, sourceURL string) (pre, post uint, err error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, 0, fmt.Errorf("postgres.WithInstance: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return 0, 0, fmt.Errorf("migrate.NewWithDatabaseInstance: %w", err)
	}

	pre, _, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		pre = 0
	} else if err != nil {
		return 0, 0, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return pre, 0, fmt.Errorf("m.Up: %w", err)
	}

	post, _, err = m.Version()
	if err != nil {
		return pre, 0, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}
	return pre, post, nil
}
