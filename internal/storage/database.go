package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"searchindex/internal/dialect"
)

// New opens a database connection for the given dialect and verifies it.
// It sets connection pool settings shared by every backend.
func New(d dialect.Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d.Name(), err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", d.Name(), err)
	}

	return db, nil
}

// Migrate creates the search index table for the dialect.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB, d dialect.Dialect) error {
	for _, stmt := range d.Schema() {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
