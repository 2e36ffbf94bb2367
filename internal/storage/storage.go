package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-analysis/internal/config"
)

type Storage struct {
	DB *sql.DB

	exec bob.DB
}

// NewStorage opens the Postgres connection pool and checks it is reachable.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("storage.NewStorage: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage.NewStorage: ping: %w", err)
	}
	return FromDB(db), nil
}

// FromDB wraps an already opened connection pool.
func FromDB(db *sql.DB) *Storage {
	return &Storage{DB: db, exec: bob.NewDB(db)}
}

func (s *Storage) Read() *Reader {
	return NewReader(s.exec)
}

// Snapshots returns the snapshot assembler backed by this database.
func (s *Storage) Snapshots() *SnapshotStore {
	return NewSnapshotStore(s.Read())
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
