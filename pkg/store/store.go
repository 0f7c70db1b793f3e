// Package store persists rosters by owner in sqlite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNoRoster = errors.New("no saved roster")

var ErrCorruptRoster = errors.New("saved roster is malformed")

type Store struct {
	db *sqlx.DB
}

type savedRoster struct {
	Owner     string    `db:"owner"`
	Members   string    `db:"members"`
	UpdatedAt time.Time `db:"updated_at"`
}

func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps :memory: databases coherent and serializes writers
	db.SetMaxOpenConns(1)

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}

	s := &Store{db: db}
	err = s.Migrate(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		/* sql */ `
		CREATE TABLE IF NOT EXISTS roster (
			owner      TEXT PRIMARY KEY,
			members    TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("error while creating roster table: %w", err)
	}

	return nil
}

func (s *Store) SaveRoster(ctx context.Context, owner string, numbers []int) error {
	if numbers == nil {
		numbers = []int{}
	}
	members, err := json.Marshal(numbers)
	if err != nil {
		return fmt.Errorf("could not encode roster for owner %q: %w", owner, err)
	}

	_, err = s.db.ExecContext(ctx,
		/* sql */ `
		INSERT INTO roster (owner, members, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (owner) DO UPDATE
		SET members = excluded.members, updated_at = excluded.updated_at
	`, owner, string(members), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("error while saving roster for owner %q: %w", owner, err)
	}

	return nil
}

// LoadRoster returns the saved pokedex numbers in roster order. Numbers are
// not checked against the dataset here.
func (s *Store) LoadRoster(ctx context.Context, owner string) ([]int, error) {
	var saved savedRoster
	err := s.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT owner, members, updated_at
		FROM roster
		WHERE owner = ?
	`, owner).StructScan(&saved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("owner %q: %w", owner, ErrNoRoster)
	} else if err != nil {
		return nil, fmt.Errorf("error while loading roster for owner %q: %w", owner, err)
	}

	var numbers []int
	err = json.Unmarshal([]byte(saved.Members), &numbers)
	if err != nil {
		return nil, fmt.Errorf("owner %q: %w: %v", owner, ErrCorruptRoster, err)
	}
	for _, n := range numbers {
		if n <= 0 {
			return nil, fmt.Errorf("owner %q has pokedex number %d: %w", owner, n, ErrCorruptRoster)
		}
	}

	return numbers, nil
}

func (s *Store) DeleteRoster(ctx context.Context, owner string) error {
	_, err := s.db.ExecContext(ctx,
		/* sql */ `
		DELETE FROM roster
		WHERE owner = ?
	`, owner)
	if err != nil {
		return fmt.Errorf("error while deleting roster for owner %q: %w", owner, err)
	}

	return nil
}
