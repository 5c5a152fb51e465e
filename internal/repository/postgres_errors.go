package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation           = "23505"
	pgInvalidTextRepresentation = "22P02"
)

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgInvalidTextRepresentation:
			// ids are uuid columns; a malformed id cannot match any row
			return ErrNotFound
		}
	}
	return err
}

// NewPostgresStore wires the pgx-backed repositories.
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:        NewUserRepository(pool),
		Profiles:     NewProfileRepository(pool),
		Jobs:         NewJobRepository(pool),
		Applications: NewApplicationRepository(pool),
		Stats:        NewStatsRepository(pool),
	}
}
