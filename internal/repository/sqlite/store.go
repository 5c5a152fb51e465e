package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/spec-kit/placement-service/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('student', 'employer', 'officer', 'admin')),
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS student_profiles (
	user_id TEXT PRIMARY KEY REFERENCES users(id),
	department TEXT NOT NULL,
	cgpa REAL NOT NULL DEFAULT 0,
	graduation_year INTEGER NOT NULL,
	resume_url TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS employer_profiles (
	user_id TEXT PRIMARY KEY REFERENCES users(id),
	company_name TEXT NOT NULL,
	industry TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	is_approved INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS jobs (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	employer_id TEXT NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	requirements TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL,
	salary TEXT NOT NULL DEFAULT '',
	posted_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS applications (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	job_id TEXT NOT NULL REFERENCES jobs(id),
	student_id TEXT NOT NULL REFERENCES users(id),
	status TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	UNIQUE (student_id, job_id)
);

CREATE INDEX IF NOT EXISTS idx_jobs_employer_id ON jobs(employer_id);
CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// NewStore wires the SQLite-backed repositories.
func NewStore(db *sqlx.DB) *repository.Store {
	return &repository.Store{
		Users:        NewUserRepository(db),
		Profiles:     NewProfileRepository(db),
		Jobs:         NewJobRepository(db),
		Applications: NewApplicationRepository(db),
		Stats:        NewStatsRepository(db),
	}
}

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return repository.ErrDuplicate
		case sqlite3.SQLITE_CONSTRAINT:
			if strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed") {
				return repository.ErrDuplicate
			}
		}
	}
	return err
}
