package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/spec-kit/placement-service/internal/config"
)

const memoryPath = ":memory:"

// SQLite wraps an embedded database handle.
type SQLite struct {
	DB *sqlx.DB
}

// NewSQLite opens the database file at cfg.Path; ":memory:" gives a private in-process database.
func NewSQLite(cfg config.SQLiteConfig, logger *zap.Logger) (*SQLite, error) {
	db, err := sqlx.Connect("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	// every connection to :memory: is a separate database
	if cfg.Path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if logger != nil {
		logger.Info("opened sqlite database", zap.String("path", cfg.Path))
	}
	return &SQLite{DB: db}, nil
}

// Close releases the handle.
func (s *SQLite) Close() {
	if s != nil && s.DB != nil {
		_ = s.DB.Close()
	}
}

// Ping verifies database connectivity.
func (s *SQLite) Ping(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("sqlite database not configured")
	}
	return s.DB.PingContext(ctx)
}
