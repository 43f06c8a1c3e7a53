// Package database opens the configured persistence backend and prepares its schema.
package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"blog-api/internal/config"
	"blog-api/internal/repository"
	"blog-api/internal/repository/postgres"
	"blog-api/internal/repository/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store bundles the repositories of one backend with the function releasing it.
type Store struct {
	Users repository.UserRepository
	Posts repository.PostRepository
	close func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the backend selected by cfg.Database.Driver and creates missing tables.
func Open(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*Store, error) {
	var store *Store
	switch driver := strings.ToLower(cfg.Database.Driver); driver {
	case "", DriverSQLite:
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		store = &Store{
			Users: sqlite.NewUserRepository(db),
			Posts: sqlite.NewPostRepository(db),
			close: db.Close,
		}
	case DriverPostgres:
		db, err := postgres.Open(cfg.Database.DSN, logger)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("postgres pool: %w", err)
		}
		store = &Store{
			Users: postgres.NewUserRepository(db),
			Posts: postgres.NewPostRepository(db),
			close: sqlDB.Close,
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// users first: posts reference them
	if err := store.Users.Init(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("init user repository: %w", err)
	}
	if err := store.Posts.Init(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("init post repository: %w", err)
	}
	return store, nil
}
