package store

import (
	"context"
	"fmt"

	"github.com/ndanilenko/authgate/internal/config"
	"github.com/ndanilenko/authgate/internal/logger"
)

// Storages aggregates all repositories the service layer depends on.
//
// SessionRepository is nil when no session cache is configured; config
// validation guarantees it is present whenever concurrent-login limiting
// is enabled.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
}

// NewStorages connects all configured storage backends, applies database
// migrations and returns the assembled repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
	}

	if cfg.Redis.Address != "" {
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		storages.SessionRepository = NewSessionRepository(client, log)
	}

	return storages, nil
}
