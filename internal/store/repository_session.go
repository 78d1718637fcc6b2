package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ndanilenko/authgate/internal/logger"
	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces session reference keys inside Redis.
const sessionKeyPrefix = "session:"

// sessionRepository is the Redis-backed implementation of [SessionRepository].
//
// Each user has at most one key ("session:<userID>") whose value is the
// bcrypt hash of the currently valid access token. SaveTokenHash overwrites
// unconditionally, so the most recent login always wins; two concurrent
// logins for the same user race with last-write-wins semantics, which is
// accepted behaviour.
type sessionRepository struct {
	logger *logger.Logger
	client *redis.Client
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided Redis client and logger.
func NewSessionRepository(client *redis.Client, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		client: client,
		logger: logger,
	}
}

// SaveTokenHash stores tokenHash as the single valid session reference for
// userID. The entry expires after ttl so a reference never outlives the
// token it belongs to.
func (r *sessionRepository) SaveTokenHash(ctx context.Context, userID int64, tokenHash string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	if err := r.client.Set(ctx, sessionKey(userID), tokenHash, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveTokenHash").Int64("user_id", userID).Msg("error saving session reference")
		return fmt.Errorf("error saving session reference: %w", err)
	}

	return nil
}

// GetTokenHash returns the stored reference hash for userID.
//
// Error handling:
//   - redis.Nil (missing key) → [ErrNoSessionWasFound].
//   - Any other client error → wrapped and returned.
func (r *sessionRepository) GetTokenHash(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	tokenHash, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSessionWasFound
		}
		log.Err(err).Str("func", "*sessionRepository.GetTokenHash").Int64("user_id", userID).Msg("error reading session reference")
		return "", fmt.Errorf("error reading session reference: %w", err)
	}

	return tokenHash, nil
}

// DeleteTokenHash removes the session reference for userID. Removing a
// missing entry succeeds silently.
func (r *sessionRepository) DeleteTokenHash(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteTokenHash").Int64("user_id", userID).Msg("error deleting session reference")
		return fmt.Errorf("error deleting session reference: %w", err)
	}

	return nil
}

func sessionKey(userID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(userID, 10)
}
