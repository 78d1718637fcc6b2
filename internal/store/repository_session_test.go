package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ndanilenko/authgate/internal/logger"
	"github.com/redis/go-redis/v9"
)

func newTestSessionRepo(t *testing.T) (SessionRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRepository(client, logger.Nop()), mr
}

func TestSaveTokenHash(t *testing.T) {
	repo, mr := newTestSessionRepo(t)
	ctx := context.Background()

	if err := repo.SaveTokenHash(ctx, 42, "$2a$10$reference-hash", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := mr.Get("session:42")
	if err != nil {
		t.Fatalf("expected key session:42 to exist: %v", err)
	}
	if stored != "$2a$10$reference-hash" {
		t.Errorf("expected stored hash, got %q", stored)
	}

	if ttl := mr.TTL("session:42"); ttl != time.Hour {
		t.Errorf("expected TTL of 1h, got %v", ttl)
	}
}

func TestSaveTokenHash_OverwritesPrevious(t *testing.T) {
	repo, mr := newTestSessionRepo(t)
	ctx := context.Background()

	if err := repo.SaveTokenHash(ctx, 42, "hash-of-t1", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SaveTokenHash(ctx, 42, "hash-of-t2", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := mr.Get("session:42")
	if err != nil {
		t.Fatalf("expected key session:42 to exist: %v", err)
	}
	if stored != "hash-of-t2" {
		t.Errorf("expected latest login to win, got %q", stored)
	}
}

func TestGetTokenHash(t *testing.T) {
	repo, mr := newTestSessionRepo(t)
	ctx := context.Background()

	mr.Set("session:42", "$2a$10$reference-hash")

	got, err := repo.GetTokenHash(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "$2a$10$reference-hash" {
		t.Errorf("expected stored hash, got %q", got)
	}
}

func TestGetTokenHash_NoSession(t *testing.T) {
	repo, _ := newTestSessionRepo(t)

	_, err := repo.GetTokenHash(context.Background(), 42)
	if !errors.Is(err, ErrNoSessionWasFound) {
		t.Fatalf("expected ErrNoSessionWasFound, got %v", err)
	}
}

func TestGetTokenHash_Expired(t *testing.T) {
	repo, mr := newTestSessionRepo(t)
	ctx := context.Background()

	if err := repo.SaveTokenHash(ctx, 42, "hash", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	_, err := repo.GetTokenHash(ctx, 42)
	if !errors.Is(err, ErrNoSessionWasFound) {
		t.Fatalf("expected ErrNoSessionWasFound after expiry, got %v", err)
	}
}

func TestDeleteTokenHash(t *testing.T) {
	repo, mr := newTestSessionRepo(t)
	ctx := context.Background()

	mr.Set("session:42", "hash")

	if err := repo.DeleteTokenHash(ctx, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.Exists("session:42") {
		t.Error("expected key session:42 to be removed")
	}
}

func TestDeleteTokenHash_MissingEntry(t *testing.T) {
	repo, _ := newTestSessionRepo(t)

	if err := repo.DeleteTokenHash(context.Background(), 42); err != nil {
		t.Fatalf("expected deleting a missing entry to succeed, got %v", err)
	}
}
