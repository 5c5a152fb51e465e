package auth

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestMemorySessionLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	store := NewMemorySessionStore(24 * time.Hour).WithClock(clock.Now)

	session, err := store.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !session.ExpiresAt.Equal(clock.now.Add(24 * time.Hour)) {
		t.Fatalf("unexpected expiry %s", session.ExpiresAt)
	}

	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", got.UserID)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("second Delete should be a no-op: %v", err)
	}
	if _, err := store.Get(ctx, session.ID); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestMemorySessionFixedExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	store := NewMemorySessionStore(24 * time.Hour).WithClock(clock.Now)

	session, _ := store.Create(ctx, "user-1")

	clock.Advance(23 * time.Hour)
	if _, err := store.Get(ctx, session.ID); err != nil {
		t.Fatalf("session should still be valid: %v", err)
	}

	// reads do not extend the lifetime
	clock.Advance(time.Hour)
	if _, err := store.Get(ctx, session.ID); err != ErrSessionNotFound {
		t.Fatalf("expected expiry at 24h, got %v", err)
	}
}

func TestMemorySessionSweepAndClose(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	store := NewMemorySessionStore(time.Hour).WithClock(clock.Now)

	store.Create(ctx, "old")
	clock.Advance(2 * time.Hour)
	fresh, _ := store.Create(ctx, "fresh")

	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("expected 1 swept session, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining session, got %d", store.Len())
	}
	if _, err := store.Get(ctx, fresh.ID); err != nil {
		t.Fatalf("fresh session lost: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("Close should clear all sessions")
	}
}
