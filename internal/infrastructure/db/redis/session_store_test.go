package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

func newStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, "work", ttl), mr
}

func TestSessionStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, 0)

	if s, err := store.Get(ctx); s != nil || err != nil {
		t.Fatalf("expected no session, got %+v %v", s, err)
	}

	want := domain.Session{Token: "tok", User: domain.User{ID: 3, Email: "a@b.c", Role: domain.RoleClient}}
	if err := store.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	if tok, _ := mr.Get("session:work:auth_token"); tok != "tok" {
		t.Fatalf("unexpected token key: %q", tok)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.User != want.User {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mr.Exists("session:work:auth_token") || mr.Exists("session:work:user") {
		t.Fatalf("keys survived clear")
	}
}

func TestSessionStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, time.Hour)

	if err := store.Set(ctx, domain.Session{Token: "tok", User: domain.User{ID: 1}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("session:work:user"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}

	mr.FastForward(2 * time.Hour)
	if s, err := store.Get(ctx); s != nil || err != nil {
		t.Fatalf("expected expired session, got %+v %v", s, err)
	}
}

func TestSessionStore_ZeroTTLPersists(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, 0)

	if err := store.Set(ctx, domain.Session{Token: "tok", User: domain.User{ID: 1}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("session:work:auth_token"); ttl != 0 {
		t.Fatalf("expected no ttl, got %v", ttl)
	}

	mr.FastForward(365 * 24 * time.Hour)
	s, err := store.Get(ctx)
	if err != nil || s == nil || s.Token != "tok" {
		t.Fatalf("expected session to survive, got %+v %v", s, err)
	}
}

func TestSessionStore_HalfPair(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, 0)

	if err := mr.Set("session:work:auth_token", "tok"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if s, err := store.Get(ctx); s != nil || err != nil {
		t.Fatalf("token without user should read as no session, got %+v %v", s, err)
	}
}

