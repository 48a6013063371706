package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStore_UserRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	payload := json.RawMessage(`{"id":1,"name":"A"}`)
	if err := store.SetUser(ctx, "sess1", payload); err != nil {
		t.Fatalf("SetUser: %v", err)
	}

	got, err := store.GetUser(ctx, "sess1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload not stored verbatim: %s", got)
	}
}

func TestRedisStore_GetUserAbsent(t *testing.T) {
	store, _ := newRedisStore(t)

	got, err := store.GetUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent session, got %s", got)
	}
}

func TestRedisStore_CorruptPayloadReadsAsAbsent(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	// Simulate out-of-band corruption of the stored blob.
	if err := mr.Set("session:sess1:user", "{definitely not json"); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}

	got, err := store.GetUser(ctx, "sess1")
	if err != nil {
		t.Fatalf("corrupt session must not error: %v", err)
	}
	if got != nil {
		t.Fatalf("corrupt session must read as absent, got %s", got)
	}
}

func TestRedisStore_ClearUserAlwaysLeavesNil(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	// Clearing a session that never existed is fine too.
	if err := store.ClearUser(ctx, "sess1"); err != nil {
		t.Fatalf("ClearUser on empty session: %v", err)
	}

	_ = store.SetUser(ctx, "sess1", json.RawMessage(`{"id":1}`))
	if err := store.ClearUser(ctx, "sess1"); err != nil {
		t.Fatalf("ClearUser: %v", err)
	}

	got, err := store.GetUser(ctx, "sess1")
	if err != nil || got != nil {
		t.Fatalf("expected nil after clear, got %s (err %v)", got, err)
	}
}

func TestRedisStore_AdminFlag(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	admin, err := store.GetAdminFlag(ctx, "sess1")
	if err != nil || admin {
		t.Fatalf("expected unset flag, got %v (err %v)", admin, err)
	}

	if err := store.SetAdminFlag(ctx, "sess1"); err != nil {
		t.Fatalf("SetAdminFlag: %v", err)
	}
	admin, err = store.GetAdminFlag(ctx, "sess1")
	if err != nil || !admin {
		t.Fatalf("expected set flag, got %v (err %v)", admin, err)
	}

	if err := store.ClearAdminFlag(ctx, "sess1"); err != nil {
		t.Fatalf("ClearAdminFlag: %v", err)
	}
	admin, _ = store.GetAdminFlag(ctx, "sess1")
	if admin {
		t.Fatalf("expected cleared flag")
	}
}

func TestRedisStore_UserAndAdminAreIndependent(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	_ = store.SetUser(ctx, "sess1", json.RawMessage(`{"name":"A"}`))
	_ = store.SetAdminFlag(ctx, "sess1")

	// User logout must not clear the admin flag.
	if err := store.ClearUser(ctx, "sess1"); err != nil {
		t.Fatalf("ClearUser: %v", err)
	}
	admin, _ := store.GetAdminFlag(ctx, "sess1")
	if !admin {
		t.Fatalf("admin flag must survive user logout")
	}

	// And the flag alone says nothing about the user payload.
	got, _ := store.GetUser(ctx, "sess1")
	if got != nil {
		t.Fatalf("user payload should be gone, got %s", got)
	}
}

func TestRedisStore_SurvivesReconnect(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()
	ctx := context.Background()
	payload := json.RawMessage(`{"id":1,"name":"A"}`)

	first := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	if err := NewRedisStore(first, time.Hour).SetUser(ctx, "sess1", payload); err != nil {
		t.Fatalf("SetUser: %v", err)
	}
	first.Close()

	// A fresh client over the same backing store models a frontend restart;
	// the identity must still be there.
	second := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer second.Close()
	got, err := NewRedisStore(second, time.Hour).GetUser(ctx, "sess1")
	if err != nil {
		t.Fatalf("GetUser after reconnect: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("identity lost across reconnect: %s", got)
	}
}
