package store

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/freshbot/freshbot-go/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// newTestRedisStore 基于 miniredis 构造 Redis 会话存储
func newTestRedisStore(t *testing.T) (*RedisConversationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisConversationStore(client, zap.NewNop()), mr
}

func TestRedisGetOrCreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)

	conv, created, err := s.GetOrCreate(ctx, "tok-1", "u-9", "Alice")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if !created {
		t.Error("first call must create the session")
	}

	got, err := s.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.UserID != "u-9" || got.UserName != "Alice" {
		t.Errorf("persisted identity wrong: %+v", got)
	}
	if !got.BotHandled || got.AgentAssigned || !got.Active {
		t.Errorf("persisted state wrong: %+v", got)
	}
	if !got.CreatedAt.Equal(conv.CreatedAt) {
		t.Errorf("createdAt mismatch: %v vs %v", got.CreatedAt, conv.CreatedAt)
	}
}

func TestRedisGetUnknownToken(t *testing.T) {
	s, _ := newTestRedisStore(t)
	if _, err := s.Get(context.Background(), "missing"); err != ErrSessionNotFound {
		t.Errorf("Get(missing) = %v, want ErrSessionNotFound", err)
	}
}

func TestRedisAppendAndMessages(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)
	s.GetOrCreate(ctx, "tok-1", "", "Alice")

	bodies := []string{"hello", "Hi!", "bye"}
	senders := []string{model.SenderUser, model.SenderBot, model.SenderUser}
	for i := range bodies {
		if _, err := s.AppendMessage(ctx, "tok-1", senders[i], "x", bodies[i]); err != nil {
			t.Fatalf("AppendMessage failed: %v", err)
		}
	}

	messages, err := s.Messages(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(messages))
	}
	for i, msg := range messages {
		if msg.Body != bodies[i] || msg.Sender != senders[i] {
			t.Errorf("message %d = %+v, want %q from %q", i, msg, bodies[i], senders[i])
		}
		if i > 0 && !msg.Timestamp.After(messages[i-1].Timestamp) {
			t.Errorf("timestamps not strictly increasing at index %d", i)
		}
	}
}

func TestRedisAppendUnknownToken(t *testing.T) {
	s, _ := newTestRedisStore(t)
	_, err := s.AppendMessage(context.Background(), "missing", model.SenderUser, "x", "hi")
	if err != ErrSessionNotFound {
		t.Errorf("AppendMessage(missing) = %v, want ErrSessionNotFound", err)
	}
}

func TestRedisEscalateIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)
	s.GetOrCreate(ctx, "tok-1", "", "Alice")

	flipped, err := s.Escalate(ctx, "tok-1")
	if err != nil || !flipped {
		t.Fatalf("first Escalate = (%v, %v), want (true, nil)", flipped, err)
	}
	flipped, err = s.Escalate(ctx, "tok-1")
	if err != nil || flipped {
		t.Fatalf("second Escalate = (%v, %v), want (false, nil)", flipped, err)
	}

	conv, _ := s.Get(ctx, "tok-1")
	if !conv.AgentAssigned || conv.BotHandled {
		t.Errorf("escalated state wrong: %+v", conv)
	}
}

func TestRedisCloseAndListOpen(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)
	s.GetOrCreate(ctx, "tok-1", "", "Alice")
	s.GetOrCreate(ctx, "tok-2", "", "Bob")

	if err := s.Close(ctx, "tok-1"); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	open, err := s.ListOpen(ctx)
	if err != nil {
		t.Fatalf("ListOpen failed: %v", err)
	}
	if len(open) != 1 || open[0].Token != "tok-2" {
		t.Errorf("open sessions = %+v, want only tok-2", open)
	}
}

func TestRedisTokenReuseArchivesHistory(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t)
	s.GetOrCreate(ctx, "tok-1", "", "Alice")
	s.AppendMessage(ctx, "tok-1", model.SenderUser, "Alice", "old conversation")
	s.Close(ctx, "tok-1")

	_, created, err := s.GetOrCreate(ctx, "tok-1", "", "Alice")
	if err != nil {
		t.Fatalf("GetOrCreate after close failed: %v", err)
	}
	if !created {
		t.Error("reused token must start a fresh conversation")
	}

	messages, _ := s.Messages(ctx, "tok-1")
	if len(messages) != 0 {
		t.Errorf("fresh conversation must start empty, got %v", messages)
	}

	// 旧日志归档保留
	archived := false
	for _, key := range mr.Keys() {
		if strings.HasPrefix(key, "chat:messages:tok-1:closed:") {
			archived = true
		}
	}
	if !archived {
		t.Error("old transcript must be archived, not deleted")
	}
}
