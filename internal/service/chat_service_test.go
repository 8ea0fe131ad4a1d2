package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/freshbot/freshbot-go/internal/bot"
	"github.com/freshbot/freshbot-go/internal/lookup"
	"github.com/freshbot/freshbot-go/internal/model"
	"github.com/freshbot/freshbot-go/internal/store"
	"go.uber.org/zap"
)

// recordingNotifier 记录收到的转人工通知
type recordingNotifier struct {
	notifications []model.HandoffNotification
}

func (n *recordingNotifier) NotifyHandoff(notification model.HandoffNotification) {
	n.notifications = append(n.notifications, notification)
}

// newTestChatService 用内存存储和固定随机源搭建完整流水线
func newTestChatService(t *testing.T, rules []bot.ResponseRule) (*ChatService, *recordingNotifier) {
	t.Helper()
	logger := zap.NewNop()

	responder := bot.NewResponder(
		bot.NewRuleRepository(rules, logger),
		bot.NewClassifier(bot.DefaultIntents(), logger),
		bot.NewExtractor(),
		lookup.NewMemoryCatalog(),
		lookup.NewMemoryOrders(),
		lookup.NewMemoryStores(),
		time.Second,
		logger,
	)
	responder.SetRandInt(func(n int) int { return 0 })

	notifier := &recordingNotifier{}
	svc := NewChatService(
		store.NewMemoryConversationStore(logger),
		responder,
		"FreshBot",
		notifier,
		logger,
	)
	return svc, notifier
}

func TestHandleMessageRuleMatchKeepsBotHandled(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestChatService(t, []bot.ResponseRule{
		{Keywords: []string{"hello", "hi"}, Response: "Hi!", Priority: 10, Active: true},
	})

	response, token, err := svc.HandleMessage(ctx, "tok-1", "", "Alice", "hello")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if response != "Hi!" {
		t.Errorf("response = %q, want Hi!", response)
	}
	if token != "tok-1" {
		t.Errorf("token = %q, want tok-1", token)
	}

	messages, agentAssigned, err := svc.ListMessages(ctx, "tok-1")
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if agentAssigned {
		t.Error("botHandled session must not be agent assigned")
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want user + bot", len(messages))
	}
	if messages[0].Sender != model.SenderUser || messages[0].Body != "hello" {
		t.Errorf("first message wrong: %+v", messages[0])
	}
	if messages[1].Sender != model.SenderBot || messages[1].Body != "Hi!" {
		t.Errorf("second message wrong: %+v", messages[1])
	}
}

func TestHandleMessageGeneratesToken(t *testing.T) {
	svc, _ := newTestChatService(t, nil)

	_, token, err := svc.HandleMessage(context.Background(), "", "", "", "hey there friend")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if token == "" {
		t.Error("empty inbound token must produce a generated token")
	}
}

func TestHandleMessageEscalationPhrase(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newTestChatService(t, nil)

	_, _, err := svc.HandleMessage(ctx, "tok-1", "", "Alice",
		"I want to speak to a manager, this is unacceptable")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	messages, agentAssigned, _ := svc.ListMessages(ctx, "tok-1")
	if !agentAssigned {
		t.Error("escalation phrase must assign an agent")
	}

	notices := 0
	for _, msg := range messages {
		if msg.Body == bot.HandoffNotice {
			notices++
		}
	}
	if notices != 1 {
		t.Errorf("got %d handoff notices, want exactly 1", notices)
	}
	if len(notifier.notifications) != 1 {
		t.Errorf("got %d handoff notifications, want 1", len(notifier.notifications))
	}
}

func TestHandleMessageEscalationIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newTestChatService(t, nil)

	// 两条消息各自触发转人工条件
	if _, _, err := svc.HandleMessage(ctx, "tok-1", "", "Alice", "human agent please"); err != nil {
		t.Fatalf("first message failed: %v", err)
	}
	if _, _, err := svc.HandleMessage(ctx, "tok-1", "", "Alice", "escalate this now"); err != nil {
		t.Fatalf("second message failed: %v", err)
	}

	messages, agentAssigned, _ := svc.ListMessages(ctx, "tok-1")
	if !agentAssigned {
		t.Error("session must stay agent assigned")
	}

	notices := 0
	for _, msg := range messages {
		if msg.Body == bot.HandoffNotice {
			notices++
		}
	}
	if notices != 1 {
		t.Errorf("got %d handoff notices, want exactly 1 despite repeated triggers", notices)
	}
	if len(notifier.notifications) != 1 {
		t.Errorf("got %d notifications, want 1", len(notifier.notifications))
	}
}

func TestHandleMessageFallbackEscalates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestChatService(t, nil)

	_, _, err := svc.HandleMessage(ctx, "tok-1", "", "Alice", "zzqqy")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	_, agentAssigned, _ := svc.ListMessages(ctx, "tok-1")
	if !agentAssigned {
		t.Error("fallback intent must escalate the session")
	}
}

func TestHandleMessageOrderNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestChatService(t, nil)

	response, _, err := svc.HandleMessage(ctx, "tok-1", "", "Alice", "track order 555")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if !strings.Contains(response, "555") {
		t.Errorf("not-found response must reference the order number, got %q", response)
	}

	_, agentAssigned, _ := svc.ListMessages(ctx, "tok-1")
	if agentAssigned {
		t.Error("order lookup miss alone must not escalate")
	}
}

func TestHandleMessageOrderingAcrossTurns(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestChatService(t, nil)

	inputs := []string{"hey there friend", "track order 1001", "bye for now"}
	for _, text := range inputs {
		if _, _, err := svc.HandleMessage(ctx, "tok-1", "", "Alice", text); err != nil {
			t.Fatalf("HandleMessage(%q) failed: %v", text, err)
		}
	}

	messages, _, err := svc.ListMessages(ctx, "tok-1")
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	for i := 1; i < len(messages); i++ {
		if !messages[i].Timestamp.After(messages[i-1].Timestamp) {
			t.Errorf("timestamps not strictly increasing at index %d", i)
		}
	}

	// 每轮都是 user 后跟至少一条 bot 消息
	userBodies := []string{}
	for _, msg := range messages {
		if msg.Sender == model.SenderUser {
			userBodies = append(userBodies, msg.Body)
		}
	}
	if len(userBodies) != len(inputs) {
		t.Fatalf("got %d user messages, want %d", len(userBodies), len(inputs))
	}
	for i, body := range userBodies {
		if body != inputs[i] {
			t.Errorf("user message %d = %q, want %q", i, body, inputs[i])
		}
	}
}

func TestCloseSessionKeepsHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestChatService(t, nil)

	if _, _, err := svc.HandleMessage(ctx, "tok-1", "", "Alice", "hey there friend"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if err := svc.CloseSession(ctx, "tok-1"); err != nil {
		t.Fatalf("CloseSession failed: %v", err)
	}

	open, err := svc.ListOpenSessions(ctx)
	if err != nil {
		t.Fatalf("ListOpenSessions failed: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("closed session still open: %+v", open)
	}

	messages, _, err := svc.ListMessages(ctx, "tok-1")
	if err != nil {
		t.Fatalf("ListMessages after close failed: %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("history must survive close, got %d messages", len(messages))
	}
}

func TestCloseSessionUnknownToken(t *testing.T) {
	svc, _ := newTestChatService(t, nil)
	if err := svc.CloseSession(context.Background(), "missing"); err != store.ErrSessionNotFound {
		t.Errorf("CloseSession(missing) = %v, want ErrSessionNotFound", err)
	}
}

func TestAppendAgentMessage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestChatService(t, nil)

	svc.HandleMessage(ctx, "tok-1", "", "Alice", "human agent please")
	if err := svc.AppendAgentMessage(ctx, "tok-1", "Agent Lee", "Hello, taking over."); err != nil {
		t.Fatalf("AppendAgentMessage failed: %v", err)
	}

	messages, _, _ := svc.ListMessages(ctx, "tok-1")
	last := messages[len(messages)-1]
	if last.Sender != model.SenderAgent || last.SenderName != "Agent Lee" {
		t.Errorf("agent message wrong: %+v", last)
	}
}
