package store

import (
	"context"
	"sync"
	"time"

	"github.com/freshbot/freshbot-go/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionRecord 单个会话的内存记录
type sessionRecord struct {
	conv     model.Conversation
	messages []model.Message
	lastTS   time.Time
}

// MemoryConversationStore 内存会话存储
type MemoryConversationStore struct {
	sessions map[string]*sessionRecord
	archived []*sessionRecord // 令牌被复用后归档的旧会话
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewMemoryConversationStore 创建内存会话存储
func NewMemoryConversationStore(logger *zap.Logger) *MemoryConversationStore {
	return &MemoryConversationStore{
		sessions: make(map[string]*sessionRecord),
		logger:   logger,
	}
}

// GetOrCreate 获取或创建会话
func (s *MemoryConversationStore) GetOrCreate(ctx context.Context, token, userID, userName string) (*model.Conversation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.sessions[token]; ok {
		if rec.conv.Active {
			conv := rec.conv
			return &conv, false, nil
		}
		// 已关闭的令牌被复用：归档旧会话，开启新会话
		s.archived = append(s.archived, rec)
		s.logger.Info("令牌复用，旧会话已归档",
			zap.String("token", token),
			zap.Int("archivedMessages", len(rec.messages)))
	}

	conv := model.NewConversation(token, userID, userName)
	s.sessions[token] = &sessionRecord{conv: *conv}
	s.logger.Info("会话已创建", zap.String("token", token), zap.String("userName", conv.UserName))

	out := *conv
	return &out, true, nil
}

// Get 查询会话
func (s *MemoryConversationStore) Get(ctx context.Context, token string) (*model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	conv := rec.conv
	return &conv, nil
}

// AppendMessage 追加消息，时间戳严格递增
func (s *MemoryConversationStore) AppendMessage(ctx context.Context, token, sender, senderName, body string) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[token]
	if !ok {
		return model.Message{}, ErrSessionNotFound
	}

	ts := time.Now()
	if !ts.After(rec.lastTS) {
		ts = rec.lastTS.Add(time.Nanosecond)
	}
	rec.lastTS = ts

	msg := model.Message{
		MessageID:  uuid.New().String(),
		Sender:     sender,
		SenderName: senderName,
		Body:       body,
		Timestamp:  ts,
	}
	rec.messages = append(rec.messages, msg)
	return msg, nil
}

// Messages 按追加顺序返回全部消息
func (s *MemoryConversationStore) Messages(ctx context.Context, token string) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}

	out := make([]model.Message, len(rec.messages))
	copy(out, rec.messages)
	return out, nil
}

// Escalate 转人工，幂等
func (s *MemoryConversationStore) Escalate(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[token]
	if !ok {
		return false, ErrSessionNotFound
	}
	if rec.conv.AgentAssigned {
		return false, nil
	}

	rec.conv.AgentAssigned = true
	rec.conv.BotHandled = false
	s.logger.Info("会话已转人工", zap.String("token", token))
	return true, nil
}

// Close 关闭会话
func (s *MemoryConversationStore) Close(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}

	rec.conv.Active = false
	s.logger.Info("会话已关闭", zap.String("token", token))
	return nil
}

// ListOpen 列出未关闭的会话
func (s *MemoryConversationStore) ListOpen(ctx context.Context) ([]model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Conversation{}
	for _, rec := range s.sessions {
		if rec.conv.Active {
			out = append(out, rec.conv)
		}
	}
	return out, nil
}
