package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/freshbot/freshbot-go/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "chat:session:"
	messageKeyPrefix = "chat:messages:"
	openSessionsKey  = "chat:sessions:open"
)

// RedisConversationStore Redis 会话存储
//
// 会话状态存 hash，消息日志存 list。瞬时写入失败重试一次，
// 仍失败才向调用方暴露（持久化失败是唯一允许上抛的错误类别）。
type RedisConversationStore struct {
	client *redis.Client
	mu     sync.Mutex           // 保护 lastTS
	lastTS map[string]time.Time // token -> 最近一次消息时间戳
	logger *zap.Logger
}

// NewRedisConversationStore 创建 Redis 会话存储
func NewRedisConversationStore(client *redis.Client, logger *zap.Logger) *RedisConversationStore {
	return &RedisConversationStore{
		client: client,
		lastTS: make(map[string]time.Time),
		logger: logger,
	}
}

// GetOrCreate 获取或创建会话
//
// 用 HSetNX 保证同一令牌并发首条消息只创建一个会话。
func (s *RedisConversationStore) GetOrCreate(ctx context.Context, token, userID, userName string) (*model.Conversation, bool, error) {
	sessKey := sessionKeyPrefix + token

	created, err := s.client.HSetNX(ctx, sessKey, "token", token).Result()
	if err != nil {
		return nil, false, fmt.Errorf("创建会话失败: %w", err)
	}

	if !created {
		conv, err := s.Get(ctx, token)
		if err != nil {
			return nil, false, err
		}
		if conv.Active {
			return conv, false, nil
		}
		// 已关闭的令牌被复用：归档旧消息日志，重建会话
		if err := s.archive(ctx, token); err != nil {
			return nil, false, err
		}
	}

	conv := model.NewConversation(token, userID, userName)
	if err := s.write(ctx, conv); err != nil {
		return nil, false, err
	}
	if err := s.client.SAdd(ctx, openSessionsKey, token).Err(); err != nil {
		return nil, false, fmt.Errorf("登记开放会话失败: %w", err)
	}

	s.logger.Info("会话已创建", zap.String("token", token), zap.String("userName", conv.UserName))
	return conv, true, nil
}

// archive 将关闭会话的消息日志迁移到归档键
func (s *RedisConversationStore) archive(ctx context.Context, token string) error {
	msgKey := messageKeyPrefix + token
	archiveKey := fmt.Sprintf("%s%s:closed:%d", messageKeyPrefix, token, time.Now().UnixNano())

	if err := s.client.Rename(ctx, msgKey, archiveKey).Err(); err != nil && err != redis.Nil {
		// 空会话没有消息键，RENAME 报错可忽略
		s.logger.Debug("归档消息日志跳过", zap.String("token", token), zap.Error(err))
	}
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("清理旧会话失败: %w", err)
	}

	s.mu.Lock()
	delete(s.lastTS, token)
	s.mu.Unlock()

	s.logger.Info("令牌复用，旧会话已归档", zap.String("token", token))
	return nil
}

// write 写入会话状态 hash
func (s *RedisConversationStore) write(ctx context.Context, conv *model.Conversation) error {
	err := s.client.HSet(ctx, sessionKeyPrefix+conv.Token,
		"token", conv.Token,
		"userId", conv.UserID,
		"userName", conv.UserName,
		"botHandled", boolField(conv.BotHandled),
		"agentAssigned", boolField(conv.AgentAssigned),
		"active", boolField(conv.Active),
		"createdAt", conv.CreatedAt.Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("写入会话失败: %w", err)
	}
	return nil
}

// Get 查询会话
func (s *RedisConversationStore) Get(ctx context.Context, token string) (*model.Conversation, error) {
	fields, err := s.client.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("读取会话失败: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, fields["createdAt"])
	return &model.Conversation{
		Token:         token,
		UserID:        fields["userId"],
		UserName:      fields["userName"],
		BotHandled:    fields["botHandled"] == "1",
		AgentAssigned: fields["agentAssigned"] == "1",
		Active:        fields["active"] == "1",
		CreatedAt:     createdAt,
	}, nil
}

// AppendMessage 追加消息，瞬时失败重试一次
func (s *RedisConversationStore) AppendMessage(ctx context.Context, token, sender, senderName, body string) (model.Message, error) {
	if _, err := s.Get(ctx, token); err != nil {
		return model.Message{}, err
	}

	s.mu.Lock()
	ts := time.Now()
	if last, ok := s.lastTS[token]; ok && !ts.After(last) {
		ts = last.Add(time.Nanosecond)
	}
	s.lastTS[token] = ts
	s.mu.Unlock()

	msg := model.Message{
		MessageID:  uuid.New().String(),
		Sender:     sender,
		SenderName: senderName,
		Body:       body,
		Timestamp:  ts,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return model.Message{}, fmt.Errorf("序列化消息失败: %w", err)
	}

	msgKey := messageKeyPrefix + token
	if err := s.client.RPush(ctx, msgKey, data).Err(); err != nil {
		s.logger.Warn("消息写入失败，重试一次", zap.String("token", token), zap.Error(err))
		if err := s.client.RPush(ctx, msgKey, data).Err(); err != nil {
			return model.Message{}, fmt.Errorf("消息写入失败: %w", err)
		}
	}
	return msg, nil
}

// Messages 按追加顺序返回全部消息
func (s *RedisConversationStore) Messages(ctx context.Context, token string) ([]model.Message, error) {
	if _, err := s.Get(ctx, token); err != nil {
		return nil, err
	}

	items, err := s.client.LRange(ctx, messageKeyPrefix+token, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取消息失败: %w", err)
	}

	messages := make([]model.Message, 0, len(items))
	for _, item := range items {
		var msg model.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("解析消息失败: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// Escalate 转人工，幂等
func (s *RedisConversationStore) Escalate(ctx context.Context, token string) (bool, error) {
	conv, err := s.Get(ctx, token)
	if err != nil {
		return false, err
	}
	if conv.AgentAssigned {
		return false, nil
	}

	err = s.client.HSet(ctx, sessionKeyPrefix+token,
		"botHandled", "0",
		"agentAssigned", "1",
	).Err()
	if err != nil {
		return false, fmt.Errorf("转人工写入失败: %w", err)
	}

	s.logger.Info("会话已转人工", zap.String("token", token))
	return true, nil
}

// Close 关闭会话
func (s *RedisConversationStore) Close(ctx context.Context, token string) error {
	if _, err := s.Get(ctx, token); err != nil {
		return err
	}

	if err := s.client.HSet(ctx, sessionKeyPrefix+token, "active", "0").Err(); err != nil {
		return fmt.Errorf("关闭会话失败: %w", err)
	}
	if err := s.client.SRem(ctx, openSessionsKey, token).Err(); err != nil {
		return fmt.Errorf("移除开放会话失败: %w", err)
	}

	s.logger.Info("会话已关闭", zap.String("token", token))
	return nil
}

// ListOpen 列出未关闭的会话
func (s *RedisConversationStore) ListOpen(ctx context.Context) ([]model.Conversation, error) {
	tokens, err := s.client.SMembers(ctx, openSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("读取开放会话失败: %w", err)
	}

	out := []model.Conversation{}
	for _, token := range tokens {
		conv, err := s.Get(ctx, token)
		if err == ErrSessionNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		if conv.Active {
			out = append(out, *conv)
		}
	}
	return out, nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
