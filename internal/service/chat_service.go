package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/freshbot/freshbot-go/internal/bot"
	"github.com/freshbot/freshbot-go/internal/model"
	"github.com/freshbot/freshbot-go/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandoffNotifier 转人工事件的接收方（客服控制台）
//
// 通知失败不影响主流程。
type HandoffNotifier interface {
	NotifyHandoff(notification model.HandoffNotification)
}

// ChatService 会话处理服务，承载完整应答流水线
type ChatService struct {
	store     store.ConversationStore
	responder *bot.Responder
	botName   string
	notifier  HandoffNotifier
	locks     sync.Map // token -> *sync.Mutex，同一会话的写入串行化
	logger    *zap.Logger
}

// NewChatService 创建会话处理服务
func NewChatService(
	convStore store.ConversationStore,
	responder *bot.Responder,
	botName string,
	notifier HandoffNotifier,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		store:     convStore,
		responder: responder,
		botName:   botName,
		notifier:  notifier,
		logger:    logger,
	}
}

// lockFor 取得 token 对应的会话锁
func (s *ChatService) lockFor(token string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(token, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// HandleMessage 处理一条入站消息，返回机器人应答与会话令牌
//
// 流程：获取/创建会话 → 记录用户消息 → 生成应答 → 记录机器人消息 →
// 判定转人工。只有持久化失败会上抛，应答逻辑的故障在 Responder 内部降级。
func (s *ChatService) HandleMessage(ctx context.Context, token, userID, userName, text string) (string, string, error) {
	if token == "" {
		token = uuid.New().String()
	}

	mu := s.lockFor(token)
	mu.Lock()
	defer mu.Unlock()

	conv, created, err := s.store.GetOrCreate(ctx, token, userID, userName)
	if err != nil {
		return "", token, fmt.Errorf("加载会话失败: %w", err)
	}
	if created {
		s.logger.Info("新会话开始", zap.String("token", token))
	}

	// 调用方断开后已追加的消息必须保留，追加操作不跟随取消
	appendCtx := context.WithoutCancel(ctx)

	if _, err := s.store.AppendMessage(appendCtx, token, model.SenderUser, conv.UserName, text); err != nil {
		return "", token, fmt.Errorf("记录用户消息失败: %w", err)
	}

	reply := s.responder.Respond(ctx, text)

	// 转人工短语独立于规则与意图，命中即转人工
	escalate := reply.Escalate || bot.ContainsEscalationPhrase(text)

	if _, err := s.store.AppendMessage(appendCtx, token, model.SenderBot, s.botName, reply.Text); err != nil {
		return "", token, fmt.Errorf("记录机器人消息失败: %w", err)
	}

	if escalate {
		if err := s.escalate(appendCtx, token, conv.UserName, text); err != nil {
			return "", token, err
		}
	}

	return reply.Text, token, nil
}

// escalate 翻转会话状态并追加一条转人工提示，幂等
func (s *ChatService) escalate(ctx context.Context, token, userName, lastMessage string) error {
	flipped, err := s.store.Escalate(ctx, token)
	if err != nil {
		return fmt.Errorf("转人工失败: %w", err)
	}
	if !flipped {
		// 已经转过人工，不重复追加提示
		return nil
	}

	msg, err := s.store.AppendMessage(ctx, token, model.SenderBot, s.botName, bot.HandoffNotice)
	if err != nil {
		return fmt.Errorf("记录转人工提示失败: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyHandoff(model.HandoffNotification{
			Type:         "HANDOFF",
			SessionToken: token,
			UserName:     userName,
			LastMessage:  lastMessage,
			Timestamp:    msg.Timestamp,
		})
	}

	s.logger.Info("会话转交人工客服", zap.String("token", token))
	return nil
}

// AppendAgentMessage 人工客服回复，追加一条 agent 消息
func (s *ChatService) AppendAgentMessage(ctx context.Context, token, agentName, content string) error {
	mu := s.lockFor(token)
	mu.Lock()
	defer mu.Unlock()

	if _, err := s.store.Get(ctx, token); err != nil {
		return err
	}
	if _, err := s.store.AppendMessage(ctx, token, model.SenderAgent, agentName, content); err != nil {
		return fmt.Errorf("记录客服消息失败: %w", err)
	}
	return nil
}

// ListMessages 返回会话全部消息及转人工状态
func (s *ChatService) ListMessages(ctx context.Context, token string) ([]model.Message, bool, error) {
	conv, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, false, err
	}
	messages, err := s.store.Messages(ctx, token)
	if err != nil {
		return nil, false, err
	}
	return messages, conv.AgentAssigned, nil
}

// CloseSession 关闭会话，历史保留
func (s *ChatService) CloseSession(ctx context.Context, token string) error {
	mu := s.lockFor(token)
	mu.Lock()
	defer mu.Unlock()

	return s.store.Close(ctx, token)
}

// ListOpenSessions 列出未关闭的会话
func (s *ChatService) ListOpenSessions(ctx context.Context) ([]model.Conversation, error) {
	return s.store.ListOpen(ctx)
}
