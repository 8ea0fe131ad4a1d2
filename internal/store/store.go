package store

import (
	"context"
	"fmt"

	"github.com/freshbot/freshbot-go/internal/model"
)

// ErrSessionNotFound 会话不存在
var ErrSessionNotFound = fmt.Errorf("会话不存在")

// ConversationStore 会话存储
//
// GetOrCreate 对同一 token 的并发首条消息必须只创建一个会话；
// Escalate 必须是原子翻转，已转人工时返回 false；
// 消息日志只追加，时间戳在追加边界内严格递增。
// 已关闭的 token 再次 GetOrCreate 视为开启全新会话，旧记录归档保留。
type ConversationStore interface {
	// GetOrCreate 获取或创建会话，第二个返回值表示是否新建
	GetOrCreate(ctx context.Context, token, userID, userName string) (*model.Conversation, bool, error)
	// Get 查询会话，不存在返回 ErrSessionNotFound
	Get(ctx context.Context, token string) (*model.Conversation, error)
	// AppendMessage 追加一条消息并返回持久化后的消息（含时间戳）
	AppendMessage(ctx context.Context, token, sender, senderName, body string) (model.Message, error)
	// Messages 按追加顺序返回全部消息
	Messages(ctx context.Context, token string) ([]model.Message, error)
	// Escalate 将会话转为人工处理，已转过返回 false
	Escalate(ctx context.Context, token string) (bool, error)
	// Close 关闭会话，历史保留
	Close(ctx context.Context, token string) error
	// ListOpen 列出所有未关闭的会话
	ListOpen(ctx context.Context) ([]model.Conversation, error)
}
