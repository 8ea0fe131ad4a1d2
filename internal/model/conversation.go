package model

import "time"

// Conversation 一次客服会话的状态
//
// BotHandled 与 AgentAssigned 互斥：转人工后 AgentAssigned=true 且
// BotHandled=false，本服务内不会回退。关闭只置 Active=false，历史保留。
type Conversation struct {
	Token         string    `json:"token"` // 浏览器会话令牌
	UserID        string    `json:"userId,omitempty"`
	UserName      string    `json:"userName"`
	BotHandled    bool      `json:"botHandled"`
	AgentAssigned bool      `json:"agentAssigned"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewConversation 创建机器人接管的新会话
func NewConversation(token, userID, userName string) *Conversation {
	if userName == "" {
		userName = "Guest"
	}
	return &Conversation{
		Token:      token,
		UserID:     userID,
		UserName:   userName,
		BotHandled: true,
		Active:     true,
		CreatedAt:  time.Now(),
	}
}
