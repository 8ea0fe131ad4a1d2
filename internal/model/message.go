package model

import "time"

// 消息发送方类型
const (
	SenderUser  = "user"
	SenderBot   = "bot"
	SenderAgent = "agent"
)

// Message 会话内的一条消息，创建后不可变
type Message struct {
	MessageID  string    `json:"messageId"`
	Sender     string    `json:"sender"` // user, bot, agent
	SenderName string    `json:"senderName"`
	Body       string    `json:"body"`
	Timestamp  time.Time `json:"timestamp"`
}

// ChatRequest 发起/继续会话请求
type ChatRequest struct {
	SessionToken string `json:"sessionToken"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Message      string `json:"message"`
}

// ChatResponse 聊天响应
type ChatResponse struct {
	Success      bool   `json:"success"`
	Response     string `json:"response"`
	SessionToken string `json:"sessionToken"`
}

// MessagesResponse 消息列表响应
type MessagesResponse struct {
	Messages      []Message `json:"messages"`
	AgentAssigned bool      `json:"agentAssigned"`
}

// AgentMessageRequest 人工客服回复请求
type AgentMessageRequest struct {
	SessionToken string `json:"sessionToken"`
	AgentName    string `json:"agentName"`
	Content      string `json:"content"`
}

// HandoffNotification 转人工通知（推送给客服控制台）
type HandoffNotification struct {
	Type         string    `json:"type"` // HANDOFF
	SessionToken string    `json:"sessionToken"`
	UserName     string    `json:"userName"`
	LastMessage  string    `json:"lastMessage"`
	Timestamp    time.Time `json:"timestamp"`
}
