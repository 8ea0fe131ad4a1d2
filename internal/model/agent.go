package model

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// AgentConsole 在线客服的控制台连接
type AgentConsole struct {
	AgentID       string
	AgentName     string
	Conn          *websocket.Conn
	ClientIP      string
	LastHeartbeat time.Time
	MissedBeats   int
	mu            sync.Mutex // 保护连接写入与心跳字段
}

// UpdateHeartbeat 更新心跳时间
func (a *AgentConsole) UpdateHeartbeat() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.LastHeartbeat = time.Now()
	a.MissedBeats = 0
}

// IncrementMissedBeats 增加丢失心跳次数
func (a *AgentConsole) IncrementMissedBeats() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.MissedBeats++
}

// ShouldBeCleaned 判断连接是否应该清理
func (a *AgentConsole) ShouldBeCleaned() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.MissedBeats >= 3
}

// WriteMessage 向控制台写入消息（线程安全）
func (a *AgentConsole) WriteMessage(message interface{}) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Conn.WriteJSON(message)
}
