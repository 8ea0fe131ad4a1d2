package service

import (
	"sync"
	"time"

	"github.com/freshbot/freshbot-go/internal/model"
	"go.uber.org/zap"
)

// AgentService 客服控制台管理服务
//
// 维护在线客服的 WebSocket 连接，会话转人工时向所有在线客服广播通知。
// 不在应答热路径上：广播失败只记日志。
type AgentService struct {
	consoles map[string]*model.AgentConsole // agentId -> console
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewAgentService 创建客服控制台管理服务
func NewAgentService(logger *zap.Logger) *AgentService {
	s := &AgentService{
		consoles: make(map[string]*model.AgentConsole),
		logger:   logger,
	}

	go s.heartbeatChecker()

	return s
}

// RegisterAgent 注册客服控制台连接
func (s *AgentService) RegisterAgent(console *model.AgentConsole) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 同一客服重新连接时关闭旧连接
	if existing, ok := s.consoles[console.AgentID]; ok {
		s.logger.Info("客服重新连接，关闭旧连接", zap.String("agentId", console.AgentID))
		existing.Conn.Close()
	}

	s.consoles[console.AgentID] = console
	s.logger.Info("客服控制台已注册",
		zap.String("agentId", console.AgentID),
		zap.String("agentName", console.AgentName))
}

// RemoveAgent 移除客服控制台连接
func (s *AgentService) RemoveAgent(agentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.consoles[agentID]; ok {
		delete(s.consoles, agentID)
		s.logger.Info("客服控制台已移除", zap.String("agentId", agentID))
	}
}

// UpdateHeartbeat 更新客服心跳
func (s *AgentService) UpdateHeartbeat(agentID string) bool {
	s.mu.RLock()
	console, ok := s.consoles[agentID]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	console.UpdateHeartbeat()
	return true
}

// NotifyHandoff 向所有在线客服广播转人工通知
func (s *AgentService) NotifyHandoff(notification model.HandoffNotification) {
	s.mu.RLock()
	consoles := make([]*model.AgentConsole, 0, len(s.consoles))
	for _, c := range s.consoles {
		consoles = append(consoles, c)
	}
	s.mu.RUnlock()

	if len(consoles) == 0 {
		s.logger.Warn("没有在线客服，转人工通知无人接收",
			zap.String("token", notification.SessionToken))
		return
	}

	for _, console := range consoles {
		if err := console.WriteMessage(notification); err != nil {
			s.logger.Error("转人工通知推送失败",
				zap.String("agentId", console.AgentID),
				zap.Error(err))
			go s.RemoveAgent(console.AgentID)
		}
	}

	s.logger.Info("转人工通知已广播",
		zap.String("token", notification.SessionToken),
		zap.Int("agentCount", len(consoles)))
}

// OnlineCount 在线客服数量
func (s *AgentService) OnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.consoles)
}

// heartbeatChecker 心跳检测器，清理失联的控制台连接
func (s *AgentService) heartbeatChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()

		now := time.Now()
		for agentID, console := range s.consoles {
			if now.Sub(console.LastHeartbeat) > 60*time.Second {
				console.IncrementMissedBeats()

				if console.ShouldBeCleaned() {
					s.logger.Info("清理失联客服连接", zap.String("agentId", agentID))
					console.Conn.Close()
					delete(s.consoles, agentID)
				} else {
					s.logger.Warn("客服心跳丢失",
						zap.String("agentId", agentID),
						zap.Int("missedBeats", console.MissedBeats))
				}
			}
		}

		s.mu.Unlock()
	}
}
