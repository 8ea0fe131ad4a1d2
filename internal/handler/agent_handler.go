package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/freshbot/freshbot-go/internal/model"
	"github.com/freshbot/freshbot-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: 生产环境应该检查 Origin 白名单
		return true
	},
}

// agentFrame 客服控制台上行消息
type agentFrame struct {
	Type         string `json:"type"` // HEARTBEAT, AGENT_REPLY
	SessionToken string `json:"sessionToken,omitempty"`
	Content      string `json:"content,omitempty"`
}

// AgentHandler 客服控制台 WebSocket 处理器
type AgentHandler struct {
	agentService *service.AgentService
	chatService  *service.ChatService
	logger       *zap.Logger
}

// NewAgentHandler 创建客服控制台处理器
func NewAgentHandler(agentService *service.AgentService, chatService *service.ChatService, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
		chatService:  chatService,
		logger:       logger,
	}
}

// HandleWebSocket 客服控制台连接入口
func (h *AgentHandler) HandleWebSocket(c *gin.Context) {
	agentID := c.Query("agentId")
	agentName := c.Query("agentName")
	if agentID == "" {
		c.JSON(400, gin.H{"error": "agentId 不能为空"})
		return
	}
	if agentName == "" {
		agentName = "Agent " + agentID
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket 升级失败", zap.Error(err))
		return
	}
	defer conn.Close()

	console := &model.AgentConsole{
		AgentID:       agentID,
		AgentName:     agentName,
		Conn:          conn,
		ClientIP:      c.ClientIP(),
		LastHeartbeat: time.Now(),
	}
	h.agentService.RegisterAgent(console)
	defer h.agentService.RemoveAgent(agentID)

	h.logger.Info("客服控制台连接建立",
		zap.String("agentId", agentID),
		zap.String("agentName", agentName))

	for {
		var frame agentFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket 读取错误", zap.Error(err))
			}
			break
		}

		h.handleFrame(console, &frame)
	}
}

// handleFrame 处理单条上行消息
func (h *AgentHandler) handleFrame(console *model.AgentConsole, frame *agentFrame) {
	switch frame.Type {
	case "HEARTBEAT":
		h.agentService.UpdateHeartbeat(console.AgentID)
	case "AGENT_REPLY":
		if frame.SessionToken == "" || frame.Content == "" {
			return
		}
		err := h.chatService.AppendAgentMessage(
			context.Background(), frame.SessionToken, console.AgentName, frame.Content)
		if err != nil {
			h.logger.Error("客服回复写入失败",
				zap.String("agentId", console.AgentID),
				zap.String("token", frame.SessionToken),
				zap.Error(err))
		}
	default:
		h.logger.Warn("未知消息类型", zap.String("type", frame.Type))
	}
}
