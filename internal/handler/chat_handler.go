package handler

import (
	"github.com/freshbot/freshbot-go/internal/model"
	"github.com/freshbot/freshbot-go/internal/service"
	"github.com/freshbot/freshbot-go/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler 聊天接口处理器
type ChatHandler struct {
	chatService  *service.ChatService
	agentService *service.AgentService
	logger       *zap.Logger
}

// NewChatHandler 创建聊天接口处理器
func NewChatHandler(chatService *service.ChatService, agentService *service.AgentService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:  chatService,
		agentService: agentService,
		logger:       logger,
	}
}

// Start 发起或继续会话
//
// 令牌为空时由服务端生成并随响应返回。
func (h *ChatHandler) Start(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	if req.Message == "" {
		c.JSON(400, gin.H{"error": "message 不能为空"})
		return
	}

	response, token, err := h.chatService.HandleMessage(
		c.Request.Context(), req.SessionToken, req.UserID, req.UserName, req.Message)
	if err != nil {
		h.logger.Error("消息处理失败", zap.String("token", token), zap.Error(err))
		c.JSON(500, model.ChatResponse{Success: false, SessionToken: token})
		return
	}

	c.JSON(200, model.ChatResponse{
		Success:      true,
		Response:     response,
		SessionToken: token,
	})
}

// Messages 查询会话消息历史
func (h *ChatHandler) Messages(c *gin.Context) {
	token := c.Query("sessionToken")
	if token == "" {
		c.JSON(400, gin.H{"error": "sessionToken 不能为空"})
		return
	}

	messages, agentAssigned, err := h.chatService.ListMessages(c.Request.Context(), token)
	if err == store.ErrSessionNotFound {
		c.JSON(200, model.MessagesResponse{Messages: []model.Message{}})
		return
	}
	if err != nil {
		h.logger.Error("读取消息失败", zap.String("token", token), zap.Error(err))
		c.JSON(500, gin.H{"error": "读取消息失败"})
		return
	}

	c.JSON(200, model.MessagesResponse{
		Messages:      messages,
		AgentAssigned: agentAssigned,
	})
}

// Close 关闭会话
func (h *ChatHandler) Close(c *gin.Context) {
	var req struct {
		SessionToken string `json:"sessionToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionToken == "" {
		c.JSON(400, gin.H{"error": "sessionToken 不能为空"})
		return
	}

	err := h.chatService.CloseSession(c.Request.Context(), req.SessionToken)
	if err == store.ErrSessionNotFound {
		c.JSON(404, gin.H{"success": false, "error": "session not found"})
		return
	}
	if err != nil {
		h.logger.Error("关闭会话失败", zap.String("token", req.SessionToken), zap.Error(err))
		c.JSON(500, gin.H{"success": false})
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// Health 健康检查
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":        "UP",
		"service":       c.GetString("service_name"),
		"online_agents": h.agentService.OnlineCount(),
	})
}
