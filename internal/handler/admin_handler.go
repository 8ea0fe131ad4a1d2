package handler

import (
	"github.com/freshbot/freshbot-go/internal/bot"
	"github.com/freshbot/freshbot-go/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler 管理端接口处理器，不在应答热路径上
type AdminHandler struct {
	rules       *bot.RuleRepository
	classifier  *bot.Classifier
	chatService *service.ChatService
	logger      *zap.Logger
}

// NewAdminHandler 创建管理端接口处理器
func NewAdminHandler(rules *bot.RuleRepository, classifier *bot.Classifier, chatService *service.ChatService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		rules:       rules,
		classifier:  classifier,
		chatService: chatService,
		logger:      logger,
	}
}

// ReplaceRules 批量替换应答规则
func (h *AdminHandler) ReplaceRules(c *gin.Context) {
	var req struct {
		Rules []bot.ResponseRule `json:"rules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	h.rules.Replace(req.Rules)
	h.logger.Info("管理端替换规则表", zap.Int("count", len(req.Rules)))
	c.JSON(200, gin.H{"success": true, "count": h.rules.Count()})
}

// ReplaceIntents 批量替换意图表
func (h *AdminHandler) ReplaceIntents(c *gin.Context) {
	var req struct {
		Intents []bot.Intent `json:"intents"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	h.classifier.Replace(req.Intents)
	h.logger.Info("管理端替换意图表", zap.Int("count", len(req.Intents)))
	c.JSON(200, gin.H{"success": true})
}

// ListOpenSessions 列出未关闭的会话
func (h *AdminHandler) ListOpenSessions(c *gin.Context) {
	sessions, err := h.chatService.ListOpenSessions(c.Request.Context())
	if err != nil {
		h.logger.Error("读取开放会话失败", zap.Error(err))
		c.JSON(500, gin.H{"error": "读取开放会话失败"})
		return
	}
	c.JSON(200, gin.H{"sessions": sessions})
}
