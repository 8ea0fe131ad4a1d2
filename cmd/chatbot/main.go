package main

import (
	"fmt"
	"log"
	"time"

	"github.com/freshbot/freshbot-go/internal/bot"
	"github.com/freshbot/freshbot-go/internal/config"
	"github.com/freshbot/freshbot-go/internal/handler"
	"github.com/freshbot/freshbot-go/internal/lookup"
	"github.com/freshbot/freshbot-go/internal/middleware"
	"github.com/freshbot/freshbot-go/internal/service"
	"github.com/freshbot/freshbot-go/internal/store"
	"github.com/freshbot/freshbot-go/pkg/logger"
	"github.com/freshbot/freshbot-go/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("configs/chatbot.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("chatbot 服务启动中...")

	// 初始化会话存储
	var convStore store.ConversationStore
	switch cfg.Store.Driver {
	case "redis":
		redisClient, err := redis.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatalf("初始化 Redis 失败: %v", err)
		}
		convStore = store.NewRedisConversationStore(redisClient, zapLogger)
	case "memory":
		convStore = store.NewMemoryConversationStore(zapLogger)
	default:
		log.Fatalf("未知存储驱动: %s", cfg.Store.Driver)
	}

	// 初始化应答组件
	rules := bot.NewRuleRepository(bot.DefaultRules(), zapLogger)
	classifier := bot.NewClassifier(bot.DefaultIntents(), zapLogger)
	extractor := bot.NewExtractor()
	responder := bot.NewResponder(
		rules, classifier, extractor,
		lookup.NewMemoryCatalog(), lookup.NewMemoryOrders(), lookup.NewMemoryStores(),
		time.Duration(cfg.Bot.LookupTimeoutSeconds)*time.Second,
		zapLogger,
	)

	// 初始化服务
	agentService := service.NewAgentService(zapLogger)
	chatService := service.NewChatService(convStore, responder, cfg.Bot.Name, agentService, zapLogger)

	// 初始化处理器
	chatHandler := handler.NewChatHandler(chatService, agentService, zapLogger)
	adminHandler := handler.NewAdminHandler(rules, classifier, chatService, zapLogger)
	agentHandler := handler.NewAgentHandler(agentService, chatService, zapLogger)

	// 初始化路由
	r := gin.Default()
	r.Use(middleware.CORS())

	// 聊天接口
	r.POST("/api/chat/start", chatHandler.Start)
	r.GET("/api/chat/messages", chatHandler.Messages)
	r.POST("/api/chat/close", chatHandler.Close)

	// 客服控制台 WebSocket
	r.GET("/ws/agent", agentHandler.HandleWebSocket)

	// 管理端接口
	r.POST("/api/admin/rules", adminHandler.ReplaceRules)
	r.POST("/api/admin/intents", adminHandler.ReplaceIntents)
	r.GET("/api/admin/sessions", adminHandler.ListOpenSessions)

	r.GET("/api/health", func(c *gin.Context) {
		c.Set("service_name", cfg.Server.Name)
		chatHandler.Health(c)
	})

	// 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("chatbot 服务启动成功", zap.Int("port", cfg.Server.Port))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("服务启动失败", zap.Error(err))
	}
}
