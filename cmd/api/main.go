package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/arunmaroon/avinci-main-sub006/internal/config"
	"github.com/arunmaroon/avinci-main-sub006/internal/db"
	apihttp "github.com/arunmaroon/avinci-main-sub006/internal/http"
	"github.com/arunmaroon/avinci-main-sub006/internal/llm"
	"github.com/arunmaroon/avinci-main-sub006/internal/repository"
	"github.com/arunmaroon/avinci-main-sub006/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	agentRepo := repository.NewPgAgentRepository(pool)
	sourceRepo := repository.NewPgSourceRepository(pool)

	llmClient, err := llm.NewClientFromConfig(cfg)
	if err != nil {
		logger.Fatal("llm client", zap.Error(err))
	}

	conversationStore, err := service.NewConversationStore(cfg.ConversationsDir, logger)
	if err != nil {
		logger.Fatal("conversation store", zap.Error(err))
	}

	var chatLimiter service.GenerationRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			chatLimiter = service.NewRedisGenerationRateLimiter(
				redisClient,
				time.Duration(cfg.ChatRateWindowSec)*time.Second,
				cfg.ChatRateLimit,
			)
		}
		cancel()
	}

	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPasswordHash, 24*time.Hour)
	if !authSvc.Enabled() {
		logger.Warn("admin auth not configured, mutating routes are open")
	}

	ingestSvc := service.NewIngestService(agentRepo, sourceRepo, llmClient, logger)
	lifecycleSvc := service.NewLifecycleService(agentRepo)
	searchSvc := service.NewSearchService(agentRepo, llmClient)
	dialogueSvc := service.NewDialogueService(llmClient)

	agentHandler := apihttp.NewAgentHandler(logger, ingestSvc, lifecycleSvc, searchSvc)
	chatHandler := apihttp.NewChatHandler(logger, dialogueSvc, lifecycleSvc, conversationStore, chatLimiter)
	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	router := apihttp.NewRouter(logger, agentHandler, chatHandler, authHandler, authSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("provider", cfg.AIProvider))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
