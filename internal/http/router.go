package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arunmaroon/avinci-main-sub006/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	agentH *AgentHandler,
	chatH *ChatHandler,
	authH *AuthHandler,
	authSvc *service.AuthService,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/login", authH.Login)

	// Lecturas abiertas; mutaciones detrás del guard cuando hay admin.
	r.GET("/agents", agentH.ListAgents)
	r.GET("/agents/:id", agentH.GetAgent)
	r.POST("/agents/search", agentH.SearchAgents)

	guarded := r.Group("/")
	guarded.Use(JWTAuthMiddleware(authSvc))
	guarded.POST("/agents", agentH.CreateAgent)
	guarded.POST("/agents/from-file", agentH.CreateAgentsFromFile)
	guarded.PATCH("/agents/:id/status", agentH.UpdateAgentStatus)
	guarded.DELETE("/agents/:id", agentH.DeleteAgent)

	r.POST("/chat", chatH.PostChat)
	r.POST("/generate-summary", chatH.GenerateSummary)
	r.POST("/save-conversation", chatH.SaveConversation)
	r.GET("/saved-conversations", chatH.ListSavedConversations)
	r.GET("/saved-conversations-stats", chatH.ConversationStats)
	r.GET("/saved-conversations/:id", chatH.GetSavedConversation)
	r.DELETE("/saved-conversations/:id", chatH.DeleteSavedConversation)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
