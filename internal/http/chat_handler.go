package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/llm"
	"github.com/arunmaroon/avinci-main-sub006/internal/repository"
	"github.com/arunmaroon/avinci-main-sub006/internal/service"
)

// ChatHandler mantiene dependencias para los endpoints de diálogo y del
// archivo de conversaciones.
type ChatHandler struct {
	logger    *zap.Logger
	dialogue  *service.DialogueService
	lifecycle *service.LifecycleService
	store     *service.ConversationStore
	limiter   service.GenerationRateLimiter
}

func NewChatHandler(
	logger *zap.Logger,
	dialogue *service.DialogueService,
	lifecycle *service.LifecycleService,
	store *service.ConversationStore,
	limiter service.GenerationRateLimiter,
) *ChatHandler {
	return &ChatHandler{
		logger:    logger,
		dialogue:  dialogue,
		lifecycle: lifecycle,
		store:     store,
		limiter:   limiter,
	}
}

// PostChat maneja POST /chat: genera la respuesta del agente en su voz.
func (h *ChatHandler) PostChat(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	var req struct {
		AgentID string     `json:"agent_id" binding:"required"`
		Message string     `json:"message" binding:"required"`
		History []llm.Turn `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id, err := uuid.Parse(req.AgentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}

	agent, err := h.lifecycle.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
			return
		}
		h.logger.Error("load agent failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load agent"})
		return
	}
	if agent.Status != domain.StatusActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "agent is not active"})
		return
	}

	reply, err := h.dialogue.GenerateReply(c.Request.Context(), agent, req.History, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrGenerationFailed) {
			h.logger.Warn("generation failed", zap.String("agent_id", req.AgentID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate reply"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GenerateSummary maneja POST /generate-summary.
func (h *ChatHandler) GenerateSummary(c *gin.Context) {
	var req struct {
		Messages     []domain.ConversationMessage `json:"messages" binding:"required"`
		CallType     string                       `json:"call_type"`
		CallDuration int                          `json:"call_duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	summary, err := h.dialogue.GenerateSummary(c.Request.Context(), domain.Conversation{
		Messages:     req.Messages,
		CallType:     req.CallType,
		CallDuration: req.CallDuration,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not summarize"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SaveConversation maneja POST /save-conversation.
func (h *ChatHandler) SaveConversation(c *gin.Context) {
	var req struct {
		ConversationID string                       `json:"conversation_id"`
		Messages       []domain.ConversationMessage `json:"messages" binding:"required"`
		CallDuration   int                          `json:"call_duration"`
		CallType       string                       `json:"call_type"`
		Participants   []string                     `json:"participants"`
		StartTime      time.Time                    `json:"start_time"`
		EndTime        time.Time                    `json:"end_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	saved, err := h.store.Save(domain.Conversation{
		ConversationID: req.ConversationID,
		Messages:       req.Messages,
		CallDuration:   req.CallDuration,
		CallType:       req.CallType,
		Participants:   req.Participants,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	})
	if err != nil {
		h.logger.Error("save conversation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save conversation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"conversation": saved})
}

// ListSavedConversations maneja GET /saved-conversations.
func (h *ChatHandler) ListSavedConversations(c *gin.Context) {
	var query struct {
		Limit  int `form:"limit"`
		Offset int `form:"offset"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	conversations := h.store.List(query.Limit, query.Offset)
	c.JSON(http.StatusOK, gin.H{"conversations": conversations, "count": len(conversations)})
}

// GetSavedConversation maneja GET /saved-conversations/:id.
func (h *ChatHandler) GetSavedConversation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}
	conversation, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conversation})
}

// DeleteSavedConversation maneja DELETE /saved-conversations/:id.
func (h *ChatHandler) DeleteSavedConversation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}
	if err := h.store.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ConversationStats maneja GET /saved-conversations-stats.
func (h *ChatHandler) ConversationStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.store.Stats()})
}
