package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/persona"
	"github.com/arunmaroon/avinci-main-sub006/internal/repository"
	"github.com/arunmaroon/avinci-main-sub006/internal/service"
)

// maxUploadBytes limita el archivo de un lote tabular.
const maxUploadBytes = 10 << 20

// AgentHandler mantiene dependencias para los endpoints de agentes.
type AgentHandler struct {
	logger    *zap.Logger
	ingest    *service.IngestService
	lifecycle *service.LifecycleService
	search    *service.SearchService
}

func NewAgentHandler(logger *zap.Logger, ingest *service.IngestService, lifecycle *service.LifecycleService, search *service.SearchService) *AgentHandler {
	return &AgentHandler{logger: logger, ingest: ingest, lifecycle: lifecycle, search: search}
}

// CreateAgent maneja POST /agents: una transcripción suelta más demografía.
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req struct {
		Transcript string `json:"transcript"`
		SourceName string `json:"source_name"`
		CreatedBy  string `json:"created_by"`
		persona.Input
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create agent request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.ingest.Ingest(c.Request.Context(), service.SourceDescriptor{
		Name:       req.SourceName,
		SourceType: domain.SourceTypeTranscript,
		CreatedBy:  req.CreatedBy,
	}, []service.Entry{{Transcript: req.Transcript, Demographics: req.Input}})
	if err != nil {
		h.logger.Error("ingest failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create agent"})
		return
	}
	if len(result.Agents) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Errors[0].Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"agent": result.Agents[0], "source": result.Source})
}

// CreateAgentsFromFile maneja POST /agents/from-file: un CSV multipart con
// una fila por agente. El lote es de éxito parcial: las filas que fallan se
// devuelven junto a los agentes creados.
func (h *AgentHandler) CreateAgentsFromFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}

	entries, err := service.ParseTabular(data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFileType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "spreadsheet files are not supported, upload CSV"})
			return
		}
		if errors.Is(err, service.ErrEmptyBatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no rows found"})
			return
		}
		h.logger.Warn("tabular parse failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not parse file"})
		return
	}

	result, err := h.ingest.Ingest(c.Request.Context(), service.SourceDescriptor{
		Name:       c.PostForm("source_name"),
		SourceType: domain.SourceTypeFile,
		FileName:   fileHeader.Filename,
		CreatedBy:  c.PostForm("created_by"),
	}, entries)
	if err != nil {
		h.logger.Error("ingest failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not ingest batch"})
		return
	}

	summaries := make([]domain.AgentSummary, 0, len(result.Agents))
	for _, a := range result.Agents {
		summaries = append(summaries, a.Summary())
	}
	c.JSON(http.StatusCreated, gin.H{
		"source": result.Source,
		"agents": summaries,
		"errors": result.Errors,
	})
}

// ListAgents maneja GET /agents. Sin filtro de estado solo lista activos.
func (h *AgentHandler) ListAgents(c *gin.Context) {
	var query struct {
		Status         string `form:"status"`
		Persona        string `form:"persona"`
		KnowledgeLevel string `form:"knowledge_level"`
		Search         string `form:"search"`
		Limit          int    `form:"limit"`
		Offset         int    `form:"offset"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	agents, err := h.lifecycle.List(c.Request.Context(), repository.ListFilter{
		Status:         domain.AgentStatus(query.Status),
		Archetype:      query.Persona,
		KnowledgeLevel: query.KnowledgeLevel,
		Search:         query.Search,
		Limit:          query.Limit,
		Offset:         query.Offset,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		h.logger.Error("list agents failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list agents"})
		return
	}

	summaries := make([]domain.AgentSummary, 0, len(agents))
	for _, a := range agents {
		summaries = append(summaries, a.Summary())
	}
	c.JSON(http.StatusOK, gin.H{"agents": summaries, "count": len(summaries)})
}

// GetAgent maneja GET /agents/:id con la vista completa.
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
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
		h.logger.Error("get agent failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load agent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent": agent})
}

// UpdateAgentStatus maneja PATCH /agents/:id/status.
func (h *AgentHandler) UpdateAgentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}
	var req struct {
		Status    string `json:"status" binding:"required"`
		UpdatedBy string `json:"updated_by"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	agent, err := h.lifecycle.Transition(c.Request.Context(), id, domain.AgentStatus(req.Status), req.UpdatedBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		case errors.Is(err, repository.ErrAgentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
		default:
			h.logger.Error("status update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update status"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent": agent})
}

// DeleteAgent maneja DELETE /agents/:id archivando en vez de borrar.
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}
	agent, err := h.lifecycle.Archive(c.Request.Context(), id, c.Query("archived_by"))
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
			return
		}
		h.logger.Error("archive failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not archive agent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent": agent.Summary(), "archived": true})
}

// SearchAgents maneja POST /agents/search por similitud semántica.
func (h *AgentHandler) SearchAgents(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
		Limit int    `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	agents, err := h.search.Search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty query"})
			return
		}
		h.logger.Error("search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "search unavailable"})
		return
	}

	summaries := make([]domain.AgentSummary, 0, len(agents))
	for _, a := range agents {
		summaries = append(summaries, a.Summary())
	}
	c.JSON(http.StatusOK, gin.H{"agents": summaries, "count": len(summaries)})
}
