package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/llm"
	"github.com/arunmaroon/avinci-main-sub006/internal/persona"
	"github.com/arunmaroon/avinci-main-sub006/internal/repository"
)

var (
	ErrIngestServiceNotConfigured = errors.New("ingest service not configured")
	ErrEmptyBatch                 = errors.New("empty batch")
	ErrUnsupportedFileType        = errors.New("unsupported file type")
)

// Entry es una fila de ingesta: una transcripción más su demografía.
type Entry struct {
	Transcript   string
	Demographics persona.Input
}

// SourceDescriptor describe el origen del lote.
type SourceDescriptor struct {
	Name       string
	SourceType string
	FileName   string
	CreatedBy  string
}

// RowError registra la falla de una fila sin abortar el lote.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// IngestResult es el resultado parcial del lote: los agentes que sí se
// crearon junto con los errores por fila.
type IngestResult struct {
	Source domain.Source  `json:"source"`
	Agents []domain.Agent `json:"agents"`
	Errors []RowError     `json:"errors,omitempty"`
}

// IngestService convierte transcripciones en agentes persistidos.
type IngestService struct {
	agents  repository.AgentRepository
	sources repository.SourceRepository
	client  llm.Client
	logger  *zap.Logger
}

func NewIngestService(agents repository.AgentRepository, sources repository.SourceRepository, client llm.Client, logger *zap.Logger) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestService{agents: agents, sources: sources, client: client, logger: logger}
}

// Ingest procesa el lote fila a fila. Una fila que falla se anota y el resto
// sigue; solo un lote vacío o la creación del source son errores duros.
func (s *IngestService) Ingest(ctx context.Context, desc SourceDescriptor, entries []Entry) (IngestResult, error) {
	if s == nil || s.agents == nil || s.sources == nil {
		return IngestResult{}, ErrIngestServiceNotConfigured
	}
	if len(entries) == 0 {
		return IngestResult{}, ErrEmptyBatch
	}

	name := strings.TrimSpace(desc.Name)
	if name == "" {
		name = "Transcript upload"
	}
	sourceType := desc.SourceType
	if sourceType == "" {
		sourceType = domain.SourceTypeTranscript
	}
	source := domain.Source{
		ID:         uuid.New(),
		Name:       name,
		SourceType: sourceType,
		FileName:   desc.FileName,
		CreatedBy:  desc.CreatedBy,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.sources.Create(ctx, source); err != nil {
		return IngestResult{}, fmt.Errorf("create source: %w", err)
	}

	result := IngestResult{Source: source, Agents: []domain.Agent{}}
	for i, entry := range entries {
		agent, err := persona.Build(entry.Transcript, entry.Demographics, source.ID, desc.CreatedBy)
		if err != nil {
			s.logger.Warn("row skipped", zap.Int("row", i+1), zap.Error(err))
			result.Errors = append(result.Errors, RowError{Row: i + 1, Message: err.Error()})
			continue
		}
		if err := s.agents.Create(ctx, agent); err != nil {
			s.logger.Warn("row persist failed", zap.Int("row", i+1), zap.Error(err))
			result.Errors = append(result.Errors, RowError{Row: i + 1, Message: err.Error()})
			continue
		}
		s.attachEmbedding(ctx, agent)
		result.Agents = append(result.Agents, agent)
	}
	return result, nil
}

// attachEmbedding es best-effort: el agente ya quedó persistido y una falla
// del proveedor solo deja el vector en NULL.
func (s *IngestService) attachEmbedding(ctx context.Context, agent domain.Agent) {
	if s.client == nil {
		return
	}
	vec, err := s.client.CreateEmbedding(ctx, persona.EmbeddingText(agent))
	if err != nil {
		s.logger.Warn("embedding skipped", zap.String("agent_id", agent.ID.String()), zap.Error(err))
		return
	}
	if err := s.agents.UpdateEmbedding(ctx, agent.ID, pgvector.NewVector(vec)); err != nil {
		s.logger.Warn("embedding update failed", zap.String("agent_id", agent.ID.String()), zap.Error(err))
	}
}

// ParseTabular convierte un CSV en entradas de ingesta. Los binarios de
// planilla (xlsx, xls) no se intentan adivinar: se rechazan.
func ParseTabular(data []byte, fileName string) ([]Entry, error) {
	if isSpreadsheetBinary(data, fileName) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(fileName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var entries []Entry
	for _, record := range records[1:] {
		row := map[string]string{}
		blank := true
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				blank = false
			}
			row[header[i]] = cell
		}
		if blank {
			continue
		}

		transcript := row["transcript"]
		if transcript == "" {
			transcript = row["text"]
		}

		in := persona.Input{
			Name:       row["name"],
			Occupation: row["occupation"],
			Gender:     row["gender"],
			Education:  row["education"],
		}
		if raw := row["age"]; raw != "" {
			if age, err := strconv.Atoi(raw); err == nil {
				in.Age = &age
			}
		}
		entries = append(entries, Entry{Transcript: transcript, Demographics: in})
	}
	if len(entries) == 0 {
		return nil, ErrEmptyBatch
	}
	return entries, nil
}

// isSpreadsheetBinary detecta firmas zip (xlsx) y OLE (xls) además de la
// extensión declarada.
func isSpreadsheetBinary(data []byte, fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xls", ".xlsx":
		return true
	}
	if bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		return true
	}
	if bytes.HasPrefix(data, []byte{0xD0, 0xCF, 0x11, 0xE0}) {
		return true
	}
	return false
}
