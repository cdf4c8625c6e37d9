package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/llm"
	"github.com/arunmaroon/avinci-main-sub006/internal/repository"
)

var (
	ErrSearchServiceNotConfigured = errors.New("search service not configured")
	ErrEmptyQuery                 = errors.New("empty query")
)

// SearchService resuelve búsqueda semántica de agentes por similitud coseno.
// Es de solo lectura: nunca muta agentes ni embeddings.
type SearchService struct {
	repo   repository.AgentRepository
	client llm.Client
}

func NewSearchService(repo repository.AgentRepository, client llm.Client) *SearchService {
	return &SearchService{repo: repo, client: client}
}

func (s *SearchService) Search(ctx context.Context, query string, k int) ([]domain.Agent, error) {
	if s == nil || s.repo == nil || s.client == nil {
		return nil, ErrSearchServiceNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if k <= 0 {
		k = 5
	}
	vec, err := s.client.CreateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.repo.SearchByEmbedding(ctx, pgvector.NewVector(vec), k)
}
