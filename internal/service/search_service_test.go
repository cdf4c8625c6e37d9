package service

import (
	"context"
	"errors"
	"testing"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/llm"
)

func TestSearchDefaultsLimit(t *testing.T) {
	repo := newMockAgentRepo()
	repo.searchData = []domain.Agent{{Name: "Asha"}}
	svc := NewSearchService(repo, &llm.MockClient{Embedding: []float32{0.5, 0.5}})

	got, err := svc.Search(context.Background(), "  mobile-first nurse  ", 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("resultados = %d", len(got))
	}
	if repo.lastSearchK != 5 {
		t.Fatalf("k = %d, want default 5", repo.lastSearchK)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewSearchService(newMockAgentRepo(), &llm.MockClient{})
	if _, err := svc.Search(context.Background(), "   ", 3); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearchEmbeddingError(t *testing.T) {
	svc := NewSearchService(newMockAgentRepo(), &llm.MockClient{Err: errors.New("provider down")})
	if _, err := svc.Search(context.Background(), "algo", 3); err == nil {
		t.Fatalf("expected error del proveedor")
	}
}
