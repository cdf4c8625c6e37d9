package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/llm"
	"github.com/arunmaroon/avinci-main-sub006/internal/persona"
	"github.com/arunmaroon/avinci-main-sub006/internal/repository"
)

type mockAgentRepo struct {
	created       []domain.Agent
	createErr     error
	createErrOn   int
	byID          map[uuid.UUID]domain.Agent
	listData      []domain.Agent
	lastFilter    repository.ListFilter
	statusCalls   []domain.AgentStatus
	statusErr     error
	embeddings    map[uuid.UUID]pgvector.Vector
	searchData    []domain.Agent
	lastSearchK   int
	lastSearchVec pgvector.Vector
}

func newMockAgentRepo() *mockAgentRepo {
	return &mockAgentRepo{
		byID:       map[uuid.UUID]domain.Agent{},
		embeddings: map[uuid.UUID]pgvector.Vector{},
	}
}

func (m *mockAgentRepo) Create(_ context.Context, agent domain.Agent) error {
	if m.createErr != nil && (m.createErrOn == 0 || m.createErrOn == len(m.created)+1) {
		return m.createErr
	}
	m.created = append(m.created, agent)
	m.byID[agent.ID] = agent
	return nil
}

func (m *mockAgentRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Agent, error) {
	a, ok := m.byID[id]
	if !ok {
		return domain.Agent{}, repository.ErrAgentNotFound
	}
	return a, nil
}

func (m *mockAgentRepo) List(_ context.Context, filter repository.ListFilter) ([]domain.Agent, error) {
	m.lastFilter = filter
	return m.listData, nil
}

func (m *mockAgentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.AgentStatus, actor string, now time.Time) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	a, ok := m.byID[id]
	if !ok || a.Status == domain.StatusArchived {
		return repository.ErrAgentNotFound
	}
	a.Status = status
	a.UpdatedAt = now
	a.UpdatedBy = actor
	if status == domain.StatusArchived {
		a.ArchivedAt = &now
		a.ArchivedBy = &actor
	}
	m.byID[id] = a
	m.statusCalls = append(m.statusCalls, status)
	return nil
}

func (m *mockAgentRepo) UpdateEmbedding(_ context.Context, id uuid.UUID, embedding pgvector.Vector) error {
	m.embeddings[id] = embedding
	return nil
}

func (m *mockAgentRepo) SearchByEmbedding(_ context.Context, vec pgvector.Vector, k int) ([]domain.Agent, error) {
	m.lastSearchVec = vec
	m.lastSearchK = k
	return m.searchData, nil
}

type mockSourceRepo struct {
	created   []domain.Source
	createErr error
}

func (m *mockSourceRepo) Create(_ context.Context, source domain.Source) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, source)
	return nil
}

func (m *mockSourceRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Source, error) {
	for _, s := range m.created {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Source{}, repository.ErrSourceNotFound
}

func intPtr(v int) *int { return &v }

func TestIngestPartialBatch(t *testing.T) {
	agents := newMockAgentRepo()
	sources := &mockSourceRepo{}
	svc := NewIngestService(agents, sources, &llm.MockClient{Embedding: []float32{0.1, 0.2}}, nil)

	entries := []Entry{
		{Transcript: "row one", Demographics: persona.Input{Name: "Asha"}},
		{Transcript: "row two", Demographics: persona.Input{Name: "Bad", Age: intPtr(-3)}},
		{Transcript: "row three", Demographics: persona.Input{Name: "Chitra"}},
	}
	result, err := svc.Ingest(context.Background(), SourceDescriptor{Name: "batch"}, entries)
	if err != nil {
		t.Fatalf("expected partial success, got %v", err)
	}
	if len(result.Agents) != 2 {
		t.Fatalf("agents = %d, want 2", len(result.Agents))
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 2 {
		t.Fatalf("errors = %+v, want fila 2", result.Errors)
	}
	if len(sources.created) != 1 {
		t.Fatalf("sources = %d, want 1", len(sources.created))
	}
	if result.Agents[0].SourceID != sources.created[0].ID {
		t.Fatalf("agente no vinculado al source")
	}
}

func TestIngestEmbeddingFailureIsSoft(t *testing.T) {
	agents := newMockAgentRepo()
	svc := NewIngestService(agents, &mockSourceRepo{}, &llm.MockClient{Err: errors.New("provider down")}, nil)

	result, err := svc.Ingest(context.Background(), SourceDescriptor{}, []Entry{
		{Transcript: "hola", Demographics: persona.Input{Name: "Asha"}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Agents) != 1 || len(result.Errors) != 0 {
		t.Fatalf("result = %+v", result)
	}
	if len(agents.embeddings) != 0 {
		t.Fatalf("no debería haberse guardado embedding")
	}
}

func TestIngestEmptyBatch(t *testing.T) {
	svc := NewIngestService(newMockAgentRepo(), &mockSourceRepo{}, nil, nil)
	if _, err := svc.Ingest(context.Background(), SourceDescriptor{}, nil); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestParseTabularHeaders(t *testing.T) {
	data := []byte("Name,AGE,Gender,Occupation,Education,Transcript\n" +
		"Asha,29,female,nurse,BSc,I prefer cash payments\n" +
		",,,,,\n" +
		"Ravi,notanumber,male,driver,,\n")
	entries, err := ParseTabular(data, "batch.csv")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (fila en blanco se salta)", len(entries))
	}
	first := entries[0]
	if first.Demographics.Name != "Asha" || first.Demographics.Age == nil || *first.Demographics.Age != 29 {
		t.Fatalf("fila 1 = %+v", first.Demographics)
	}
	if first.Transcript != "I prefer cash payments" {
		t.Fatalf("transcript = %q", first.Transcript)
	}
	second := entries[1]
	if second.Demographics.Age != nil {
		t.Fatalf("edad no numérica debería quedar nil")
	}
	if second.Transcript != "" {
		t.Fatalf("fila sin transcript debería quedar vacía, got %q", second.Transcript)
	}
}

func TestParseTabularTextColumnFallback(t *testing.T) {
	entries, err := ParseTabular([]byte("name,text\nAsha,hola mundo\n"), "batch.csv")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 1 || entries[0].Transcript != "hola mundo" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestParseTabularRejectsSpreadsheets(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		file string
	}{
		{"xlsx ext", []byte("name,age\n"), "batch.xlsx"},
		{"xls ext", []byte("name,age\n"), "batch.xls"},
		{"zip magic", []byte("PK\x03\x04rest"), "batch.csv"},
		{"ole magic", []byte{0xD0, 0xCF, 0x11, 0xE0, 0x00}, "batch.csv"},
	}
	for _, c := range cases {
		if _, err := ParseTabular(c.data, c.file); !errors.Is(err, ErrUnsupportedFileType) {
			t.Fatalf("%s: expected ErrUnsupportedFileType, got %v", c.name, err)
		}
	}
}
