package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
)

var ErrAgentNotFound = errors.New("agent not found")

// ListFilter acota un listado de agentes. Status vacío lista solo activos.
type ListFilter struct {
	Status         domain.AgentStatus
	Archetype      string
	KnowledgeLevel string
	Search         string
	Limit          int
	Offset         int
}

type AgentRepository interface {
	Create(ctx context.Context, agent domain.Agent) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Agent, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Agent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AgentStatus, actor string, now time.Time) error
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector) error
	SearchByEmbedding(ctx context.Context, queryEmbedding pgvector.Vector, k int) ([]domain.Agent, error)
}

type PgAgentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAgentRepository(pool *pgxpool.Pool) *PgAgentRepository {
	return &PgAgentRepository{pool: pool}
}

// agentColumns omite embedding a propósito: el vector nunca sale por la API
// y puede ser NULL hasta que el proveedor lo calcule.
const agentColumns = `
	id, name, occupation, employment_type, location,
	demographics, traits, behaviors,
	objectives, needs, fears, apprehensions, motivations, frustrations,
	domain_literacy, tech_savviness, english_savvy,
	communication_style, speech_patterns, vocabulary_profile,
	emotional_profile, cognitive_profile, knowledge_bounds,
	background, quote, key_quotes, life_events, daily_routine,
	decision_making, social_context, cultural_background,
	master_system_prompt, status, source_id, created_by,
	created_at, updated_at, updated_by, archived_at, archived_by
`

func (r *PgAgentRepository) Create(ctx context.Context, agent domain.Agent) error {
	const query = `
		INSERT INTO agents (` + agentColumns + `)
		VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16, $17,
			$18, $19, $20,
			$21, $22, $23,
			$24, $25, $26, $27, $28,
			$29, $30, $31,
			$32, $33, $34, $35,
			$36, $37, $38, $39, $40
		)
	`
	jsonCols, err := marshalAgentJSON(agent)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		agent.ID, agent.Name, agent.Occupation, agent.EmploymentType, agent.Location,
		jsonCols.demographics, jsonCols.traits, jsonCols.behaviors,
		agent.Objectives, agent.Needs, agent.Fears, agent.Apprehensions, agent.Motivations, agent.Frustrations,
		jsonCols.domainLiteracy, agent.TechSavviness, agent.EnglishSavvy,
		jsonCols.communicationStyle, jsonCols.speechPatterns, jsonCols.vocabularyProfile,
		jsonCols.emotionalProfile, jsonCols.cognitiveProfile, jsonCols.knowledgeBounds,
		agent.Background, agent.Quote, agent.KeyQuotes, jsonCols.lifeEvents, agent.DailyRoutine,
		jsonCols.decisionMaking, jsonCols.socialContext, jsonCols.culturalBackground,
		agent.MasterSystemPrompt, agent.Status, agent.SourceID, agent.CreatedBy,
		agent.CreatedAt, agent.UpdatedAt, agent.UpdatedBy, agent.ArchivedAt, agent.ArchivedBy,
	)
	return err
}

func (r *PgAgentRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Agent, error) {
	const query = `SELECT ` + agentColumns + ` FROM agents WHERE id = $1`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return domain.Agent{}, err
	}
	defer rows.Close()

	agents, err := scanAgents(rows)
	if err != nil {
		return domain.Agent{}, err
	}
	if len(agents) == 0 {
		return domain.Agent{}, ErrAgentNotFound
	}
	return agents[0], nil
}

func (r *PgAgentRepository) List(ctx context.Context, filter ListFilter) ([]domain.Agent, error) {
	status := filter.Status
	if status == "" {
		status = domain.StatusActive
	}
	conds := []string{"status = $1"}
	args := []interface{}{status}

	if filter.Archetype != "" {
		args = append(args, filter.Archetype)
		conds = append(conds, fmt.Sprintf("traits->>'archetype' ILIKE $%d", len(args)))
	}
	if filter.KnowledgeLevel != "" {
		args = append(args, filter.KnowledgeLevel)
		conds = append(conds, fmt.Sprintf("tech_savviness = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR occupation ILIKE $%d OR location ILIKE $%d)", n, n, n))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := `SELECT ` + agentColumns + ` FROM agents WHERE ` + strings.Join(conds, " AND ") +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgents(rows)
}

// UpdateStatus es condicional: un agente archivado es terminal y la fila no
// se toca, lo que se reporta como not found.
func (r *PgAgentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AgentStatus, actor string, now time.Time) error {
	const query = `
		UPDATE agents
		SET status = $2,
		    updated_at = $3,
		    updated_by = $4,
		    archived_at = CASE WHEN $2 = 'archived' THEN $3 ELSE archived_at END,
		    archived_by = CASE WHEN $2 = 'archived' THEN $4 ELSE archived_by END
		WHERE id = $1 AND status <> 'archived'
	`
	tag, err := r.pool.Exec(ctx, query, id, status, now, actor)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAgentNotFound
	}
	return nil
}

func (r *PgAgentRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector) error {
	const query = `UPDATE agents SET embedding = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, embedding)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAgentNotFound
	}
	return nil
}

func (r *PgAgentRepository) SearchByEmbedding(ctx context.Context, queryEmbedding pgvector.Vector, k int) ([]domain.Agent, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT ` + agentColumns + `
		FROM agents
		WHERE embedding IS NOT NULL AND status = 'active'
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, queryEmbedding, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgents(rows)
}

type agentJSONColumns struct {
	demographics       []byte
	traits             []byte
	behaviors          []byte
	domainLiteracy     []byte
	communicationStyle []byte
	speechPatterns     []byte
	vocabularyProfile  []byte
	emotionalProfile   []byte
	cognitiveProfile   []byte
	knowledgeBounds    []byte
	lifeEvents         []byte
	decisionMaking     []byte
	socialContext      []byte
	culturalBackground []byte
}

func marshalAgentJSON(agent domain.Agent) (agentJSONColumns, error) {
	var cols agentJSONColumns
	for _, f := range []struct {
		dst *[]byte
		src interface{}
	}{
		{&cols.demographics, agent.Demographics},
		{&cols.traits, agent.Traits},
		{&cols.behaviors, agent.Behaviors},
		{&cols.domainLiteracy, agent.DomainLiteracy},
		{&cols.communicationStyle, agent.CommunicationStyle},
		{&cols.speechPatterns, agent.SpeechPatterns},
		{&cols.vocabularyProfile, agent.VocabularyProfile},
		{&cols.emotionalProfile, agent.EmotionalProfile},
		{&cols.cognitiveProfile, agent.CognitiveProfile},
		{&cols.knowledgeBounds, agent.KnowledgeBounds},
		{&cols.lifeEvents, agent.LifeEvents},
		{&cols.decisionMaking, agent.DecisionMaking},
		{&cols.socialContext, agent.SocialContext},
		{&cols.culturalBackground, agent.CulturalBackground},
	} {
		b, err := json.Marshal(f.src)
		if err != nil {
			return agentJSONColumns{}, err
		}
		*f.dst = b
	}
	return cols, nil
}

func scanAgents(rows pgxRows) ([]domain.Agent, error) {
	var agents []domain.Agent
	for rows.Next() {
		var a domain.Agent
		var cols agentJSONColumns
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Occupation, &a.EmploymentType, &a.Location,
			&cols.demographics, &cols.traits, &cols.behaviors,
			&a.Objectives, &a.Needs, &a.Fears, &a.Apprehensions, &a.Motivations, &a.Frustrations,
			&cols.domainLiteracy, &a.TechSavviness, &a.EnglishSavvy,
			&cols.communicationStyle, &cols.speechPatterns, &cols.vocabularyProfile,
			&cols.emotionalProfile, &cols.cognitiveProfile, &cols.knowledgeBounds,
			&a.Background, &a.Quote, &a.KeyQuotes, &cols.lifeEvents, &a.DailyRoutine,
			&cols.decisionMaking, &cols.socialContext, &cols.culturalBackground,
			&a.MasterSystemPrompt, &a.Status, &a.SourceID, &a.CreatedBy,
			&a.CreatedAt, &a.UpdatedAt, &a.UpdatedBy, &a.ArchivedAt, &a.ArchivedBy,
		); err != nil {
			return nil, err
		}
		if err := unmarshalAgentJSON(&a, cols); err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return agents, nil
}

func unmarshalAgentJSON(a *domain.Agent, cols agentJSONColumns) error {
	for _, f := range []struct {
		src []byte
		dst interface{}
	}{
		{cols.demographics, &a.Demographics},
		{cols.traits, &a.Traits},
		{cols.behaviors, &a.Behaviors},
		{cols.domainLiteracy, &a.DomainLiteracy},
		{cols.communicationStyle, &a.CommunicationStyle},
		{cols.speechPatterns, &a.SpeechPatterns},
		{cols.vocabularyProfile, &a.VocabularyProfile},
		{cols.emotionalProfile, &a.EmotionalProfile},
		{cols.cognitiveProfile, &a.CognitiveProfile},
		{cols.knowledgeBounds, &a.KnowledgeBounds},
		{cols.lifeEvents, &a.LifeEvents},
		{cols.decisionMaking, &a.DecisionMaking},
		{cols.socialContext, &a.SocialContext},
		{cols.culturalBackground, &a.CulturalBackground},
	} {
		if len(f.src) == 0 {
			continue
		}
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return err
		}
	}
	return nil
}
