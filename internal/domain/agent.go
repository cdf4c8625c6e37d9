package domain

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
)

// AgentStatus enumera los estados del ciclo de vida de un agente.
type AgentStatus string

const (
	StatusActive   AgentStatus = "active"
	StatusSleeping AgentStatus = "sleeping"
	StatusArchived AgentStatus = "archived"
)

// ValidStatus indica si el valor corresponde a un estado conocido.
func ValidStatus(s AgentStatus) bool {
	switch s {
	case StatusActive, StatusSleeping, StatusArchived:
		return true
	}
	return false
}

// Demographics agrupa los atributos demográficos capturados en la ingesta.
type Demographics struct {
	Age          *int   `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Education    string `json:"education,omitempty"`
	IncomeRange  string `json:"income_range,omitempty"`
	FamilyStatus string `json:"family_status,omitempty"`
	Background   string `json:"background,omitempty"`
}

type Traits struct {
	Archetype  string   `json:"archetype,omitempty"`
	Adjectives []string `json:"adjectives,omitempty"`
}

type Behaviors struct {
	Habits            []string `json:"habits,omitempty"`
	Channels          []string `json:"channels,omitempty"`
	Tools             []string `json:"tools,omitempty"`
	JourneyHighlights []string `json:"journey_highlights,omitempty"`
	Hobbies           []string `json:"hobbies,omitempty"`
}

type DomainLiteracy struct {
	Dimension string `json:"dimension,omitempty"`
	Level     string `json:"level,omitempty"`
}

type CommunicationStyle struct {
	SentenceLength string `json:"sentence_length,omitempty"`
	Formality      int    `json:"formality,omitempty"`
	QuestionStyle  string `json:"question_style,omitempty"`
	Pace           string `json:"pace,omitempty"`
}

type SpeechPatterns struct {
	FillerWords     []string `json:"filler_words,omitempty"`
	CommonPhrases   []string `json:"common_phrases,omitempty"`
	SelfCorrections string   `json:"self_corrections,omitempty"`
}

type VocabularyProfile struct {
	Complexity   int      `json:"complexity,omitempty"`
	CommonWords  []string `json:"common_words,omitempty"`
	AvoidedWords []string `json:"avoided_words,omitempty"`
}

type EmotionalProfile struct {
	Baseline            string   `json:"baseline,omitempty"`
	FrustrationTriggers []string `json:"frustration_triggers,omitempty"`
	ExcitementTriggers  []string `json:"excitement_triggers,omitempty"`
	Responses           []string `json:"responses,omitempty"`
	KeyPhrases          []string `json:"key_phrases,omitempty"`
	Recommendations     []string `json:"recommendations,omitempty"`
}

type CognitiveProfile struct {
	ComprehensionSpeed string `json:"comprehension_speed,omitempty"`
	Patience           int    `json:"patience,omitempty"`
}

type KnowledgeBounds struct {
	Confident []string `json:"confident,omitempty"`
	Partial   []string `json:"partial,omitempty"`
	Unknown   []string `json:"unknown,omitempty"`
}

type DecisionMaking struct {
	Style      string   `json:"style,omitempty"`
	Influences []string `json:"influences,omitempty"`
}

type SocialContext struct {
	Family          string   `json:"family,omitempty"`
	Friends         string   `json:"friends,omitempty"`
	CommunityValues []string `json:"community_values,omitempty"`
}

type CulturalBackground struct {
	Heritage string   `json:"heritage,omitempty"`
	Beliefs  []string `json:"beliefs,omitempty"`
}

// LifeEvent es un hito biográfico derivado del grupo etario.
type LifeEvent struct {
	Milestone   string `json:"milestone"`
	Year        int    `json:"year"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
}

// Agent es la entidad central: una persona sintética entrevistable.
// master_system_prompt es una proyección derivada; nunca se edita directo.
type Agent struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Occupation     string    `json:"occupation"`
	EmploymentType string    `json:"employment_type,omitempty"`
	Location       string    `json:"location,omitempty"`

	Demographics Demographics `json:"demographics"`

	Traits             Traits             `json:"traits"`
	Behaviors          Behaviors          `json:"behaviors"`
	Objectives         []string           `json:"objectives,omitempty"`
	Needs              []string           `json:"needs,omitempty"`
	Fears              []string           `json:"fears,omitempty"`
	Apprehensions      []string           `json:"apprehensions,omitempty"`
	Motivations        []string           `json:"motivations,omitempty"`
	Frustrations       []string           `json:"frustrations,omitempty"`
	DomainLiteracy     DomainLiteracy     `json:"domain_literacy"`
	TechSavviness      string             `json:"tech_savviness,omitempty"`
	EnglishSavvy       string             `json:"english_savvy,omitempty"`
	CommunicationStyle CommunicationStyle `json:"communication_style"`
	SpeechPatterns     SpeechPatterns     `json:"speech_patterns"`
	VocabularyProfile  VocabularyProfile  `json:"vocabulary_profile"`
	EmotionalProfile   EmotionalProfile   `json:"emotional_profile"`
	CognitiveProfile   CognitiveProfile   `json:"cognitive_profile"`
	KnowledgeBounds    KnowledgeBounds    `json:"knowledge_bounds"`

	Background         string             `json:"background,omitempty"`
	Quote              string             `json:"quote,omitempty"`
	KeyQuotes          []string           `json:"key_quotes,omitempty"`
	LifeEvents         []LifeEvent        `json:"life_events,omitempty"`
	DailyRoutine       []string           `json:"daily_routine,omitempty"`
	DecisionMaking     DecisionMaking     `json:"decision_making"`
	SocialContext      SocialContext      `json:"social_context"`
	CulturalBackground CulturalBackground `json:"cultural_background"`

	MasterSystemPrompt string `json:"master_system_prompt,omitempty"`

	Status    AgentStatus `json:"status"`
	SourceID  uuid.UUID   `json:"source_id"`
	CreatedBy string      `json:"created_by,omitempty"`

	// Solo para búsqueda semántica; nunca se expone por la API.
	Embedding *pgvector.Vector `json:"-"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	UpdatedBy  string     `json:"updated_by,omitempty"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	ArchivedBy *string    `json:"archived_by,omitempty"`
}

// AgentSummary es la vista corta para listados y tarjetas.
type AgentSummary struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Occupation string      `json:"occupation"`
	Location   string      `json:"location,omitempty"`
	Quote      string      `json:"quote,omitempty"`
	Status     AgentStatus `json:"status"`
}

// Summary proyecta el agente a su vista de tarjeta.
func (a Agent) Summary() AgentSummary {
	return AgentSummary{
		ID:         a.ID,
		Name:       a.Name,
		Occupation: a.Occupation,
		Location:   a.Location,
		Quote:      a.Quote,
		Status:     a.Status,
	}
}
