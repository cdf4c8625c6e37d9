package persona

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
)

var ErrInvalidDemographics = errors.New("invalid demographics")

// Input son los datos demográficos de una entrada de ingesta. Todos los
// campos son opcionales; el builder deriva el resto desde las tablas.
type Input struct {
	Name           string `json:"name"`
	Occupation     string `json:"occupation"`
	EmploymentType string `json:"employment_type"`
	Location       string `json:"location"`
	Age            *int   `json:"age"`
	Gender         string `json:"gender"`
	Education      string `json:"education"`
	IncomeRange    string `json:"income_range"`
	EnglishLevel   string `json:"english_level"`
	TechLevel      string `json:"tech_level"`
}

// Citas de reserva cuando la transcripción no aporta una; la selección por
// longitud del nombre mantiene el resultado estable entre ejecuciones.
var quoteBank = []string{
	"I need something that just works without me having to think about it.",
	"Time is money, and I don't have time for complicated processes.",
	"I want to make informed decisions, but I need clear information.",
	"Technology should make my life easier, not harder.",
	"I'm willing to learn, but it needs to be intuitive.",
	"I need to trust the system before I'll use it regularly.",
	"Efficiency is key - show me the fastest way to get things done.",
	"I want to feel confident when I'm using this product.",
}

var complexityByLevel = map[string]int{
	LevelBeginner:     2,
	LevelElementary:   4,
	LevelIntermediate: 5,
	LevelAdvanced:     7,
	LevelExpert:       8,
}

// Build deriva un agente completo desde transcripción y demografía. Es pura
// salvo por id y timestamps; la demografía ausente no es error, solo produce
// atributos de las tablas default.
func Build(transcript string, in Input, sourceID uuid.UUID, createdBy string) (domain.Agent, error) {
	if in.Age != nil && (*in.Age < 0 || *in.Age > 120) {
		return domain.Agent{}, fmt.Errorf("%w: age %d out of range", ErrInvalidDemographics, *in.Age)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Transcript User"
	}
	occupation := strings.TrimSpace(in.Occupation)
	if occupation == "" {
		occupation = "Professional"
	}
	employment := strings.TrimSpace(in.EmploymentType)
	if employment == "" {
		employment = "full-time"
	}

	traits := TraitsForOccupation(occupation)
	mainTrait := traits[0]
	hobbies := HobbiesForTraits(traits)

	secondary := GoalsForOccupation(occupation)
	goals := append(append([]string{}, secondary[:2]...), "Support family", "Achieve financial stability")

	region := RegionForLocation(in.Location)
	beliefs := BeliefsForRegion(region)

	englishLevel := NormalizeLevel(in.EnglishLevel)
	techLevel := NormalizeLevel(in.TechLevel)
	keyPhrases := KeyPhrasesFor(englishLevel, region)
	recommendations := RecommendationsFor(techLevel)
	triggers, responses := EmotionalDataForTrait(mainTrait)

	group := "30-40"
	if in.Age != nil {
		group = AgeGroup(*in.Age)
	}
	year := time.Now().UTC().Year()
	templates := LifeEventsForGroup(group)
	events := make([]domain.LifeEvent, 0, len(templates))
	for _, t := range templates {
		events = append(events, domain.LifeEvent{
			Milestone:   t.Milestone,
			Year:        year - t.YearsAgo,
			Impact:      t.Impact,
			Description: t.Description,
		})
	}

	now := time.Now().UTC()
	agent := domain.Agent{
		ID:             uuid.New(),
		Name:           name,
		Occupation:     occupation,
		EmploymentType: employment,
		Location:       strings.TrimSpace(in.Location),
		Demographics: domain.Demographics{
			Age:         in.Age,
			Gender:      strings.TrimSpace(in.Gender),
			Education:   strings.TrimSpace(in.Education),
			IncomeRange: strings.TrimSpace(in.IncomeRange),
		},
		Traits: domain.Traits{
			Archetype:  mainTrait,
			Adjectives: traits,
		},
		Behaviors: domain.Behaviors{
			Hobbies: hobbies,
		},
		Objectives: goals,
		DomainLiteracy: domain.DomainLiteracy{
			Dimension: "general",
			Level:     techLevel,
		},
		TechSavviness: techLevel,
		EnglishSavvy:  englishLevel,
		CommunicationStyle: domain.CommunicationStyle{
			SentenceLength: "medium",
			Formality:      5,
			QuestionStyle:  "direct",
			Pace:           "Medium",
		},
		SpeechPatterns: domain.SpeechPatterns{
			FillerWords:     []string{"um", "actually", "you know"},
			CommonPhrases:   keyPhrases,
			SelfCorrections: "occasional",
		},
		VocabularyProfile: domain.VocabularyProfile{
			Complexity: complexityByLevel[englishLevel],
		},
		EmotionalProfile: domain.EmotionalProfile{
			Baseline:            "Neutral",
			FrustrationTriggers: triggers,
			ExcitementTriggers:  []string{"Success", "Recognition", "Achievement"},
			Responses:           responses,
			KeyPhrases:          keyPhrases,
			Recommendations:     recommendations,
		},
		CognitiveProfile: domain.CognitiveProfile{
			ComprehensionSpeed: "medium",
			Patience:           5,
		},
		Quote:      quoteBank[len(name)%len(quoteBank)],
		LifeEvents: events,
		DecisionMaking: domain.DecisionMaking{
			Style: "Pragmatic",
		},
		CulturalBackground: domain.CulturalBackground{
			Heritage: "Indian, " + region + " roots",
			Beliefs:  beliefs,
		},
		Status:    domain.StatusActive,
		SourceID:  sourceID,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if q := firstTranscriptLine(transcript); q != "" {
		agent.KeyQuotes = []string{q}
	}

	agent.MasterSystemPrompt = CompileMasterPrompt(agent)
	return agent, nil
}

// firstTranscriptLine rescata la primera línea con contenido como cita
// textual del participante, acotada para no inflar el prompt.
func firstTranscriptLine(transcript string) string {
	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if idx := strings.Index(line, ":"); idx >= 0 && idx < 20 {
			line = strings.TrimSpace(line[idx+1:])
		}
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > 120 {
			line = string(runes[:120])
		}
		return line
	}
	return ""
}
