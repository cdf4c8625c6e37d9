package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/llm"
)

var (
	ErrDialogueServiceNotConfigured = errors.New("dialogue service not configured")
	ErrGenerationFailed             = errors.New("generation failed")
)

// maxHistoryTurns acota el historial que viaja al proveedor. El corte se
// hace acá para que aplique igual a todos los proveedores.
const maxHistoryTurns = 10

const maxReplyDelayMs = 5000

var baseDelayByPace = map[string]int{
	"Slow":   2000,
	"Medium": 1500,
	"Fast":   1000,
}

// Reply es la respuesta generada más la demora sugerida de tipeo.
type Reply struct {
	Text    string `json:"text"`
	DelayMs int    `json:"delay_ms"`
}

// DialogueService media entre un agente y el proveedor LLM configurado.
type DialogueService struct {
	client llm.Client
}

func NewDialogueService(client llm.Client) *DialogueService {
	return &DialogueService{client: client}
}

// GenerateReply responde en voz del agente. El system prompt es siempre el
// master_system_prompt persistido, nunca se rederiva acá. No hay retry: una
// falla del proveedor se envuelve y se devuelve tal cual.
func (s *DialogueService) GenerateReply(ctx context.Context, agent domain.Agent, history []llm.Turn, userMessage string) (Reply, error) {
	if s == nil || s.client == nil {
		return Reply{}, ErrDialogueServiceNotConfigured
	}
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return Reply{}, fmt.Errorf("%w: empty message", ErrGenerationFailed)
	}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	text, err := s.client.GenerateReply(ctx, agent.MasterSystemPrompt, history, userMessage)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %s", ErrGenerationFailed, err.Error())
	}
	if strings.TrimSpace(text) == "" {
		return Reply{}, fmt.Errorf("%w: empty reply", ErrGenerationFailed)
	}

	return Reply{
		Text:    text,
		DelayMs: CalculateDelay(agent.CommunicationStyle.Pace, text),
	}, nil
}

// CalculateDelay simula velocidad de tipeo humana: base según ritmo del
// agente más 25ms por carácter, con techo de 5 segundos.
func CalculateDelay(pace, reply string) int {
	base, ok := baseDelayByPace[pace]
	if !ok {
		base = baseDelayByPace["Medium"]
	}
	delay := base + utf8.RuneCountInString(reply)*25
	if delay > maxReplyDelayMs {
		return maxReplyDelayMs
	}
	return delay
}

// GenerateSummary pide al proveedor un resumen en markdown. Si el proveedor
// falla, cae a un resumen determinista armado con los metadatos.
func (s *DialogueService) GenerateSummary(ctx context.Context, conv domain.Conversation) (string, error) {
	if s == nil {
		return "", ErrDialogueServiceNotConfigured
	}
	if len(conv.Messages) == 0 {
		return "", fmt.Errorf("%w: no messages", ErrGenerationFailed)
	}
	if s.client != nil {
		text, err := s.client.GenerateReply(ctx, "", nil, summaryPrompt(conv))
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	return FallbackSummary(conv), nil
}

func summaryPrompt(conv domain.Conversation) string {
	var sb strings.Builder
	sb.WriteString("Summarize the following conversation in markdown. Include key topics, decisions, and action items.\n\n")
	sb.WriteString(fmt.Sprintf("Type: %s\nDuration: %d seconds\n\n", conv.CallType, conv.CallDuration))
	for _, m := range conv.Messages {
		if m.IsSystem {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", m.Sender, m.Text))
	}
	return sb.String()
}

// FallbackSummary es el resumen sin proveedor: solo hechos contables.
func FallbackSummary(conv domain.Conversation) string {
	participants := domain.Participants(conv.Messages)
	var sb strings.Builder
	sb.WriteString("## Conversation Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Messages: %d\n", len(conv.Messages)))
	if len(participants) > 0 {
		sb.WriteString("- Participants: " + strings.Join(participants, ", ") + "\n")
	}
	if conv.CallDuration > 0 {
		sb.WriteString(fmt.Sprintf("- Duration: %d seconds\n", conv.CallDuration))
	}
	if conv.CallType != "" {
		sb.WriteString("- Type: " + conv.CallType + "\n")
	}
	return sb.String()
}
