package llm

import "context"

// Turn es un turno previo de la conversación en forma neutral al proveedor.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client define la interfaz para generar respuestas y embeddings con un LLM.
// El historial llega ya acotado; el cliente solo lo traduce al formato del
// proveedor sin recortarlo ni reordenarlo.
type Client interface {
	GenerateReply(ctx context.Context, system string, history []Turn, userMessage string) (string, error)
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}
