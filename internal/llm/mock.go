package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Registra la última
// invocación para poder inspeccionar system, historial y mensaje.
type MockClient struct {
	Reply     string
	Embedding []float32
	Err       error

	LastSystem  string
	LastHistory []Turn
	LastMessage string
	Calls       int
}

func (m *MockClient) GenerateReply(ctx context.Context, system string, history []Turn, userMessage string) (string, error) {
	m.Calls++
	m.LastSystem = system
	m.LastHistory = append([]Turn(nil), history...)
	m.LastMessage = userMessage
	return m.Reply, m.Err
}

func (m *MockClient) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Embedding, nil
}
