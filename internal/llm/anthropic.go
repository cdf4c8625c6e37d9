package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AnthropicClient habla con la API de mensajes de Anthropic. A diferencia de
// la familia OpenAI, el system prompt viaja fuera del arreglo de mensajes.
type AnthropicClient struct {
	apiKey    string
	model     string
	client    *http.Client
	embedding Client
}

const anthropicMessagesURL = "https://api.anthropic.com/v1/messages"

// NewAnthropicClient construye el cliente. Anthropic no ofrece embeddings,
// así que se delega esa mitad en un cliente compatible con OpenAI.
func NewAnthropicClient(apiKey, model string, embedding Client) *AnthropicClient {
	return &AnthropicClient{
		apiKey:    apiKey,
		model:     model,
		client:    &http.Client{Timeout: 60 * time.Second},
		embedding: embedding,
	}
}

// BuildAnthropicMessages normaliza roles al contrato de la API: assistant se
// conserva y cualquier otro rol colapsa a user.
func BuildAnthropicMessages(history []Turn, userMessage string) []anthropicMessage {
	messages := make([]anthropicMessage, 0, len(history)+1)
	for _, t := range history {
		role := RoleUser
		if t.Role == RoleAssistant {
			role = RoleAssistant
		}
		messages = append(messages, anthropicMessage{Role: role, Content: t.Content})
	}
	messages = append(messages, anthropicMessage{Role: RoleUser, Content: userMessage})
	return messages
}

func (c *AnthropicClient) GenerateReply(ctx context.Context, system string, history []Turn, userMessage string) (string, error) {
	reqBody := anthropicRequest{
		Model:     c.model,
		MaxTokens: 1024,
		System:    system,
		Messages:  BuildAnthropicMessages(history, userMessage),
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("llm http error: status=%d", resp.StatusCode)
	}

	var ar anthropicResponse
	if err := json.Unmarshal(respBody, &ar); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if ar.Error != nil {
		return "", fmt.Errorf("llm api error: %s", ar.Error.Message)
	}
	if len(ar.Content) == 0 || ar.Content[0].Text == "" {
		return "", fmt.Errorf("llm empty response")
	}
	return ar.Content[0].Text, nil
}

func (c *AnthropicClient) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if c.embedding == nil {
		return nil, fmt.Errorf("embedding client not configured")
	}
	return c.embedding.CreateEmbedding(ctx, text)
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
