package domain

import "time"

// ConversationMessage es un turno persistido de una sesión de investigación.
type ConversationMessage struct {
	Sender   string `json:"sender"`
	Text     string `json:"text"`
	IsSystem bool   `json:"isSystem,omitempty"`
}

// Conversation es una sesión completa guardada en el archivo.
type Conversation struct {
	ID             int                   `json:"id"`
	ConversationID string                `json:"conversation_id,omitempty"`
	Messages       []ConversationMessage `json:"messages"`
	CallDuration   int                   `json:"call_duration"`
	CallType       string                `json:"call_type"`
	Participants   []string              `json:"participants"`
	StartTime      time.Time             `json:"start_time"`
	EndTime        time.Time             `json:"end_time"`
	CreatedAt      time.Time             `json:"created_at"`
}

// Participants deriva la lista de remitentes únicos excluyendo al sistema.
func Participants(messages []ConversationMessage) []string {
	seen := make(map[string]bool, len(messages))
	out := []string{}
	for _, m := range messages {
		if m.IsSystem || m.Sender == "System" || m.Sender == "" {
			continue
		}
		if !seen[m.Sender] {
			seen[m.Sender] = true
			out = append(out, m.Sender)
		}
	}
	return out
}
