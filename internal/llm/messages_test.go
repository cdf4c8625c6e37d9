package llm

import "testing"

func TestBuildChatMessagesSystemFirst(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "hola"},
		{Role: RoleAssistant, Content: "hi"},
	}
	got := BuildChatMessages("eres Priya", history, "¿qué opinas?")
	if len(got) != 4 {
		t.Fatalf("mensajes = %d, want 4", len(got))
	}
	if got[0].Role != "system" || got[0].Content != "eres Priya" {
		t.Fatalf("primer mensaje = %+v, want system", got[0])
	}
	if got[1].Role != RoleUser || got[2].Role != RoleAssistant {
		t.Fatalf("historial mal mapeado: %+v", got[1:3])
	}
	if got[3].Role != RoleUser || got[3].Content != "¿qué opinas?" {
		t.Fatalf("último mensaje = %+v", got[3])
	}
}

func TestBuildChatMessagesWithoutSystem(t *testing.T) {
	got := BuildChatMessages("", nil, "hola")
	if len(got) != 1 || got[0].Role != RoleUser {
		t.Fatalf("mensajes = %+v", got)
	}
}

func TestBuildAnthropicMessagesNormalizesRoles(t *testing.T) {
	history := []Turn{
		{Role: "system", Content: "no debería pasar"},
		{Role: RoleAssistant, Content: "hi"},
		{Role: "moderator", Content: "pregunta"},
	}
	got := BuildAnthropicMessages(history, "cierre")
	if len(got) != 4 {
		t.Fatalf("mensajes = %d, want 4", len(got))
	}
	wantRoles := []string{RoleUser, RoleAssistant, RoleUser, RoleUser}
	for i, m := range got {
		if m.Role != wantRoles[i] {
			t.Fatalf("rol[%d] = %q, want %q", i, m.Role, wantRoles[i])
		}
	}
}
