package persona

import (
	"encoding/json"
	"strings"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
)

// EmbeddingText arma el resumen canónico del agente que se vectoriza.
// El texto es determinista para que el embedding sea reproducible.
func EmbeddingText(a domain.Agent) string {
	parts := []string{a.Name, a.Occupation}
	if a.Location != "" {
		parts = append(parts, a.Location)
	}
	if len(a.Objectives) > 0 {
		parts = append(parts, "Goals: "+strings.Join(a.Objectives, "; "))
	}
	if len(a.Needs) > 0 {
		parts = append(parts, "Needs: "+strings.Join(a.Needs, "; "))
	}
	if a.Quote != "" {
		parts = append(parts, "Quote: "+a.Quote)
	}
	if b, err := json.Marshal(a.SpeechPatterns); err == nil {
		parts = append(parts, string(b))
	}
	if b, err := json.Marshal(a.EmotionalProfile); err == nil {
		parts = append(parts, string(b))
	}
	if b, err := json.Marshal(a.Traits); err == nil {
		parts = append(parts, string(b))
	}
	return strings.Join(parts, "\n")
}
