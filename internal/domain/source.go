package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de origen de una ingesta.
const (
	SourceTypeTranscript = "transcript"
	SourceTypeFile       = "file"
)

// Source registra un evento de ingesta; un Source puede producir N agentes.
type Source struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SourceType string    `json:"source_type"`
	FileName   string    `json:"file_name,omitempty"`
	CreatedBy  string    `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
