package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
)

var ErrConversationNotFound = errors.New("conversation not found")

// maxCachedConversations acota el caché en memoria; el disco guarda todo.
const maxCachedConversations = 100

// ConversationStats agrega métricas sobre lo archivado.
type ConversationStats struct {
	Total           int            `json:"total"`
	ByType          map[string]int `json:"by_type"`
	TotalDuration   int            `json:"total_duration"`
	AverageDuration int            `json:"average_duration"`
	TotalMessages   int            `json:"total_messages"`
	AverageMessages int            `json:"average_messages"`
}

// ConversationStore archiva conversaciones en JSON plano sobre disco con un
// caché acotado en memoria. El disco es la fuente de verdad: se escribe
// primero y el caché se repuebla desde ahí cuando está vacío.
type ConversationStore struct {
	dir    string
	logger *zap.Logger

	mu    sync.Mutex
	cache []domain.Conversation
}

func NewConversationStore(dir string, logger *zap.Logger) (*ConversationStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create conversations dir: %w", err)
	}
	return &ConversationStore{dir: dir, logger: logger}, nil
}

func (s *ConversationStore) Save(conv domain.Conversation) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfEmpty()

	conv.ID = s.nextIDLocked()
	if conv.CallType == "" {
		conv.CallType = "text"
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now().UTC()
	}
	if len(conv.Participants) == 0 {
		conv.Participants = domain.Participants(conv.Messages)
	}

	name := fmt.Sprintf("conversation_%d_%d.json", conv.ID, time.Now().UnixMilli())
	data, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("marshal conversation: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return domain.Conversation{}, fmt.Errorf("write conversation: %w", err)
	}

	s.cache = append([]domain.Conversation{conv}, s.cache...)
	if len(s.cache) > maxCachedConversations {
		s.cache = s.cache[:maxCachedConversations]
	}
	return conv, nil
}

// List devuelve una página del caché, más recientes primero. limit <= 0
// usa el default de 20.
func (s *ConversationStore) List(limit, offset int) []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfEmpty()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.cache) {
		return []domain.Conversation{}
	}
	end := offset + limit
	if end > len(s.cache) {
		end = len(s.cache)
	}
	return append([]domain.Conversation(nil), s.cache[offset:end]...)
}

func (s *ConversationStore) Get(id int) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfEmpty()
	for _, c := range s.cache {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Conversation{}, ErrConversationNotFound
}

// Delete saca la conversación del caché siempre; el borrado del archivo es
// best-effort y una falla solo se registra como warning.
func (s *ConversationStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfEmpty()

	found := false
	next := s.cache[:0]
	for _, c := range s.cache {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	s.cache = next
	if !found {
		return ErrConversationNotFound
	}

	matches, err := filepath.Glob(filepath.Join(s.dir, fmt.Sprintf("conversation_%d_*.json", id)))
	if err != nil {
		s.logger.Warn("conversation file lookup failed", zap.Int("id", id), zap.Error(err))
		return nil
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			s.logger.Warn("conversation file delete failed", zap.String("file", m), zap.Error(err))
		}
	}
	return nil
}

func (s *ConversationStore) Stats() ConversationStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfEmpty()

	stats := ConversationStats{ByType: map[string]int{}}
	for _, c := range s.cache {
		stats.Total++
		// Archivos viejos pueden traer el tipo vacío; cuentan como texto.
		callType := c.CallType
		if callType == "" {
			callType = "text"
		}
		stats.ByType[callType]++
		stats.TotalDuration += c.CallDuration
		stats.TotalMessages += len(c.Messages)
	}
	if stats.Total > 0 {
		stats.AverageDuration = int(math.Round(float64(stats.TotalDuration) / float64(stats.Total)))
		stats.AverageMessages = int(math.Round(float64(stats.TotalMessages) / float64(stats.Total)))
	}
	return stats
}

// reloadIfEmpty repuebla el caché desde disco. Se llama con el lock tomado.
// Los archivos ilegibles se saltan con warning para no bloquear el resto.
func (s *ConversationStore) reloadIfEmpty() {
	if len(s.cache) > 0 {
		return
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("conversations dir read failed", zap.String("dir", s.dir), zap.Error(err))
		return
	}
	var loaded []domain.Conversation
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			s.logger.Warn("conversation file read failed", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		var c domain.Conversation
		if err := json.Unmarshal(data, &c); err != nil {
			s.logger.Warn("conversation file corrupt", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		loaded = append(loaded, c)
	}
	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].CreatedAt.After(loaded[j].CreatedAt)
	})
	if len(loaded) > maxCachedConversations {
		loaded = loaded[:maxCachedConversations]
	}
	s.cache = loaded
}

// nextIDLocked continúa la numeración aun tras un reinicio: max(id)+1 sobre
// lo que haya en caché recargado desde disco.
func (s *ConversationStore) nextIDLocked() int {
	max := 0
	for _, c := range s.cache {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
