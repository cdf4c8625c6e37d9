package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
)

func newTestStore(t *testing.T) *ConversationStore {
	t.Helper()
	store, err := NewConversationStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewConversationStore: %v", err)
	}
	return store
}

func sampleConversation(callType string, duration int) domain.Conversation {
	return domain.Conversation{
		CallType:     callType,
		CallDuration: duration,
		Messages: []domain.ConversationMessage{
			{Sender: "Asha", Text: "hola"},
			{Sender: "User", Text: "buenas"},
		},
	}
}

func TestSaveAssignsMonotonicIDs(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save(sampleConversation("voice", 60))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save(sampleConversation("chat", 30))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}
}

func TestSaveWritesFileFirst(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConversationStore(dir, nil)
	if err != nil {
		t.Fatalf("NewConversationStore: %v", err)
	}
	if _, err := store.Save(sampleConversation("voice", 60)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "conversation_1_*.json"))
	if len(matches) != 1 {
		t.Fatalf("archivos = %v, want uno", matches)
	}
}

func TestSaveDefaultsCallTypeToText(t *testing.T) {
	store := newTestStore(t)
	saved, err := store.Save(sampleConversation("", 15))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.CallType != "text" {
		t.Fatalf("call_type = %q, want text", saved.CallType)
	}
	stats := store.Stats()
	if stats.ByType["text"] != 1 {
		t.Fatalf("by_type = %v, want text contado", stats.ByType)
	}
}

func TestListPagination(t *testing.T) {
	store := newTestStore(t)
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		conv := sampleConversation("chat", 10)
		conv.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if _, err := store.Save(conv); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	page := store.List(2, 1)
	if len(page) != 2 {
		t.Fatalf("len = %d, want 2", len(page))
	}
	// El caché va de más reciente a más viejo: offset 1 saltea el ID 5.
	if page[0].ID != 4 || page[1].ID != 3 {
		t.Fatalf("página = %d, %d, want 4, 3", page[0].ID, page[1].ID)
	}
	if got := store.List(0, 0); len(got) != 5 {
		t.Fatalf("default limit debería cubrir los 5, got %d", len(got))
	}
	if got := store.List(10, 99); len(got) != 0 {
		t.Fatalf("offset fuera de rango = %d items, want 0", len(got))
	}
}

func TestSaveDerivesParticipants(t *testing.T) {
	store := newTestStore(t)
	conv := domain.Conversation{
		Messages: []domain.ConversationMessage{
			{Sender: "Asha", Text: "hola"},
			{Sender: "System", Text: "joined", IsSystem: true},
			{Sender: "Asha", Text: "sigo acá"},
			{Sender: "User", Text: "ok"},
		},
	}
	saved, err := store.Save(conv)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(saved.Participants) != 2 || saved.Participants[0] != "Asha" || saved.Participants[1] != "User" {
		t.Fatalf("participants = %v", saved.Participants)
	}
}

func TestReloadAfterRestart(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConversationStore(dir, nil)
	if err != nil {
		t.Fatalf("NewConversationStore: %v", err)
	}
	older := sampleConversation("voice", 60)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	if _, err := store.Save(older); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save(sampleConversation("chat", 30)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Proceso nuevo sobre el mismo directorio.
	reborn, err := NewConversationStore(dir, nil)
	if err != nil {
		t.Fatalf("NewConversationStore: %v", err)
	}
	list := reborn.List(0, 0)
	if len(list) != 2 {
		t.Fatalf("list = %d, want 2", len(list))
	}
	if list[0].ID != 2 || list[1].ID != 1 {
		t.Fatalf("orden esperado createdAt desc, got %d, %d", list[0].ID, list[1].ID)
	}
	third, err := reborn.Save(sampleConversation("voice", 10))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if third.ID != 3 {
		t.Fatalf("id tras reinicio = %d, want 3", third.ID)
	}
}

func TestDeleteIsBestEffortOnFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConversationStore(dir, nil)
	if err != nil {
		t.Fatalf("NewConversationStore: %v", err)
	}
	saved, err := store.Save(sampleConversation("voice", 60))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "conversation_1_*.json"))
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			t.Fatalf("remove: %v", err)
		}
	}
	if err := store.Delete(saved.ID); err != nil {
		t.Fatalf("Delete debería ser best-effort, got %v", err)
	}
	if _, err := store.Get(saved.ID); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	store := newTestStore(t)
	if err := store.Delete(99); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Save(sampleConversation("voice", 90)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save(sampleConversation("voice", 30)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save(sampleConversation("chat", 0)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	stats := store.Stats()
	if stats.Total != 3 {
		t.Fatalf("total = %d", stats.Total)
	}
	if stats.ByType["voice"] != 2 || stats.ByType["chat"] != 1 {
		t.Fatalf("by_type = %v", stats.ByType)
	}
	if stats.TotalDuration != 120 || stats.AverageDuration != 40 {
		t.Fatalf("duración = %d/%d", stats.TotalDuration, stats.AverageDuration)
	}
	if stats.TotalMessages != 6 || stats.AverageMessages != 2 {
		t.Fatalf("mensajes = %d/%d", stats.TotalMessages, stats.AverageMessages)
	}
}

func TestStatsEmpty(t *testing.T) {
	store := newTestStore(t)
	stats := store.Stats()
	if stats.Total != 0 || stats.AverageDuration != 0 || stats.AverageMessages != 0 {
		t.Fatalf("stats vacíos = %+v", stats)
	}
}
