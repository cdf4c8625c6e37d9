package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/repository"
)

func seedAgent(repo *mockAgentRepo, status domain.AgentStatus) domain.Agent {
	a := domain.Agent{ID: uuid.New(), Name: "Asha", Status: status, CreatedAt: time.Now().UTC()}
	if status == domain.StatusArchived {
		now := time.Now().UTC()
		actor := "system"
		a.ArchivedAt = &now
		a.ArchivedBy = &actor
	}
	repo.byID[a.ID] = a
	return a
}

func TestTransitionStampsAudit(t *testing.T) {
	repo := newMockAgentRepo()
	a := seedAgent(repo, domain.StatusActive)
	svc := NewLifecycleService(repo)

	got, err := svc.Transition(context.Background(), a.ID, domain.StatusSleeping, "admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Status != domain.StatusSleeping {
		t.Fatalf("status = %q", got.Status)
	}
	if got.UpdatedBy != "admin" {
		t.Fatalf("updated_by = %q", got.UpdatedBy)
	}
	if got.ArchivedAt != nil {
		t.Fatalf("archived_at no corresponde en sleeping")
	}
}

func TestArchiveStampsArchivedFields(t *testing.T) {
	repo := newMockAgentRepo()
	a := seedAgent(repo, domain.StatusSleeping)
	svc := NewLifecycleService(repo)

	got, err := svc.Archive(context.Background(), a.ID, "admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Status != domain.StatusArchived {
		t.Fatalf("status = %q", got.Status)
	}
	if got.ArchivedAt == nil || got.ArchivedBy == nil || *got.ArchivedBy != "admin" {
		t.Fatalf("sellos de archivado incompletos: %+v", got)
	}
}

func TestTransitionFromArchivedIsNotFound(t *testing.T) {
	repo := newMockAgentRepo()
	a := seedAgent(repo, domain.StatusArchived)
	svc := NewLifecycleService(repo)

	if _, err := svc.Transition(context.Background(), a.ID, domain.StatusActive, "admin"); !errors.Is(err, repository.ErrAgentNotFound) {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
}

func TestTransitionInvalidStatus(t *testing.T) {
	repo := newMockAgentRepo()
	a := seedAgent(repo, domain.StatusActive)
	svc := NewLifecycleService(repo)

	if _, err := svc.Transition(context.Background(), a.ID, "paused", "admin"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewLifecycleService(newMockAgentRepo())
	if _, err := svc.List(context.Background(), repository.ListFilter{Status: "zombie"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
