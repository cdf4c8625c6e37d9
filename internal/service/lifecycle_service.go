package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
	"github.com/arunmaroon/avinci-main-sub006/internal/repository"
)

var (
	ErrLifecycleServiceNotConfigured = errors.New("lifecycle service not configured")
	ErrInvalidStatus                 = errors.New("invalid status")
)

// LifecycleService gobierna las transiciones de estado de los agentes.
// archived es terminal: cualquier transición sobre un agente archivado se
// reporta como not found.
type LifecycleService struct {
	repo repository.AgentRepository
}

func NewLifecycleService(repo repository.AgentRepository) *LifecycleService {
	return &LifecycleService{repo: repo}
}

func (s *LifecycleService) Transition(ctx context.Context, id uuid.UUID, status domain.AgentStatus, actor string) (domain.Agent, error) {
	if s == nil || s.repo == nil {
		return domain.Agent{}, ErrLifecycleServiceNotConfigured
	}
	status = domain.AgentStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !domain.ValidStatus(status) {
		return domain.Agent{}, ErrInvalidStatus
	}
	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, status, actor, now); err != nil {
		return domain.Agent{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// Archive es el destino del DELETE: archiva en vez de borrar.
func (s *LifecycleService) Archive(ctx context.Context, id uuid.UUID, actor string) (domain.Agent, error) {
	return s.Transition(ctx, id, domain.StatusArchived, actor)
}

func (s *LifecycleService) Get(ctx context.Context, id uuid.UUID) (domain.Agent, error) {
	if s == nil || s.repo == nil {
		return domain.Agent{}, ErrLifecycleServiceNotConfigured
	}
	return s.repo.GetByID(ctx, id)
}

func (s *LifecycleService) List(ctx context.Context, filter repository.ListFilter) ([]domain.Agent, error) {
	if s == nil || s.repo == nil {
		return nil, ErrLifecycleServiceNotConfigured
	}
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}
