package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

// CreateSessionInput is the DTO for creating a cupping session.
type CreateSessionInput struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	CuppingDate *time.Time `json:"cupping_date"`
	CreatedBy   string     `json:"created_by"`
}

// UpdateSessionInput is the DTO for updating a cupping session.
type UpdateSessionInput struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *domain.SessionStatus `json:"status"`
	CuppingDate *time.Time            `json:"cupping_date"`
}

// SessionService defines the cupping session management contract.
type SessionService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateSessionInput) (*domain.CuppingSession, error)
	GetByID(ctx context.Context, tenantID, sessionID uuid.UUID) (*domain.CuppingSession, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CuppingSession, int, error)
	Update(ctx context.Context, tenantID, sessionID uuid.UUID, input UpdateSessionInput) (*domain.CuppingSession, error)
	Delete(ctx context.Context, tenantID, sessionID uuid.UUID) error
}

type sessionService struct {
	repo port.SessionRepository
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(repo port.SessionRepository) SessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) Create(ctx context.Context, tenantID uuid.UUID, input CreateSessionInput) (*domain.CuppingSession, error) {
	session := &domain.CuppingSession{
		TenantID:    tenantID,
		Name:        input.Name,
		Description: input.Description,
		Status:      domain.SessionStatusDraft,
		CuppingDate: input.CuppingDate,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, tenantID, sessionID uuid.UUID) (*domain.CuppingSession, error) {
	return s.repo.GetByID(ctx, tenantID, sessionID)
}

func (s *sessionService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CuppingSession, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *sessionService) Update(ctx context.Context, tenantID, sessionID uuid.UUID, input UpdateSessionInput) (*domain.CuppingSession, error) {
	session, err := s.repo.GetByID(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		session.Name = *input.Name
	}
	if input.Description != nil {
		session.Description = *input.Description
	}
	if input.Status != nil {
		switch *input.Status {
		case domain.SessionStatusDraft, domain.SessionStatusInProgress,
			domain.SessionStatusCompleted, domain.SessionStatusArchived:
		default:
			return nil, domain.Invalid("status", "unknown session status")
		}
		session.Status = *input.Status
	}
	if input.CuppingDate != nil {
		session.CuppingDate = input.CuppingDate
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Delete(ctx context.Context, tenantID, sessionID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, sessionID)
}
