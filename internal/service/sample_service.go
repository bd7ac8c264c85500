package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

// CreateSampleInput is the DTO for registering a sample within a session.
type CreateSampleInput struct {
	Name      string     `json:"name" binding:"required"`
	Origin    string     `json:"origin"`
	Region    string     `json:"region"`
	Producer  string     `json:"producer"`
	Variety   string     `json:"variety"`
	Process   string     `json:"process"`
	Altitude  string     `json:"altitude"`
	RoastDate *time.Time `json:"roast_date"`
}

// UpdateSampleInput is the DTO for updating a sample.
type UpdateSampleInput struct {
	Name      *string    `json:"name"`
	Origin    *string    `json:"origin"`
	Region    *string    `json:"region"`
	Producer  *string    `json:"producer"`
	Variety   *string    `json:"variety"`
	Process   *string    `json:"process"`
	Altitude  *string    `json:"altitude"`
	RoastDate *time.Time `json:"roast_date"`
}

// SampleService defines the sample management contract.
type SampleService interface {
	Create(ctx context.Context, tenantID, sessionID uuid.UUID, input CreateSampleInput) (*domain.Sample, error)
	GetByID(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.Sample, error)
	ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID, offset, limit int) ([]domain.Sample, int, error)
	Update(ctx context.Context, tenantID, sampleID uuid.UUID, input UpdateSampleInput) (*domain.Sample, error)
	Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error
}

type sampleService struct {
	sampleRepo  port.SampleRepository
	sessionRepo port.SessionRepository
}

// NewSampleService creates a new SampleService implementation.
func NewSampleService(sampleRepo port.SampleRepository, sessionRepo port.SessionRepository) SampleService {
	return &sampleService{sampleRepo: sampleRepo, sessionRepo: sessionRepo}
}

func (s *sampleService) Create(ctx context.Context, tenantID, sessionID uuid.UUID, input CreateSampleInput) (*domain.Sample, error) {
	if _, err := s.sessionRepo.GetByID(ctx, tenantID, sessionID); err != nil {
		return nil, err
	}

	sample := &domain.Sample{
		TenantID:  tenantID,
		SessionID: sessionID,
		Name:      input.Name,
		Origin:    input.Origin,
		Region:    input.Region,
		Producer:  input.Producer,
		Variety:   input.Variety,
		Process:   input.Process,
		Altitude:  input.Altitude,
		RoastDate: input.RoastDate,
	}
	if err := s.sampleRepo.Create(ctx, sample); err != nil {
		return nil, err
	}
	return sample, nil
}

func (s *sampleService) GetByID(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.Sample, error) {
	return s.sampleRepo.GetByID(ctx, tenantID, sampleID)
}

func (s *sampleService) ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID, offset, limit int) ([]domain.Sample, int, error) {
	return s.sampleRepo.ListBySession(ctx, tenantID, sessionID, offset, limit)
}

func (s *sampleService) Update(ctx context.Context, tenantID, sampleID uuid.UUID, input UpdateSampleInput) (*domain.Sample, error) {
	sample, err := s.sampleRepo.GetByID(ctx, tenantID, sampleID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		sample.Name = *input.Name
	}
	if input.Origin != nil {
		sample.Origin = *input.Origin
	}
	if input.Region != nil {
		sample.Region = *input.Region
	}
	if input.Producer != nil {
		sample.Producer = *input.Producer
	}
	if input.Variety != nil {
		sample.Variety = *input.Variety
	}
	if input.Process != nil {
		sample.Process = *input.Process
	}
	if input.Altitude != nil {
		sample.Altitude = *input.Altitude
	}
	if input.RoastDate != nil {
		sample.RoastDate = input.RoastDate
	}

	if err := s.sampleRepo.Update(ctx, sample); err != nil {
		return nil, err
	}
	return sample, nil
}

func (s *sampleService) Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error {
	// The grading and scores cascade with the sample row.
	return s.sampleRepo.Delete(ctx, tenantID, sampleID)
}
