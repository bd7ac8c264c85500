package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// TenantRepository defines the contract for tenant persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionRepository defines the contract for cupping session persistence.
// All query methods include tenantID to enforce tenant isolation at the
// data layer.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.CuppingSession) error
	GetByID(ctx context.Context, tenantID, sessionID uuid.UUID) (*domain.CuppingSession, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CuppingSession, int, error)
	Update(ctx context.Context, session *domain.CuppingSession) error
	Delete(ctx context.Context, tenantID, sessionID uuid.UUID) error
}

// SampleRepository defines the contract for sample persistence.
type SampleRepository interface {
	Create(ctx context.Context, sample *domain.Sample) error
	GetByID(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.Sample, error)
	ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID, offset, limit int) ([]domain.Sample, int, error)
	Update(ctx context.Context, sample *domain.Sample) error
	Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error
}

// GradingRepository defines the contract for green bean grading persistence.
// The public identity of a grading is its sample: at most one record per
// sample, enforced by a uniqueness constraint on sample_id. Create surfaces
// domain.ErrGradingExists when the constraint rejects a duplicate, which is
// how a concurrent double-create race is resolved.
type GradingRepository interface {
	Create(ctx context.Context, grading *domain.GreenBeanGrading) error
	GetBySampleID(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.GreenBeanGrading, error)
	Update(ctx context.Context, grading *domain.GreenBeanGrading) error
	Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error
	ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID) ([]domain.GreenBeanGrading, error)
}

// ScoreRepository defines the contract for cupping score persistence.
type ScoreRepository interface {
	Create(ctx context.Context, score *domain.CuppingScore) error
	GetByID(ctx context.Context, tenantID, scoreID uuid.UUID) (*domain.CuppingScore, error)
	ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID) ([]domain.CuppingScore, error)
	ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID) ([]domain.CuppingScore, error)
	Update(ctx context.Context, score *domain.CuppingScore) error
	Delete(ctx context.Context, tenantID, scoreID uuid.UUID) error
}

// AttachmentRepository defines the contract for sample attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.Attachment) error
	GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error)
	UpdateStatus(ctx context.Context, tenantID, attachmentID uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error
}
