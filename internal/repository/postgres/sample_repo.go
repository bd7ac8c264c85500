package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

type sampleRepo struct {
	db *sqlx.DB
}

// NewSampleRepo creates a new PostgreSQL-backed SampleRepository.
func NewSampleRepo(db *sqlx.DB) port.SampleRepository {
	return &sampleRepo{db: db}
}

func (r *sampleRepo) Create(ctx context.Context, sample *domain.Sample) error {
	sample.ID = uuid.New()
	now := time.Now().UTC()
	sample.CreatedAt = now
	sample.UpdatedAt = now

	query := `INSERT INTO samples (
		id, tenant_id, session_id, name, origin, region, producer,
		variety, process, altitude, roast_date, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		sample.ID, sample.TenantID, sample.SessionID, sample.Name, sample.Origin,
		sample.Region, sample.Producer, sample.Variety, sample.Process,
		sample.Altitude, sample.RoastDate, sample.CreatedAt, sample.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sampleRepo.Create: %w", err)
	}
	return nil
}

func (r *sampleRepo) GetByID(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.Sample, error) {
	var sample domain.Sample
	err := r.db.GetContext(ctx, &sample,
		"SELECT * FROM samples WHERE id = $1 AND tenant_id = $2", sampleID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSampleNotFound
		}
		return nil, fmt.Errorf("sampleRepo.GetByID: %w", err)
	}
	return &sample, nil
}

func (r *sampleRepo) ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID, offset, limit int) ([]domain.Sample, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM samples WHERE tenant_id = $1 AND session_id = $2",
		tenantID, sessionID)
	if err != nil {
		return nil, 0, fmt.Errorf("sampleRepo.ListBySession count: %w", err)
	}

	var samples []domain.Sample
	err = r.db.SelectContext(ctx, &samples,
		`SELECT * FROM samples WHERE tenant_id = $1 AND session_id = $2
		 ORDER BY created_at ASC LIMIT $3 OFFSET $4`,
		tenantID, sessionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("sampleRepo.ListBySession: %w", err)
	}
	return samples, total, nil
}

func (r *sampleRepo) Update(ctx context.Context, sample *domain.Sample) error {
	sample.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE samples SET
			name = $1, origin = $2, region = $3, producer = $4, variety = $5,
			process = $6, altitude = $7, roast_date = $8, updated_at = $9
		 WHERE id = $10 AND tenant_id = $11`,
		sample.Name, sample.Origin, sample.Region, sample.Producer, sample.Variety,
		sample.Process, sample.Altitude, sample.RoastDate, sample.UpdatedAt,
		sample.ID, sample.TenantID)
	if err != nil {
		return fmt.Errorf("sampleRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSampleNotFound
	}
	return nil
}

func (r *sampleRepo) Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM samples WHERE id = $1 AND tenant_id = $2", sampleID, tenantID)
	if err != nil {
		return fmt.Errorf("sampleRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSampleNotFound
	}
	return nil
}
