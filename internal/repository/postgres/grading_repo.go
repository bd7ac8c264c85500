package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

type gradingRepo struct {
	db *sqlx.DB
}

// NewGradingRepo creates a new PostgreSQL-backed GradingRepository.
// The green_bean_gradings table carries a unique constraint on sample_id;
// that constraint, not application locking, is what resolves concurrent
// double-creates for the same sample.
func NewGradingRepo(db *sqlx.DB) port.GradingRepository {
	return &gradingRepo{db: db}
}

func (r *gradingRepo) Create(ctx context.Context, grading *domain.GreenBeanGrading) error {
	grading.ID = uuid.New()
	now := time.Now().UTC()
	grading.CreatedAt = now
	grading.UpdatedAt = now

	query := `INSERT INTO green_bean_gradings (
		id, tenant_id, sample_id, grading_system,
		primary_defects, secondary_defects, full_defect_equivalents, defect_breakdown,
		screen_size_distribution, average_screen_size, uniformity_percentage,
		moisture_content, water_activity, bulk_density, uniformity_score,
		bean_color_assessment, classification, grade, quality_score,
		notes, graded_by, graded_at, certified_by, certification_date,
		created_at, updated_at
	) VALUES (
		$1, $2, $3, $4,
		$5, $6, $7, $8,
		$9, $10, $11,
		$12, $13, $14, $15,
		$16, $17, $18, $19,
		$20, $21, $22, $23, $24,
		$25, $26
	)`

	_, err := r.db.ExecContext(ctx, query,
		grading.ID, grading.TenantID, grading.SampleID, grading.GradingSystem,
		grading.PrimaryDefects, grading.SecondaryDefects, grading.FullDefectEquivalents, grading.DefectBreakdown,
		grading.ScreenSizeDistribution, grading.AverageScreenSize, grading.UniformityPercentage,
		grading.MoistureContent, grading.WaterActivity, grading.BulkDensity, grading.UniformityScore,
		grading.BeanColorAssessment, grading.Classification, grading.Grade, grading.QualityScore,
		grading.Notes, grading.GradedBy, grading.GradedAt, grading.CertifiedBy, grading.CertificationDate,
		grading.CreatedAt, grading.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "sample_id") {
			return domain.ErrGradingExists
		}
		return fmt.Errorf("gradingRepo.Create: %w", err)
	}
	return nil
}

func (r *gradingRepo) GetBySampleID(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.GreenBeanGrading, error) {
	var grading domain.GreenBeanGrading
	err := r.db.GetContext(ctx, &grading,
		"SELECT * FROM green_bean_gradings WHERE sample_id = $1 AND tenant_id = $2",
		sampleID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGradingNotFound
		}
		return nil, fmt.Errorf("gradingRepo.GetBySampleID: %w", err)
	}
	return &grading, nil
}

func (r *gradingRepo) Update(ctx context.Context, grading *domain.GreenBeanGrading) error {
	grading.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE green_bean_gradings SET
			grading_system = $1,
			primary_defects = $2, secondary_defects = $3, full_defect_equivalents = $4,
			defect_breakdown = $5, screen_size_distribution = $6,
			average_screen_size = $7, uniformity_percentage = $8,
			moisture_content = $9, water_activity = $10, bulk_density = $11,
			uniformity_score = $12, bean_color_assessment = $13,
			classification = $14, grade = $15, quality_score = $16,
			notes = $17, graded_by = $18, graded_at = $19,
			certified_by = $20, certification_date = $21, updated_at = $22
		 WHERE sample_id = $23 AND tenant_id = $24`,
		grading.GradingSystem,
		grading.PrimaryDefects, grading.SecondaryDefects, grading.FullDefectEquivalents,
		grading.DefectBreakdown, grading.ScreenSizeDistribution,
		grading.AverageScreenSize, grading.UniformityPercentage,
		grading.MoistureContent, grading.WaterActivity, grading.BulkDensity,
		grading.UniformityScore, grading.BeanColorAssessment,
		grading.Classification, grading.Grade, grading.QualityScore,
		grading.Notes, grading.GradedBy, grading.GradedAt,
		grading.CertifiedBy, grading.CertificationDate, grading.UpdatedAt,
		grading.SampleID, grading.TenantID)
	if err != nil {
		return fmt.Errorf("gradingRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrGradingNotFound
	}
	return nil
}

func (r *gradingRepo) Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM green_bean_gradings WHERE sample_id = $1 AND tenant_id = $2",
		sampleID, tenantID)
	if err != nil {
		return fmt.Errorf("gradingRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrGradingNotFound
	}
	return nil
}

func (r *gradingRepo) ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID) ([]domain.GreenBeanGrading, error) {
	var gradings []domain.GreenBeanGrading
	err := r.db.SelectContext(ctx, &gradings,
		`SELECT g.* FROM green_bean_gradings g
		 JOIN samples s ON s.id = g.sample_id
		 WHERE g.tenant_id = $1 AND s.session_id = $2
		 ORDER BY s.created_at ASC`,
		tenantID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("gradingRepo.ListBySession: %w", err)
	}
	return gradings, nil
}
