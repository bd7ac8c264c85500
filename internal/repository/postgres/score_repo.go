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

type scoreRepo struct {
	db *sqlx.DB
}

// NewScoreRepo creates a new PostgreSQL-backed ScoreRepository.
func NewScoreRepo(db *sqlx.DB) port.ScoreRepository {
	return &scoreRepo{db: db}
}

func (r *scoreRepo) Create(ctx context.Context, score *domain.CuppingScore) error {
	score.ID = uuid.New()
	now := time.Now().UTC()
	score.CreatedAt = now
	score.UpdatedAt = now

	query := `INSERT INTO cupping_scores (
		id, tenant_id, sample_id, cupper_name,
		fragrance, flavor, aftertaste, acidity, body,
		balance, uniformity, clean_cup, sweetness, overall,
		taint_cups, fault_cups, total_score, notes, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4,
		$5, $6, $7, $8, $9,
		$10, $11, $12, $13, $14,
		$15, $16, $17, $18, $19, $20
	)`

	_, err := r.db.ExecContext(ctx, query,
		score.ID, score.TenantID, score.SampleID, score.CupperName,
		score.Fragrance, score.Flavor, score.Aftertaste, score.Acidity, score.Body,
		score.Balance, score.Uniformity, score.CleanCup, score.Sweetness, score.Overall,
		score.TaintCups, score.FaultCups, score.TotalScore, score.Notes,
		score.CreatedAt, score.UpdatedAt)
	if err != nil {
		return fmt.Errorf("scoreRepo.Create: %w", err)
	}
	return nil
}

func (r *scoreRepo) GetByID(ctx context.Context, tenantID, scoreID uuid.UUID) (*domain.CuppingScore, error) {
	var score domain.CuppingScore
	err := r.db.GetContext(ctx, &score,
		"SELECT * FROM cupping_scores WHERE id = $1 AND tenant_id = $2", scoreID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScoreNotFound
		}
		return nil, fmt.Errorf("scoreRepo.GetByID: %w", err)
	}
	return &score, nil
}

func (r *scoreRepo) ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID) ([]domain.CuppingScore, error) {
	var scores []domain.CuppingScore
	err := r.db.SelectContext(ctx, &scores,
		`SELECT * FROM cupping_scores WHERE tenant_id = $1 AND sample_id = $2
		 ORDER BY created_at ASC`,
		tenantID, sampleID)
	if err != nil {
		return nil, fmt.Errorf("scoreRepo.ListBySample: %w", err)
	}
	return scores, nil
}

func (r *scoreRepo) ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID) ([]domain.CuppingScore, error) {
	var scores []domain.CuppingScore
	err := r.db.SelectContext(ctx, &scores,
		`SELECT c.* FROM cupping_scores c
		 JOIN samples s ON s.id = c.sample_id
		 WHERE c.tenant_id = $1 AND s.session_id = $2
		 ORDER BY s.created_at ASC, c.created_at ASC`,
		tenantID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("scoreRepo.ListBySession: %w", err)
	}
	return scores, nil
}

func (r *scoreRepo) Update(ctx context.Context, score *domain.CuppingScore) error {
	score.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE cupping_scores SET
			cupper_name = $1, fragrance = $2, flavor = $3, aftertaste = $4,
			acidity = $5, body = $6, balance = $7, uniformity = $8,
			clean_cup = $9, sweetness = $10, overall = $11,
			taint_cups = $12, fault_cups = $13, total_score = $14,
			notes = $15, updated_at = $16
		 WHERE id = $17 AND tenant_id = $18`,
		score.CupperName, score.Fragrance, score.Flavor, score.Aftertaste,
		score.Acidity, score.Body, score.Balance, score.Uniformity,
		score.CleanCup, score.Sweetness, score.Overall,
		score.TaintCups, score.FaultCups, score.TotalScore,
		score.Notes, score.UpdatedAt, score.ID, score.TenantID)
	if err != nil {
		return fmt.Errorf("scoreRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrScoreNotFound
	}
	return nil
}

func (r *scoreRepo) Delete(ctx context.Context, tenantID, scoreID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM cupping_scores WHERE id = $1 AND tenant_id = $2", scoreID, tenantID)
	if err != nil {
		return fmt.Errorf("scoreRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrScoreNotFound
	}
	return nil
}
