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

type sessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a new PostgreSQL-backed SessionRepository.
func NewSessionRepo(db *sqlx.DB) port.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.CuppingSession) error {
	session.ID = uuid.New()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	query := `INSERT INTO cupping_sessions (
		id, tenant_id, name, description, status, cupping_date, created_by, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.TenantID, session.Name, session.Description, session.Status,
		session.CuppingDate, session.CreatedBy, session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sessionRepo.Create: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, tenantID, sessionID uuid.UUID) (*domain.CuppingSession, error) {
	var session domain.CuppingSession
	err := r.db.GetContext(ctx, &session,
		"SELECT * FROM cupping_sessions WHERE id = $1 AND tenant_id = $2", sessionID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetByID: %w", err)
	}
	return &session, nil
}

func (r *sessionRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CuppingSession, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM cupping_sessions WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("sessionRepo.ListByTenant count: %w", err)
	}

	var sessions []domain.CuppingSession
	err = r.db.SelectContext(ctx, &sessions,
		`SELECT * FROM cupping_sessions WHERE tenant_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("sessionRepo.ListByTenant: %w", err)
	}
	return sessions, total, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *domain.CuppingSession) error {
	session.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE cupping_sessions SET
			name = $1, description = $2, status = $3, cupping_date = $4, updated_at = $5
		 WHERE id = $6 AND tenant_id = $7`,
		session.Name, session.Description, session.Status, session.CuppingDate,
		session.UpdatedAt, session.ID, session.TenantID)
	if err != nil {
		return fmt.Errorf("sessionRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, tenantID, sessionID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM cupping_sessions WHERE id = $1 AND tenant_id = $2", sessionID, tenantID)
	if err != nil {
		return fmt.Errorf("sessionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
