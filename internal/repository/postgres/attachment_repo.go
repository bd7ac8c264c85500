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

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	now := time.Now().UTC()
	att.CreatedAt = now
	att.UpdatedAt = now

	query := `INSERT INTO sample_attachments (
		id, tenant_id, sample_id, uploaded_by, file_name, original_name,
		file_type, file_size, s3_bucket, s3_key, content_type, status,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		att.ID, att.TenantID, att.SampleID, att.UploadedBy, att.FileName, att.OriginalName,
		att.FileType, att.FileSize, att.S3Bucket, att.S3Key, att.ContentType, att.Status,
		att.CreatedAt, att.UpdatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	var att domain.Attachment
	err := r.db.GetContext(ctx, &att,
		"SELECT * FROM sample_attachments WHERE id = $1 AND tenant_id = $2",
		attachmentID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &att, nil
}

func (r *attachmentRepo) ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM sample_attachments WHERE tenant_id = $1 AND sample_id = $2",
		tenantID, sampleID)
	if err != nil {
		return nil, 0, fmt.Errorf("attachmentRepo.ListBySample count: %w", err)
	}

	var atts []domain.Attachment
	err = r.db.SelectContext(ctx, &atts,
		`SELECT * FROM sample_attachments WHERE tenant_id = $1 AND sample_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		tenantID, sampleID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("attachmentRepo.ListBySample: %w", err)
	}
	return atts, total, nil
}

func (r *attachmentRepo) UpdateStatus(ctx context.Context, tenantID, attachmentID uuid.UUID, status domain.FileStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sample_attachments SET status = $1, updated_at = $2 WHERE id = $3 AND tenant_id = $4",
		status, time.Now().UTC(), attachmentID, tenantID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAttachmentNotFound
	}
	return nil
}

func (r *attachmentRepo) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM sample_attachments WHERE id = $1 AND tenant_id = $2",
		attachmentID, tenantID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAttachmentNotFound
	}
	return nil
}
