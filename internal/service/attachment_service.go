package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/config"
	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

// AttachmentUploadInput is the DTO for sample attachment uploads.
type AttachmentUploadInput struct {
	TenantID   uuid.UUID
	SampleID   uuid.UUID
	UploadedBy string
	File       multipart.File
	Header     *multipart.FileHeader
}

// AttachmentService defines the sample attachment contract.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error)
	GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error)
	GetDownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error
}

type attachmentService struct {
	attRepo    port.AttachmentRepository
	sampleRepo port.SampleRepository
	storage    port.ObjectStorage
	cfg        *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	attRepo port.AttachmentRepository,
	sampleRepo port.SampleRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) AttachmentService {
	return &attachmentService{
		attRepo:    attRepo,
		sampleRepo: sampleRepo,
		storage:    storage,
		cfg:        cfg,
	}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error) {
	if _, err := s.sampleRepo.GetByID(ctx, input.TenantID, input.SampleID); err != nil {
		return nil, err
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])

	// Validate detected content type
	_, validContent := domain.AllowedContentTypes[detectedType]
	if !validContent {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	// Generate storage key and attachment metadata
	attID := uuid.New()
	s3Key := fmt.Sprintf("tenants/%s/samples/%s/attachments/%s/%s",
		input.TenantID, input.SampleID, attID, input.Header.Filename)
	contentType := domain.AllowedFileTypes[fileType]

	att := &domain.Attachment{
		ID:           attID,
		TenantID:     input.TenantID,
		SampleID:     input.SampleID,
		UploadedBy:   input.UploadedBy,
		FileName:     attID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		Status:       domain.FileStatusPending,
	}

	log.Printf("attachmentService.Upload: uploading %s (%s, %d bytes) for sample %s tenant %s",
		input.Header.Filename, contentType, input.Header.Size, input.SampleID, input.TenantID)

	// Persist metadata with pending status
	if err := s.attRepo.Create(ctx, att); err != nil {
		log.Printf("attachmentService.Upload: failed to create attachment metadata: %v", err)
		return nil, fmt.Errorf("creating attachment metadata: %w", err)
	}

	// Upload to S3
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("attachmentService.Upload: S3 upload failed for attachment %s: %v", att.ID, err)
		// Mark as failed
		_ = s.attRepo.UpdateStatus(ctx, att.TenantID, att.ID, domain.FileStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	// Mark as uploaded
	if err := s.attRepo.UpdateStatus(ctx, att.TenantID, att.ID, domain.FileStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating attachment status: %w", err)
	}
	att.Status = domain.FileStatusUploaded

	return att, nil
}

func (s *attachmentService) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	return s.attRepo.GetByID(ctx, tenantID, attachmentID)
}

func (s *attachmentService) ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	return s.attRepo.ListBySample(ctx, tenantID, sampleID, offset, limit)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (string, error) {
	att, err := s.attRepo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, att.S3Bucket, att.S3Key, s.cfg.PresignExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	log.Printf("attachmentService.Delete: deleting attachment %s for tenant %s", attachmentID, tenantID)

	att, err := s.attRepo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, att.S3Bucket, att.S3Key); err != nil {
		log.Printf("attachmentService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}

	return s.attRepo.Delete(ctx, tenantID, attachmentID)
}
