package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// MockAttachmentRepo is a mock implementation of port.AttachmentRepository.
type MockAttachmentRepo struct {
	mock.Mock
}

func (m *MockAttachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *MockAttachmentRepo) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, tenantID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	args := m.Called(ctx, tenantID, sampleID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Attachment), args.Int(1), args.Error(2)
}

func (m *MockAttachmentRepo) UpdateStatus(ctx context.Context, tenantID, attachmentID uuid.UUID, status domain.FileStatus) error {
	args := m.Called(ctx, tenantID, attachmentID, status)
	return args.Error(0)
}

func (m *MockAttachmentRepo) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	args := m.Called(ctx, tenantID, attachmentID)
	return args.Error(0)
}
