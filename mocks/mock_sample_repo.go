package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// MockSampleRepo is a mock implementation of port.SampleRepository.
type MockSampleRepo struct {
	mock.Mock
}

func (m *MockSampleRepo) Create(ctx context.Context, sample *domain.Sample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}

func (m *MockSampleRepo) GetByID(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.Sample, error) {
	args := m.Called(ctx, tenantID, sampleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sample), args.Error(1)
}

func (m *MockSampleRepo) ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID, offset, limit int) ([]domain.Sample, int, error) {
	args := m.Called(ctx, tenantID, sessionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Sample), args.Int(1), args.Error(2)
}

func (m *MockSampleRepo) Update(ctx context.Context, sample *domain.Sample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}

func (m *MockSampleRepo) Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error {
	args := m.Called(ctx, tenantID, sampleID)
	return args.Error(0)
}
