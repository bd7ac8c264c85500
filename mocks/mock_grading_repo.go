package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// MockGradingRepo is a mock implementation of port.GradingRepository.
type MockGradingRepo struct {
	mock.Mock
}

func (m *MockGradingRepo) Create(ctx context.Context, grading *domain.GreenBeanGrading) error {
	args := m.Called(ctx, grading)
	return args.Error(0)
}

func (m *MockGradingRepo) GetBySampleID(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.GreenBeanGrading, error) {
	args := m.Called(ctx, tenantID, sampleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GreenBeanGrading), args.Error(1)
}

func (m *MockGradingRepo) Update(ctx context.Context, grading *domain.GreenBeanGrading) error {
	args := m.Called(ctx, grading)
	return args.Error(0)
}

func (m *MockGradingRepo) Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error {
	args := m.Called(ctx, tenantID, sampleID)
	return args.Error(0)
}

func (m *MockGradingRepo) ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID) ([]domain.GreenBeanGrading, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GreenBeanGrading), args.Error(1)
}
