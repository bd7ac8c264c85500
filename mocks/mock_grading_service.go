package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
)

// MockGradingService is a mock implementation of service.GradingService.
type MockGradingService struct {
	mock.Mock
}

func (m *MockGradingService) Get(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.GreenBeanGrading, error) {
	args := m.Called(ctx, tenantID, sampleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GreenBeanGrading), args.Error(1)
}

func (m *MockGradingService) Create(ctx context.Context, tenantID, sampleID uuid.UUID, input *service.GradingInput) (*service.GradingResult, error) {
	args := m.Called(ctx, tenantID, sampleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GradingResult), args.Error(1)
}

func (m *MockGradingService) Update(ctx context.Context, tenantID, sampleID uuid.UUID, input *service.GradingInput) (*service.GradingResult, error) {
	args := m.Called(ctx, tenantID, sampleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GradingResult), args.Error(1)
}

func (m *MockGradingService) Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error {
	args := m.Called(ctx, tenantID, sampleID)
	return args.Error(0)
}

func (m *MockGradingService) Certify(ctx context.Context, tenantID, sampleID uuid.UUID, input *service.CertifyInput) (*domain.GreenBeanGrading, error) {
	args := m.Called(ctx, tenantID, sampleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GreenBeanGrading), args.Error(1)
}
