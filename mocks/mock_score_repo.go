package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// MockScoreRepo is a mock implementation of port.ScoreRepository.
type MockScoreRepo struct {
	mock.Mock
}

func (m *MockScoreRepo) Create(ctx context.Context, score *domain.CuppingScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockScoreRepo) GetByID(ctx context.Context, tenantID, scoreID uuid.UUID) (*domain.CuppingScore, error) {
	args := m.Called(ctx, tenantID, scoreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CuppingScore), args.Error(1)
}

func (m *MockScoreRepo) ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID) ([]domain.CuppingScore, error) {
	args := m.Called(ctx, tenantID, sampleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CuppingScore), args.Error(1)
}

func (m *MockScoreRepo) ListBySession(ctx context.Context, tenantID, sessionID uuid.UUID) ([]domain.CuppingScore, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CuppingScore), args.Error(1)
}

func (m *MockScoreRepo) Update(ctx context.Context, score *domain.CuppingScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockScoreRepo) Delete(ctx context.Context, tenantID, scoreID uuid.UUID) error {
	args := m.Called(ctx, tenantID, scoreID)
	return args.Error(0)
}
