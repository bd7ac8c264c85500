package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
	"github.com/Alaswadi/cupperly-sub000/mocks"
)

func TestReportService_SessionReport(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	gradingRepo := new(mocks.MockGradingRepo)
	scoreRepo := new(mocks.MockScoreRepo)
	svc := service.NewReportService(sessionRepo, sampleRepo, gradingRepo, scoreRepo)

	tenantID := uuid.New()
	sessionID := uuid.New()
	gradedID := uuid.New()
	certifiedID := uuid.New()
	ungradedID := uuid.New()
	certifiedBy := "Head Grader"

	samples := []domain.Sample{
		{ID: gradedID, TenantID: tenantID, SessionID: sessionID, Name: "Lot A"},
		{ID: certifiedID, TenantID: tenantID, SessionID: sessionID, Name: "Lot B"},
		{ID: ungradedID, TenantID: tenantID, SessionID: sessionID, Name: "Lot C"},
	}
	gradings := []domain.GreenBeanGrading{
		{ID: uuid.New(), SampleID: gradedID, Classification: domain.ClassificationPremium},
		{ID: uuid.New(), SampleID: certifiedID, Classification: domain.ClassificationSpecialty, CertifiedBy: &certifiedBy},
	}
	scores := []domain.CuppingScore{
		{ID: uuid.New(), SampleID: gradedID, CupperName: "Ana", TotalScore: 82},
		{ID: uuid.New(), SampleID: gradedID, CupperName: "Ben", TotalScore: 86},
		{ID: uuid.New(), SampleID: gradedID, CupperName: "Cleo", TotalScore: 84},
	}

	sessionRepo.On("GetByID", mock.Anything, tenantID, sessionID).
		Return(&domain.CuppingSession{ID: sessionID, TenantID: tenantID, Name: "Spring Arrivals"}, nil)
	sampleRepo.On("ListBySession", mock.Anything, tenantID, sessionID, 0, service.MaxReportSamples).
		Return(samples, len(samples), nil)
	gradingRepo.On("ListBySession", mock.Anything, tenantID, sessionID).Return(gradings, nil)
	scoreRepo.On("ListBySession", mock.Anything, tenantID, sessionID).Return(scores, nil)

	report, err := svc.SessionReport(context.Background(), tenantID, sessionID)

	require.NoError(t, err)
	assert.Equal(t, 3, report.SampleCount)
	assert.Equal(t, 2, report.GradedCount)
	assert.Equal(t, 1, report.CertifiedCount)
	require.Len(t, report.Rows, 3)

	lotA := report.Rows[0]
	require.NotNil(t, lotA.Grading)
	assert.Equal(t, 3, lotA.CupperCount)
	require.NotNil(t, lotA.AverageTotal)
	assert.InDelta(t, 84.0, *lotA.AverageTotal, 1e-9)
	assert.InDelta(t, 86.0, *lotA.HighTotal, 1e-9)
	assert.InDelta(t, 82.0, *lotA.LowTotal, 1e-9)

	lotC := report.Rows[2]
	assert.Nil(t, lotC.Grading)
	assert.Zero(t, lotC.CupperCount)
	assert.Nil(t, lotC.AverageTotal)
}

func TestReportService_SessionReport_SessionNotFound(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	svc := service.NewReportService(sessionRepo, new(mocks.MockSampleRepo), new(mocks.MockGradingRepo), new(mocks.MockScoreRepo))

	tenantID := uuid.New()
	sessionID := uuid.New()

	sessionRepo.On("GetByID", mock.Anything, tenantID, sessionID).
		Return(nil, domain.ErrSessionNotFound)

	report, err := svc.SessionReport(context.Background(), tenantID, sessionID)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
