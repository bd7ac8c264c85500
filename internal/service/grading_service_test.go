package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Alaswadi/cupperly-sub000/internal/config"
	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/grading"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
	"github.com/Alaswadi/cupperly-sub000/mocks"
)

func newGradingService(gradingRepo *mocks.MockGradingRepo, sampleRepo *mocks.MockSampleRepo, email *mocks.MockEmailSender) service.GradingService {
	cfg := &config.GradingConfig{
		ReferenceSampleWeightGrams:       350,
		DefectDecay:                      20,
		MoisturePenaltyPerPoint:          0.05,
		WaterActivityPenaltyPerHundredth: 0.02,
		MaxMeasurementPenalty:            0.5,
	}
	policy := grading.NewDefaultPolicy(grading.PolicyWeights{
		DefectDecay:                      cfg.DefectDecay,
		MoisturePenaltyPerPoint:          cfg.MoisturePenaltyPerPoint,
		WaterActivityPenaltyPerHundredth: cfg.WaterActivityPenaltyPerHundredth,
		MaxMeasurementPenalty:            cfg.MaxMeasurementPenalty,
	})
	return service.NewGradingService(gradingRepo, sampleRepo, email, policy, cfg)
}

func TestGradingService_Create_RecomputesDerivedFields(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()

	sampleRepo.On("GetByID", mock.Anything, tenantID, sampleID).
		Return(&domain.Sample{ID: sampleID, TenantID: tenantID, Name: "Yirgacheffe Lot 4"}, nil)
	gradingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GreenBeanGrading")).
		Return(nil)

	input := &service.GradingInput{
		DefectBreakdown: []domain.DefectItem{
			{Type: domain.DefectFullBlack, Count: 2, Category: domain.DefectCategoryPrimary},
			{Type: domain.DefectFullSour, Count: 1, Category: domain.DefectCategoryPrimary},
			{Type: domain.DefectPartialBlack, Count: 7, Category: domain.DefectCategorySecondary},
			{Type: domain.DefectBrokenChippedCut, Count: 3, Category: domain.DefectCategorySecondary},
		},
		ScreenSizeWeights: map[string]float64{"16": 175, "17": 175},
		GradedBy:          "QC Lab",
	}

	result, err := svc.Create(context.Background(), tenantID, sampleID, input)

	assert.NoError(t, err)
	rec := result.Grading
	assert.Equal(t, domain.GradingSystemSCA, rec.GradingSystem)
	assert.Equal(t, 3, rec.PrimaryDefects)
	assert.Equal(t, 10, rec.SecondaryDefects)
	assert.InDelta(t, 5.0, rec.FullDefectEquivalents, 1e-9)
	assert.Equal(t, domain.ClassificationSpecialty, rec.Classification)
	assert.Equal(t, "Grade 1", rec.Grade)
	assert.InDelta(t, 50.0, rec.ScreenSizeDistribution["16"], 1e-9)
	if assert.NotNil(t, rec.AverageScreenSize) {
		assert.InDelta(t, 16.5, *rec.AverageScreenSize, 1e-9)
	}
	assert.NotNil(t, rec.QualityScore)
	assert.NotNil(t, rec.GradedAt)
	assert.Empty(t, result.Warnings)
	gradingRepo.AssertExpectations(t)
	sampleRepo.AssertExpectations(t)
}

func TestGradingService_Create_DuplicateReturnsConflict(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()

	sampleRepo.On("GetByID", mock.Anything, tenantID, sampleID).
		Return(&domain.Sample{ID: sampleID, TenantID: tenantID}, nil)
	gradingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GreenBeanGrading")).
		Return(domain.ErrGradingExists)

	result, err := svc.Create(context.Background(), tenantID, sampleID, &service.GradingInput{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrGradingExists)
}

func TestGradingService_Create_SampleMustExist(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()

	sampleRepo.On("GetByID", mock.Anything, tenantID, sampleID).
		Return(nil, domain.ErrSampleNotFound)

	result, err := svc.Create(context.Background(), tenantID, sampleID, &service.GradingInput{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSampleNotFound)
	gradingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGradingService_Create_OffTotalWarnsButSaves(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()

	sampleRepo.On("GetByID", mock.Anything, tenantID, sampleID).
		Return(&domain.Sample{ID: sampleID, TenantID: tenantID}, nil)
	gradingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GreenBeanGrading")).
		Return(nil)

	input := &service.GradingInput{
		ScreenSizeWeights: map[string]float64{"16": 100, "17": 100},
	}

	result, err := svc.Create(context.Background(), tenantID, sampleID, input)

	assert.NoError(t, err)
	assert.Len(t, result.Warnings, 1)
	gradingRepo.AssertExpectations(t)
}

func TestGradingService_Create_NoDefectDataMeansNoScore(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()

	sampleRepo.On("GetByID", mock.Anything, tenantID, sampleID).
		Return(&domain.Sample{ID: sampleID, TenantID: tenantID}, nil)
	gradingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GreenBeanGrading")).
		Return(nil)

	moisture := 11.0
	result, err := svc.Create(context.Background(), tenantID, sampleID, &service.GradingInput{
		MoistureContent: &moisture,
	})

	assert.NoError(t, err)
	assert.Nil(t, result.Grading.QualityScore)
	assert.Equal(t, domain.ClassificationSpecialty, result.Grading.Classification)
}

func TestGradingService_Create_RejectsBadInput(t *testing.T) {
	svc := newGradingService(new(mocks.MockGradingRepo), new(mocks.MockSampleRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	sampleID := uuid.New()

	badMoisture := 140.0
	wrongTier := domain.ClassificationPremium
	cases := []struct {
		name  string
		input *service.GradingInput
	}{
		{"unknown defect type", &service.GradingInput{
			DefectBreakdown: []domain.DefectItem{{Type: "quakers", Count: 1, Category: domain.DefectCategoryPrimary}},
		}},
		{"negative count", &service.GradingInput{
			DefectBreakdown: []domain.DefectItem{{Type: domain.DefectFullBlack, Count: -1, Category: domain.DefectCategoryPrimary}},
		}},
		{"wrong category", &service.GradingInput{
			DefectBreakdown: []domain.DefectItem{{Type: domain.DefectFullBlack, Count: 1, Category: domain.DefectCategorySecondary}},
		}},
		{"negative screen weight", &service.GradingInput{
			ScreenSizeWeights: map[string]float64{"16": -5},
		}},
		{"unknown screen key", &service.GradingInput{
			ScreenSizeWeights: map[string]float64{"21": 40},
		}},
		{"unknown peaberry screen key", &service.GradingInput{
			ScreenSizeWeights: map[string]float64{"peaberry_7": 12},
		}},
		{"moisture out of range", &service.GradingInput{MoistureContent: &badMoisture}},
		{"override to a derived tier", &service.GradingInput{OverrideClassification: &wrongTier}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Create(context.Background(), tenantID, sampleID, tc.input)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGradingService_Create_OffGradeOverride(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()

	sampleRepo.On("GetByID", mock.Anything, tenantID, sampleID).
		Return(&domain.Sample{ID: sampleID, TenantID: tenantID}, nil)
	gradingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GreenBeanGrading")).
		Return(nil)

	offGrade := domain.ClassificationOffGrade
	result, err := svc.Create(context.Background(), tenantID, sampleID, &service.GradingInput{
		OverrideClassification: &offGrade,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ClassificationOffGrade, result.Grading.Classification)
	assert.Equal(t, "Off Grade", result.Grading.Grade)
}

func TestGradingService_Update_PreservesCertification(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()
	certifiedBy := "Head Grader"
	existing := &domain.GreenBeanGrading{
		ID:          uuid.New(),
		TenantID:    tenantID,
		SampleID:    sampleID,
		CertifiedBy: &certifiedBy,
	}

	gradingRepo.On("GetBySampleID", mock.Anything, tenantID, sampleID).Return(existing, nil)
	gradingRepo.On("Update", mock.Anything, existing).Return(nil)

	result, err := svc.Update(context.Background(), tenantID, sampleID, &service.GradingInput{
		DefectBreakdown: []domain.DefectItem{
			{Type: domain.DefectFullBlack, Count: 6, Category: domain.DefectCategoryPrimary},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ClassificationPremium, result.Grading.Classification)
	if assert.NotNil(t, result.Grading.CertifiedBy) {
		assert.Equal(t, certifiedBy, *result.Grading.CertifiedBy)
	}
	gradingRepo.AssertExpectations(t)
}

func TestGradingService_Update_SameInputSameDerivedFields(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()
	existing := &domain.GreenBeanGrading{
		ID:       uuid.New(),
		TenantID: tenantID,
		SampleID: sampleID,
	}

	gradingRepo.On("GetBySampleID", mock.Anything, tenantID, sampleID).Return(existing, nil)
	gradingRepo.On("Update", mock.Anything, existing).Return(nil)

	moisture := 11.0
	input := &service.GradingInput{
		DefectBreakdown: []domain.DefectItem{
			{Type: domain.DefectFullBlack, Count: 2, Category: domain.DefectCategoryPrimary},
			{Type: domain.DefectShell, Count: 7, Category: domain.DefectCategorySecondary},
		},
		ScreenSizeWeights: map[string]float64{"15": 87.5, "16": 175, "17": 87.5},
		MoistureContent:   &moisture,
	}

	first, err := svc.Update(context.Background(), tenantID, sampleID, input)
	assert.NoError(t, err)
	firstFDE := first.Grading.FullDefectEquivalents
	firstClassification := first.Grading.Classification
	firstGrade := first.Grading.Grade
	firstScore := *first.Grading.QualityScore
	firstAvg := *first.Grading.AverageScreenSize
	firstUniformity := *first.Grading.UniformityPercentage
	firstDist := first.Grading.ScreenSizeDistribution

	second, err := svc.Update(context.Background(), tenantID, sampleID, input)
	assert.NoError(t, err)
	assert.Equal(t, firstFDE, second.Grading.FullDefectEquivalents)
	assert.Equal(t, firstClassification, second.Grading.Classification)
	assert.Equal(t, firstGrade, second.Grading.Grade)
	assert.Equal(t, firstScore, *second.Grading.QualityScore)
	assert.Equal(t, firstAvg, *second.Grading.AverageScreenSize)
	assert.Equal(t, firstUniformity, *second.Grading.UniformityPercentage)
	assert.Equal(t, firstDist, second.Grading.ScreenSizeDistribution)
	gradingRepo.AssertExpectations(t)
}

func TestGradingService_Certify(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()
	existing := &domain.GreenBeanGrading{
		ID:             uuid.New(),
		TenantID:       tenantID,
		SampleID:       sampleID,
		Classification: domain.ClassificationSpecialty,
		Grade:          "Grade 1",
	}

	gradingRepo.On("GetBySampleID", mock.Anything, tenantID, sampleID).Return(existing, nil)
	gradingRepo.On("Update", mock.Anything, existing).Return(nil)
	sampleRepo.On("GetByID", mock.Anything, tenantID, sampleID).
		Return(&domain.Sample{ID: sampleID, TenantID: tenantID, Name: "Lot 12"}, nil)
	email.On("SendCertificationNotice", mock.Anything, mock.AnythingOfType("port.CertificationNotice")).
		Return(nil)

	rec, err := svc.Certify(context.Background(), tenantID, sampleID, &service.CertifyInput{
		CertifiedBy: "Head Grader",
		NotifyEmail: "buyer@example.com",
		NotifyName:  "Buyer",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, rec.CertifiedBy) {
		assert.Equal(t, "Head Grader", *rec.CertifiedBy)
	}
	assert.NotNil(t, rec.CertificationDate)
	email.AssertExpectations(t)
}

func TestGradingService_Certify_AlreadyCertified(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()
	certifiedBy := "Head Grader"
	existing := &domain.GreenBeanGrading{
		ID:          uuid.New(),
		TenantID:    tenantID,
		SampleID:    sampleID,
		CertifiedBy: &certifiedBy,
	}

	gradingRepo.On("GetBySampleID", mock.Anything, tenantID, sampleID).Return(existing, nil)

	rec, err := svc.Certify(context.Background(), tenantID, sampleID, &service.CertifyInput{CertifiedBy: "Someone Else"})

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrAlreadyCertified)
	gradingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGradingService_Certify_EmailFailureDoesNotFail(t *testing.T) {
	gradingRepo := new(mocks.MockGradingRepo)
	sampleRepo := new(mocks.MockSampleRepo)
	email := new(mocks.MockEmailSender)
	svc := newGradingService(gradingRepo, sampleRepo, email)

	tenantID := uuid.New()
	sampleID := uuid.New()
	existing := &domain.GreenBeanGrading{
		ID:       uuid.New(),
		TenantID: tenantID,
		SampleID: sampleID,
	}

	gradingRepo.On("GetBySampleID", mock.Anything, tenantID, sampleID).Return(existing, nil)
	gradingRepo.On("Update", mock.Anything, existing).Return(nil)
	sampleRepo.On("GetByID", mock.Anything, tenantID, sampleID).
		Return(&domain.Sample{ID: sampleID, TenantID: tenantID}, nil)
	email.On("SendCertificationNotice", mock.Anything, mock.AnythingOfType("port.CertificationNotice")).
		Return(errors.New("ses unavailable"))

	rec, err := svc.Certify(context.Background(), tenantID, sampleID, &service.CertifyInput{
		CertifiedBy: "Head Grader",
		NotifyEmail: "buyer@example.com",
	})

	assert.NoError(t, err)
	assert.NotNil(t, rec.CertifiedBy)
}
