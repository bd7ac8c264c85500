package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/config"
	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/grading"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

// GradingInput is the DTO for creating or updating a sample's green bean
// grading. Derived fields (totals, classification, grade, quality score)
// are intentionally absent: whatever a client computed for display is
// ignored and recomputed here.
type GradingInput struct {
	GradingSystem     domain.GradingSystem `json:"grading_system"`
	DefectBreakdown   []domain.DefectItem  `json:"defect_breakdown"`
	ScreenSizeWeights map[string]float64   `json:"screen_size_weights"`
	IncludePeaberry   bool                 `json:"include_peaberry"`
	MoistureContent   *float64             `json:"moisture_content"`
	WaterActivity     *float64             `json:"water_activity"`
	BulkDensity       *float64             `json:"bulk_density"`
	UniformityScore   *int                 `json:"uniformity_score"`
	BeanColor         *domain.BeanColor    `json:"bean_color_assessment"`
	// OverrideClassification accepts only OFF_GRADE, the administrative
	// override tier the classifier itself never produces.
	OverrideClassification *domain.Classification `json:"override_classification"`
	Notes                  string                 `json:"notes"`
	GradedBy               string                 `json:"graded_by"`
}

// CertifyInput is the DTO for certifying an existing grading.
type CertifyInput struct {
	CertifiedBy string `json:"certified_by" binding:"required"`
	NotifyEmail string `json:"notify_email"`
	NotifyName  string `json:"notify_name"`
}

// GradingResult pairs a grading record with advisory warnings that must not
// block a save (for example a screen distribution that does not add up to
// the reference sample weight).
type GradingResult struct {
	Grading  *domain.GreenBeanGrading `json:"grading"`
	Warnings []string                 `json:"warnings,omitempty"`
}

// GradingService owns the lifecycle of a sample's single grading record.
type GradingService interface {
	Get(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.GreenBeanGrading, error)
	Create(ctx context.Context, tenantID, sampleID uuid.UUID, input *GradingInput) (*GradingResult, error)
	Update(ctx context.Context, tenantID, sampleID uuid.UUID, input *GradingInput) (*GradingResult, error)
	Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error
	Certify(ctx context.Context, tenantID, sampleID uuid.UUID, input *CertifyInput) (*domain.GreenBeanGrading, error)
}

type gradingService struct {
	gradingRepo port.GradingRepository
	sampleRepo  port.SampleRepository
	email       port.EmailSender
	policy      grading.ScoringPolicy
	cfg         *config.GradingConfig
}

// NewGradingService creates a new GradingService implementation.
func NewGradingService(
	gradingRepo port.GradingRepository,
	sampleRepo port.SampleRepository,
	email port.EmailSender,
	policy grading.ScoringPolicy,
	cfg *config.GradingConfig,
) GradingService {
	return &gradingService{
		gradingRepo: gradingRepo,
		sampleRepo:  sampleRepo,
		email:       email,
		policy:      policy,
		cfg:         cfg,
	}
}

func (s *gradingService) Get(ctx context.Context, tenantID, sampleID uuid.UUID) (*domain.GreenBeanGrading, error) {
	return s.gradingRepo.GetBySampleID(ctx, tenantID, sampleID)
}

func (s *gradingService) Create(ctx context.Context, tenantID, sampleID uuid.UUID, input *GradingInput) (*GradingResult, error) {
	if err := validateGradingInput(input); err != nil {
		return nil, err
	}

	// The sample must exist before a grading can hang off it.
	if _, err := s.sampleRepo.GetByID(ctx, tenantID, sampleID); err != nil {
		return nil, err
	}

	rec := &domain.GreenBeanGrading{
		TenantID: tenantID,
		SampleID: sampleID,
	}
	warnings := s.apply(rec, input)

	// The unique constraint on sample_id decides a concurrent double
	// create; the loser gets ErrGradingExists, never a silent overwrite.
	if err := s.gradingRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return &GradingResult{Grading: rec, Warnings: warnings}, nil
}

func (s *gradingService) Update(ctx context.Context, tenantID, sampleID uuid.UUID, input *GradingInput) (*GradingResult, error) {
	if err := validateGradingInput(input); err != nil {
		return nil, err
	}

	rec, err := s.gradingRepo.GetBySampleID(ctx, tenantID, sampleID)
	if err != nil {
		return nil, err
	}

	// Full replace: breakdown and measurements are overwritten, derived
	// fields recomputed exactly as on create. Certification stamps survive
	// edits.
	warnings := s.apply(rec, input)

	if err := s.gradingRepo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return &GradingResult{Grading: rec, Warnings: warnings}, nil
}

func (s *gradingService) Delete(ctx context.Context, tenantID, sampleID uuid.UUID) error {
	return s.gradingRepo.Delete(ctx, tenantID, sampleID)
}

func (s *gradingService) Certify(ctx context.Context, tenantID, sampleID uuid.UUID, input *CertifyInput) (*domain.GreenBeanGrading, error) {
	rec, err := s.gradingRepo.GetBySampleID(ctx, tenantID, sampleID)
	if err != nil {
		return nil, err
	}
	if rec.CertifiedBy != nil {
		return nil, domain.ErrAlreadyCertified
	}

	now := time.Now().UTC()
	rec.CertifiedBy = &input.CertifiedBy
	rec.CertificationDate = &now

	if err := s.gradingRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	if input.NotifyEmail != "" {
		sample, err := s.sampleRepo.GetByID(ctx, tenantID, sampleID)
		sampleName := ""
		if err == nil {
			sampleName = sample.Name
		}
		notice := port.CertificationNotice{
			ToEmail:        input.NotifyEmail,
			ToName:         input.NotifyName,
			SampleName:     sampleName,
			Classification: string(rec.Classification),
			Grade:          rec.Grade,
			CertifiedBy:    input.CertifiedBy,
		}
		// Notification failures must not roll back the certification.
		if err := s.email.SendCertificationNotice(ctx, notice); err != nil {
			log.Printf("gradingService.Certify: failed to send certification notice for sample %s: %v", sampleID, err)
		}
	}

	return rec, nil
}

// apply recomputes every derived field from the input and writes the result
// onto rec. It is the single recomputation path shared by create and update,
// so the two can never drift. Returns advisory warnings.
func (s *gradingService) apply(rec *domain.GreenBeanGrading, input *GradingInput) []string {
	system := input.GradingSystem
	if system == "" {
		system = domain.GradingSystemSCA
	}

	totals := grading.Calculate(input.DefectBreakdown)
	classification := grading.Classify(totals.FullDefectEquivalents)
	if input.OverrideClassification != nil {
		classification = *input.OverrideClassification
	}

	breakdown := domain.DefectBreakdown(input.DefectBreakdown)
	if breakdown == nil {
		breakdown = domain.DefectBreakdown{}
	}

	rec.GradingSystem = system
	rec.DefectBreakdown = breakdown
	rec.PrimaryDefects = totals.PrimaryDefects
	rec.SecondaryDefects = totals.SecondaryDefects
	rec.FullDefectEquivalents = totals.FullDefectEquivalents
	rec.Classification = classification
	rec.Grade = grading.GradeLabel(classification)

	var warnings []string
	rec.ScreenSizeDistribution = nil
	rec.AverageScreenSize = nil
	rec.UniformityPercentage = nil
	if len(input.ScreenSizeWeights) > 0 {
		dist := make(domain.ScreenDistribution, len(input.ScreenSizeWeights))
		for key, weight := range input.ScreenSizeWeights {
			dist[key] = grading.WeightToPercentage(weight, s.cfg.ReferenceSampleWeightGrams)
		}
		rec.ScreenSizeDistribution = dist
		rec.AverageScreenSize = grading.AverageScreenSize(dist, input.IncludePeaberry)
		rec.UniformityPercentage = grading.Uniformity(dist)
		warnings = grading.DistributionWarnings(dist)
	}

	rec.MoistureContent = input.MoistureContent
	rec.WaterActivity = input.WaterActivity
	rec.BulkDensity = input.BulkDensity
	rec.UniformityScore = input.UniformityScore
	rec.BeanColorAssessment = input.BeanColor

	rec.QualityScore = s.policy.Score(grading.ScoreInput{
		HasDefectData:         len(input.DefectBreakdown) > 0,
		FullDefectEquivalents: totals.FullDefectEquivalents,
		MoistureContent:       input.MoistureContent,
		WaterActivity:         input.WaterActivity,
	})

	rec.Notes = input.Notes
	rec.GradedBy = input.GradedBy
	now := time.Now().UTC()
	rec.GradedAt = &now

	return warnings
}

// validateGradingInput rejects malformed input before any computation or
// persistence. Client-side form validation is assumed but never trusted.
func validateGradingInput(input *GradingInput) error {
	if input.GradingSystem != "" && input.GradingSystem != domain.GradingSystemSCA {
		return domain.Invalid("grading_system", fmt.Sprintf("unsupported grading system %q", input.GradingSystem))
	}

	for i, item := range input.DefectBreakdown {
		field := fmt.Sprintf("defect_breakdown[%d]", i)
		canonical, known := domain.DefectCategories[item.Type]
		if !known {
			return domain.Invalid(field+".type", fmt.Sprintf("unknown defect type %q", item.Type))
		}
		if item.Count < 0 {
			return domain.Invalid(field+".count", "count must not be negative")
		}
		if item.Category != domain.DefectCategoryPrimary && item.Category != domain.DefectCategorySecondary {
			return domain.Invalid(field+".category", "category must be 1 (primary) or 2 (secondary)")
		}
		if item.Category != canonical {
			return domain.Invalid(field+".category", fmt.Sprintf("defect %q belongs to category %d", item.Type, canonical))
		}
	}

	for key, weight := range input.ScreenSizeWeights {
		if !grading.ValidScreenKey(key) {
			return domain.Invalid("screen_size_weights."+key, fmt.Sprintf("unknown screen size %q; expected 13-20 or peaberry_8-13", key))
		}
		if weight < 0 {
			return domain.Invalid("screen_size_weights."+key, "weight must not be negative")
		}
	}

	if input.MoistureContent != nil && (*input.MoistureContent < 0 || *input.MoistureContent > 100) {
		return domain.Invalid("moisture_content", "must be between 0 and 100 percent")
	}
	if input.WaterActivity != nil && (*input.WaterActivity < 0 || *input.WaterActivity > 1) {
		return domain.Invalid("water_activity", "must be between 0 and 1")
	}
	if input.BulkDensity != nil && *input.BulkDensity <= 0 {
		return domain.Invalid("bulk_density", "must be positive")
	}
	if input.UniformityScore != nil && (*input.UniformityScore < 1 || *input.UniformityScore > 10) {
		return domain.Invalid("uniformity_score", "must be between 1 and 10")
	}
	if input.BeanColor != nil && !domain.AllowedBeanColors[*input.BeanColor] {
		return domain.Invalid("bean_color_assessment", fmt.Sprintf("unknown bean color %q", *input.BeanColor))
	}
	if input.OverrideClassification != nil && *input.OverrideClassification != domain.ClassificationOffGrade {
		return domain.Invalid("override_classification", "only OFF_GRADE may be set manually; other tiers are derived")
	}

	return nil
}
