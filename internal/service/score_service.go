package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
)

// ScoreInput carries one cupper's attribute scores for a sample. TotalScore
// is never accepted from the client; it is recomputed on every write.
type ScoreInput struct {
	CupperName string  `json:"cupper_name" binding:"required"`
	Fragrance  float64 `json:"fragrance"`
	Flavor     float64 `json:"flavor"`
	Aftertaste float64 `json:"aftertaste"`
	Acidity    float64 `json:"acidity"`
	Body       float64 `json:"body"`
	Balance    float64 `json:"balance"`
	Uniformity float64 `json:"uniformity"`
	CleanCup   float64 `json:"clean_cup"`
	Sweetness  float64 `json:"sweetness"`
	Overall    float64 `json:"overall"`
	TaintCups  int     `json:"taint_cups"`
	FaultCups  int     `json:"fault_cups"`
	Notes      string  `json:"notes"`
}

// ScoreService defines the cupping score contract.
type ScoreService interface {
	Create(ctx context.Context, tenantID, sampleID uuid.UUID, input ScoreInput) (*domain.CuppingScore, error)
	GetByID(ctx context.Context, tenantID, scoreID uuid.UUID) (*domain.CuppingScore, error)
	ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID) ([]domain.CuppingScore, error)
	Update(ctx context.Context, tenantID, scoreID uuid.UUID, input ScoreInput) (*domain.CuppingScore, error)
	Delete(ctx context.Context, tenantID, scoreID uuid.UUID) error
}

type scoreService struct {
	scoreRepo  port.ScoreRepository
	sampleRepo port.SampleRepository
}

// NewScoreService creates a new ScoreService implementation.
func NewScoreService(scoreRepo port.ScoreRepository, sampleRepo port.SampleRepository) ScoreService {
	return &scoreService{scoreRepo: scoreRepo, sampleRepo: sampleRepo}
}

func (s *scoreService) Create(ctx context.Context, tenantID, sampleID uuid.UUID, input ScoreInput) (*domain.CuppingScore, error) {
	if err := validateScoreInput(input); err != nil {
		return nil, err
	}
	if _, err := s.sampleRepo.GetByID(ctx, tenantID, sampleID); err != nil {
		return nil, err
	}

	score := &domain.CuppingScore{
		TenantID: tenantID,
		SampleID: sampleID,
	}
	applyScore(score, input)

	if err := s.scoreRepo.Create(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *scoreService) GetByID(ctx context.Context, tenantID, scoreID uuid.UUID) (*domain.CuppingScore, error) {
	return s.scoreRepo.GetByID(ctx, tenantID, scoreID)
}

func (s *scoreService) ListBySample(ctx context.Context, tenantID, sampleID uuid.UUID) ([]domain.CuppingScore, error) {
	return s.scoreRepo.ListBySample(ctx, tenantID, sampleID)
}

func (s *scoreService) Update(ctx context.Context, tenantID, scoreID uuid.UUID, input ScoreInput) (*domain.CuppingScore, error) {
	if err := validateScoreInput(input); err != nil {
		return nil, err
	}

	score, err := s.scoreRepo.GetByID(ctx, tenantID, scoreID)
	if err != nil {
		return nil, err
	}
	applyScore(score, input)

	if err := s.scoreRepo.Update(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *scoreService) Delete(ctx context.Context, tenantID, scoreID uuid.UUID) error {
	return s.scoreRepo.Delete(ctx, tenantID, scoreID)
}

// applyScore copies the attribute scores onto the record and recomputes the
// total: the sum of the ten attributes minus 2 points per taint cup and
// 4 points per fault cup.
func applyScore(score *domain.CuppingScore, input ScoreInput) {
	score.CupperName = input.CupperName
	score.Fragrance = input.Fragrance
	score.Flavor = input.Flavor
	score.Aftertaste = input.Aftertaste
	score.Acidity = input.Acidity
	score.Body = input.Body
	score.Balance = input.Balance
	score.Uniformity = input.Uniformity
	score.CleanCup = input.CleanCup
	score.Sweetness = input.Sweetness
	score.Overall = input.Overall
	score.TaintCups = input.TaintCups
	score.FaultCups = input.FaultCups
	score.Notes = input.Notes

	sum := input.Fragrance + input.Flavor + input.Aftertaste + input.Acidity +
		input.Body + input.Balance + input.Uniformity + input.CleanCup +
		input.Sweetness + input.Overall
	score.TotalScore = sum - 2*float64(input.TaintCups) - 4*float64(input.FaultCups)
}

func validateScoreInput(input ScoreInput) error {
	attrs := map[string]float64{
		"fragrance":  input.Fragrance,
		"flavor":     input.Flavor,
		"aftertaste": input.Aftertaste,
		"acidity":    input.Acidity,
		"body":       input.Body,
		"balance":    input.Balance,
		"uniformity": input.Uniformity,
		"clean_cup":  input.CleanCup,
		"sweetness":  input.Sweetness,
		"overall":    input.Overall,
	}
	for field, v := range attrs {
		if v < 0 || v > 10 {
			return domain.Invalid(field, "must be between 0 and 10")
		}
	}
	if input.TaintCups < 0 || input.TaintCups > 5 {
		return domain.Invalid("taint_cups", "must be between 0 and 5")
	}
	if input.FaultCups < 0 || input.FaultCups > 5 {
		return domain.Invalid("fault_cups", "must be between 0 and 5")
	}
	return nil
}
