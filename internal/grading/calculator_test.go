package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

func TestCalculate(t *testing.T) {
	breakdown := []domain.DefectItem{
		{Type: domain.DefectFullBlack, Count: 2, Category: domain.DefectCategoryPrimary},
		{Type: domain.DefectFullSour, Count: 1, Category: domain.DefectCategoryPrimary},
		{Type: domain.DefectPartialBlack, Count: 7, Category: domain.DefectCategorySecondary},
		{Type: domain.DefectBrokenChippedCut, Count: 3, Category: domain.DefectCategorySecondary},
	}

	totals := Calculate(breakdown)

	assert.Equal(t, 3, totals.PrimaryDefects)
	assert.Equal(t, 10, totals.SecondaryDefects)
	assert.InDelta(t, 5.0, totals.FullDefectEquivalents, 1e-9)
}

func TestCalculate_EmptyBreakdown(t *testing.T) {
	totals := Calculate(nil)

	assert.Equal(t, 0, totals.PrimaryDefects)
	assert.Equal(t, 0, totals.SecondaryDefects)
	assert.Zero(t, totals.FullDefectEquivalents)
	assert.Equal(t, domain.ClassificationSpecialty, Classify(totals.FullDefectEquivalents))
	assert.Equal(t, "Grade 1", GradeLabel(Classify(totals.FullDefectEquivalents)))
}

func TestCalculate_SecondaryOnly(t *testing.T) {
	breakdown := []domain.DefectItem{
		{Type: domain.DefectFloater, Count: 12, Category: domain.DefectCategorySecondary},
	}

	totals := Calculate(breakdown)

	assert.Equal(t, 0, totals.PrimaryDefects)
	assert.Equal(t, 12, totals.SecondaryDefects)
	assert.InDelta(t, 2.4, totals.FullDefectEquivalents, 1e-9)
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		fde  float64
		want domain.Classification
	}{
		{"zero", 0, domain.ClassificationSpecialty},
		{"specialty upper bound", 5.0, domain.ClassificationSpecialty},
		{"just above specialty", 5.01, domain.ClassificationPremium},
		{"premium upper bound", 8.0, domain.ClassificationPremium},
		{"just above premium", 8.01, domain.ClassificationExchange},
		{"exchange upper bound", 23.0, domain.ClassificationExchange},
		{"just above exchange", 23.01, domain.ClassificationBelowStandard},
		{"far above exchange", 86.0, domain.ClassificationBelowStandard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.fde))
		})
	}
}

func TestClassify_FractionalEquivalents(t *testing.T) {
	// 5 primary + 1 secondary = 5.2 equivalents, past the specialty bound.
	totals := Calculate([]domain.DefectItem{
		{Type: domain.DefectFullBlack, Count: 5, Category: domain.DefectCategoryPrimary},
		{Type: domain.DefectShell, Count: 1, Category: domain.DefectCategorySecondary},
	})

	assert.InDelta(t, 5.2, totals.FullDefectEquivalents, 1e-9)
	assert.Equal(t, domain.ClassificationPremium, Classify(totals.FullDefectEquivalents))
}

func TestGradeLabel(t *testing.T) {
	assert.Equal(t, "Grade 1", GradeLabel(domain.ClassificationSpecialty))
	assert.Equal(t, "Grade 2", GradeLabel(domain.ClassificationPremium))
	assert.Equal(t, "Grade 3", GradeLabel(domain.ClassificationExchange))
}
