// Package grading implements the SCA green coffee classification engine:
// defect totals, full defect equivalents, tier classification, screen-size
// distribution math, and the composite quality score policy. Everything in
// this package is pure computation with no I/O; persistence and input
// validation live in the service layer.
package grading

import (
	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// secondaryDefectRatio is the SCA conversion ratio: five secondary defects
// equal one full defect. Fixed by the standard, not configurable.
const secondaryDefectRatio = 5.0

// Classification tier boundaries in full defect equivalents, inclusive
// upper bounds, fixed by the SCA standard.
const (
	specialtyMaxFDE = 5.0
	premiumMaxFDE   = 8.0
	exchangeMaxFDE  = 23.0
)

// DefectTotals holds the derived totals for a defect breakdown.
type DefectTotals struct {
	PrimaryDefects        int
	SecondaryDefects      int
	FullDefectEquivalents float64
}

// Calculate sums a defect breakdown into category totals and full defect
// equivalents. Counts are trusted to be non-negative; callers reject
// negative input before reaching here. An empty breakdown yields zeros.
func Calculate(breakdown []domain.DefectItem) DefectTotals {
	var t DefectTotals
	for _, item := range breakdown {
		switch item.Category {
		case domain.DefectCategoryPrimary:
			t.PrimaryDefects += item.Count
		case domain.DefectCategorySecondary:
			t.SecondaryDefects += item.Count
		}
	}
	t.FullDefectEquivalents = float64(t.PrimaryDefects) + float64(t.SecondaryDefects)/secondaryDefectRatio
	return t
}

// Classify maps full defect equivalents to a classification tier, evaluated
// in ascending order with inclusive upper bounds. OFF_GRADE is never
// returned; it exists only as a manual override state.
func Classify(fde float64) domain.Classification {
	switch {
	case fde <= specialtyMaxFDE:
		return domain.ClassificationSpecialty
	case fde <= premiumMaxFDE:
		return domain.ClassificationPremium
	case fde <= exchangeMaxFDE:
		return domain.ClassificationExchange
	default:
		return domain.ClassificationBelowStandard
	}
}

// GradeLabel returns the human-readable grade label for a classification.
func GradeLabel(c domain.Classification) string {
	return domain.GradeLabels[c]
}
