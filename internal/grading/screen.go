package grading

import (
	"math"
	"strconv"
	"strings"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
)

// DefaultReferenceWeightGrams is the fixed SCA sample weight the screen-size
// percentages are measured against. Configurable via the grading config
// section; the default must stay at 350 for compatibility with stored data.
const DefaultReferenceWeightGrams = 350.0

const peaberryPrefix = "peaberry_"

// WeightToPercentage converts a per-screen weight in grams to a percentage
// of the reference sample weight.
func WeightToPercentage(weightGrams, referenceGrams float64) float64 {
	return weightGrams / referenceGrams * 100
}

// PercentageToWeight reconstructs an editable weight in grams from a stored
// percentage. Rounding may drift by up to one gram on repeated round trips;
// that drift is accepted and not corrected.
func PercentageToWeight(percentage, referenceGrams float64) int {
	return int(math.Round(percentage / 100 * referenceGrams))
}

// TotalPercentage sums all stored percentages in a distribution.
func TotalPercentage(dist domain.ScreenDistribution) float64 {
	var total float64
	for _, pct := range dist {
		total += pct
	}
	return total
}

// DistributionWarnings returns advisory messages for a distribution whose
// total differs from the reference weight. An off total never blocks a save.
func DistributionWarnings(dist domain.ScreenDistribution) []string {
	if len(dist) == 0 {
		return nil
	}
	var warnings []string
	total := TotalPercentage(dist)
	if total > 100 {
		warnings = append(warnings, "screen size weights exceed the reference sample weight")
	}
	if total < 100 {
		warnings = append(warnings, "screen size weights do not account for the full reference sample weight")
	}
	return warnings
}

// screenNumber parses a screen-size key into its numeric size and whether it
// is a peaberry screen. Unknown keys report ok=false and are skipped by the
// aggregate calculations.
func screenNumber(key string) (size float64, peaberry, ok bool) {
	raw := key
	if strings.HasPrefix(key, peaberryPrefix) {
		peaberry = true
		raw = strings.TrimPrefix(key, peaberryPrefix)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, false
	}
	if peaberry {
		if n < 8 || n > 13 {
			return 0, false, false
		}
	} else if n < 13 || n > 20 {
		return 0, false, false
	}
	return float64(n), peaberry, true
}

// ValidScreenKey reports whether key names a recognized screen: flat sieves
// "13" through "20" or peaberry sieves "peaberry_8" through "peaberry_13".
func ValidScreenKey(key string) bool {
	_, _, ok := screenNumber(key)
	return ok
}

// AverageScreenSize computes the percentage-weighted mean screen size.
// Peaberry screens are excluded from the denominator unless includePeaberry
// is set. Returns nil when the distribution carries no usable weight.
func AverageScreenSize(dist domain.ScreenDistribution, includePeaberry bool) *float64 {
	var weighted, total float64
	for key, pct := range dist {
		size, peaberry, ok := screenNumber(key)
		if !ok || pct <= 0 {
			continue
		}
		if peaberry && !includePeaberry {
			continue
		}
		weighted += size * pct
		total += pct
	}
	if total == 0 {
		return nil
	}
	avg := weighted / total
	return &avg
}

// Uniformity computes the share of the measured flat-screen weight that sits
// on the dominant screen and its immediate neighbors, as a percentage.
// A tight three-screen band is the operational definition of a uniform lot.
// Returns nil when no flat screens carry weight.
func Uniformity(dist domain.ScreenDistribution) *float64 {
	flat := make(map[int]float64)
	var total float64
	for key, pct := range dist {
		size, peaberry, ok := screenNumber(key)
		if !ok || peaberry || pct <= 0 {
			continue
		}
		flat[int(size)] += pct
		total += pct
	}
	if total == 0 {
		return nil
	}

	dominant := 0
	for size := 13; size <= 20; size++ {
		if dominant == 0 || flat[size] > flat[dominant] {
			dominant = size
		}
	}

	band := flat[dominant] + flat[dominant-1] + flat[dominant+1]
	uniformity := band / total * 100
	return &uniformity
}
