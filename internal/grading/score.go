package grading

import "math"

// Ideal measurement bands per the SCA green grading guidance.
const (
	idealMoistureMin = 10.0
	idealMoistureMax = 12.0
	idealWaterActMin = 0.55
	idealWaterActMax = 0.65
)

// ScoreInput carries everything the composite score depends on. Pointer
// fields are absent measurements, not zero values.
type ScoreInput struct {
	HasDefectData         bool
	FullDefectEquivalents float64
	MoistureContent       *float64
	WaterActivity         *float64
}

// ScoringPolicy computes the optional composite 0-100 quality score.
// The exact weighting is a calibration concern, so it is pluggable; the
// engine guarantees only the contract: nil with insufficient input,
// otherwise a value in [0,100] strictly decreasing in defect equivalents.
type ScoringPolicy interface {
	Score(in ScoreInput) *float64
}

// PolicyWeights are the tunable parameters of the default policy. They are
// calibration defaults carried in configuration, not SCA-authoritative
// constants.
type PolicyWeights struct {
	// DefectDecay is the number of full defect equivalents over which the
	// defect component of the score decays by a factor of e.
	DefectDecay float64
	// MoisturePenaltyPerPoint is the fractional penalty per percentage
	// point of moisture outside the 10-12% ideal band.
	MoisturePenaltyPerPoint float64
	// WaterActivityPenaltyPerHundredth is the fractional penalty per 0.01
	// of water activity outside the 0.55-0.65 ideal band.
	WaterActivityPenaltyPerHundredth float64
	// MaxMeasurementPenalty caps the fractional penalty of each
	// measurement factor.
	MaxMeasurementPenalty float64
}

// DefaultPolicyWeights returns the calibration defaults.
func DefaultPolicyWeights() PolicyWeights {
	return PolicyWeights{
		DefectDecay:                      20.0,
		MoisturePenaltyPerPoint:          0.05,
		WaterActivityPenaltyPerHundredth: 0.02,
		MaxMeasurementPenalty:            0.5,
	}
}

// defaultPolicy is the multiplicative scoring policy: a defect component
// that decays exponentially with full defect equivalents, scaled by
// measurement factors in (0,1]. The product stays in (0,100] and is
// strictly decreasing in defect equivalents for fixed measurements.
type defaultPolicy struct {
	weights PolicyWeights
}

// NewDefaultPolicy creates the default ScoringPolicy with the given weights.
func NewDefaultPolicy(weights PolicyWeights) ScoringPolicy {
	return &defaultPolicy{weights: weights}
}

func (p *defaultPolicy) Score(in ScoreInput) *float64 {
	// No defect tally means no basis for a score; never fabricate one.
	if !in.HasDefectData {
		return nil
	}

	score := 100 * math.Exp(-in.FullDefectEquivalents/p.weights.DefectDecay)

	if in.MoistureContent != nil {
		dist := bandDistance(*in.MoistureContent, idealMoistureMin, idealMoistureMax)
		score *= p.factor(dist * p.weights.MoisturePenaltyPerPoint)
	}
	if in.WaterActivity != nil {
		dist := bandDistance(*in.WaterActivity, idealWaterActMin, idealWaterActMax)
		score *= p.factor(dist / 0.01 * p.weights.WaterActivityPenaltyPerHundredth)
	}

	return &score
}

// factor converts a raw fractional penalty into a multiplicative factor,
// capped so a single measurement can never zero the score.
func (p *defaultPolicy) factor(penalty float64) float64 {
	if penalty > p.weights.MaxMeasurementPenalty {
		penalty = p.weights.MaxMeasurementPenalty
	}
	if penalty < 0 {
		penalty = 0
	}
	return 1 - penalty
}

// bandDistance returns how far v sits outside the [min,max] band, zero when
// inside.
func bandDistance(v, min, max float64) float64 {
	switch {
	case v < min:
		return min - v
	case v > max:
		return v - max
	default:
		return 0
	}
}
