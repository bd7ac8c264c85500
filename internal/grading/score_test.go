package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestDefaultPolicy_NilWithoutDefectData(t *testing.T) {
	policy := NewDefaultPolicy(DefaultPolicyWeights())

	assert.Nil(t, policy.Score(ScoreInput{HasDefectData: false}))
	assert.Nil(t, policy.Score(ScoreInput{
		HasDefectData:   false,
		MoistureContent: floatPtr(11.0),
		WaterActivity:   floatPtr(0.60),
	}))
}

func TestDefaultPolicy_PerfectSample(t *testing.T) {
	policy := NewDefaultPolicy(DefaultPolicyWeights())

	score := policy.Score(ScoreInput{
		HasDefectData:         true,
		FullDefectEquivalents: 0,
		MoistureContent:       floatPtr(11.0),
		WaterActivity:         floatPtr(0.60),
	})

	if assert.NotNil(t, score) {
		assert.InDelta(t, 100.0, *score, 1e-9)
	}
}

func TestDefaultPolicy_Bounds(t *testing.T) {
	policy := NewDefaultPolicy(DefaultPolicyWeights())

	inputs := []ScoreInput{
		{HasDefectData: true, FullDefectEquivalents: 0},
		{HasDefectData: true, FullDefectEquivalents: 86},
		{HasDefectData: true, FullDefectEquivalents: 500, MoistureContent: floatPtr(25), WaterActivity: floatPtr(0.95)},
	}
	for _, in := range inputs {
		score := policy.Score(in)
		if assert.NotNil(t, score) {
			assert.Greater(t, *score, 0.0)
			assert.LessOrEqual(t, *score, 100.0)
		}
	}
}

func TestDefaultPolicy_StrictlyDecreasingInDefects(t *testing.T) {
	policy := NewDefaultPolicy(DefaultPolicyWeights())

	prev := 101.0
	for _, fde := range []float64{0, 1, 5, 5.2, 8, 23, 50, 86} {
		score := policy.Score(ScoreInput{HasDefectData: true, FullDefectEquivalents: fde})
		if assert.NotNil(t, score) {
			assert.Less(t, *score, prev, "fde=%v", fde)
			prev = *score
		}
	}
}

func TestDefaultPolicy_MoisturePenalty(t *testing.T) {
	policy := NewDefaultPolicy(DefaultPolicyWeights())

	inBand := policy.Score(ScoreInput{HasDefectData: true, MoistureContent: floatPtr(10.5)})
	outBand := policy.Score(ScoreInput{HasDefectData: true, MoistureContent: floatPtr(14.0)})

	if assert.NotNil(t, inBand) && assert.NotNil(t, outBand) {
		assert.InDelta(t, 100.0, *inBand, 1e-9)
		// Two points over 12% at 5% per point.
		assert.InDelta(t, 90.0, *outBand, 1e-9)
	}
}

func TestDefaultPolicy_WaterActivityPenalty(t *testing.T) {
	policy := NewDefaultPolicy(DefaultPolicyWeights())

	inBand := policy.Score(ScoreInput{HasDefectData: true, WaterActivity: floatPtr(0.58)})
	outBand := policy.Score(ScoreInput{HasDefectData: true, WaterActivity: floatPtr(0.70)})

	if assert.NotNil(t, inBand) && assert.NotNil(t, outBand) {
		assert.InDelta(t, 100.0, *inBand, 1e-9)
		// Five hundredths over 0.65 at 2% per hundredth.
		assert.InDelta(t, 90.0, *outBand, 1e-6)
	}
}

func TestDefaultPolicy_PenaltyCap(t *testing.T) {
	policy := NewDefaultPolicy(DefaultPolicyWeights())

	// 30 points outside the band would be a 150% penalty uncapped; the cap
	// holds each factor at a 50% reduction.
	score := policy.Score(ScoreInput{HasDefectData: true, MoistureContent: floatPtr(42.0)})

	if assert.NotNil(t, score) {
		assert.InDelta(t, 50.0, *score, 1e-9)
	}
}
