package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthLevel(t *testing.T) {
	tests := []struct {
		p    float64
		want Level
	}{
		{0, Low},
		{0.3299, Low},
		{0.33, Moderate},
		{0.5, Moderate},
		{0.6599, Moderate},
		{0.66, High},
		{1, High},
		{-0.5, Low},
		{1.7, High},
		{math.NaN(), Low},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HealthLevel(tt.p), "p=%v", tt.p)
	}
}

func TestHealthLevelSweep(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		got := HealthLevel(p)
		switch {
		case p < 0.33:
			assert.Equal(t, Low, got, "p=%v", p)
		case p < 0.66:
			assert.Equal(t, Moderate, got, "p=%v", p)
		default:
			assert.Equal(t, High, got, "p=%v", p)
		}
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "LOW RISK", Low.RiskLabel())
	assert.Equal(t, "MODERATE RISK", Moderate.RiskLabel())
	assert.Equal(t, "HIGH RISK", High.RiskLabel())
	assert.Equal(t, "LOW IMPACT", Low.ImpactLabel())
	assert.Equal(t, "MODERATE IMPACT", Moderate.ImpactLabel())
	assert.Equal(t, "HIGH IMPACT", High.ImpactLabel())
}

func TestCarbonLevel(t *testing.T) {
	assert.Equal(t, Low, CarbonLevel(999.99))
	assert.Equal(t, Moderate, CarbonLevel(1000))
	assert.Equal(t, Moderate, CarbonLevel(1999.99))
	assert.Equal(t, High, CarbonLevel(2000))
	assert.Equal(t, Low, CarbonLevel(-50))
}

func TestSustainabilityScore(t *testing.T) {
	assert.Equal(t, 1.0, SustainabilityScore(0))
	assert.Equal(t, 0.5, SustainabilityScore(1500))
	assert.Equal(t, 0.0, SustainabilityScore(3000))
	assert.Equal(t, 0.0, SustainabilityScore(6000))
	assert.Equal(t, 1.0, SustainabilityScore(-400))

	prev := SustainabilityScore(-100)
	for kg := 0.0; kg <= 7000; kg += 37.5 {
		s := SustainabilityScore(kg)
		assert.LessOrEqual(t, s, prev, "kg=%v", kg)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
		prev = s
	}
}

func TestSurgeLevel(t *testing.T) {
	assert.Equal(t, Low, SurgeLevel(9.99))
	assert.Equal(t, Moderate, SurgeLevel(10))
	assert.Equal(t, Moderate, SurgeLevel(19.99))
	assert.Equal(t, High, SurgeLevel(20))
}

func TestOverloadProbability(t *testing.T) {
	assert.Equal(t, 1.0, OverloadProbability(30))
	assert.Equal(t, 0.5, OverloadProbability(15))
	assert.Equal(t, 1.0, OverloadProbability(60))
	assert.Equal(t, 0.0, OverloadProbability(0))
	assert.Equal(t, 0.0, OverloadProbability(-12))
}

func TestEmergencyStatusFor(t *testing.T) {
	assert.Equal(t, Stable, EmergencyStatusFor(0.39))
	assert.Equal(t, Alert, EmergencyStatusFor(0.4))
	assert.Equal(t, Alert, EmergencyStatusFor(0.69))
	assert.Equal(t, Critical, EmergencyStatusFor(0.7))
	assert.Equal(t, Critical, EmergencyStatusFor(1))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.67, Round2(0.666666))
	assert.Equal(t, 0.33, Round2(0.333333))
	assert.Equal(t, 1234.57, Round2(1234.5678))
	assert.Equal(t, -0.67, Round2(-0.666666))
	assert.Equal(t, 1e307, Round2(1e307))
	assert.Equal(t, 0.0, SustainabilityScore(1e307))
}

func TestMean3(t *testing.T) {
	assert.Equal(t, 0.67, Mean3(0.5, 0.7, 0.8))
	assert.Equal(t, 0.0, Mean3(0, 0, 0))
}
