// Package risk maps continuous model outputs onto discrete levels.
//
// Each domain has its own fixed cutoffs. The carbon sustainability score
// uses a different scale from the carbon impact level; both are reported.
package risk

import "math"

type Level int

const (
	Low Level = iota
	Moderate
	High
)

func (l Level) String() string {
	switch l {
	case Moderate:
		return "MODERATE"
	case High:
		return "HIGH"
	default:
		return "LOW"
	}
}

// RiskLabel renders the level for the health and surge domains.
func (l Level) RiskLabel() string {
	return l.String() + " RISK"
}

// ImpactLabel renders the level for the carbon domain.
func (l Level) ImpactLabel() string {
	return l.String() + " IMPACT"
}

type EmergencyStatus string

const (
	Stable   EmergencyStatus = "STABLE"
	Alert    EmergencyStatus = "ALERT"
	Critical EmergencyStatus = "CRITICAL"
)

const (
	HealthModerate = 0.33
	HealthHigh     = 0.66

	CarbonModerate  = 1000.0
	CarbonHigh      = 2000.0
	CarbonScaleKg   = 3000.0
	SurgeModerate   = 10.0
	SurgeHigh       = 20.0
	SurgeOverloadAt = 30.0

	EmergencyAlert    = 0.4
	EmergencyCritical = 0.7
)

// HealthLevel classifies a probability; p is clamped to [0,1] first.
func HealthLevel(p float64) Level {
	p = Clamp01(p)
	switch {
	case p < HealthModerate:
		return Low
	case p < HealthHigh:
		return Moderate
	default:
		return High
	}
}

// CarbonLevel classifies annual emissions in kg CO2e.
func CarbonLevel(kg float64) Level {
	switch {
	case kg < CarbonModerate:
		return Low
	case kg < CarbonHigh:
		return Moderate
	default:
		return High
	}
}

// SustainabilityScore is 1 - kg/3000, rounded then clamped to [0,1].
func SustainabilityScore(kg float64) float64 {
	return Clamp01(Round2(1 - kg/CarbonScaleKg))
}

// SurgeLevel classifies a predicted percentage increase in ER admissions.
func SurgeLevel(increase float64) Level {
	switch {
	case increase < SurgeModerate:
		return Low
	case increase < SurgeHigh:
		return Moderate
	default:
		return High
	}
}

// OverloadProbability scales a predicted increase linearly so that 30%
// saturates at 1.
func OverloadProbability(increase float64) float64 {
	return Clamp01(math.Min(increase/SurgeOverloadAt, 1.0))
}

func EmergencyStatusFor(p float64) EmergencyStatus {
	p = Clamp01(p)
	switch {
	case p < EmergencyAlert:
		return Stable
	case p < EmergencyCritical:
		return Alert
	default:
		return Critical
	}
}

// Mean3 returns the arithmetic mean of three scores rounded to 2 decimals.
func Mean3(a, b, c float64) float64 {
	return Round2((a + b + c) / 3)
}

func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if math.IsInf(r, 0) && !math.IsInf(v, 0) {
		// v*100 overflowed; at that magnitude v has no fractional part.
		return v
	}
	return r
}
