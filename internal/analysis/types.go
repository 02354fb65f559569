package analysis

import "github.com/Skufu/climatehealth/internal/features"

type RiskBlock struct {
	Probability float64 `json:"probability"`
	Level       string  `json:"level"`
}

type ScoreBlock struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

type HealthPrediction struct {
	Cardiovascular    RiskBlock  `json:"cardiovascular_risk"`
	Respiratory       RiskBlock  `json:"respiratory_risk"`
	HeatVulnerability RiskBlock  `json:"heat_vulnerability"`
	Overall           ScoreBlock `json:"overall_health_score"`
}

type CarbonPrediction struct {
	AnnualEmissionKg    float64 `json:"annual_carbon_emission_kg"`
	ImpactLevel         string  `json:"impact_level"`
	SustainabilityScore float64 `json:"sustainability_score"`
}

type SurgePrediction struct {
	PredictedIncreasePercent float64 `json:"predicted_ER_increase_percent"`
	RiskLevel                string  `json:"risk_level"`
	OverloadProbability      float64 `json:"overload_probability"`
	EmergencyStatus          string  `json:"emergency_status"`
}

// Request is the combined-analysis input.
type Request struct {
	Health features.HealthInput `json:"health"`
	Carbon features.CarbonInput `json:"carbon"`
	Surge  features.SurgeInput  `json:"surge"`
}

type HealthAnalysis struct {
	CardioRisk         float64 `json:"cardio_risk"`
	RespiratoryRisk    float64 `json:"respiratory_risk"`
	HeatRisk           float64 `json:"heat_risk"`
	OverallHealthScore float64 `json:"overall_health_score"`
	OverallHealthLevel string  `json:"overall_health_level"`
}

type CarbonAnalysis struct {
	AnnualEmission      float64 `json:"annual_emission"`
	ImpactLevel         string  `json:"impact_level"`
	SustainabilityScore float64 `json:"sustainability_score"`
}

type SurgeAnalysis struct {
	PredictedERIncrease float64 `json:"predicted_ER_increase"`
	OverloadProbability float64 `json:"overload_probability"`
	RiskLevel           string  `json:"risk_level"`
	EmergencyStatus     string  `json:"emergency_status"`
}

// Result is the combined analysis kept in the latest-analysis slot.
type Result struct {
	Health            HealthAnalysis `json:"health_analysis"`
	Carbon            CarbonAnalysis `json:"carbon_analysis"`
	Surge             SurgeAnalysis  `json:"surge_analysis"`
	Alerts            []string       `json:"alerts"`
	FinalPrescription []string       `json:"final_prescription"`
}
