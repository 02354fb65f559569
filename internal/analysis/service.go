// Package analysis runs the three models and applies the risk classifiers
// and prescription rules to their outputs.
package analysis

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Skufu/climatehealth/internal/features"
	"github.com/Skufu/climatehealth/internal/metrics"
	"github.com/Skufu/climatehealth/internal/model"
	"github.com/Skufu/climatehealth/internal/prescription"
	"github.com/Skufu/climatehealth/internal/risk"
	"github.com/Skufu/climatehealth/internal/session"
)

const (
	HealthModelFile = "health_risk_model.yaml"
	CarbonModelFile = "carbon_model_food.yaml"
	SurgeModelFile  = "climate_surge_model.yaml"

	healthOutputs = 3
)

type Models struct {
	Health model.Classifier
	Carbon model.Regressor
	Surge  model.Regressor
	Info   []model.Info
}

// LoadModels reads the three model exports from dir.
func LoadModels(dir string) (Models, error) {
	health, err := model.LoadLogistic(filepath.Join(dir, HealthModelFile), features.Names(features.HealthFields))
	if err != nil {
		return Models{}, fmt.Errorf("load health model: %w", err)
	}
	if len(health.Outputs) != healthOutputs {
		return Models{}, fmt.Errorf("load health model: expected %d outputs, got %d", healthOutputs, len(health.Outputs))
	}
	carbon, err := model.LoadLinear(filepath.Join(dir, CarbonModelFile), features.Names(features.CarbonFields))
	if err != nil {
		return Models{}, fmt.Errorf("load carbon model: %w", err)
	}
	surge, err := model.LoadLinear(filepath.Join(dir, SurgeModelFile), features.Names(features.SurgeFields))
	if err != nil {
		return Models{}, fmt.Errorf("load surge model: %w", err)
	}

	return Models{
		Health: health,
		Carbon: carbon,
		Surge:  surge,
		Info:   []model.Info{health.Info(), carbon.Info(), surge.Info()},
	}, nil
}

type Service struct {
	models Models
	store  session.Store[Result]
	log    *zap.Logger
}

func NewService(models Models, store session.Store[Result], log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{models: models, store: store, log: log}
}

func (s *Service) PredictHealth(in features.HealthInput) (*HealthPrediction, error) {
	cardio, respiratory, heat, err := s.healthProbabilities(in)
	if err != nil {
		return nil, err
	}
	overall := risk.Mean3(cardio, respiratory, heat)

	return &HealthPrediction{
		Cardiovascular:    riskBlock(cardio),
		Respiratory:       riskBlock(respiratory),
		HeatVulnerability: riskBlock(heat),
		Overall: ScoreBlock{
			Score: overall,
			Level: risk.HealthLevel(overall).RiskLabel(),
		},
	}, nil
}

func (s *Service) PredictCarbon(in features.CarbonInput) (*CarbonPrediction, error) {
	value, err := s.models.Carbon.Predict(in.Vector())
	if err != nil {
		return nil, err
	}

	return &CarbonPrediction{
		AnnualEmissionKg:    risk.Round2(value),
		ImpactLevel:         risk.CarbonLevel(value).ImpactLabel(),
		SustainabilityScore: risk.SustainabilityScore(value),
	}, nil
}

func (s *Service) PredictSurge(in features.SurgeInput) (*SurgePrediction, error) {
	value, err := s.models.Surge.Predict(in.Vector())
	if err != nil {
		return nil, err
	}
	increase := risk.Round2(value)
	overload := risk.OverloadProbability(increase)

	return &SurgePrediction{
		PredictedIncreasePercent: increase,
		RiskLevel:                risk.SurgeLevel(increase).RiskLabel(),
		OverloadProbability:      risk.Round2(overload),
		EmergencyStatus:          string(risk.EmergencyStatusFor(overload)),
	}, nil
}

// Prescribe is the score-based prescription; it does not touch the models.
func (s *Service) Prescribe(healthScore, carbonEmission, overloadProbability float64) prescription.Plan {
	plan := prescription.ForScores(healthScore, carbonEmission, overloadProbability)
	for _, domain := range plan.Escalated {
		metrics.AlertsRaised.WithLabelValues(domain).Inc()
	}
	s.log.Debug("prescription built",
		zap.Strings("escalated", plan.Escalated),
		zap.Int("steps", len(plan.PrescriptionPlan)),
	)
	return plan
}

// Analyze runs all three models, applies the HIGH-tier analysis rules and
// overwrites the latest-analysis slot with the result.
func (s *Service) Analyze(req Request) (*Result, error) {
	cardio, respiratory, heat, err := s.healthProbabilities(req.Health)
	if err != nil {
		return nil, err
	}
	overall := risk.Mean3(cardio, respiratory, heat)

	carbon, err := s.models.Carbon.Predict(req.Carbon.Vector())
	if err != nil {
		return nil, err
	}

	increase, err := s.models.Surge.Predict(req.Surge.Vector())
	if err != nil {
		return nil, err
	}
	overload := risk.OverloadProbability(increase)

	assessment := prescription.ForAnalysis(overall, carbon, overload)

	result := &Result{
		Health: HealthAnalysis{
			CardioRisk:         risk.Round2(cardio),
			RespiratoryRisk:    risk.Round2(respiratory),
			HeatRisk:           risk.Round2(heat),
			OverallHealthScore: overall,
			OverallHealthLevel: risk.HealthLevel(overall).RiskLabel(),
		},
		Carbon: CarbonAnalysis{
			AnnualEmission:      risk.Round2(carbon),
			ImpactLevel:         risk.CarbonLevel(carbon).ImpactLabel(),
			SustainabilityScore: risk.SustainabilityScore(carbon),
		},
		Surge: SurgeAnalysis{
			PredictedERIncrease: risk.Round2(increase),
			OverloadProbability: risk.Round2(overload),
			RiskLevel:           risk.SurgeLevel(increase).RiskLabel(),
			EmergencyStatus:     string(risk.EmergencyStatusFor(overload)),
		},
		Alerts:            assessment.Alerts,
		FinalPrescription: assessment.Prescriptions,
	}

	s.store.Save(result)
	metrics.AnalysesStored.Inc()
	for _, alert := range result.Alerts {
		metrics.AlertsRaised.WithLabelValues(alert).Inc()
	}
	s.log.Info("analysis stored",
		zap.Float64("overall_health_score", overall),
		zap.Float64("annual_emission", result.Carbon.AnnualEmission),
		zap.Float64("overload_probability", result.Surge.OverloadProbability),
		zap.Strings("alerts", result.Alerts),
	)

	return result, nil
}

// Latest returns the most recent analysis, if any has been stored.
func (s *Service) Latest() (*Result, bool) {
	return s.store.Latest()
}

func (s *Service) Models() []model.Info {
	return s.models.Info
}

func (s *Service) healthProbabilities(in features.HealthInput) (cardio, respiratory, heat float64, err error) {
	probas, err := s.models.Health.PredictProba(in.Vector())
	if err != nil {
		return 0, 0, 0, err
	}
	if len(probas) < healthOutputs {
		return 0, 0, 0, &model.PredictionError{
			Model: "health",
			Err:   fmt.Errorf("expected %d outputs, got %d", healthOutputs, len(probas)),
		}
	}
	return risk.Clamp01(probas[0].Positive()),
		risk.Clamp01(probas[1].Positive()),
		risk.Clamp01(probas[2].Positive()),
		nil
}

func riskBlock(p float64) RiskBlock {
	return RiskBlock{
		Probability: risk.Round2(p),
		Level:       risk.HealthLevel(p).RiskLabel(),
	}
}
