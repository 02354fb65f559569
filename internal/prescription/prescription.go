// Package prescription turns health, carbon and surge scores into alerts and
// an ordered list of recommendations.
//
// ForScores serves callers that already hold scores and want the full
// three-tier advice with a concatenated alert message. ForAnalysis is the
// combined-pipeline variant: HIGH tier only, alerts as a list. The two keep
// distinct output shapes.
package prescription

import (
	"strings"

	"github.com/Skufu/climatehealth/internal/risk"
)

const (
	StableAlert    = "Stable condition."
	StableAnalysis = "Stable Condition"
)

// Plan is the output of ForScores.
type Plan struct {
	Alert            string   `json:"alert"`
	PrescriptionPlan []string `json:"prescription_plan"`

	// Escalated names the domains whose alerting tier fired, in rule order.
	Escalated []string `json:"-"`
}

// Assessment is the output of ForAnalysis.
type Assessment struct {
	Alerts        []string
	Prescriptions []string
}

type tier struct {
	Above  float64
	Alert  string
	Advice []string
}

// domainRule picks the first tier whose threshold the score exceeds, or the
// fallback advice when none does.
type domainRule struct {
	Domain   string
	Tiers    []tier
	Fallback []string
}

func (r domainRule) evaluate(score float64) (alert string, advice []string) {
	for _, t := range r.Tiers {
		if score > t.Above {
			return t.Alert, t.Advice
		}
	}
	return "", r.Fallback
}

var (
	healthRule = domainRule{
		Domain: "health",
		Tiers: []tier{
			{Above: risk.HealthHigh, Alert: "High health risk detected. ", Advice: []string{
				"Start 30 minutes daily walking.",
				"Reduce processed food and sugar intake.",
				"Schedule regular health checkups.",
			}},
			{Above: risk.HealthModerate, Advice: []string{
				"Increase physical activity 3x per week.",
				"Improve diet quality.",
			}},
		},
		Fallback: []string{"Maintain current healthy lifestyle."},
	}

	carbonRule = domainRule{
		Domain: "carbon",
		Tiers: []tier{
			{Above: risk.CarbonHigh, Alert: "High environmental impact detected. ", Advice: []string{
				"Reduce red meat consumption by 50%.",
				"Use public transport more frequently.",
				"Reduce electricity usage.",
			}},
			{Above: risk.CarbonModerate, Advice: []string{
				"Adopt more plant-based meals weekly.",
				"Reduce private vehicle use.",
			}},
		},
		Fallback: []string{"Maintain sustainable lifestyle habits."},
	}

	surgeRule = domainRule{
		Domain: "surge",
		Tiers: []tier{
			{Above: risk.EmergencyCritical, Alert: "Hospital overload risk is critical. ", Advice: []string{
				"Avoid outdoor activity during peak heat hours.",
				"Stay hydrated and monitor vulnerable family members.",
			}},
		},
	}
)

// ForScores builds the score-based prescription. healthScore and
// overloadProbability are clamped to [0,1]; carbonEmission is annual kg CO2e.
func ForScores(healthScore, carbonEmission, overloadProbability float64) Plan {
	scores := []struct {
		rule  domainRule
		score float64
	}{
		{healthRule, risk.Clamp01(healthScore)},
		{carbonRule, carbonEmission},
		{surgeRule, risk.Clamp01(overloadProbability)},
	}

	var alert strings.Builder
	var escalated []string
	plan := []string{}
	for _, s := range scores {
		fragment, advice := s.rule.evaluate(s.score)
		if fragment != "" {
			alert.WriteString(fragment)
			escalated = append(escalated, s.rule.Domain)
		}
		plan = append(plan, advice...)
	}

	msg := alert.String()
	if msg == "" {
		msg = StableAlert
	}
	return Plan{Alert: msg, PrescriptionPlan: plan, Escalated: escalated}
}

type analysisRule struct {
	Above  float64
	Alert  string
	Advice []string
}

var analysisRules = []analysisRule{
	{Above: risk.HealthHigh, Alert: "High Health Risk", Advice: []string{"Start daily exercise", "Reduce processed food"}},
	{Above: risk.CarbonHigh, Alert: "High Environmental Impact", Advice: []string{"Reduce red meat consumption", "Use public transport"}},
	{Above: risk.EmergencyCritical, Alert: "Hospital Overload Risk Critical", Advice: []string{"Avoid peak heat hours", "Stay hydrated"}},
}

// ForAnalysis builds the combined-analysis prescription from the rounded
// overall health score, annual carbon emission and overload probability.
func ForAnalysis(overallHealth, carbonValue, overloadProbability float64) Assessment {
	scores := []float64{risk.Clamp01(overallHealth), carbonValue, risk.Clamp01(overloadProbability)}

	out := Assessment{Alerts: []string{}, Prescriptions: []string{}}
	for i, rule := range analysisRules {
		if scores[i] > rule.Above {
			out.Alerts = append(out.Alerts, rule.Alert)
			out.Prescriptions = append(out.Prescriptions, rule.Advice...)
		}
	}

	if len(out.Alerts) == 0 {
		out.Alerts = []string{StableAnalysis}
	}
	return out
}
