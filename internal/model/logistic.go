package model

import "fmt"

// LogisticOutput is one binary logistic head of a multi-output classifier.
type LogisticOutput struct {
	Target       string    `yaml:"target"`
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients"`
}

// LogisticModel is a multi-output classifier: every output is an
// independent binary logistic regression over the same feature vector.
type LogisticModel struct {
	Name     string           `yaml:"name"`
	Features []string         `yaml:"features"`
	Outputs  []LogisticOutput `yaml:"outputs"`
}

func (m *LogisticModel) PredictProba(features []float64) ([]Proba, error) {
	if len(m.Outputs) == 0 {
		return nil, &PredictionError{Model: m.Name, Err: ErrEmptyModel}
	}

	probas := make([]Proba, 0, len(m.Outputs))
	for _, out := range m.Outputs {
		if err := checkInput(m.Name, len(out.Coefficients), features); err != nil {
			return nil, err
		}
		// An infinite logit saturates; only NaN (Inf-Inf) is unusable.
		p := sigmoid(out.Intercept + dot(out.Coefficients, features))
		if err := checkOutput(m.Name, p); err != nil {
			return nil, err
		}
		probas = append(probas, Proba{1 - p, p})
	}
	return probas, nil
}

func (m *LogisticModel) Info() Info {
	targets := make([]string, 0, len(m.Outputs))
	for _, out := range m.Outputs {
		targets = append(targets, out.Target)
	}
	return Info{Name: m.Name, Kind: KindLogistic, Features: m.Features, Outputs: targets}
}

func (m *LogisticModel) validate() error {
	if len(m.Outputs) == 0 {
		return fmt.Errorf("%s: no outputs defined", m.Name)
	}
	for _, out := range m.Outputs {
		if len(out.Coefficients) != len(m.Features) {
			return fmt.Errorf("%s/%s: %d coefficients for %d features", m.Name, out.Target, len(out.Coefficients), len(m.Features))
		}
	}
	return nil
}
