package model

// LinearModel is an ordinary least-squares regressor exported as intercept
// plus one coefficient per feature.
type LinearModel struct {
	Name         string    `yaml:"name"`
	Features     []string  `yaml:"features"`
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients"`
}

func (m *LinearModel) Predict(features []float64) (float64, error) {
	if err := checkInput(m.Name, len(m.Coefficients), features); err != nil {
		return 0, err
	}
	y := m.Intercept + dot(m.Coefficients, features)
	if err := checkOutput(m.Name, y); err != nil {
		return 0, err
	}
	return y, nil
}

func (m *LinearModel) Info() Info {
	return Info{Name: m.Name, Kind: KindLinear, Features: m.Features}
}
