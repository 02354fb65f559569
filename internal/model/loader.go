package model

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	KindLinear   = "linear"
	KindLogistic = "logistic"
)

type header struct {
	Kind string `yaml:"kind"`
}

// LoadLinear reads a linear regression export and checks that its feature
// order matches want exactly.
func LoadLinear(path string, want []string) (*LinearModel, error) {
	var m LinearModel
	if err := decodeFile(path, KindLinear, &m); err != nil {
		return nil, err
	}
	if err := checkFeatures(path, m.Features, want); err != nil {
		return nil, err
	}
	if len(m.Coefficients) != len(m.Features) {
		return nil, fmt.Errorf("%s: %d coefficients for %d features", path, len(m.Coefficients), len(m.Features))
	}
	return &m, nil
}

// LoadLogistic reads a multi-output logistic export and checks that its
// feature order matches want exactly.
func LoadLogistic(path string, want []string) (*LogisticModel, error) {
	var m LogisticModel
	if err := decodeFile(path, KindLogistic, &m); err != nil {
		return nil, err
	}
	if err := checkFeatures(path, m.Features, want); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

func decodeFile(path, kind string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read model file: %w", err)
	}

	var h header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if h.Kind != kind {
		return fmt.Errorf("%s: expected kind %q, got %q", path, kind, h.Kind)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func checkFeatures(path string, got, want []string) error {
	if !slices.Equal(got, want) {
		return fmt.Errorf("%s: feature order %v does not match %v", path, got, want)
	}
	return nil
}
