// Package model wraps the exported health, carbon and surge models behind a
// uniform predict / predict-proba contract over fixed-order feature vectors.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Proba holds the (negative, positive) class probabilities of one binary output.
type Proba [2]float64

// Positive returns the probability of the positive class.
func (p Proba) Positive() float64 {
	return p[1]
}

// Regressor predicts a single continuous value.
type Regressor interface {
	Predict(features []float64) (float64, error)
}

// Classifier predicts one Proba per independent binary output.
type Classifier interface {
	PredictProba(features []float64) ([]Proba, error)
}

// Info describes a loaded model.
type Info struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Features []string `json:"features"`
	Outputs  []string `json:"outputs,omitempty"`
}

var (
	ErrShapeMismatch = errors.New("feature shape mismatch")
	ErrBadValue      = errors.New("input contains NaN or infinity")
	ErrEmptyModel    = errors.New("model has no coefficients")
	ErrNonFinite     = errors.New("prediction is not a finite number")
)

// PredictionError is returned when a model call fails.
type PredictionError struct {
	Model string
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("%s model: %v", e.Model, e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

func checkInput(name string, want int, features []float64) error {
	if want == 0 {
		return &PredictionError{Model: name, Err: ErrEmptyModel}
	}
	if len(features) != want {
		return &PredictionError{
			Model: name,
			Err:   fmt.Errorf("%w: X has %d features, but model is expecting %d features as input", ErrShapeMismatch, len(features), want),
		}
	}
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &PredictionError{Model: name, Err: fmt.Errorf("%w (feature %d)", ErrBadValue, i)}
		}
	}
	return nil
}

func checkOutput(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &PredictionError{Model: name, Err: ErrNonFinite}
	}
	return nil
}

// dot assumes len(a) == len(b); callers check shape first.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
