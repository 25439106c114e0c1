package models

import (
    "errors"
    "math"
)

// LogisticRegression holds the coefficients of a fitted binary logistic model.
type LogisticRegression struct {
    Coef      []float64
    Intercept float64
}

func (lr *LogisticRegression) Name() string { return "LogisticRegression" }

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func (lr *LogisticRegression) Predict(X [][]float64) ([]int, error) {
    zs, err := decision(lr.Coef, lr.Intercept, X)
    if err != nil { return nil, err }
    out := make([]int, len(zs))
    for i, z := range zs { if z > 0 { out[i] = 1 } }
    return out, nil
}

func (lr *LogisticRegression) PredictProba(X [][]float64) ([][]float64, error) {
    zs, err := decision(lr.Coef, lr.Intercept, X)
    if err != nil { return nil, err }
    out := make([][]float64, len(zs))
    for i, z := range zs { out[i] = binaryRow(sigmoid(z)) }
    return out, nil
}

// LinearSVM is a linear max-margin classifier. It has no calibrated
// probabilities, so PredictProba always fails.
type LinearSVM struct {
    Coef      []float64
    Intercept float64
}

func (s *LinearSVM) Name() string { return "LinearSVM" }

func (s *LinearSVM) Predict(X [][]float64) ([]int, error) {
    zs, err := decision(s.Coef, s.Intercept, X)
    if err != nil { return nil, err }
    out := make([]int, len(zs))
    for i, z := range zs { if z > 0 { out[i] = 1 } }
    return out, nil
}

func (s *LinearSVM) PredictProba(X [][]float64) ([][]float64, error) {
    return nil, ErrProbabilityUnsupported
}

var errNoCoef = errors.New("linear model has no coefficients")

func decision(coef []float64, intercept float64, X [][]float64) ([]float64, error) {
    if len(coef) == 0 { return nil, errNoCoef }
    if err := checkWidth(X, len(coef)); err != nil { return nil, err }
    out := make([]float64, len(X))
    for i, x := range X {
        z := intercept
        for j := range coef { z += coef[j] * x[j] }
        out[i] = z
    }
    return out, nil
}
