package models

import (
    "errors"
    "fmt"
    "math"
)

// ErrProbabilityUnsupported is returned by PredictProba on classifiers that
// only produce hard labels.
var ErrProbabilityUnsupported = errors.New("probability estimation not supported")

//go:generate mockgen -destination=mocks/classifier.go -package=mocks heartguard/internal/models Classifier

// Classifier is a trained binary model. Implementations are read-only after
// load and safe for concurrent use.
type Classifier interface {
    // Predict returns one label per row of X.
    Predict(X [][]float64) ([]int, error)
    // PredictProba returns one [p(0), p(1)] row per row of X.
    PredictProba(X [][]float64) ([][]float64, error)
    Name() string
}

func checkWidth(X [][]float64, width int) error {
    for i := range X {
        if len(X[i]) != width {
            return &WidthError{Row: i, Got: len(X[i]), Want: width}
        }
    }
    return nil
}

type WidthError struct {
    Row, Got, Want int
}

func (e *WidthError) Error() string {
    return fmt.Sprintf("row %d has %d features, model expects %d", e.Row, e.Got, e.Want)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func binaryRow(p1 float64) []float64 { return []float64{1 - p1, p1} }
