// Package inference runs one encoded feature vector through a classifier.
package inference

import (
    "errors"
    "fmt"
    "math"

    "go.uber.org/zap"

    "heartguard/internal/data"
    "heartguard/internal/features"
    "heartguard/internal/models"
)

var (
    ErrMalformedInput  = errors.New("malformed feature vector")
    ErrUnexpectedLabel = errors.New("classifier returned a label outside {0,1}")
)

type Engine struct {
    log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
    if log == nil { log = zap.NewNop() }
    return &Engine{log: log}
}

// Predict classifies vec. The label is mandatory; the confidence is
// best-effort and left at zero when the classifier cannot provide it.
func (e *Engine) Predict(clf models.Classifier, vec []float64) (data.Prediction, error) {
    if len(vec) != features.Count {
        return data.Prediction{}, fmt.Errorf("%w: got %d values, want %d", ErrMalformedInput, len(vec), features.Count)
    }
    X := [][]float64{vec}

    labels, err := clf.Predict(X)
    if err != nil { return data.Prediction{}, fmt.Errorf("classify: %w", err) }
    if len(labels) != 1 {
        return data.Prediction{}, fmt.Errorf("%w: got %d labels for one row", ErrUnexpectedLabel, len(labels))
    }
    label := data.Label(labels[0])
    if !label.Valid() {
        return data.Prediction{}, fmt.Errorf("%w: %d", ErrUnexpectedLabel, labels[0])
    }

    p := data.Prediction{Label: label, Model: clf.Name()}
    row, err := e.probabilities(clf, X)
    if err != nil {
        e.log.Debug("confidence unavailable", zap.String("model", p.Model), zap.Error(err))
        return p, nil
    }
    p.Probabilities = row
    p.Confidence = maxOf(row) * 100
    return p, nil
}

// probabilities turns every failure mode of PredictProba, panics included,
// into an error.
func (e *Engine) probabilities(clf models.Classifier, X [][]float64) (row []float64, err error) {
    defer func() {
        if r := recover(); r != nil {
            row, err = nil, fmt.Errorf("predict_proba panicked: %v", r)
        }
    }()
    proba, err := clf.PredictProba(X)
    if err != nil { return nil, err }
    if len(proba) != 1 || len(proba[0]) == 0 {
        return nil, errors.New("predict_proba returned no distribution")
    }
    for _, v := range proba[0] {
        if math.IsNaN(v) || v < 0 || v > 1 {
            return nil, fmt.Errorf("predict_proba returned %v", proba[0])
        }
    }
    return proba[0], nil
}

func maxOf(xs []float64) float64 {
    m := xs[0]
    for _, x := range xs[1:] { if x > m { m = x } }
    return m
}
