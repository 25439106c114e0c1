package models

import (
    "errors"
    "fmt"
    "math"
)

// Stump is a depth-one regression tree on the log-odds scale.
type Stump struct {
    Feature   int
    Threshold float64
    LeftVal   float64
    RightVal  float64
}

// GradientBoosting sums shrunken stump outputs on top of the prior log-odds.
type GradientBoosting struct {
    Init         float64
    LearningRate float64
    Stumps       []Stump
}

func (gb *GradientBoosting) Name() string { return "GradientBoosting" }

func (gb *GradientBoosting) score(x []float64) float64 {
    f := gb.Init
    for _, t := range gb.Stumps {
        inc := t.LeftVal
        if x[t.Feature] > t.Threshold { inc = t.RightVal }
        f += gb.LearningRate * inc
    }
    return f
}

func (gb *GradientBoosting) PredictProba(X [][]float64) ([][]float64, error) {
    if err := gb.checkRows(X); err != nil { return nil, err }
    out := make([][]float64, len(X))
    for i := range X { out[i] = binaryRow(sigmoid(gb.score(X[i]))) }
    return out, nil
}

func (gb *GradientBoosting) Predict(X [][]float64) ([]int, error) {
    if err := gb.checkRows(X); err != nil { return nil, err }
    out := make([]int, len(X))
    for i := range X { if sigmoid(gb.score(X[i])) >= 0.5 { out[i] = 1 } }
    return out, nil
}

func (gb *GradientBoosting) checkRows(X [][]float64) error {
    for i, x := range X {
        for _, t := range gb.Stumps {
            if t.Feature >= len(x) { return &WidthError{Row: i, Got: len(x), Want: t.Feature + 1} }
        }
    }
    return nil
}

func (gb *GradientBoosting) check(nFeats int) error {
    if len(gb.Stumps) == 0 { return errors.New("gradient boosting has no stumps") }
    if !(gb.LearningRate > 0) || !finite(gb.LearningRate) {
        return fmt.Errorf("learning rate must be positive, got %v", gb.LearningRate)
    }
    if !finite(gb.Init) { return fmt.Errorf("initial score is %v", gb.Init) }
    for k, t := range gb.Stumps {
        if t.Feature < 0 || t.Feature >= nFeats {
            return fmt.Errorf("stump %d splits on feature %d of %d", k, t.Feature, nFeats)
        }
        if math.IsNaN(t.Threshold) || !finite(t.LeftVal) || !finite(t.RightVal) {
            return fmt.Errorf("stump %d has non-finite parameters", k)
        }
    }
    return nil
}
