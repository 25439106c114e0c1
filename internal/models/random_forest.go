package models

import (
    "errors"
    "fmt"
)

// RandomForest averages the leaf probabilities of its trees.
type RandomForest struct {
    Trees []*DecisionTree
}

func (rf *RandomForest) Name() string { return "RandomForest" }

func (rf *RandomForest) Predict(X [][]float64) ([]int, error) {
    ps, err := rf.proba(X)
    if err != nil { return nil, err }
    out := make([]int, len(ps))
    for i := range ps { if ps[i] >= 0.5 { out[i] = 1 } }
    return out, nil
}

func (rf *RandomForest) PredictProba(X [][]float64) ([][]float64, error) {
    ps, err := rf.proba(X)
    if err != nil { return nil, err }
    out := make([][]float64, len(ps))
    for i := range ps { out[i] = binaryRow(ps[i]) }
    return out, nil
}

func (rf *RandomForest) proba(X [][]float64) ([]float64, error) {
    n := len(X)
    if len(rf.Trees) == 0 { return nil, errors.New("random forest has no trees") }
    out := make([]float64, n)
    for _, dt := range rf.Trees {
        for i := 0; i < n; i++ {
            p, err := dt.predictProbaOne(X[i])
            if err != nil { return nil, err }
            out[i] += p
        }
    }
    m := float64(len(rf.Trees))
    for i := 0; i < n; i++ { out[i] /= m }
    return out, nil
}

func (rf *RandomForest) check(nFeats int) error {
    if len(rf.Trees) == 0 { return errors.New("random forest has no trees") }
    for k, dt := range rf.Trees {
        if dt == nil { return fmt.Errorf("tree %d is nil", k) }
        if err := dt.check(nFeats); err != nil { return fmt.Errorf("tree %d: %w", k, err) }
    }
    return nil
}
