package models

import (
    "errors"
    "fmt"
    "math"
)

type DTNode struct {
    Feature   int
    Threshold float64
    Left      *DTNode
    Right     *DTNode
    IsLeaf    bool
    ProbaLeaf float64
}

// DecisionTree is a fitted binary tree whose leaves carry p(1).
type DecisionTree struct {
    Root *DTNode
}

var errEmptyTree = errors.New("decision tree has no root")

func (dt *DecisionTree) Name() string { return "DecisionTree" }

func (dt *DecisionTree) Predict(X [][]float64) ([]int, error) {
    out := make([]int, len(X))
    for i := range X {
        p, err := dt.predictProbaOne(X[i])
        if err != nil { return nil, err }
        if p >= 0.5 { out[i] = 1 } else { out[i] = 0 }
    }
    return out, nil
}

func (dt *DecisionTree) PredictProba(X [][]float64) ([][]float64, error) {
    out := make([][]float64, len(X))
    for i := range X {
        p, err := dt.predictProbaOne(X[i])
        if err != nil { return nil, err }
        out[i] = binaryRow(p)
    }
    return out, nil
}

func (dt *DecisionTree) predictProbaOne(x []float64) (float64, error) {
    n := dt.Root
    if n == nil { return 0, errEmptyTree }
    for !n.IsLeaf {
        if n.Feature < 0 || n.Feature >= len(x) {
            return 0, fmt.Errorf("tree splits on feature %d, row has %d", n.Feature, len(x))
        }
        if x[n.Feature] <= n.Threshold { n = n.Left } else { n = n.Right }
        if n == nil { return 0, errors.New("decision tree has a dangling branch") }
    }
    return n.ProbaLeaf, nil
}

// check walks the tree once so a broken artifact fails at load time rather
// than on the first request.
func (dt *DecisionTree) check(nFeats int) error {
    if dt.Root == nil { return errEmptyTree }
    var walk func(n *DTNode, depth int) error
    walk = func(n *DTNode, depth int) error {
        if n == nil { return errors.New("decision tree has a dangling branch") }
        if depth > 64 { return errors.New("decision tree deeper than 64 levels") }
        if n.IsLeaf {
            if !(n.ProbaLeaf >= 0 && n.ProbaLeaf <= 1) {
                return fmt.Errorf("leaf probability %v outside [0,1]", n.ProbaLeaf)
            }
            return nil
        }
        if n.Feature < 0 || n.Feature >= nFeats {
            return fmt.Errorf("split on feature %d, model has %d", n.Feature, nFeats)
        }
        if math.IsNaN(n.Threshold) { return fmt.Errorf("split on feature %d has a NaN threshold", n.Feature) }
        if err := walk(n.Left, depth+1); err != nil { return err }
        return walk(n.Right, depth+1)
    }
    return walk(dt.Root, 0)
}
