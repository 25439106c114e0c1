package models

import (
    "errors"
    "math"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

var heartFeatures = []string{"cp", "thal", "ca", "thalach", "oldpeak"}

func exampleLogistic() *LogisticRegression {
    return &LogisticRegression{Coef: []float64{0.85, -0.95, -0.75, 0.025, -0.6}, Intercept: -1.2}
}

func exampleTree() *DecisionTree {
    return &DecisionTree{Root: &DTNode{
        Feature:   2,
        Threshold: 0.5,
        Left:      &DTNode{IsLeaf: true, ProbaLeaf: 0.2},
        Right: &DTNode{
            Feature:   4,
            Threshold: 2.0,
            Left:      &DTNode{IsLeaf: true, ProbaLeaf: 0.55},
            Right:     &DTNode{IsLeaf: true, ProbaLeaf: 0.9},
        },
    }}
}

func TestLogisticRegression(t *testing.T) {
    lr := exampleLogistic()
    X := [][]float64{{0, 2, 0, 150, 1.0}, {3, 1, 3, 90, 4.2}}

    labels, err := lr.Predict(X)
    require.NoError(t, err)
    assert.Equal(t, []int{1, 0}, labels)

    proba, err := lr.PredictProba(X)
    require.NoError(t, err)
    require.Len(t, proba, 2)
    assert.InDelta(t, 1/(1+math.Exp(-0.05)), proba[0][1], 1e-9)
    for _, row := range proba {
        require.Len(t, row, 2)
        assert.InDelta(t, 1.0, row[0]+row[1], 1e-12)
    }
}

func TestLinearModelRejectsWrongWidth(t *testing.T) {
    _, err := exampleLogistic().Predict([][]float64{{1, 2, 3}})
    var we *WidthError
    require.True(t, errors.As(err, &we))
    assert.Equal(t, 3, we.Got)
    assert.Equal(t, 5, we.Want)
}

func TestLinearSVMHasNoProbabilities(t *testing.T) {
    svm := &LinearSVM{Coef: []float64{1, 0, 0, 0, 0}, Intercept: -1.5}
    labels, err := svm.Predict([][]float64{{3, 1, 0, 100, 0}, {0, 1, 0, 100, 0}})
    require.NoError(t, err)
    assert.Equal(t, []int{1, 0}, labels)

    _, err = svm.PredictProba([][]float64{{3, 1, 0, 100, 0}})
    assert.ErrorIs(t, err, ErrProbabilityUnsupported)
}

func TestDecisionTree(t *testing.T) {
    dt := exampleTree()
    X := [][]float64{
        {0, 2, 0, 150, 1.0},
        {3, 1, 3, 90, 4.2},
        {1, 2, 1, 120, 1.0},
    }
    labels, err := dt.Predict(X)
    require.NoError(t, err)
    assert.Equal(t, []int{0, 1, 1}, labels)

    proba, err := dt.PredictProba(X)
    require.NoError(t, err)
    assert.InDelta(t, 0.8, proba[0][0], 1e-12)
    assert.InDelta(t, 0.9, proba[1][1], 1e-12)

    _, err = (&DecisionTree{}).Predict(X)
    assert.Error(t, err)
    _, err = dt.Predict([][]float64{{1, 2}})
    assert.Error(t, err)
}

func TestRandomForestAverages(t *testing.T) {
    other := &DecisionTree{Root: &DTNode{IsLeaf: true, ProbaLeaf: 0.4}}
    rf := &RandomForest{Trees: []*DecisionTree{exampleTree(), other}}

    proba, err := rf.PredictProba([][]float64{{0, 2, 0, 150, 1.0}, {3, 1, 3, 90, 4.2}})
    require.NoError(t, err)
    assert.InDelta(t, 0.3, proba[0][1], 1e-12)
    assert.InDelta(t, 0.65, proba[1][1], 1e-12)

    labels, err := rf.Predict([][]float64{{0, 2, 0, 150, 1.0}, {3, 1, 3, 90, 4.2}})
    require.NoError(t, err)
    assert.Equal(t, []int{0, 1}, labels)
}

func TestGradientBoostingSumsStumps(t *testing.T) {
    gb := &GradientBoosting{Init: -0.5, LearningRate: 0.5, Stumps: []Stump{
        {Feature: 2, Threshold: 0.5, LeftVal: -1, RightVal: 2},
        {Feature: 4, Threshold: 2.0, LeftVal: 0, RightVal: 1},
    }}
    X := [][]float64{{0, 2, 0, 150, 1.0}, {3, 1, 3, 90, 4.2}}

    proba, err := gb.PredictProba(X)
    require.NoError(t, err)
    assert.InDelta(t, 1/(1+math.Exp(1.0)), proba[0][1], 1e-12)
    assert.InDelta(t, 1/(1+math.Exp(-1.0)), proba[1][1], 1e-12)

    labels, err := gb.Predict(X)
    require.NoError(t, err)
    assert.Equal(t, []int{0, 1}, labels)

    _, err = gb.Predict([][]float64{{1, 2}})
    var we *WidthError
    assert.True(t, errors.As(err, &we))
}

func TestArtifactClassifierChecksParameters(t *testing.T) {
    cases := map[string]*Artifact{
        "unknown kind":    {Kind: "xgboost", Features: heartFeatures},
        "no params":       {Kind: KindLogistic, Features: heartFeatures},
        "coef mismatch":   {Kind: KindSVM, Features: heartFeatures, SVM: &LinearSVM{Coef: []float64{1, 2}}},
        "split overflow":  {Kind: KindTree, Features: heartFeatures, Tree: &DecisionTree{Root: &DTNode{Feature: 7, Left: &DTNode{IsLeaf: true}, Right: &DTNode{IsLeaf: true}}}},
        "bad leaf":        {Kind: KindTree, Features: heartFeatures, Tree: &DecisionTree{Root: &DTNode{IsLeaf: true, ProbaLeaf: 1.5}}},
        "empty forest":    {Kind: KindForest, Features: heartFeatures, Forest: &RandomForest{}},
        "no stumps":       {Kind: KindBoosting, Features: heartFeatures, Boosting: &GradientBoosting{LearningRate: 0.1}},
        "zero rate":       {Kind: KindBoosting, Features: heartFeatures, Boosting: &GradientBoosting{Stumps: []Stump{{Feature: 0}}}},
        "stump overflow":  {Kind: KindBoosting, Features: heartFeatures, Boosting: &GradientBoosting{LearningRate: 0.1, Stumps: []Stump{{Feature: 5}}}},
        "nan leaf":        {Kind: KindTree, Features: heartFeatures, Tree: &DecisionTree{Root: &DTNode{IsLeaf: true, ProbaLeaf: math.NaN()}}},
        "nan threshold":   {Kind: KindTree, Features: heartFeatures, Tree: &DecisionTree{Root: &DTNode{Feature: 0, Threshold: math.NaN(), Left: &DTNode{IsLeaf: true}, Right: &DTNode{IsLeaf: true}}}},
        "nan forest leaf": {Kind: KindForest, Features: heartFeatures, Forest: &RandomForest{Trees: []*DecisionTree{exampleTree(), {Root: &DTNode{IsLeaf: true, ProbaLeaf: math.NaN()}}}}},
        "nan coef":        {Kind: KindLogistic, Features: heartFeatures, Logistic: &LogisticRegression{Coef: []float64{math.NaN(), 0, 0, 0, 0}}},
        "inf intercept":   {Kind: KindSVM, Features: heartFeatures, SVM: &LinearSVM{Coef: []float64{1, 0, 0, 0, 0}, Intercept: math.Inf(1)}},
        "nan stump value": {Kind: KindBoosting, Features: heartFeatures, Boosting: &GradientBoosting{LearningRate: 0.1, Stumps: []Stump{{Feature: 2, LeftVal: math.NaN(), RightVal: 1}}}},
        "inf init":        {Kind: KindBoosting, Features: heartFeatures, Boosting: &GradientBoosting{Init: math.Inf(-1), LearningRate: 0.1, Stumps: []Stump{{Feature: 2}}}},
        "nan rate":        {Kind: KindBoosting, Features: heartFeatures, Boosting: &GradientBoosting{LearningRate: math.NaN(), Stumps: []Stump{{Feature: 2}}}},
    }
    for name, a := range cases {
        t.Run(name, func(t *testing.T) {
            _, err := a.Classifier()
            assert.Error(t, err)
        })
    }

    clf, err := (&Artifact{Kind: KindTree, Features: heartFeatures, Tree: exampleTree()}).Classifier()
    require.NoError(t, err)
    assert.Equal(t, "DecisionTree", clf.Name())
}
