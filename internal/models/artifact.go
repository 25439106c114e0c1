package models

import (
    "encoding/gob"
    "fmt"
    "io"
    "os"
    "path/filepath"
)

const (
    KindLogistic = "logistic_regression"
    KindSVM      = "linear_svm"
    KindTree     = "decision_tree"
    KindForest   = "random_forest"
    KindBoosting = "gradient_boosting"
)

// Artifact is the on-disk envelope for one trained classifier. Exactly one of
// the parameter fields is set, matching Kind.
type Artifact struct {
    Kind     string
    Features []string

    Logistic *LogisticRegression
    SVM      *LinearSVM
    Tree     *DecisionTree
    Forest   *RandomForest
    Boosting *GradientBoosting
}

// Classifier checks the parameters for Kind and returns them as a Classifier.
func (a *Artifact) Classifier() (Classifier, error) {
    nFeats := len(a.Features)
    switch a.Kind {
    case KindLogistic:
        if a.Logistic == nil { return nil, missingParams(a.Kind) }
        if err := checkLinear(a.Logistic.Coef, a.Logistic.Intercept, nFeats); err != nil { return nil, err }
        return a.Logistic, nil
    case KindSVM:
        if a.SVM == nil { return nil, missingParams(a.Kind) }
        if err := checkLinear(a.SVM.Coef, a.SVM.Intercept, nFeats); err != nil { return nil, err }
        return a.SVM, nil
    case KindTree:
        if a.Tree == nil { return nil, missingParams(a.Kind) }
        if err := a.Tree.check(nFeats); err != nil { return nil, err }
        return a.Tree, nil
    case KindForest:
        if a.Forest == nil { return nil, missingParams(a.Kind) }
        if err := a.Forest.check(nFeats); err != nil { return nil, err }
        return a.Forest, nil
    case KindBoosting:
        if a.Boosting == nil { return nil, missingParams(a.Kind) }
        if err := a.Boosting.check(nFeats); err != nil { return nil, err }
        return a.Boosting, nil
    default:
        return nil, fmt.Errorf("unknown model kind %q", a.Kind)
    }
}

func missingParams(kind string) error {
    return fmt.Errorf("artifact of kind %q carries no parameters", kind)
}

func checkLinear(coef []float64, intercept float64, nFeats int) error {
    if len(coef) == 0 { return errNoCoef }
    if len(coef) != nFeats {
        return fmt.Errorf("model has %d coefficients for %d features", len(coef), nFeats)
    }
    for j, c := range coef {
        if !finite(c) { return fmt.Errorf("coefficient %d is %v", j, c) }
    }
    if !finite(intercept) { return fmt.Errorf("intercept is %v", intercept) }
    return nil
}

func WriteArtifact(w io.Writer, a *Artifact) error {
    if _, err := a.Classifier(); err != nil { return fmt.Errorf("refusing to write artifact: %w", err) }
    return gob.NewEncoder(w).Encode(a)
}

func ReadArtifact(r io.Reader) (*Artifact, error) {
    var a Artifact
    if err := gob.NewDecoder(r).Decode(&a); err != nil { return nil, err }
    return &a, nil
}

// SaveArtifact writes a to path, creating parent directories as needed.
func SaveArtifact(path string, a *Artifact) (err error) {
    if dir := filepath.Dir(path); dir != "" {
        if err := os.MkdirAll(dir, 0o755); err != nil { return err }
    }
    f, err := os.Create(path)
    if err != nil { return err }
    defer func() {
        if cerr := f.Close(); cerr != nil && err == nil { err = cerr }
    }()
    return WriteArtifact(f, a)
}
