package models

import (
    "errors"
    "fmt"
    "os"
    "strings"
    "sync"

    "go.uber.org/zap"
)

// ErrArtifactMissing means the classifier artifact could not be loaded. It is
// terminal for the process: the loader never retries.
var ErrArtifactMissing = errors.New("model artifact unavailable")

// Loader reads the artifact on first use and memoizes the outcome, success or
// failure, for the lifetime of the process.
type Loader struct {
    path     string
    features []string
    log      *zap.Logger

    once sync.Once
    clf  Classifier
    err  error
}

// NewLoader returns a loader for path. features is the column order the
// encoder produces; an artifact trained on another order is rejected.
func NewLoader(path string, features []string, log *zap.Logger) *Loader {
    if log == nil { log = zap.NewNop() }
    return &Loader{path: path, features: features, log: log}
}

func (l *Loader) Path() string { return l.path }

// Classifier returns the cached classifier, loading it on the first call.
// The error always wraps ErrArtifactMissing.
func (l *Loader) Classifier() (Classifier, error) {
    l.once.Do(func() {
        l.clf, l.err = l.load()
        if l.err != nil {
            l.log.Error("model unavailable", zap.String("path", l.path), zap.Error(l.err))
            return
        }
        l.log.Info("model loaded", zap.String("path", l.path), zap.String("model", l.clf.Name()))
    })
    return l.clf, l.err
}

func (l *Loader) load() (Classifier, error) {
    f, err := os.Open(l.path)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) {
            return nil, fmt.Errorf("%w: %s not found", ErrArtifactMissing, l.path)
        }
        return nil, fmt.Errorf("%w: %v", ErrArtifactMissing, err)
    }
    defer f.Close()

    a, err := ReadArtifact(f)
    if err != nil {
        return nil, fmt.Errorf("%w: decode %s: %v", ErrArtifactMissing, l.path, err)
    }
    if len(l.features) > 0 && !sameNames(a.Features, l.features) {
        return nil, fmt.Errorf("%w: trained on features [%s], encoder produces [%s]",
            ErrArtifactMissing, strings.Join(a.Features, ","), strings.Join(l.features, ","))
    }
    clf, err := a.Classifier()
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrArtifactMissing, err)
    }
    return clf, nil
}

func sameNames(a, b []string) bool {
    if len(a) != len(b) { return false }
    for i := range a { if a[i] != b[i] { return false } }
    return true
}
