package main

import (
    "flag"
    "path/filepath"

    "go.uber.org/zap"

    "heartguard/internal/features"
    "heartguard/internal/models"
    "heartguard/pkg/utils"
)

// packmodel turns the parameter export of an already trained model (YAML or
// JSON) into the gob artifact the API loads.
func main() {
    logger := utils.Logger()
    defer logger.Sync()

    in := flag.String("in", "", "Exported model parameters (.yaml, .yml or .json)")
    out := flag.String("out", filepath.Join("models", "heart_disease_model.gob"), "Artifact output path")
    flag.Parse()

    if *in == "" { logger.Fatal("missing -in") }

    spec, err := models.ReadExportFile(*in)
    if err != nil { logger.Fatal("read export", zap.String("in", *in), zap.Error(err)) }
    a, err := spec.Artifact(features.Names)
    if err != nil { logger.Fatal("invalid export", zap.String("in", *in), zap.Error(err)) }
    if err := models.SaveArtifact(*out, a); err != nil {
        logger.Fatal("write artifact", zap.String("out", *out), zap.Error(err))
    }
    clf, _ := a.Classifier()
    logger.Info("artifact written",
        zap.String("out", *out),
        zap.String("kind", a.Kind),
        zap.String("model", clf.Name()),
        zap.Strings("features", a.Features),
    )
}
