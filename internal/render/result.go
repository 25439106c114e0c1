package render

import (
    "errors"
    "fmt"
    "html/template"

    "heartguard/internal/data"
    "heartguard/internal/inference"
)

type Template string

const (
    HighRisk Template = "high_risk"
    LowRisk  Template = "low_risk"
)

// View is everything the result card needs.
type View struct {
    Template   Template
    Headline   string
    Message    string
    Confidence string
    Celebrate  bool
    Chart      template.URL
}

func (v View) Danger() bool         { return v.Template == HighRisk }
func (v View) ShowConfidence() bool { return v.Confidence != "" }

// Select maps a prediction onto exactly one of the two result templates.
func Select(p data.Prediction) (View, error) {
    var v View
    switch p.Label {
    case data.DiseasePresent:
        v = View{
            Template: HighRisk,
            Headline: "⚠️ HIGH RISK DETECTED",
            Message:  "The model predicts a high probability of heart disease.",
        }
    case data.DiseaseAbsent:
        v = View{
            Template:  LowRisk,
            Headline:  "✅ LOW RISK / HEALTHY",
            Message:   "The model predicts no presence of heart disease.",
            Celebrate: true,
        }
    default:
        return View{}, fmt.Errorf("%w: %d", inference.ErrUnexpectedLabel, p.Label)
    }
    if p.HasConfidence() { v.Confidence = FormatConfidence(p.Confidence) }
    return v, nil
}

func FormatConfidence(c float64) string { return fmt.Sprintf("%.2f%%", c) }

// Response is the JSON body of POST /predict.
type Response struct {
    Label      Template `json:"label"`
    Confidence *float64 `json:"confidence"`
}

func JSON(p data.Prediction) (Response, error) {
    v, err := Select(p)
    if err != nil { return Response{}, err }
    r := Response{Label: v.Template}
    if p.HasConfidence() {
        c := p.Confidence
        r.Confidence = &c
    }
    return r, nil
}

// IsUnexpectedLabel reports whether err is a data-contract violation from
// the classifier rather than a user or availability problem.
func IsUnexpectedLabel(err error) bool { return errors.Is(err, inference.ErrUnexpectedLabel) }
