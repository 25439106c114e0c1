package render

import (
    "bytes"
    "strings"
    "testing"

    "github.com/goccy/go-json"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "heartguard/internal/data"
)

func TestSelectLowRisk(t *testing.T) {
    v, err := Select(data.Prediction{Label: data.DiseaseAbsent, Confidence: 87.5})
    require.NoError(t, err)
    assert.Equal(t, LowRisk, v.Template)
    assert.Contains(t, v.Headline, "LOW RISK / HEALTHY")
    assert.True(t, v.Celebrate)
    assert.True(t, v.ShowConfidence())
    assert.Equal(t, "87.50%", v.Confidence)
}

func TestSelectHighRiskWithoutConfidence(t *testing.T) {
    v, err := Select(data.Prediction{Label: data.DiseasePresent})
    require.NoError(t, err)
    assert.Equal(t, HighRisk, v.Template)
    assert.True(t, v.Danger())
    assert.False(t, v.Celebrate)
    assert.False(t, v.ShowConfidence())
}

func TestSelectUnexpectedLabel(t *testing.T) {
    _, err := Select(data.Prediction{Label: 2, Confidence: 99})
    require.Error(t, err)
    assert.True(t, IsUnexpectedLabel(err))

    _, err = JSON(data.Prediction{Label: -1})
    assert.True(t, IsUnexpectedLabel(err))
}

func TestJSONBody(t *testing.T) {
    r, err := JSON(data.Prediction{Label: data.DiseaseAbsent, Confidence: 87.5})
    require.NoError(t, err)
    raw, err := json.Marshal(r)
    require.NoError(t, err)
    assert.JSONEq(t, `{"label":"low_risk","confidence":87.5}`, string(raw))

    r, err = JSON(data.Prediction{Label: data.DiseasePresent})
    require.NoError(t, err)
    raw, err = json.Marshal(r)
    require.NoError(t, err)
    assert.JSONEq(t, `{"label":"high_risk","confidence":null}`, string(raw))
}

func TestFormatConfidence(t *testing.T) {
    assert.Equal(t, "87.50%", FormatConfidence(87.5))
    assert.Equal(t, "100.00%", FormatConfidence(100))
    assert.Equal(t, "51.25%", FormatConfidence(51.249999))
}

func TestProbabilityChart(t *testing.T) {
    png, err := ProbabilityChart([]float64{0.875, 0.125})
    require.NoError(t, err)
    require.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
    assert.True(t, strings.HasPrefix(string(DataURI(png)), "data:image/png;base64,"))

    _, err = ProbabilityChart([]float64{1})
    assert.Error(t, err)
}

func execPage(t *testing.T, p Page) string {
    t.Helper()
    var buf bytes.Buffer
    require.NoError(t, Templates().ExecuteTemplate(&buf, PageTemplate, p))
    return buf.String()
}

func TestPageFormPrefill(t *testing.T) {
    in := data.ClinicalInput{ChestPain: 2, Thal: 3, MajorVessels: 1, MaxHeartRate: 172, STDepression: 2.5}
    html := execPage(t, NewPage(in))
    assert.Contains(t, html, "Analyze Risk Profile")
    assert.Contains(t, html, `<option value="2" selected>Non-anginal Pain (2)</option>`)
    assert.Contains(t, html, `<option value="3" selected>Reversable Defect (3)</option>`)
    assert.Contains(t, html, `value="172"`)
    assert.Contains(t, html, `value="2.5"`)
    assert.NotContains(t, html, "Awaiting model file")
}

func TestPageResultCards(t *testing.T) {
    p := NewPage(data.DefaultInput())
    v, err := Select(data.Prediction{Label: data.DiseaseAbsent, Confidence: 87.5})
    require.NoError(t, err)
    p.Result = &v
    html := execPage(t, p)
    assert.Contains(t, html, "result-card-safe")
    assert.Contains(t, html, "LOW RISK / HEALTHY")
    assert.Contains(t, html, "87.50%")
    assert.Contains(t, html, "🎈")

    p = NewPage(data.DefaultInput())
    v, err = Select(data.Prediction{Label: data.DiseasePresent})
    require.NoError(t, err)
    p.Result = &v
    html = execPage(t, p)
    assert.Contains(t, html, "result-card-danger")
    assert.Contains(t, html, "HIGH RISK DETECTED")
    assert.NotContains(t, html, "Model Confidence")
    assert.NotContains(t, html, "🎈")
}

func TestPageAwaitingModel(t *testing.T) {
    html := execPage(t, AwaitingModel())
    assert.Contains(t, html, "Awaiting model file...")
    assert.NotContains(t, html, "<form")
    assert.NotContains(t, html, "Analyze Risk Profile")
}
