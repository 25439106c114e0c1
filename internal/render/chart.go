package render

import (
    "bytes"
    "encoding/base64"
    "fmt"
    "html/template"
    "image/color"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/vg"
)

var (
    safeColor   = color.RGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF}
    dangerColor = color.RGBA{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF}
)

// ProbabilityChart draws the [p(0), p(1)] distribution as a two-bar PNG.
func ProbabilityChart(proba []float64) ([]byte, error) {
    if len(proba) != 2 { return nil, fmt.Errorf("chart needs 2 probabilities, got %d", len(proba)) }

    p := plot.New()
    p.Title.Text = "Class probabilities"
    p.Y.Label.Text = "Probability"
    p.Y.Min = 0
    p.Y.Max = 1

    w := vg.Points(48)
    for i, c := range []color.Color{safeColor, dangerColor} {
        bars, err := plotter.NewBarChart(plotter.Values{proba[i]}, w)
        if err != nil { return nil, err }
        bars.XMin = float64(i)
        bars.Color = c
        bars.LineStyle.Width = 0
        p.Add(bars)
    }
    p.NominalX("No disease", "Disease")

    wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "png")
    if err != nil { return nil, err }
    var buf bytes.Buffer
    if _, err := wt.WriteTo(&buf); err != nil { return nil, err }
    return buf.Bytes(), nil
}

func DataURI(png []byte) template.URL {
    return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
