package render

import (
    "embed"
    "html/template"

    "heartguard/internal/data"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the name gin renders for every HTML response.
const PageTemplate = "index.html"

func Templates() *template.Template {
    return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

type Page struct {
    Available bool
    Notice    string

    CP      int
    Thal    int
    CA      int
    Thalach int
    Oldpeak float64

    ChestPainOptions []data.Option
    ThalOptions      []data.Option
    VesselOptions    []data.Option

    Result *View
    Error  string
}

// NewPage prefills the form with in.
func NewPage(in data.ClinicalInput) Page {
    return Page{
        Available:        true,
        CP:               int(in.ChestPain),
        Thal:             int(in.Thal),
        CA:               in.MajorVessels,
        Thalach:          in.MaxHeartRate,
        Oldpeak:          in.STDepression,
        ChestPainOptions: data.ChestPainOptions(),
        ThalOptions:      data.ThalOptions(),
        VesselOptions:    data.VesselOptions(),
    }
}

// AwaitingModel is the page shown while no classifier is available. It has
// no form.
func AwaitingModel() Page {
    return Page{
        Available: false,
        Notice:    "⚠️ Model file not found. Please run the training script first.",
    }
}
