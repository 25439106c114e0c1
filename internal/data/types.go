package data

// ChestPain is the chest pain type code (cp) as the classifier was trained on it.
type ChestPain int

const (
    TypicalAngina ChestPain = iota
    AtypicalAngina
    NonAnginalPain
    Asymptomatic
)

// Thalassemia is the thalassemia code (thal). Codes start at 1.
type Thalassemia int

const (
    FixedDefect Thalassemia = iota + 1
    Normal
    ReversableDefect
)

type ClinicalInput struct {
    ChestPain    ChestPain   `json:"cp" validate:"min=0,max=3"`
    Thal         Thalassemia `json:"thal" validate:"min=1,max=3"`
    MajorVessels int         `json:"ca" validate:"min=0,max=4"`
    MaxHeartRate int         `json:"thalach" validate:"min=60,max=220"`
    STDepression float64     `json:"oldpeak" validate:"min=0,max=10"`
}

// DefaultInput mirrors the initial state of the form controls.
func DefaultInput() ClinicalInput {
    return ClinicalInput{
        ChestPain:    TypicalAngina,
        Thal:         FixedDefect,
        MajorVessels: 0,
        MaxHeartRate: 150,
        STDepression: 1.0,
    }
}

type Option struct {
    Value int
    Label string
}

var chestPainLabels = map[ChestPain]string{
    TypicalAngina:  "Typical Angina (0)",
    AtypicalAngina: "Atypical Angina (1)",
    NonAnginalPain: "Non-anginal Pain (2)",
    Asymptomatic:   "Asymptomatic (3)",
}

var thalLabels = map[Thalassemia]string{
    FixedDefect:      "Fixed Defect (1)",
    Normal:           "Normal (2)",
    ReversableDefect: "Reversable Defect (3)",
}

func (c ChestPain) String() string {
    if l, ok := chestPainLabels[c]; ok { return l }
    return "Unknown"
}

func (t Thalassemia) String() string {
    if l, ok := thalLabels[t]; ok { return l }
    return "Unknown"
}

func ChestPainOptions() []Option {
    out := make([]Option, 0, len(chestPainLabels))
    for c := TypicalAngina; c <= Asymptomatic; c++ {
        out = append(out, Option{Value: int(c), Label: c.String()})
    }
    return out
}

func ThalOptions() []Option {
    out := make([]Option, 0, len(thalLabels))
    for t := FixedDefect; t <= ReversableDefect; t++ {
        out = append(out, Option{Value: int(t), Label: t.String()})
    }
    return out
}

func VesselOptions() []Option {
    out := make([]Option, 0, 5)
    for i := 0; i <= 4; i++ {
        out = append(out, Option{Value: i, Label: string(rune('0' + i))})
    }
    return out
}

// Label is the binary classifier outcome.
type Label int

const (
    DiseaseAbsent  Label = 0
    DiseasePresent Label = 1
)

func (l Label) Valid() bool { return l == DiseaseAbsent || l == DiseasePresent }

type Prediction struct {
    Label Label
    // Confidence is max(probabilities) as a percentage, 0 when the classifier
    // could not estimate probabilities.
    Confidence    float64
    Probabilities []float64
    Model         string
}

func (p Prediction) HasConfidence() bool { return p.Confidence > 0 }
