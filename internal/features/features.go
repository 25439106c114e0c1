package features

import (
    "errors"
    "fmt"
    "strings"

    "github.com/go-playground/validator/v10"

    "heartguard/internal/data"
)

// Names is the column order the classifier was trained on. Changing it
// silently breaks every prediction.
var Names = []string{"cp", "thal", "ca", "thalach", "oldpeak"}

const Count = 5

var validate = validator.New(validator.WithRequiredStructEnabled())

func Vectorize(in data.ClinicalInput) ([]float64, []string) {
    names := make([]string, 0, Count)
    vec := make([]float64, 0, Count)

    names = append(names, "cp")
    vec = append(vec, float64(in.ChestPain))

    names = append(names, "thal")
    vec = append(vec, float64(in.Thal))

    names = append(names, "ca")
    vec = append(vec, float64(in.MajorVessels))

    names = append(names, "thalach")
    vec = append(vec, float64(in.MaxHeartRate))

    names = append(names, "oldpeak")
    vec = append(vec, in.STDepression)

    return vec, names
}

// Validate checks every field against the range of its form control.
func Validate(in data.ClinicalInput) error {
    err := validate.Struct(in)
    if err == nil { return nil }
    var verrs validator.ValidationErrors
    if !errors.As(err, &verrs) { return err }
    msgs := make([]string, 0, len(verrs))
    for _, fe := range verrs {
        msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", jsonName(fe.Field()), fe.Tag(), fe.Param(), fe.Value()))
    }
    return &InvalidInputError{Fields: msgs}
}

type InvalidInputError struct {
    Fields []string
}

func (e *InvalidInputError) Error() string {
    return "invalid clinical input: " + strings.Join(e.Fields, "; ")
}

func jsonName(field string) string {
    switch field {
    case "ChestPain":
        return "cp"
    case "Thal":
        return "thal"
    case "MajorVessels":
        return "ca"
    case "MaxHeartRate":
        return "thalach"
    case "STDepression":
        return "oldpeak"
    }
    return field
}
