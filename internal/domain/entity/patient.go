package entity

import "fmt"

// FeatureCount is the number of categorical features the model was trained on
const FeatureCount = 10

// FeatureNames lists the request fields in the order the model expects them.
// The order is part of the model contract and must not change.
var FeatureNames = [FeatureCount]string{
	"haemoglobin_cat",
	"specific_gravity_cat",
	"albumin_cat",
	"blood_glucose_random_cat",
	"sugar_cat",
	"age_cat",
	"blood_urea_cat",
	"blood_pressure_cat",
	"serum_creatinine_cat",
	"sodium_cat",
}

// PatientFeatures holds the categorical codes of one patient
type PatientFeatures struct {
	Haemoglobin        int `json:"haemoglobin_cat"`
	SpecificGravity    int `json:"specific_gravity_cat"`
	Albumin            int `json:"albumin_cat"`
	BloodGlucoseRandom int `json:"blood_glucose_random_cat"`
	Sugar              int `json:"sugar_cat"`
	Age                int `json:"age_cat"`
	BloodUrea          int `json:"blood_urea_cat"`
	BloodPressure      int `json:"blood_pressure_cat"`
	SerumCreatinine    int `json:"serum_creatinine_cat"`
	Sodium             int `json:"sodium_cat"`
}

// Vector returns the features as a single inference row in FeatureNames order
func (p *PatientFeatures) Vector() []float64 {
	return []float64{
		float64(p.Haemoglobin),
		float64(p.SpecificGravity),
		float64(p.Albumin),
		float64(p.BloodGlucoseRandom),
		float64(p.Sugar),
		float64(p.Age),
		float64(p.BloodUrea),
		float64(p.BloodPressure),
		float64(p.SerumCreatinine),
		float64(p.Sodium),
	}
}

// DiagnosisLabel is the human readable class of a prediction
type DiagnosisLabel string

const (
	LabelNotCKD DiagnosisLabel = "Not CKD"
	LabelCKD    DiagnosisLabel = "CKD"
)

// DiagnosisLabels maps model class indices to labels
var DiagnosisLabels = [2]DiagnosisLabel{LabelNotCKD, LabelCKD}

// LabelForClass returns the label for a model class index
func LabelForClass(class int) (DiagnosisLabel, error) {
	if class < 0 || class >= len(DiagnosisLabels) {
		return "", fmt.Errorf("class index %d out of range", class)
	}
	return DiagnosisLabels[class], nil
}
