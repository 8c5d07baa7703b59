package extract

// Vitals groups the measurements an ASHA worker dictates during a visit.
// blood_pressure is the spoken "120/80" form; the split numeric fields are
// filled when the model separates them.
type Vitals struct {
	BloodPressure      *string  `json:"blood_pressure"`
	BPSystolic         *int     `json:"bp_systolic"`
	BPDiastolic        *int     `json:"bp_diastolic"`
	WeightKg           *float64 `json:"weight_kg"`
	TemperatureCelsius *float64 `json:"temperature_celsius"`
}

// Empty reports whether no vital measurement was captured at all.
func (v Vitals) Empty() bool {
	return v.BloodPressure == nil && v.WeightKg == nil && v.TemperatureCelsius == nil
}

// VisitData is the fixed-shape record extracted from a visit transcript.
// Every field is optional except the two booleans, which always default to
// false when the model omits them; consumers can rely on the full shape being
// present after defaulting.
type VisitData struct {
	PatientName          *string  `json:"patient_name"`
	VisitType            *string  `json:"visit_type"`
	Vitals               Vitals   `json:"vitals"`
	Symptoms             []string `json:"symptoms"`
	Severity             *string  `json:"severity"`
	ServicesProvided     []string `json:"services_provided"`
	MedicinesDistributed []string `json:"medicines_distributed"`
	CounselingTopics     []string `json:"counseling_topics"`
	Observations         *string  `json:"observations"`
	ConcernsNoted        *string  `json:"concerns_noted"`
	FollowUpRequired     bool     `json:"follow_up_required"`
	NextVisitDate        *string  `json:"next_visit_date"`
	ReferralNeeded       bool     `json:"referral_needed"`
	ReferralReason       *string  `json:"referral_reason"`
}

// applyDefaults guarantees the documented shape: nil slices become empty so
// encoded output always carries every key. Idempotent.
func (d *VisitData) applyDefaults() {
	if d.Symptoms == nil {
		d.Symptoms = []string{}
	}
	if d.ServicesProvided == nil {
		d.ServicesProvided = []string{}
	}
	if d.MedicinesDistributed == nil {
		d.MedicinesDistributed = []string{}
	}
	if d.CounselingTopics == nil {
		d.CounselingTopics = []string{}
	}
}

// NewVisitData returns the empty default structure used when extraction
// degrades.
func NewVisitData() *VisitData {
	d := &VisitData{}
	d.applyDefaults()
	return d
}

// MedicalData is the narrow vitals+symptoms schema consumed by the risk
// assessment service.
type MedicalData struct {
	BPSystolic  *int     `json:"bp_systolic"`
	BPDiastolic *int     `json:"bp_diastolic"`
	Symptoms    []string `json:"symptoms"`
	Mood        *string  `json:"mood"`
	IsEmergency bool     `json:"is_emergency"`
	RawText     string   `json:"raw_text"`
}

// ProcessResult is the outcome of the combined voice-submission workflow.
type ProcessResult struct {
	Success          bool       `json:"success"`
	Transcription    string     `json:"transcription"`
	ExtractedData    *VisitData `json:"extractedData"`
	ConfidenceScore  float64    `json:"confidenceScore"`
	MissingFields    []string   `json:"missingFields"`
	FollowUpQuestion *string    `json:"followUpQuestion"`
	IsComplete       bool       `json:"isComplete"`
}
