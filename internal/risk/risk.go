package risk

import (
	"strings"

	"github.com/primary-workspace/asha-ai-techx/internal/extract"
)

// Level is the risk tier assigned by the cascade.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Assessment is the deterministic outcome computed from extracted medical
// data. It is recomputed on every request and never stored here.
type Assessment struct {
	RiskLevel        Level                `json:"risk_level"`
	ExtractedData    *extract.MedicalData `json:"extracted_data"`
	Guidance         string               `json:"guidance"`
	ShouldTriggerSOS bool                 `json:"should_trigger_sos"`
}

// criticalKeywords flag a symptom as immediately dangerous in either
// language.
var criticalKeywords = []string{
	"bleeding", "khoon", "रक्तस्राव", "खून",
	"seizure", "daura", "दौरा",
	"unconscious", "behosh", "बेहोश",
	"severe pain", "bahut dard", "बहुत दर्द",
}

// Fixed pre-translated guidance templates; no generation call is involved.
const (
	guidanceCritical = "Yeh gambhir lag raha hai. Turant ASHA didi ya hospital se sampark karein."
	guidanceHighBP   = "Aapka blood pressure thoda zyada hai. ASHA didi se milein."
	guidanceMedium   = "Kuch symptoms hain. Agar takleef badhe, ASHA didi ko batayein."
	guidanceLow      = "Aap theek hain. Aaram karein aur paani piyein."
)

// Thresholds for the blood pressure rules.
const (
	systolicHigh  = 140
	diastolicHigh = 90
	symptomCount  = 3
)

// Assess walks the rule cascade top to bottom and stops at the first hit:
// critical symptom keyword, high systolic, high diastolic, symptom pile-up,
// otherwise low. A critical result always sets the SOS flag.
func Assess(data *extract.MedicalData) Assessment {
	a := Assessment{
		RiskLevel:     LevelLow,
		ExtractedData: data,
		Guidance:      guidanceLow,
	}

	switch {
	case hasCriticalSymptom(data.Symptoms):
		a.RiskLevel = LevelCritical
		a.ShouldTriggerSOS = true
		a.Guidance = guidanceCritical
	case data.BPSystolic != nil && *data.BPSystolic >= systolicHigh:
		a.RiskLevel = LevelHigh
		a.Guidance = guidanceHighBP
	case data.BPDiastolic != nil && *data.BPDiastolic >= diastolicHigh:
		a.RiskLevel = LevelHigh
		a.Guidance = guidanceHighBP
	case len(data.Symptoms) >= symptomCount:
		a.RiskLevel = LevelMedium
		a.Guidance = guidanceMedium
	}

	return a
}

func hasCriticalSymptom(symptoms []string) bool {
	for _, s := range symptoms {
		lower := strings.ToLower(s)
		for _, kw := range criticalKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
