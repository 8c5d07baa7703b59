package assistant

import "strings"

// emergencyKeywords is the bilingual danger-sign vocabulary. Matching is a
// plain case-insensitive substring test: over-triggering is acceptable,
// missing a true emergency is not.
var emergencyKeywords = []string{
	// bleeding
	"bleeding", "blood loss", "khoon", "रक्तस्राव", "खून",
	// unconsciousness
	"unconscious", "fainted", "behosh", "बेहोश",
	// seizures
	"seizure", "convulsion", "fits", "daura", "दौरा",
	// severe pain
	"severe pain", "bahut dard", "tez dard", "बहुत दर्द", "तेज़ दर्द",
	// explicit emergency / help words
	"emergency", "help me", "bachao", "madad karo", "बचाओ", "मदद करो",
	// labor and pregnancy danger signs
	"labor pain", "labour pain", "water broke", "pani nikal", "prasav",
	"baby not moving", "bacha nahi hil", "बच्चा नहीं हिल",
}

// DetectEmergency reports whether the text contains any configured emergency
// keyword in either language. Pure lexical match, no side effects.
func DetectEmergency(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Intent tags produced by DetectIntent, ordered by match priority.
const (
	IntentMenstrual    = "menstrual"
	IntentPregnancy    = "pregnancy"
	IntentNutrition    = "nutrition"
	IntentMentalHealth = "mental_health"
	IntentScheme       = "scheme"
	IntentIFA          = "ifa"
	IntentGeneral      = "general"
	IntentEmergency    = "emergency"
)

// intentRules is an ordered (keywords, intent) table; first match wins.
var intentRules = []struct {
	intent   string
	keywords []string
}{
	{IntentMenstrual, []string{"period", "periods", "mahavari", "माहवारी", "पीरियड", "menstrual", "cycle"}},
	{IntentPregnancy, []string{"pregnan", "garbhvati", "garbhavastha", "गर्भवती", "गर्भावस्था", "delivery", "prasav", "प्रसव"}},
	{IntentNutrition, []string{"khana", "khaana", "food", "nutrition", "poshan", "पोषण", "खाना", "diet", "anemia", "khoon ki kami"}},
	{IntentMentalHealth, []string{"sad", "udaas", "उदास", "tension", "chinta", "चिंता", "depress", "akela", "अकेला", "stress"}},
	{IntentScheme, []string{"yojana", "योजना", "scheme", "sarkari", "सरकारी", "pmmvy", "jsy"}},
	{IntentIFA, []string{"ifa", "iron", "आयरन", "folic", "goli", "गोली", "tablet"}},
}

// DetectIntent tags the message with the first matching intent group, falling
// back to general when nothing matches.
func DetectIntent(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}

var intentCategories = map[string]string{
	IntentMenstrual:    "menstrual_health",
	IntentPregnancy:    "pregnancy",
	IntentNutrition:    "nutrition",
	IntentMentalHealth: "mental_health",
	IntentScheme:       "scheme",
	IntentIFA:          "nutrition",
	IntentEmergency:    "emergency",
	IntentGeneral:      "general",
}

// CategoryFor maps an intent to its coarser category. Unknown intents map to
// general.
func CategoryFor(intent string) string {
	if cat, ok := intentCategories[intent]; ok {
		return cat
	}
	return "general"
}
