package assistant

import "testing"

func TestDetectEmergency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"english bleeding", "She has heavy bleeding since morning", true},
		{"hinglish khoon", "Bahut khoon beh raha hai", true},
		{"hindi behosh", "वह बेहोश हो गई है", true},
		{"uppercase", "SEVERE PAIN in stomach", true},
		{"seizure", "she had a seizure last night", true},
		{"help word", "please help me, something is wrong", true},
		{"labor sign", "uska pani nikal gaya hai", true},
		{"plain question", "What should I eat during pregnancy?", false},
		{"nutrition query", "Mujhe khana ke baare mein batao", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectEmergency(tt.text); got != tt.want {
				t.Errorf("DetectEmergency(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Mere periods regular nahi hain", IntentMenstrual},
		{"माहवारी में दर्द होता है", IntentMenstrual},
		{"I am pregnant, what should I do?", IntentPregnancy},
		{"गर्भावस्था के लक्षण क्या हैं", IntentPregnancy},
		{"Kya khana chahiye?", IntentNutrition},
		{"I feel very sad and alone", IntentMentalHealth},
		{"Sarkari yojana ke baare mein batao", IntentScheme},
		{"IFA tablet kab leni hai?", IntentIFA},
		{"Namaste", IntentGeneral},
	}
	for _, tt := range tests {
		if got := DetectIntent(tt.text); got != tt.want {
			t.Errorf("DetectIntent(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectIntentOrderFirstMatchWins(t *testing.T) {
	// mentions both periods (menstrual) and food (nutrition); menstrual is
	// earlier in the rule table
	got := DetectIntent("During periods what food should I eat?")
	if got != IntentMenstrual {
		t.Errorf("expected menstrual to win by priority, got %q", got)
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		intent string
		want   string
	}{
		{IntentMenstrual, "menstrual_health"},
		{IntentPregnancy, "pregnancy"},
		{IntentIFA, "nutrition"},
		{IntentEmergency, "emergency"},
		{IntentGeneral, "general"},
		{"something_unknown", "general"},
	}
	for _, tt := range tests {
		if got := CategoryFor(tt.intent); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.intent, got, tt.want)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hi", "hi"},
		{"Hindi", "hi"},
		{"hi-IN", "hi"},
		{"en", "en"},
		{"English", "en"},
		{"EN-US", "en"},
		{"", "hi"},
		{"mr", "hi"},
	}
	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
