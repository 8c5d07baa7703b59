package assistant

import "strings"

// Turn is a single prior exchange in a conversation. Turns are never mutated
// after creation; the composer only reads a bounded suffix of them.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatResult is the final shape returned to callers of the conversational
// endpoint. Intent and Category are nil when the assistant degraded to the
// fallback message.
type ChatResult struct {
	Message     string  `json:"message"`
	IsEmergency bool    `json:"isEmergency"`
	Intent      *string `json:"intent"`
	Category    *string `json:"category"`
}

// NormalizeLanguage folds the language aliases the clients send into the two
// codes the assistant speaks. Anything unrecognized defaults to Hindi.
func NormalizeLanguage(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en", "english", "en-us":
		return "en"
	case "hi", "hindi", "hi-in", "":
		return "hi"
	default:
		return "hi"
	}
}
