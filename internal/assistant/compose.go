package assistant

import "strings"

// historyWindow bounds how many prior turns are folded into the prompt.
const historyWindow = 5

// ComposePrompt builds the full generation prompt: language-selected persona
// system prompt, up to the last five prior turns oldest-first, the current
// user turn, and an assistant-turn cue. Pure string composition; the history
// slice is never modified.
func ComposePrompt(userMessage string, history []Turn, language string) string {
	language = NormalizeLanguage(language)

	system := SystemPromptEnglish
	userLabel := userLabelEnglish
	assistantLabel := assistantLabelEnglish
	if language == "hi" {
		system = SystemPromptHindi
		userLabel = userLabelHindi
		assistantLabel = assistantLabelHindi
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n")
	for _, turn := range history {
		label := userLabel
		if turn.Role == RoleAssistant {
			label = assistantLabel
		}
		b.WriteString("\n")
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(turn.Content)
	}
	b.WriteString("\n\n")
	b.WriteString(userLabel)
	b.WriteString(": ")
	b.WriteString(userMessage)
	b.WriteString("\n")
	b.WriteString(assistantLabel)
	b.WriteString(":")
	return b.String()
}

// personaPrefixes are leading persona-name echoes some models prepend to the
// reply; they are stripped before the response is returned.
var personaPrefixes = []string{
	"आशा दीदी:",
	"asha didi:",
	"asha didi -",
}

// StripPersonaPrefix removes a leading persona-name echo, if present.
func StripPersonaPrefix(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, prefix := range personaPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}
