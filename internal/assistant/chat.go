package assistant

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/primary-workspace/asha-ai-techx/internal/llm"
)

// ChatService orchestrates a single conversational exchange: emergency check,
// intent classification, prompt composition, generation and response shaping.
// Every failure path degrades to a fixed bilingual message; Chat never
// returns an error to its caller.
type ChatService struct {
	llm llm.Client
	log zerolog.Logger
}

func NewChatService(client llm.Client, log zerolog.Logger) *ChatService {
	return &ChatService{llm: client, log: log}
}

// Chat produces the assistant's reply for one user message. On emergency
// input the fixed safety redirect is returned and no generation call is made.
func (s *ChatService) Chat(ctx context.Context, message string, history []Turn, language string) ChatResult {
	language = NormalizeLanguage(language)

	if DetectEmergency(message) {
		s.log.Warn().Str("language", language).Msg("emergency keywords detected in chat message")
		msg := EmergencyMessageEnglish
		if language == "hi" {
			msg = EmergencyMessageHindi
		}
		intent := IntentEmergency
		category := CategoryFor(IntentEmergency)
		return ChatResult{
			Message:     msg,
			IsEmergency: true,
			Intent:      &intent,
			Category:    &category,
		}
	}

	intent := DetectIntent(message)
	category := CategoryFor(intent)

	prompt := ComposePrompt(message, history, language)
	result := s.llm.Generate(ctx, prompt)
	if !result.Success {
		s.log.Error().Str("detail", result.ErrorDetail).Msg("chat generation failed, returning fallback")
		return s.fallback(language)
	}

	reply := StripPersonaPrefix(result.Text)
	if reply == "" {
		return s.fallback(language)
	}

	return ChatResult{
		Message:     reply,
		IsEmergency: false,
		Intent:      &intent,
		Category:    &category,
	}
}

func (s *ChatService) fallback(language string) ChatResult {
	msg := FallbackMessageEnglish
	if language == "hi" {
		msg = FallbackMessageHindi
	}
	return ChatResult{Message: msg, IsEmergency: false}
}
