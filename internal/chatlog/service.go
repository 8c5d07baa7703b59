package chatlog

import (
	"context"
	"fmt"

	"github.com/primary-workspace/asha-ai-techx/internal/assistant"
)

const defaultHistoryLimit = 20

// Service validates and stores chat interactions and answers history queries
// under the caller's role rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Log stores one interaction. Language aliases are normalized before the
// entry is persisted.
func (s *Service) Log(ctx context.Context, e *Entry) error {
	if e.UserMessage == "" {
		return fmt.Errorf("user_message is required")
	}
	if e.AIResponse == "" {
		return fmt.Errorf("ai_response is required")
	}
	e.Language = assistant.NormalizeLanguage(e.Language)
	return s.repo.Create(ctx, e)
}

// History returns recent entries for the caller. ASHA workers see their own
// logged interactions, or a beneficiary's when beneficiaryID is given; every
// other role only sees entries filed under its own identifier.
func (s *Service) History(ctx context.Context, userID, role, beneficiaryID string, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultHistoryLimit
	}
	if role == "asha" {
		if beneficiaryID != "" {
			return s.repo.ListByBeneficiary(ctx, beneficiaryID, limit)
		}
		return s.repo.ListByUser(ctx, userID, limit)
	}
	return s.repo.ListByBeneficiary(ctx, userID, limit)
}

// EmergencyCount reports how many emergency interactions the given ASHA
// worker has logged.
func (s *Service) EmergencyCount(ctx context.Context, userID string) (int, error) {
	return s.repo.CountEmergencies(ctx, userID)
}
