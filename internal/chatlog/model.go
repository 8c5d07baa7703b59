package chatlog

import "time"

// Entry records one user/assistant exchange for history and analytics.
// UserID and BeneficiaryID are opaque identifiers owned by the surrounding
// platform; this service only stores them.
type Entry struct {
	ID            string    `json:"id"`
	UserID        *string   `json:"user_id,omitempty"`
	BeneficiaryID *string   `json:"beneficiary_id,omitempty"`
	UserMessage   string    `json:"user_message"`
	AIResponse    string    `json:"ai_response"`
	Language      string    `json:"language"`
	IsEmergency   bool      `json:"is_emergency"`
	Intent        *string   `json:"intent,omitempty"`
	Category      *string   `json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
