package chatlog

import (
	"context"
	"database/sql"
	"time"

	_ "embed"

	"github.com/google/uuid"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the chat_logs schema to the given database. Statements are
// idempotent so repeated runs are safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// Repository persists chat interactions.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error)
	ListByBeneficiary(ctx context.Context, beneficiaryID string, limit int) ([]Entry, error)
	CountEmergencies(ctx context.Context, userID string) (int, error)
}

// PGRepository is the Postgres-backed repository. The caller manages the DB
// connection lifecycle.
type PGRepository struct {
	DB *sql.DB
}

func NewPGRepository(db *sql.DB) *PGRepository { return &PGRepository{DB: db} }

func (r *PGRepository) Create(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO chat_logs (id, user_id, beneficiary_id, user_message, ai_response, language_used, is_emergency, intent, category, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.UserID, e.BeneficiaryID, e.UserMessage, e.AIResponse, e.Language, e.IsEmergency, e.Intent, e.Category, e.CreatedAt,
	)
	return err
}

func (r *PGRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, beneficiary_id, user_message, ai_response, language_used, is_emergency, intent, category, created_at
         FROM chat_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *PGRepository) ListByBeneficiary(ctx context.Context, beneficiaryID string, limit int) ([]Entry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, beneficiary_id, user_message, ai_response, language_used, is_emergency, intent, category, created_at
         FROM chat_logs WHERE beneficiary_id = $1 ORDER BY created_at DESC LIMIT $2`,
		beneficiaryID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *PGRepository) CountEmergencies(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chat_logs WHERE user_id = $1 AND is_emergency = TRUE`,
		userID,
	).Scan(&count)
	return count, err
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.BeneficiaryID, &e.UserMessage, &e.AIResponse,
			&e.Language, &e.IsEmergency, &e.Intent, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
