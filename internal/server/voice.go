package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/primary-workspace/asha-ai-techx/internal/assistant"
	"github.com/primary-workspace/asha-ai-techx/internal/chatlog"
	"github.com/primary-workspace/asha-ai-techx/internal/extract"
)

// Headers set by the upstream gateway carrying the caller's identity.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

type chatRequest struct {
	Message             string           `json:"message"`
	ConversationHistory []assistant.Turn `json:"conversation_history"`
	Language            string           `json:"language"`
	SessionID           string           `json:"session_id,omitempty"`
}

// VoiceChat answers one conversational turn. A well-formed message never
// yields a hard error: generation failures come back as the fallback reply.
func (s *Server) VoiceChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Message cannot be empty")
	}

	result := s.Chat.Chat(c.Request().Context(), req.Message, req.ConversationHistory, req.Language)
	return c.JSON(http.StatusOK, result)
}

// Transcribe converts an uploaded audio file into text. Empty output after a
// successful decode is surfaced as a client error, not silently passed on.
func (s *Server) Transcribe(c echo.Context) error {
	audio, filename, err := s.readAudio(c)
	if err != nil {
		return err
	}

	language := c.FormValue("language")
	tr, err := s.Transcriber.Transcribe(c.Request().Context(), audio, filename, language)
	if err != nil {
		s.Log.Error().Err(err).Msg("transcription failed")
		return echo.NewHTTPError(http.StatusServiceUnavailable, "transcription service unavailable")
	}
	if strings.TrimSpace(tr.Transcript) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "No speech detected. Please speak clearly and try again.")
	}
	return c.JSON(http.StatusOK, tr)
}

// ProcessVoice runs the combined intake workflow: audio upload or
// pre-transcribed text, extraction, missing-field analysis.
func (s *Server) ProcessVoice(c echo.Context) error {
	var audio []byte
	var filename string
	if file, err := c.FormFile("audio"); err == nil && file != nil {
		audio, filename, err = s.readAudio(c)
		if err != nil {
			return err
		}
	}

	transcript := c.FormValue("transcription")
	language := c.FormValue("language")
	if language == "" {
		language = "hi"
	}

	result, err := s.Extractor.ProcessVoiceSubmission(c.Request().Context(), audio, filename, transcript, language)
	if err != nil {
		if errors.Is(err, extract.ErrNoTranscript) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		s.Log.Error().Err(err).Msg("voice processing failed")
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

type logRequest struct {
	UserMessage   string  `json:"user_message"`
	AIResponse    string  `json:"ai_response"`
	LanguageUsed  string  `json:"language_used"`
	IsEmergency   bool    `json:"is_emergency"`
	BeneficiaryID *string `json:"beneficiary_id,omitempty"`
	Intent        *string `json:"intent,omitempty"`
	Category      *string `json:"category,omitempty"`
}

// LogInteraction stores one chat exchange for history and analytics.
func (s *Server) LogInteraction(c echo.Context) error {
	if s.Logs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat logging is not configured")
	}
	var req logRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry := &chatlog.Entry{
		BeneficiaryID: req.BeneficiaryID,
		UserMessage:   req.UserMessage,
		AIResponse:    req.AIResponse,
		Language:      req.LanguageUsed,
		IsEmergency:   req.IsEmergency,
		Intent:        req.Intent,
		Category:      req.Category,
	}
	if uid := c.Request().Header.Get(headerUserID); uid != "" {
		entry.UserID = &uid
	}

	if err := s.Logs.Log(c.Request().Context(), entry); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"id":        entry.ID,
		"logged_at": entry.CreatedAt.Format(time.RFC3339),
	})
}

// History returns recent chat entries under the caller's role rules.
func (s *Server) History(c echo.Context) error {
	if s.Logs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat logging is not configured")
	}
	userID := c.Request().Header.Get(headerUserID)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing user context")
	}
	role := c.Request().Header.Get(headerUserRole)

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	entries, err := s.Logs.History(c.Request().Context(), userID, role, c.QueryParam("beneficiary_id"), limit)
	if err != nil {
		s.Log.Error().Err(err).Msg("history query failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(http.StatusOK, entries)
}

// EmergencyCount reports the caller's emergency interaction count for the
// ASHA dashboard.
func (s *Server) EmergencyCount(c echo.Context) error {
	if s.Logs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat logging is not configured")
	}
	userID := c.Request().Header.Get(headerUserID)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing user context")
	}
	if c.Request().Header.Get(headerUserRole) != "asha" {
		return echo.NewHTTPError(http.StatusForbidden, "Only ASHA workers can access this endpoint")
	}

	count, err := s.Logs.EmergencyCount(c.Request().Context(), userID)
	if err != nil {
		s.Log.Error().Err(err).Msg("emergency count query failed")
		count = 0
	}
	return c.JSON(http.StatusOK, map[string]int{"emergency_count": count})
}

// readAudio pulls the "audio" form file and enforces the input limits.
func (s *Server) readAudio(c echo.Context) ([]byte, string, error) {
	file, err := c.FormFile("audio")
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "audio file is required")
	}
	src, err := file.Open()
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "failed to read audio file")
	}
	defer src.Close()

	max := s.MaxAudioBytes
	if max <= 0 {
		max = 25 * 1024 * 1024
	}
	data, err := io.ReadAll(io.LimitReader(src, max+1))
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "failed to read audio file")
	}
	if len(data) == 0 {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "Audio file is empty")
	}
	if int64(len(data)) > max {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "Audio file too large")
	}
	return data, file.Filename, nil
}
