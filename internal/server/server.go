package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/primary-workspace/asha-ai-techx/internal/assistant"
	"github.com/primary-workspace/asha-ai-techx/internal/chatlog"
	"github.com/primary-workspace/asha-ai-techx/internal/extract"
	"github.com/primary-workspace/asha-ai-techx/internal/llm"
	"github.com/primary-workspace/asha-ai-techx/internal/stt"
)

// Server bundles the services behind the HTTP API. Logs may be nil when the
// service runs without a database; the log/history endpoints then answer 503.
type Server struct {
	Chat        *assistant.ChatService
	Extractor   *extract.Service
	Transcriber stt.Transcriber
	LLM         llm.Client
	Logs        *chatlog.Service

	MaxAudioBytes int64
	Log           zerolog.Logger
}

// NewEcho builds the echo instance with middleware and all routes registered.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(RequestLogger(s.Log))

	e.GET("/healthz", s.Healthz)

	api := e.Group("/api/v1")

	voice := api.Group("/voice")
	voice.POST("/chat", s.VoiceChat)
	voice.POST("/transcribe", s.Transcribe)
	voice.POST("/process", s.ProcessVoice)
	voice.POST("/log", s.LogInteraction)
	voice.GET("/history", s.History)
	voice.GET("/emergency-count", s.EmergencyCount)

	ai := api.Group("/ai")
	ai.POST("/generate", s.Generate)
	ai.POST("/analyze-voice", s.AnalyzeVoice)
	ai.POST("/extract-visit-data", s.ExtractVisitData)
	ai.POST("/health-query", s.HealthQuery)
	ai.POST("/nutrition-plan", s.NutritionPlan)
	ai.GET("/health", s.AIHealth)

	return e
}

func (s *Server) Healthz(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}
