package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/primary-workspace/asha-ai-techx/internal/assistant"
	"github.com/primary-workspace/asha-ai-techx/internal/extract"
	"github.com/primary-workspace/asha-ai-techx/internal/risk"
)

type promptRequest struct {
	Text string `json:"text"`
}

// Generate exposes the raw generation backend. The llm.Result shape already
// carries success/error, so failures are 200s with success=false.
func (s *Server) Generate(c echo.Context) error {
	var req promptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	return c.JSON(http.StatusOK, s.LLM.Generate(c.Request().Context(), req.Text))
}

type voiceTranscriptRequest struct {
	Transcript    string  `json:"transcript"`
	BeneficiaryID *string `json:"beneficiary_id,omitempty"`
	Language      string  `json:"language,omitempty"`
}

// AnalyzeVoice extracts medical data from a transcript and computes the risk
// assessment over it.
func (s *Server) AnalyzeVoice(c echo.Context) error {
	var req voiceTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "transcript is required")
	}

	data := s.Extractor.ExtractMedicalData(c.Request().Context(), req.Transcript)
	return c.JSON(http.StatusOK, risk.Assess(data))
}

type visitDataResponse struct {
	*extract.VisitData
	RequiresVerification bool   `json:"requires_verification"`
	ExtractionNote       string `json:"extraction_note"`
}

// ExtractVisitData extracts the structured visit record from a transcript.
// The response always carries requires_verification=true: extracted clinical
// data is unverified machine output and must be confirmed by the worker
// before it reaches storage.
func (s *Server) ExtractVisitData(c echo.Context) error {
	var req promptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	data := s.Extractor.ExtractVisitData(c.Request().Context(), req.Text)
	return c.JSON(http.StatusOK, visitDataResponse{
		VisitData:            data,
		RequiresVerification: true,
		ExtractionNote:       "Please verify all extracted data before saving.",
	})
}

type healthQueryRequest struct {
	Query    string `json:"query"`
	Language string `json:"language,omitempty"`
}

// HealthQuery answers a one-off health question.
func (s *Server) HealthQuery(c echo.Context) error {
	var req healthQueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	guidance := s.Chat.HealthGuidance(c.Request().Context(), req.Query, req.Language)
	return c.JSON(http.StatusOK, map[string]string{"guidance": guidance})
}

type nutritionPlanResponse struct {
	Plan            assistant.NutritionPlan       `json:"plan"`
	Recommendations []string                      `json:"recommendations"`
	IronRichFoods   []string                      `json:"iron_rich_foods"`
	Meals           []assistant.NutritionPlanMeal `json:"meals"`
}

// NutritionPlan generates a personalized nutrition plan; on any backend
// failure the fixed local-foods plan is returned.
func (s *Server) NutritionPlan(c echo.Context) error {
	var req assistant.NutritionPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_type is required")
	}

	plan := s.Chat.GenerateNutritionPlan(c.Request().Context(), req)
	return c.JSON(http.StatusOK, nutritionPlanResponse{
		Plan:            plan,
		Recommendations: plan.Recommendations,
		IronRichFoods:   plan.IronRichFoods,
		Meals:           plan.Meals,
	})
}

// AIHealth probes the generation backend with a trivial prompt.
func (s *Server) AIHealth(c echo.Context) error {
	result := s.LLM.Generate(c.Request().Context(), "Hello")
	status := "degraded"
	if result.Success {
		status = "healthy"
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     status,
		"generation": result.Success,
	})
}
