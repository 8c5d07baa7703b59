package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// HealthGuidance answers a one-off health query in the requested language.
// On any generation failure a fixed apology line comes back instead.
func (s *ChatService) HealthGuidance(ctx context.Context, query, language string) string {
	language = NormalizeLanguage(language)
	langName := "Hindi"
	if language == "en" {
		langName = "English"
	}

	prompt := fmt.Sprintf(`You are ASHA AI, a health companion for rural Indian women.
Respond to this health query in simple %s.
Be culturally sensitive and provide practical, safe advice.
If the query indicates an emergency, strongly advise seeking immediate medical help.

Query: "%s"

Respond in 2-3 short sentences maximum.`, langName, query)

	result := s.llm.Generate(ctx, prompt)
	if !result.Success || strings.TrimSpace(result.Text) == "" {
		if language == "hi" {
			return GuidanceFallbackHindi
		}
		return GuidanceFallbackEnglish
	}
	return strings.TrimSpace(result.Text)
}

// NutritionPlanRequest carries the beneficiary context for plan generation.
type NutritionPlanRequest struct {
	UserType      string `json:"user_type"`
	Age           int    `json:"age,omitempty"`
	AnemiaStatus  string `json:"anemia_status,omitempty"`
	PregnancyWeek int    `json:"pregnancy_week,omitempty"`
}

// NutritionPlan is a simple meal-and-tips plan built around affordable local
// foods.
type NutritionPlan struct {
	Recommendations []string            `json:"recommendations"`
	IronRichFoods   []string            `json:"iron_rich_foods"`
	Meals           []NutritionPlanMeal `json:"meals"`
}

type NutritionPlanMeal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// defaultNutritionPlan is served whenever generation or parsing fails.
var defaultNutritionPlan = NutritionPlan{
	Recommendations: []string{
		"Har din hara saag khayein",
		"Gur aur chana milakar khayein",
		"Nimbu paani piyein (iron absorb karne mein madad)",
	},
	IronRichFoods: []string{"Palak", "Chana", "Gur", "Chaulai", "Methi"},
	Meals: []NutritionPlanMeal{
		{Name: "Nashta", Description: "Gur ki roti, doodh"},
		{Name: "Dopahar", Description: "Dal, chawal, aur palak sabzi"},
		{Name: "Raat", Description: "Roti, chane ki sabzi, aur salad"},
	},
}

// GenerateNutritionPlan asks the model for a JSON plan and falls back to the
// fixed local-foods plan on any failure.
func (s *ChatService) GenerateNutritionPlan(ctx context.Context, req NutritionPlanRequest) NutritionPlan {
	profile := fmt.Sprintf("User type: %s", req.UserType)
	if req.Age > 0 {
		profile += fmt.Sprintf(", Age: %d", req.Age)
	}
	if req.AnemiaStatus != "" {
		profile += fmt.Sprintf(", Anemia: %s", req.AnemiaStatus)
	}
	if req.PregnancyWeek > 0 {
		profile += fmt.Sprintf(", Pregnancy week: %d", req.PregnancyWeek)
	}

	prompt := fmt.Sprintf(`Create a simple nutrition plan for a rural Indian woman.
Context: %s

Focus on:
- Iron-rich foods (especially if anemic)
- Affordable, locally available foods
- Simple preparation methods

Return a JSON with:
- recommendations: array of 3-4 short tips
- iron_rich_foods: array of iron-rich food names
- meals: array of 3 meal suggestions with name and description

Respond ONLY with valid JSON.`, profile)

	result := s.llm.Generate(ctx, prompt)
	if !result.Success {
		return defaultNutritionPlan
	}

	var plan NutritionPlan
	if err := json.Unmarshal([]byte(strings.TrimSpace(result.Text)), &plan); err != nil {
		return defaultNutritionPlan
	}
	if len(plan.Recommendations) == 0 && len(plan.Meals) == 0 {
		return defaultNutritionPlan
	}
	return plan
}
