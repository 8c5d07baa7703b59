package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openaiTimeout = 30 * time.Second

// OpenAIClient drives an OpenAI-compatible chat completion backend. The
// composed prompt is sent as a single user message; persona and history are
// already folded into the prompt text by the composer.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Generate issues one chat completion request and normalizes the outcome.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) Result {
	ctx, cancel := context.WithTimeout(ctx, openaiTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return Result{Success: false, ErrorDetail: fmt.Sprintf("API error: %v", err)}
	}
	if len(resp.Choices) == 0 {
		return Result{Success: false, ErrorDetail: "API error: empty choices"}
	}
	return Result{Text: resp.Choices[0].Message.Content, Success: true}
}
