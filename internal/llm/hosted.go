package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const hostedTimeout = 30 * time.Second

// HostedClient calls a hosted text-generation endpoint speaking the plain
// {"text": ...} -> {"response": ..., "success": ...} contract. Any non-2xx
// status or malformed body is normalized into a failed Result.
type HostedClient struct {
	apiURL string
	client *http.Client
}

func NewHostedClient(apiURL string) *HostedClient {
	return &HostedClient{
		apiURL: apiURL,
		client: &http.Client{Timeout: hostedTimeout},
	}
}

type hostedRequest struct {
	Text string `json:"text"`
}

type hostedResponse struct {
	Response string `json:"response"`
	Text     string `json:"text"`
	Error    string `json:"error"`
}

// Generate issues a single attempt against the hosted endpoint. No retries.
func (c *HostedClient) Generate(ctx context.Context, prompt string) Result {
	body, err := json.Marshal(hostedRequest{Text: prompt})
	if err != nil {
		return Result{Success: false, ErrorDetail: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return Result{Success: false, ErrorDetail: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Success: false, ErrorDetail: fmt.Sprintf("API error: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{Success: false, ErrorDetail: fmt.Sprintf("API error: %s - %s", resp.Status, string(raw))}
	}

	var out hostedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{Success: false, ErrorDetail: fmt.Sprintf("decode response: %v", err)}
	}

	text := out.Response
	if text == "" {
		text = out.Text
	}
	return Result{Text: text, Success: true}
}
