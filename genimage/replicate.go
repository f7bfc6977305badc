package genimage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const fluxDepthURL = "https://api.replicate.com/v1/models/black-forest-labs/flux-depth-dev/predictions"

type replicateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output any    `json:"output"`
	Error  string `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

// generateWithFluxDepth is the text-only fallback: the control image steers
// the depth map, so layout is respected but product shapes are approximate.
func (c *Client) generateWithFluxDepth(prompt string, scene InlineImage) (string, error) {
	if c.replicateToken == "" {
		return "", fmt.Errorf("REPLICATE_API_TOKEN not configured")
	}

	payload := map[string]any{
		"input": map[string]any{
			"prompt":              prompt,
			"control_image":       fmt.Sprintf("data:%s;base64,%s", scene.MimeType, scene.Data),
			"num_outputs":         1,
			"guidance_scale":      15,
			"num_inference_steps": 28,
			"strength":            0.80,
		},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", fluxDepthURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.replicateToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("replicate error (status %d): %s", resp.StatusCode, string(body))
	}

	var pred replicateResponse
	if err := json.Unmarshal(body, &pred); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return c.pollPrediction(pred.URLs.Get, 180*time.Second)
}

// pollPrediction polls the prediction URL until the render succeeds, fails or
// times out.
func (c *Client) pollPrediction(getURL string, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		time.Sleep(3 * time.Second)

		req, err := http.NewRequest("GET", getURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create poll request: %w", err)
		}
		req.Header.Set("Authorization", "Token "+c.replicateToken)

		resp, err := c.client.Do(req)
		if err != nil {
			return "", fmt.Errorf("poll request failed: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read poll response: %w", err)
		}

		var data replicateResponse
		if err := json.Unmarshal(body, &data); err != nil {
			return "", fmt.Errorf("failed to parse poll response: %w", err)
		}

		switch data.Status {
		case "succeeded":
			return firstOutput(data.Output), nil
		case "failed", "canceled":
			if data.Error == "" {
				data.Error = "unknown"
			}
			return "", fmt.Errorf("prediction %s: %s", data.Status, data.Error)
		}
	}
	return "", fmt.Errorf("prediction timed out")
}

func firstOutput(output any) string {
	switch v := output.(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
