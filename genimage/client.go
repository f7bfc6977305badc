// Package genimage calls the external image-generation backends. The primary
// path is a Gemini-style multimodal generateContent request carrying the text
// prompt, the scene photo and the product reference images; a Replicate Flux
// fallback covers deployments without a Gemini key.
package genimage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/Rambadrinathan/vatika-studio/config"
)

// InlineImage is a base64 payload plus its mime type, the wire shape the
// model expects for inline images.
type InlineImage struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

var dataURIRe = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// ParseDataURI splits a data URI into its mime type and base64 payload.
func ParseDataURI(uri string) (InlineImage, error) {
	m := dataURIRe.FindStringSubmatch(uri)
	if m == nil {
		return InlineImage{}, fmt.Errorf("invalid data URI")
	}
	return InlineImage{MimeType: m[1], Data: m[2]}, nil
}

type geminiPart struct {
	Text       string       `json:"text,omitempty"`
	InlineData *InlineImage `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseModalities []string `json:"responseModalities"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the generation backends.
type Client struct {
	geminiKey      string
	geminiModel    string
	replicateToken string
	baseURL        string
	client         *http.Client
}

func NewClient() *Client {
	return &Client{
		geminiKey:      config.GetEnv("GEMINI_API_KEY", ""),
		geminiModel:    config.GetEnv("GEMINI_MODEL", "gemini-2.0-flash-exp-image-generation"),
		replicateToken: config.GetEnv("REPLICATE_API_TOKEN", ""),
		baseURL:        config.GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// HasGemini reports whether the multi-image pipeline is configured.
func (c *Client) HasGemini() bool {
	return c.geminiKey != ""
}

// Generate renders the scene. With a Gemini key and product references it
// uses the multi-image pipeline; otherwise it falls back to Flux Depth, which
// follows the scene's geometry but cannot match exact products. Returns the
// generated image as a data URI (or remote URL for the fallback) plus the
// model that produced it.
func (c *Client) Generate(prompt string, scene InlineImage, products []InlineImage) (string, string, error) {
	if c.HasGemini() && len(products) > 0 {
		img, err := c.generateWithGemini(prompt, scene, products)
		return img, "nano-banana", err
	}
	img, err := c.generateWithFluxDepth(prompt, scene)
	return img, "flux-depth", err
}

func (c *Client) generateWithGemini(prompt string, scene InlineImage, products []InlineImage) (string, error) {
	// Prompt first, then scene as Image 1, then the references in item order.
	parts := []geminiPart{{Text: prompt}}
	sc := scene
	parts = append(parts, geminiPart{InlineData: &sc})
	for i := range products {
		parts = append(parts, geminiPart{InlineData: &products[i]})
	}

	reqBody := geminiRequest{Contents: []geminiContent{{Parts: parts}}}
	reqBody.GenerationConfig.ResponseModalities = []string{"TEXT", "IMAGE"}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.geminiModel, c.geminiKey)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if genResp.Error != nil {
		return "", fmt.Errorf("gemini error: %s", genResp.Error.Message)
	}
	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}

	for _, part := range genResp.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data), nil
		}
	}

	return "", fmt.Errorf("no image in gemini response, model may have refused generation")
}
