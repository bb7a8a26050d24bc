// Package assistant wraps the external text-generation service. The upstream
// is treated as unreliable and latent: callers get either generated text or
// an error they render as a human-readable fallback string.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Link is one grounding source attached to a generated answer.
type Link struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GroundedGenerator produces text backed by the upstream's maps grounding,
// returning the source links alongside the answer.
type GroundedGenerator interface {
	GenerateGrounded(ctx context.Context, prompt string) (string, []Link, error)
}

// GeminiClient calls the Gemini generateContent REST API.
type GeminiClient struct {
	client *resty.Client
	model  string
	apiKey string
}

// NewGeminiClient builds a client for the given base URL (defaults handled
// by config), model and API key.
func NewGeminiClient(baseURL, model, apiKey string) *GeminiClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)

	return &GeminiClient{client: c, model: model, apiKey: apiKey}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
	Tools    []generateTool    `json:"tools,omitempty"`
}

type generateTool struct {
	GoogleMaps *struct{} `json:"googleMaps,omitempty"`
}

type groundingChunk struct {
	Maps *struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"maps"`
}

type generateResponse struct {
	Candidates []struct {
		Content           generateContent `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []groundingChunk `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// parseGrounded extracts the first candidate's text and its maps grounding
// links from a raw generateContent response body.
func parseGrounded(body []byte) (string, []Link, error) {
	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil, errors.New("empty generation response")
	}

	candidate := out.Candidates[0]
	links := make([]Link, 0)
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Maps == nil || chunk.Maps.URI == "" {
				continue
			}
			title := chunk.Maps.Title
			if title == "" {
				title = "View on Google Maps"
			}
			links = append(links, Link{Title: title, URI: chunk.Maps.URI})
		}
	}

	return candidate.Content.Parts[0].Text, links, nil
}

func (g *GeminiClient) post(ctx context.Context, reqBody generateRequest) ([]byte, error) {
	if g.apiKey == "" {
		return nil, errors.New("text generation is not configured")
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(&reqBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return nil, fmt.Errorf("generation request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("generation status %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

// Generate sends one prompt and returns the first candidate's text.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	body, err := g.post(ctx, generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	text, _, err := parseGrounded(body)
	return text, err
}

// GenerateGrounded sends one prompt with the maps grounding tool enabled and
// returns the answer together with its source links.
func (g *GeminiClient) GenerateGrounded(ctx context.Context, prompt string) (string, []Link, error) {
	if prompt == "" {
		return "", nil, errors.New("empty prompt")
	}

	body, err := g.post(ctx, generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		Tools:    []generateTool{{GoogleMaps: &struct{}{}}},
	})
	if err != nil {
		return "", nil, err
	}

	return parseGrounded(body)
}
