package driver

import (
	"context"
	"fmt"
	"strings"

	"github.com/odit-bit/spesabot/spesa/assist"
	"google.golang.org/genai"
)

var _ assist.Provider = (*GeminiAdapter)(nil)

// GeminiAdapter adapts the Gemini API to the assist provider shape.
type GeminiAdapter struct {
	cli *genai.Client
}

func NewGeminiAdapter(ctx context.Context, key string) (*GeminiAdapter, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed start gemini_adapter: %w", err)
	}
	return &GeminiAdapter{cli: cli}, nil
}

// Chat implements assist.Provider.
func (g *GeminiAdapter) Chat(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
	var sys *genai.Content
	contents := []*genai.Content{}

	for _, msg := range req.Messages {
		content := &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		}
		switch msg.Role {
		case assist.RoleSystem:
			sys = content
			continue
		case assist.RoleAssistant:
			content.Role = genai.RoleModel
		default:
			content.Role = genai.RoleUser
		}
		contents = append(contents, content)
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("gemini_adapter content is empty")
	}

	temp := float32(req.Temperature)
	config := genai.GenerateContentConfig{
		SystemInstruction: sys,
		Temperature:       &temp,
		MaxOutputTokens:   int32(req.MaxTokens),
	}

	resp, err := g.cli.Models.GenerateContent(ctx, req.Model, contents, &config)
	if err != nil {
		if isGeminiQuota(err) {
			return nil, fmt.Errorf("gemini_adapter: %v: %w", err, assist.ErrQuota)
		}
		return nil, fmt.Errorf("gemini_adapter failed generating content: %w", err)
	}

	return &assist.CCRes{
		ID:    resp.ResponseID,
		Model: resp.ModelVersion,
		Choices: []assist.Choice{
			{
				Message: assist.Message{
					Role:    assist.RoleAssistant,
					Content: resp.Text(),
				},
			},
		},
	}, nil
}

func isGeminiQuota(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "RESOURCE_EXHAUSTED") || strings.Contains(msg, "429")
}
