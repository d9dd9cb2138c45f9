package driver

import (
	"context"
	"net/http"
	"net/url"

	"github.com/odit-bit/spesabot/spesa/assist"
	ollama "github.com/ollama/ollama/api"
)

const _ollama_domain = "http://127.0.0.1:11434"

var _ assist.Provider = (*OllamaAPI)(nil)

// OllamaAPI adapts a local ollama instance to the assist provider shape.
type OllamaAPI struct {
	c *ollama.Client
}

func NewOllamaAdapter(endpoint string) (*OllamaAPI, error) {
	if endpoint == "" {
		endpoint = _ollama_domain
	}
	oURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	return &OllamaAPI{c: ollama.NewClient(oURL, http.DefaultClient)}, nil
}

// Chat implements assist.Provider.
func (oapi *OllamaAPI) Chat(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
	msgs := make([]ollama.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		msgs = append(msgs, ollama.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	stream := false
	oReq := &ollama.ChatRequest{
		Model:    req.Model,
		Messages: msgs,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": req.Temperature,
			"num_predict": req.MaxTokens,
		},
	}

	var resp *assist.CCRes
	err := oapi.c.Chat(ctx, oReq, func(cr ollama.ChatResponse) error {
		resp = &assist.CCRes{
			Model: cr.Model,
			Choices: []assist.Choice{
				{
					Message: assist.Message{
						Role:    assist.RoleAssistant,
						Content: cr.Message.Content,
					},
					FinishReason: cr.DoneReason,
				},
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
