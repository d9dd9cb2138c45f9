package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/odit-bit/spesabot/spesa/assist"
)

const (
	_cc_path = "v1/chat/completions"

	_openai_domain = "https://api.openai.com"
)

var _ assist.Provider = (*OpenAI)(nil)

// OpenAI talks to any OpenAI compatible chat-completions endpoint.
type OpenAI struct {
	hc     *http.Client
	apiKey string
	domain string
}

func NewOpenAI(endpoint, key string) *OpenAI {
	if endpoint == "" {
		endpoint = _openai_domain
	}
	return &OpenAI{
		hc:     http.DefaultClient,
		domain: strings.TrimRight(endpoint, "/"),
		apiKey: key,
	}
}

// Chat implements assist.Provider. Quota failures (HTTP 429 with a
// quota-related body) are wrapped with assist.ErrQuota so the chain can
// escalate to the cheaper model.
func (d *OpenAI) Chat(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
	e := fmt.Sprintf("%s/%s", d.domain, _cc_path)

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, e, bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", d.apiKey))

	resp, err := d.hc.Do(request)
	if err != nil {
		return nil, fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if isQuotaBody(resp.StatusCode, body) {
			return nil, fmt.Errorf("openai status %d: %w", resp.StatusCode, assist.ErrQuota)
		}
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, body)
	}

	var ccr assist.CCRes
	if err := json.Unmarshal(body, &ccr); err != nil {
		return nil, fmt.Errorf("openai response: %w", err)
	}
	if len(ccr.Choices) == 0 {
		debugMap := map[string]any{}
		json.Unmarshal(body, &debugMap)
		return nil, fmt.Errorf("openai response without choices: %v", debugMap)
	}
	return &ccr, nil
}

func isQuotaBody(status int, body []byte) bool {
	return status == http.StatusTooManyRequests &&
		strings.Contains(strings.ToLower(string(body)), "quota")
}
