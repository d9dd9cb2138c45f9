package assist_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/odit-bit/spesabot/spesa/assist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ assist.Provider = (*mockProvider)(nil)

type mockProvider struct {
	calls    []assist.CCReq
	ChatFunc func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error)
}

func (mp *mockProvider) Chat(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
	mp.calls = append(mp.calls, req)
	return mp.ChatFunc(ctx, req)
}

func textRes(text string) *assist.CCRes {
	return &assist.CCRes{
		ID: "res-1",
		Choices: []assist.Choice{
			{Message: assist.Message{Role: assist.RoleAssistant, Content: text}},
		},
	}
}

func TestAssistant_primary_success(t *testing.T) {
	mp := &mockProvider{
		ChatFunc: func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
			return textRes("compra anche il basilico"), nil
		},
	}
	a := assist.New(mp, "gpt-4o", assist.WithFallbackModel("gpt-3.5-turbo"))

	got := a.Suggest(context.Background(), []string{"pasta", "pomodori"})
	assert.Equal(t, "compra anche il basilico", got)

	require.Len(t, mp.calls, 1)
	req := mp.calls[0]
	assert.Equal(t, "gpt-4o", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, assist.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, "pasta, pomodori")
}

func TestAssistant_quota_escalates_to_cheaper_model(t *testing.T) {
	mp := &mockProvider{
		ChatFunc: func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
			if req.Model == "gpt-4o" {
				return nil, fmt.Errorf("status 429: %w", assist.ErrQuota)
			}
			return textRes("risposta economica"), nil
		},
	}
	a := assist.New(mp, "gpt-4o", assist.WithFallbackModel("gpt-3.5-turbo"))

	got := a.Answer(context.Background(), []string{"pane"}, "cosa cucino?")
	assert.True(t, strings.HasPrefix(got, "risposta economica"))
	assert.Contains(t, got, "gpt-3.5-turbo")

	require.Len(t, mp.calls, 2)
	assert.Equal(t, "gpt-3.5-turbo", mp.calls[1].Model)
	assert.Less(t, mp.calls[1].MaxTokens, mp.calls[0].MaxTokens)
}

func TestAssistant_transient_failure_uses_local_generator(t *testing.T) {
	mp := &mockProvider{
		ChatFunc: func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
			return nil, errors.New("connection refused")
		},
	}
	a := assist.New(mp, "gpt-4o", assist.WithFallbackModel("gpt-3.5-turbo"))

	got := a.Suggest(context.Background(), []string{"pane"})
	assert.NotEmpty(t, got)
	assert.True(t, strings.HasSuffix(got, assist.DisclaimerSuffix))
	// transient failure skips the cheaper tier
	assert.Len(t, mp.calls, 1)
}

func TestAssistant_quota_on_both_tiers_uses_local_generator(t *testing.T) {
	mp := &mockProvider{
		ChatFunc: func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
			return nil, fmt.Errorf("status 429: %w", assist.ErrQuota)
		},
	}
	a := assist.New(mp, "gpt-4o", assist.WithFallbackModel("gpt-3.5-turbo"))

	got := a.MealPlan(context.Background(), []string{"riso", "zucchine"})
	assert.NotEmpty(t, got)
	assert.True(t, strings.HasSuffix(got, assist.DisclaimerSuffix))
	assert.Len(t, mp.calls, 2)
}

func TestAssistant_empty_response_is_transient(t *testing.T) {
	mp := &mockProvider{
		ChatFunc: func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
			return textRes("   "), nil
		},
	}
	a := assist.New(mp, "gpt-4o")

	got := a.Answer(context.Background(), []string{"pane"}, "domanda?")
	assert.NotEmpty(t, got)
	assert.True(t, strings.HasSuffix(got, assist.DisclaimerSuffix))
}

func TestAssistant_nil_provider_is_unavailable(t *testing.T) {
	a := assist.New(nil, "")

	for _, got := range []string{
		a.Suggest(context.Background(), []string{"pane"}),
		a.Categorize(context.Background(), []string{"pane"}),
		a.MealPlan(context.Background(), []string{"pane"}),
		a.Answer(context.Background(), []string{"pane"}, "?"),
	} {
		assert.Equal(t, assist.MsgUnavailable, got)
	}
}

func TestAssistant_never_returns_empty(t *testing.T) {
	mp := &mockProvider{
		ChatFunc: func(ctx context.Context, req assist.CCReq) (*assist.CCRes, error) {
			return nil, errors.New("boom")
		},
	}
	a := assist.New(mp, "gpt-4o")

	ctx := context.Background()
	assert.NotEmpty(t, a.Suggest(ctx, nil))
	assert.NotEmpty(t, a.Categorize(ctx, nil))
	assert.NotEmpty(t, a.MealPlan(ctx, nil))
	assert.NotEmpty(t, a.Answer(ctx, nil, ""))
}
