package assist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// MsgUnavailable is returned when no remote credential is configured at all.
// This degraded mode is deliberate and does not route through the local
// generator.
const MsgUnavailable = "L'assistente AI non è disponibile al momento. Controlla la chiave API."

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 600
	cheaperMaxTokens   = 300
	defaultTimeout     = 20 * time.Second
)

// Provider is one remote chat-completion backend.
type Provider interface {
	Chat(ctx context.Context, req CCReq) (*CCRes, error)
}

type options struct {
	fallbackModel string
	timeout       time.Duration
	local         *Local
}

type OptionFunc func(*options)

// WithFallbackModel sets the cheaper model tried after a quota failure.
func WithFallbackModel(model string) OptionFunc {
	return func(o *options) { o.fallbackModel = model }
}

// WithTimeout bounds each remote call.
func WithTimeout(d time.Duration) OptionFunc {
	return func(o *options) { o.timeout = d }
}

func WithLocal(l *Local) OptionFunc {
	return func(o *options) { o.local = l }
}

// Assistant resolves each request through an ordered chain of tiers:
// primary model, cheaper model on quota errors, local generator on anything
// else. Every public method returns usable text, never an error.
type Assistant struct {
	provider      Provider
	model         string
	fallbackModel string
	timeout       time.Duration
	local         *Local
}

// New builds an Assistant. A nil provider puts the whole assistant in the
// fixed "unavailable" mode.
func New(provider Provider, model string, opts ...OptionFunc) *Assistant {
	o := options{
		timeout: defaultTimeout,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.local == nil {
		o.local = NewLocal()
	}

	return &Assistant{
		provider:      provider,
		model:         model,
		fallbackModel: o.fallbackModel,
		timeout:       o.timeout,
		local:         o.local,
	}
}

func (a *Assistant) Suggest(ctx context.Context, items []string) string {
	user := fmt.Sprintf("Ecco la mia lista della spesa: %s. Cosa altro potrei aggiungere?", joinItems(items))
	return a.generate(ctx, promptSuggest, user, a.local.Suggestions)
}

func (a *Assistant) Categorize(ctx context.Context, items []string) string {
	user := fmt.Sprintf("Ecco la mia lista della spesa: %s. Organizzala in categorie per me.", joinItems(items))
	return a.generate(ctx, promptCategorize, user, func() string { return a.local.Categorize(items) })
}

func (a *Assistant) MealPlan(ctx context.Context, items []string) string {
	user := fmt.Sprintf("Ecco la mia lista della spesa: %s. Puoi crearmi un piano dei pasti per 3 giorni?", joinItems(items))
	return a.generate(ctx, promptMealPlan, user, a.local.MealPlan)
}

func (a *Assistant) Answer(ctx context.Context, items []string, question string) string {
	user := fmt.Sprintf("La mia lista della spesa contiene: %s. La mia domanda è: %s", joinItems(items), question)
	return a.generate(ctx, promptQuestion, user, a.local.Answer)
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeQuota
	outcomeTransient
)

type tier int

const (
	tryPrimary tier = iota
	tryCheaper
	localFallback
)

// generate walks the escalation tiers until one produces text. The local
// closure is the guaranteed terminal tier.
func (a *Assistant) generate(ctx context.Context, system, user string, localFn func() string) string {
	if a.provider == nil {
		return MsgUnavailable
	}

	state := tryPrimary
	for {
		switch state {
		case tryPrimary:
			text, out := a.call(ctx, a.model, defaultMaxTokens, system, user)
			switch out {
			case outcomeSuccess:
				return text
			case outcomeQuota:
				state = tryCheaper
			default:
				state = localFallback
			}

		case tryCheaper:
			if a.fallbackModel == "" {
				state = localFallback
				continue
			}
			text, out := a.call(ctx, a.fallbackModel, cheaperMaxTokens, system, user)
			if out == outcomeSuccess {
				return text + "\n\n⚠️ Risposta generata con il modello di riserva " + a.fallbackModel + "."
			}
			state = localFallback

		default:
			return localFn()
		}
	}
}

func (a *Assistant) call(ctx context.Context, model string, maxTokens int, system, user string) (string, outcome) {
	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	res, err := a.provider.Chat(cctx, CCReq{
		Model: model,
		Messages: []Message{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
		Temperature: defaultTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		if errors.Is(err, ErrQuota) {
			slog.Warn("model quota exhausted", "model", model)
			return "", outcomeQuota
		}
		slog.Error("remote model call failed", "model", model, "error", err)
		return "", outcomeTransient
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		slog.Error("remote model returned empty response", "model", model)
		return "", outcomeTransient
	}
	return text, outcomeSuccess
}

func joinItems(items []string) string {
	return strings.Join(items, ", ")
}
