package tgbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/odit-bit/spesabot/spesa"
	"github.com/odit-bit/spesabot/spesa/assist"
	"github.com/odit-bit/spesabot/spesa/list"
	tele "gopkg.in/telebot.v4"
)

// HandleBot registers the shopping list commands on bot.
func HandleBot(ctx context.Context, bot *tele.Bot, core *spesa.Spesa) {
	h := Handler{
		ctx:   ctx,
		lists: core.Lists,
		ai:    core.Assist,
	}

	bot.Handle("/start", func(c tele.Context) error {
		return c.Send(msgStart)
	})
	bot.Handle("/aiuto", func(c tele.Context) error {
		return c.Send(msgHelp, tele.ModeMarkdown)
	})

	bot.Handle("/aggiungi", h.HandleAdd)
	bot.Handle("/lista", h.HandleList)
	bot.Handle("/rimuovi", h.HandleRemove)
	bot.Handle("/svuota", h.HandleClear)
	bot.Handle("/aggiorna", h.HandleUpdate)

	bot.Handle("/suggerisci", h.HandleSuggest)
	bot.Handle("/categorie", h.HandleCategories)
	bot.Handle("/pasti", h.HandleMealPlan)
	bot.Handle("/ai", h.HandleAsk)

	bot.Handle(tele.OnText, func(c tele.Context) error {
		return c.Send("Non ho capito. Digita /aiuto per vedere i comandi disponibili.")
	})
}

type Handler struct {
	ctx   context.Context
	lists *list.Store
	ai    *assist.Assistant
}

// key resolves the list identifier for this chat, shared in groups
// and per-user in private conversations.
func (h *Handler) key(c tele.Context) string {
	return list.KeyFor(c.Chat().ID, c.Sender().ID)
}

func (h *Handler) HandleAdd(c tele.Context) error {
	raw := strings.TrimSpace(c.Message().Payload)
	if raw == "" {
		return c.Send(msgAddUsage)
	}

	item, ok := h.lists.Add(h.key(c), raw)
	if !ok {
		return c.Send(msgAddFailed)
	}
	return c.Send(fmt.Sprintf(msgItemAdded, item.Name, item.Quantity))
}

func (h *Handler) HandleList(c tele.Context) error {
	items := h.lists.Items(h.key(c))
	return c.Send(formatList(items, list.Scope(c.Chat().ID)), tele.ModeMarkdown)
}

func (h *Handler) HandleRemove(c tele.Context) error {
	idx, ok := parseIndex(c.Message().Payload)
	if !ok {
		if strings.TrimSpace(c.Message().Payload) == "" {
			return c.Send(msgRemoveUsage)
		}
		return c.Send(msgBadNumber)
	}

	item, ok := h.lists.Remove(h.key(c), idx)
	if !ok {
		return c.Send(msgNotFound)
	}
	return c.Send(fmt.Sprintf(msgItemRemoved, item.Name))
}

func (h *Handler) HandleClear(c tele.Context) error {
	h.lists.Clear(h.key(c))
	return c.Send(msgListCleared)
}

func (h *Handler) HandleUpdate(c tele.Context) error {
	fields := strings.Fields(c.Message().Payload)
	if len(fields) < 2 {
		return c.Send(msgUpdateUsage)
	}
	idx, ok := parseIndexField(fields[0])
	if !ok {
		return c.Send(msgBadNumber)
	}
	quantity := strings.Join(fields[1:], " ")

	key := h.key(c)
	items := h.lists.Items(key)
	if idx >= len(items) || !h.lists.SetQuantity(key, idx, quantity) {
		return c.Send(msgNotFound)
	}
	return c.Send(fmt.Sprintf(msgQtyUpdated, items[idx].Name, quantity))
}

func (h *Handler) HandleSuggest(c tele.Context) error {
	items := h.lists.Items(h.key(c))
	if len(items) == 0 {
		return c.Send(msgNeedItems)
	}
	_ = c.Send(msgThinking)

	text := h.ai.Suggest(h.ctx, itemNames(items))
	return c.Send(fmt.Sprintf(msgSuggestHeader, text), tele.ModeMarkdown)
}

func (h *Handler) HandleCategories(c tele.Context) error {
	items := h.lists.Items(h.key(c))
	if len(items) == 0 {
		return c.Send(msgNeedItems)
	}
	_ = c.Send(msgThinking)

	return c.Send(h.ai.Categorize(h.ctx, itemNames(items)), tele.ModeMarkdown)
}

func (h *Handler) HandleMealPlan(c tele.Context) error {
	items := h.lists.Items(h.key(c))
	if len(items) == 0 {
		return c.Send(msgNeedItems)
	}
	_ = c.Send(msgThinking)

	return c.Send(h.ai.MealPlan(h.ctx, itemNames(items)), tele.ModeMarkdown)
}

func (h *Handler) HandleAsk(c tele.Context) error {
	question := strings.TrimSpace(c.Message().Payload)
	if question == "" {
		return c.Send(msgAskUsage)
	}
	_ = c.Send(msgThinking)

	items := h.lists.Items(h.key(c))
	return c.Send(h.ai.Answer(h.ctx, itemNames(items), question), tele.ModeMarkdown)
}

// parseIndex converts the 1-based number users see in /lista into a
// 0-based list index.
func parseIndex(payload string) (int, bool) {
	fields := strings.Fields(payload)
	if len(fields) != 1 {
		return 0, false
	}
	return parseIndexField(fields[0])
}

func parseIndexField(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func itemNames(items []list.Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}
