package tgbot

import (
	"fmt"
	"strings"

	"github.com/odit-bit/spesabot/spesa/list"
)

var categoryEmoji = map[string]string{
	"Frutta e Verdura":      "🥦",
	"Carne e Pesce":         "🥩",
	"Latticini":             "🧀",
	"Pane e Cereali":        "🍞",
	"Bevande":               "🥤",
	"Condimenti":            "🧂",
	"Surgelati":             "❄️",
	"Legumi e Frutta Secca": "🥜",
	"Snack e Dolci":         "🍪",
	"Prodotti da Forno":     "🥐",
	"Casa e Igiene":         "🧼",
	list.CategoryOther:      "📦",
}

// formatList renders items grouped by category. Each line keeps the
// item's position in the underlying list so that the shown number is
// the one /rimuovi and /aggiorna expect.
func formatList(items []list.Item, scope string) string {
	if len(items) == 0 {
		return msgListEmpty
	}

	type numbered struct {
		pos  int
		item list.Item
	}
	groups := make(map[string][]numbered)
	var order []string
	for i, it := range items {
		if _, ok := groups[it.Category]; !ok {
			order = append(order, it.Category)
		}
		groups[it.Category] = append(groups[it.Category], numbered{pos: i + 1, item: it})
	}

	var b strings.Builder
	b.WriteString(msgListHeader)
	fmt.Fprintf(&b, "\n_%s_\n", scope)
	for _, cat := range order {
		emoji, ok := categoryEmoji[cat]
		if !ok {
			emoji = "📦"
		}
		fmt.Fprintf(&b, "\n%s *%s*\n", emoji, cat)
		for _, n := range groups[cat] {
			fmt.Fprintf(&b, "%d. %s (%s)\n", n.pos, n.item.Name, n.item.Quantity)
		}
	}
	return b.String()
}
