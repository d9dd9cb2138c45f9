package list

import (
	"regexp"
	"strings"
)

// Input shapes recognized by ParseItem, tried in order. Each regex must
// consume the whole line, the first full match wins.
var (
	// "2 kg di patate", "1,5 l di latte", "2 di mele"
	reAmountDi = regexp.MustCompile(`^(?i)(\d+(?:[.,]\d+)?)\s*(\pL*)\s+di\s+(.+)$`)
	// "3 patate"
	reAmountName = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s+(.+)$`)
	// "patate (2kg)", "mele (6 pezzi)"
	reNameParen = regexp.MustCompile(`^(.+?)\s*\((\d+(?:[.,]\d+)?\s*\pL*)\)$`)
)

// ParseItem splits one free-text line into an item name and a quantity.
// Lines without quantity syntax come back whole, with quantity "1".
func ParseItem(raw string) (name, quantity string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", "1"
	}

	if m := reAmountDi.FindStringSubmatch(text); m != nil {
		quantity = m[1]
		if m[2] != "" {
			quantity += " " + m[2]
		}
		return strings.TrimSpace(m[3]), quantity
	}

	if m := reAmountName.FindStringSubmatch(text); m != nil {
		// bare count: "3 patate" -> "3 pz", but a count of one stays "1"
		if m[1] == "1" {
			return strings.TrimSpace(m[2]), "1"
		}
		return strings.TrimSpace(m[2]), m[1] + " pz"
	}

	if m := reNameParen.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}

	return text, "1"
}
