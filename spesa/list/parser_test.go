package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseItem(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		wantName     string
		wantQuantity string
	}{
		{"plain name", "pane", "pane", "1"},
		{"multiword name", "carta igienica", "carta igienica", "1"},
		{"amount unit di name", "2 kg di patate", "patate", "2 kg"},
		{"decimal comma amount", "1,5 l di latte", "latte", "1,5 l"},
		{"amount di name without unit", "2 di mele", "mele", "2"},
		{"bare count", "3 patate", "patate", "3 pz"},
		{"count of one stays default", "1 patata", "patata", "1"},
		{"parenthesized quantity", "patate (500g)", "patate", "500g"},
		{"parenthesized with space", "mele (6 pezzi)", "mele", "6 pezzi"},
		{"surrounding whitespace", "  pane  ", "pane", "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, quantity := ParseItem(tc.raw)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantQuantity, quantity)
		})
	}
}

func TestParseItem_first_pattern_wins(t *testing.T) {
	// matches both the "di" form and the bare-count form, the "di" form
	// is listed first
	name, quantity := ParseItem("2 kg di patate")
	assert.Equal(t, "patate", name)
	assert.Equal(t, "2 kg", quantity)
}
