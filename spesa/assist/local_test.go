package assist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_suggestions(t *testing.T) {
	l := NewLocal()

	for range 20 {
		got := l.Suggestions()
		require.True(t, strings.HasSuffix(got, DisclaimerSuffix))

		lines := strings.Split(strings.TrimSpace(strings.Split(got, "⚠️")[0]), "\n")
		assert.GreaterOrEqual(t, len(lines), 3)
		assert.LessOrEqual(t, len(lines), 5)
	}
}

func TestLocal_categorize(t *testing.T) {
	l := NewLocal()

	got := l.Categorize([]string{"latte", "pollo", "xyz123"})
	assert.Contains(t, got, "Latticini")
	assert.Contains(t, got, "Proteine")
	assert.Contains(t, got, "Altro")
	assert.Contains(t, got, "- Latte")
	assert.True(t, strings.HasSuffix(got, DisclaimerSuffix))
}

func TestLocal_meal_plan_is_one_of_the_templates(t *testing.T) {
	l := NewLocal()

	got := l.MealPlan()
	require.True(t, strings.HasSuffix(got, DisclaimerSuffix))

	matched := false
	for _, plan := range localMealPlans {
		if strings.HasPrefix(got, plan) {
			matched = true
		}
	}
	assert.True(t, matched)
}

func TestLocal_answer_is_one_of_the_catalog(t *testing.T) {
	l := NewLocal()

	got := l.Answer()
	require.True(t, strings.HasSuffix(got, DisclaimerSuffix))

	matched := false
	for _, ans := range localAnswers {
		if strings.HasPrefix(got, ans) {
			matched = true
		}
	}
	assert.True(t, matched)
}
