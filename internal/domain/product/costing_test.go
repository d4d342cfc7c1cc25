package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecipeCost(t *testing.T) {
	costs := map[string]decimal.Decimal{
		"inv-flour":  dec("12.50"),
		"inv-cheese": dec("180"),
		"inv-tomato": dec("22"),
	}

	t.Run("sums quantity times unit cost", func(t *testing.T) {
		recipe := []RecipeLine{
			{InventoryID: "inv-flour", Quantity: dec("0.4")},
			{InventoryID: "inv-cheese", Quantity: dec("0.15")},
		}
		// 0.4*12.50 + 0.15*180 = 5 + 27
		assert.True(t, dec("32").Equal(RecipeCost(recipe, costs)))
	})

	t.Run("missing inventory item contributes zero", func(t *testing.T) {
		recipe := []RecipeLine{
			{InventoryID: "inv-flour", Quantity: dec("2")},
			{InventoryID: "inv-gone", Quantity: dec("99")},
		}
		assert.True(t, dec("25").Equal(RecipeCost(recipe, costs)))
	})

	t.Run("empty recipe costs zero", func(t *testing.T) {
		assert.True(t, RecipeCost(nil, costs).IsZero())
	})
}

func TestMargin(t *testing.T) {
	cases := []struct {
		name  string
		price string
		cost  string
		want  string
	}{
		{"typical dish", "100", "40", "60"},
		{"thin margin", "50", "45", "10"},
		{"cost above price goes negative", "50", "75", "-50"},
		{"free product", "0", "10", "0"},
		{"negative price", "-5", "10", "0"},
		{"zero cost", "80", "0", "100"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Margin(dec(c.price), dec(c.cost))
			assert.True(t, dec(c.want).Equal(got), "want %s got %s", c.want, got)
		})
	}
}

func TestMarginBelowThreshold(t *testing.T) {
	assert.True(t, MarginBelowThreshold(dec("100"), dec("75")))  // 25%
	assert.False(t, MarginBelowThreshold(dec("100"), dec("70"))) // 30% exactly
	assert.False(t, MarginBelowThreshold(dec("100"), dec("40"))) // 60%
	assert.True(t, MarginBelowThreshold(dec("0"), dec("10")))    // unpriced counts as 0%
}
