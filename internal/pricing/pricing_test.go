package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name        string
		category    Category
		subtype     Subtype
		weightKg    float64
		expected    *Quote
		expectedErr error
	}{
		{
			name:     "copper 15kg matches the metal rate card",
			category: CategoryMetal,
			subtype:  SubtypeCopper,
			weightKg: 15,
			expected: &Quote{MinEarning: 6000, MaxEarning: 8550, EcoPoints: 200, Unit: PerKilogram},
		},
		{
			name:     "per kilogram scales linearly",
			category: CategoryPlastic,
			subtype:  SubtypePETBottles,
			weightKg: 20,
			expected: &Quote{MinEarning: 300, MaxEarning: 500, EcoPoints: 400, Unit: PerKilogram},
		},
		{
			name:     "per item pays the flat rate regardless of weight",
			category: CategoryElectronics,
			subtype:  SubtypeLaptop,
			weightKg: 42,
			expected: &Quote{MinEarning: 300, MaxEarning: 1200, EcoPoints: 800, Unit: PerItem},
		},
		{
			name:        "unknown category",
			category:    Category("nuclear"),
			subtype:     SubtypeCopper,
			weightKg:    15,
			expectedErr: ErrUnknownCategory,
		},
		{
			name:        "subtype outside its category",
			category:    CategoryPaper,
			subtype:     SubtypeCopper,
			weightKg:    15,
			expectedErr: ErrUnknownSubtype,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Estimate(tt.category, tt.subtype, tt.weightKg)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, quote)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, quote)
		})
	}
}

func TestEstimate_RangeOrdering(t *testing.T) {
	for category, subtypes := range catalog {
		for _, subtype := range subtypes {
			for _, weight := range []float64{10, 15.5, 100} {
				quote, err := Estimate(category, subtype, weight)
				assert.NoError(t, err)
				assert.LessOrEqual(t, quote.MinEarning, quote.MaxEarning)
				assert.GreaterOrEqual(t, quote.MinEarning, 0.0)
				assert.GreaterOrEqual(t, quote.EcoPoints, 0)
			}
		}
	}
}

func TestEcoPoints(t *testing.T) {
	tests := []struct {
		weightKg float64
		expected int
	}{
		{weightKg: 0, expected: 0},
		{weightKg: 9.99, expected: 0},
		{weightKg: 10, expected: 200},
		{weightKg: 19.9, expected: 200},
		{weightKg: 20, expected: 400},
		{weightKg: 105, expected: 2000},
		{weightKg: -5, expected: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, EcoPoints(tt.weightKg), "weight %v", tt.weightKg)
	}
}

func TestQuote_RewardAmount(t *testing.T) {
	quote, err := Estimate(CategoryMetal, SubtypeCopper, 15)
	assert.NoError(t, err)
	assert.Equal(t, 7275.0, quote.RewardAmount(false))
	assert.Equal(t, 200.0, quote.RewardAmount(true))
}
