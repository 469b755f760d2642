package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celiogix/backend/internal/domain"
)

func TestRecipeScaler_ParseAmount(t *testing.T) {
	scaler := NewRecipeScaler()

	tests := []struct {
		input string
		want  float64
	}{
		{"2", 2},
		{" 3 ", 3},
		{"0.75", 0.75},
		{"1/2", 0.5},
		{"-1/2", -0.5},
		{"2 1/2", 2.5},
		{"1 3/4", 1.75},
		{"1/0", 0},
		{"1 / 2", 0},
		{"abc", 0},
		{"NaN", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, scaler.ParseAmount(tt.input), 1e-9)
		})
	}
}

func TestRecipeScaler_NormalizeUnit(t *testing.T) {
	scaler := NewRecipeScaler()

	tests := []struct {
		input string
		want  string
	}{
		{"Tbsp.", "tablespoon"},
		{"cups", "cup"},
		{" KG ", "kilogram"},
		{"fl. oz.", "fl oz"},
		{"lbs", "pound"},
		{"Cloves", "clove"},
		{"Pinch", "pinch"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, scaler.NormalizeUnit(tt.input))
		})
	}
}

func TestRecipeScaler_UnitFamily(t *testing.T) {
	scaler := NewRecipeScaler()

	assert.Equal(t, domain.FamilyVolume, scaler.UnitFamily("gal"))
	assert.Equal(t, domain.FamilyWeight, scaler.UnitFamily("g"))
	assert.Equal(t, domain.FamilyCount, scaler.UnitFamily("eggs"))
	assert.Equal(t, domain.FamilyUnknown, scaler.UnitFamily("handful"))
}

func TestRecipeScaler_ConvertAmount(t *testing.T) {
	scaler := NewRecipeScaler()

	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
		wantOK bool
	}{
		{name: "direct edge", amount: 1, from: "cup", to: "tablespoon", want: 16, wantOK: true},
		{name: "reverse edge", amount: 16, from: "tablespoon", to: "cup", want: 1, wantOK: true},
		{name: "aliases", amount: 1, from: "kg", to: "g", want: 1000, wantOK: true},
		{name: "pound to ounce", amount: 2, from: "lb", to: "oz", want: 32, wantOK: true},
		{name: "same unit", amount: 3, from: "cups", to: "cup", want: 3, wantOK: true},
		{name: "empty unit", amount: 3, from: "", to: "cup", want: 3, wantOK: true},
		{name: "count to count", amount: 2, from: "clove", to: "egg", want: 2, wantOK: true},
		{name: "volume to weight", amount: 1, from: "cup", to: "gram", wantOK: false},
		{name: "no edge either way", amount: 1, from: "pint", to: "cup", wantOK: false},
		{name: "unknown units", amount: 1, from: "handful", to: "dash", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := scaler.ConvertAmount(tt.amount, tt.from, tt.to)

			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestRecipeScaler_ScaleIngredient(t *testing.T) {
	scaler := NewRecipeScaler()

	t.Run("linear scaling", func(t *testing.T) {
		got := scaler.ScaleIngredient(domain.Ingredient{Name: "rice flour", Amount: "2", Unit: "cup"}, 2.0, "")

		assert.Equal(t, "rice flour", got.Name)
		assert.Equal(t, "cup", got.Unit)
		assert.InDelta(t, 4.0, scaler.ParseAmount(got.Amount), 1e-9)
	})

	t.Run("converts to target unit", func(t *testing.T) {
		got := scaler.ScaleIngredient(domain.Ingredient{Name: "butter", Amount: "1/2", Unit: "cup"}, 1.0, "tablespoon")

		assert.Equal(t, domain.Ingredient{Name: "butter", Amount: "8", Unit: "tablespoon"}, got)
	})

	t.Run("keeps unit when conversion fails", func(t *testing.T) {
		got := scaler.ScaleIngredient(domain.Ingredient{Name: "sugar", Amount: "1", Unit: "cup"}, 1.5, "gram")

		assert.Equal(t, domain.Ingredient{Name: "sugar", Amount: "1 1/2", Unit: "cup"}, got)
	})

	t.Run("unitless ingredient ignores target", func(t *testing.T) {
		got := scaler.ScaleIngredient(domain.Ingredient{Name: "eggs", Amount: "2"}, 2.0, "cup")

		assert.Equal(t, domain.Ingredient{Name: "eggs", Amount: "4"}, got)
	})

	t.Run("unparsable amount scales to zero", func(t *testing.T) {
		got := scaler.ScaleIngredient(domain.Ingredient{Name: "salt", Amount: "to taste"}, 3.0, "")

		assert.Equal(t, "0", got.Amount)
	})
}

func TestRecipeScaler_ScaleRecipe(t *testing.T) {
	scaler := NewRecipeScaler()
	ingredients := []domain.Ingredient{
		{Name: "Unsalted Butter", Amount: "1/2", Unit: "cup"},
		{Name: "Milk", Amount: "1", Unit: "cup"},
	}
	targets := []domain.TargetUnit{
		{Pattern: "butter", Unit: "tablespoon"},
		{Pattern: "unsalted", Unit: "teaspoon"},
	}

	scaled := scaler.ScaleRecipe(ingredients, 2, targets)

	require.Len(t, scaled, 2)
	assert.Equal(t, domain.Ingredient{Name: "Unsalted Butter", Amount: "16", Unit: "tablespoon"}, scaled[0])
	assert.Equal(t, domain.Ingredient{Name: "Milk", Amount: "2", Unit: "cup"}, scaled[1])
	assert.Equal(t, "1/2", ingredients[0].Amount, "input must not be modified")

	assert.Empty(t, scaler.ScaleRecipe(nil, 2, nil))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{0.05, "pinch"},
		{0.1, "1/8"},
		{0.25, "1/4"},
		{0.33, "1/3"},
		{0.5, "1/2"},
		{1, "1"},
		{2.5, "2 1/2"},
		{1.75, "1 3/4"},
		{2.995, "3"},
		{4, "4"},
		{16, "16"},
		{0.3, "0.3"},
		{1.37, "1.37"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}

func TestFormatAmount_RoundTrip(t *testing.T) {
	scaler := NewRecipeScaler()

	for _, f := range commonFractions {
		t.Run(f.text, func(t *testing.T) {
			got := scaler.ParseAmount(FormatAmount(f.value))
			assert.LessOrEqual(t, math.Abs(got-f.value), 0.01)
		})
	}
}

func TestRecipeScaler_ConversionSuggestions(t *testing.T) {
	scaler := NewRecipeScaler()

	got := scaler.ConversionSuggestions(1, "Cups")
	assert.Equal(t, []domain.ConversionSuggestion{
		{Amount: "16", Unit: "tablespoon"},
		{Amount: "48", Unit: "teaspoon"},
		{Amount: "250", Unit: "ml"},
		{Amount: "8", Unit: "fl oz"},
	}, got)

	none := scaler.ConversionSuggestions(1, "gallon")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRecipeScaler_CommonScales(t *testing.T) {
	scaler := NewRecipeScaler()

	scales := scaler.CommonScales()
	require.Len(t, scales, 10)
	assert.Equal(t, domain.ScaleOption{Factor: 2.0, Label: "2x (Double)"}, scales[6])

	scales[0].Label = "changed"
	assert.Equal(t, "1/4 (Quarter recipe)", scaler.CommonScales()[0].Label)
}
