package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/celiogix/backend/internal/domain"
)

// Package-level compiled regex patterns for amount parsing
var (
	mixedNumberRegex = regexp.MustCompile(`^(\d+)\s+(\d+/\d+)$`)
	fractionRegex    = regexp.MustCompile(`^([+-]?\d+)/(\d+)$`)
)

// Formatting thresholds
const (
	pinchThreshold    = 0.0625 // below 1/16
	eighthThreshold   = 0.125
	fractionTolerance = 0.01
)

// RecipeScaler scales recipe ingredients and converts between kitchen units.
// It holds only read-only tables and is safe for concurrent use.
type RecipeScaler struct {
	canonical   map[string]string
	families    map[string]domain.UnitFamily
	conversions map[string][]conversionEdge
}

// NewRecipeScaler creates a scaler backed by the built-in unit tables
func NewRecipeScaler() *RecipeScaler {
	s := &RecipeScaler{
		canonical:   make(map[string]string),
		families:    make(map[string]domain.UnitFamily),
		conversions: unitConversions,
	}
	for _, entry := range unitAliases {
		s.families[entry.canonical] = entry.family
		for _, alias := range entry.aliases {
			s.canonical[alias] = entry.canonical
		}
	}
	return s
}

// ParseAmount parses plain numbers ("2", "0.75"), fractions ("1/2") and mixed
// numbers ("2 1/2"). Anything unparsable yields 0.
func (s *RecipeScaler) ParseAmount(raw string) float64 {
	amount := strings.TrimSpace(raw)
	if amount == "" {
		return 0
	}

	if m := mixedNumberRegex.FindStringSubmatch(amount); m != nil {
		whole, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		return whole + parseFraction(m[2])
	}

	if strings.Contains(amount, "/") {
		return parseFraction(amount)
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// parseFraction parses "n/d"; malformed input and zero denominators yield 0
func parseFraction(raw string) float64 {
	m := fractionRegex.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	den, err := strconv.ParseFloat(m[2], 64)
	if err != nil || den == 0 {
		return 0
	}
	return num / den
}

// NormalizeUnit lowercases and trims a unit and resolves it through the alias
// table. Unrecognised units are returned lowercased and trimmed.
func (s *RecipeScaler) NormalizeUnit(raw string) string {
	unit := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := s.canonical[unit]; ok {
		return canonical
	}
	return unit
}

// UnitFamily returns the family a unit belongs to after normalization
func (s *RecipeScaler) UnitFamily(unit string) domain.UnitFamily {
	if family, ok := s.families[s.NormalizeUnit(unit)]; ok {
		return family
	}
	return domain.FamilyUnknown
}

// ConvertAmount converts an amount between units. The boolean is false when
// no conversion is possible: the units belong to different families or the
// conversion graph has no edge between them in either direction.
func (s *RecipeScaler) ConvertAmount(amount float64, fromUnit, toUnit string) (float64, bool) {
	from := s.NormalizeUnit(fromUnit)
	to := s.NormalizeUnit(toUnit)

	if from == "" || to == "" || from == to {
		return amount, true
	}

	fromFamily := s.UnitFamily(from)
	toFamily := s.UnitFamily(to)

	if fromFamily == domain.FamilyCount && toFamily == domain.FamilyCount {
		return amount, true
	}
	if fromFamily != toFamily || fromFamily == domain.FamilyUnknown {
		return 0, false
	}

	if factor, ok := s.edge(from, to); ok {
		return amount * factor, true
	}
	if factor, ok := s.edge(to, from); ok {
		return amount / factor, true
	}

	return 0, false
}

// edge looks up a direct conversion factor
func (s *RecipeScaler) edge(from, to string) (float64, bool) {
	for _, e := range s.conversions[from] {
		if e.to == to {
			return e.factor, true
		}
	}
	return 0, false
}

// ScaleIngredient multiplies the ingredient amount by scaleFactor and, when
// targetUnit is set and conversion succeeds, expresses it in targetUnit.
// The input ingredient is not modified.
func (s *RecipeScaler) ScaleIngredient(ingredient domain.Ingredient, scaleFactor float64, targetUnit string) domain.Ingredient {
	scaled := s.ParseAmount(ingredient.Amount) * scaleFactor
	unit := ingredient.Unit

	if targetUnit != "" && unit != "" {
		if converted, ok := s.ConvertAmount(scaled, unit, targetUnit); ok {
			scaled = converted
			unit = targetUnit
		}
	}

	return domain.Ingredient{
		Name:   ingredient.Name,
		Amount: FormatAmount(scaled),
		Unit:   unit,
	}
}

// ScaleRecipe scales every ingredient. The target unit for an ingredient is
// taken from the first target whose pattern is contained in its lowercased name.
func (s *RecipeScaler) ScaleRecipe(ingredients []domain.Ingredient, scaleFactor float64, targets []domain.TargetUnit) []domain.Ingredient {
	scaled := make([]domain.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		scaled = append(scaled, s.ScaleIngredient(ing, scaleFactor, targetUnitFor(ing.Name, targets)))
	}
	return scaled
}

// targetUnitFor picks the first matching target unit for an ingredient name
func targetUnitFor(name string, targets []domain.TargetUnit) string {
	nameLower := strings.ToLower(name)
	for _, t := range targets {
		if strings.Contains(nameLower, strings.ToLower(t.Pattern)) {
			return t.Unit
		}
	}
	return ""
}

// ConversionSuggestions lists every one-hop conversion known for the unit,
// each amount formatted for display. Units without outgoing edges yield none.
func (s *RecipeScaler) ConversionSuggestions(amount float64, unit string) []domain.ConversionSuggestion {
	edges := s.conversions[s.NormalizeUnit(unit)]
	suggestions := make([]domain.ConversionSuggestion, 0, len(edges))
	for _, e := range edges {
		suggestions = append(suggestions, domain.ConversionSuggestion{
			Amount: FormatAmount(amount * e.factor),
			Unit:   e.to,
		})
	}
	return suggestions
}

// CommonScales returns the standard scale factors offered to users
func (s *RecipeScaler) CommonScales() []domain.ScaleOption {
	out := make([]domain.ScaleOption, len(commonScales))
	copy(out, commonScales)
	return out
}

// FormatAmount renders an amount for display, preferring common kitchen
// fractions ("1/2", "2 1/4") over decimals.
func FormatAmount(amount float64) string {
	if amount == 0 {
		return "0"
	}

	if amount < eighthThreshold {
		if amount < pinchThreshold {
			return "pinch"
		}
		return "1/8"
	}

	for _, f := range commonFractions {
		if math.Abs(amount-f.value) < fractionTolerance {
			return f.text
		}
	}

	whole, frac := math.Modf(amount)
	if amount > 1 && frac != 0 {
		for _, f := range commonFractions {
			if math.Abs(frac-f.value) < fractionTolerance {
				if f.value == 1.0 {
					// 2.995 reads as 3, not "2 1"
					return strconv.FormatFloat(whole+1, 'f', 0, 64)
				}
				return strconv.FormatFloat(whole, 'f', 0, 64) + " " + f.text
			}
		}
	}

	if frac == 0 {
		return strconv.FormatFloat(amount, 'f', 0, 64)
	}

	precision := 2
	if amount < 1 {
		precision = 3
	}
	text := strconv.FormatFloat(amount, 'f', precision, 64)
	text = strings.TrimRight(text, "0")
	return strings.TrimRight(text, ".")
}
