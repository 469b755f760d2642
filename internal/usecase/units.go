package usecase

import "github.com/celiogix/backend/internal/domain"

// conversionEdge is a directed conversion to another canonical unit
type conversionEdge struct {
	to     string
	factor float64
}

// unitAliases maps every canonical unit to the surface spellings that resolve to it
var unitAliases = []struct {
	canonical string
	family    domain.UnitFamily
	aliases   []string
}{
	// Volume
	{"cup", domain.FamilyVolume, []string{"cup", "cups", "c", "c."}},
	{"tablespoon", domain.FamilyVolume, []string{"tablespoon", "tablespoons", "tbsp", "tbsp.", "tbs", "tbs.", "tbl", "tbl."}},
	{"teaspoon", domain.FamilyVolume, []string{"teaspoon", "teaspoons", "tsp", "tsp.", "ts", "ts."}},
	{"fl oz", domain.FamilyVolume, []string{"fl oz", "fl. oz.", "floz", "fluid ounce", "fluid ounces"}},
	{"ml", domain.FamilyVolume, []string{"ml", "ml.", "milliliter", "milliliters"}},
	{"liter", domain.FamilyVolume, []string{"liter", "liters", "l", "l."}},
	{"pint", domain.FamilyVolume, []string{"pint", "pints", "pt", "pt."}},
	{"quart", domain.FamilyVolume, []string{"quart", "quarts", "qt", "qt."}},
	{"gallon", domain.FamilyVolume, []string{"gallon", "gallons", "gal", "gal."}},

	// Weight
	{"pound", domain.FamilyWeight, []string{"pound", "pounds", "lb", "lb.", "lbs", "lbs."}},
	{"ounce", domain.FamilyWeight, []string{"ounce", "ounces", "oz", "oz."}},
	{"gram", domain.FamilyWeight, []string{"gram", "grams", "g", "g."}},
	{"kilogram", domain.FamilyWeight, []string{"kilogram", "kilograms", "kg", "kg."}},

	// Count
	{"piece", domain.FamilyCount, []string{"piece", "pieces", "pc", "pc."}},
	{"slice", domain.FamilyCount, []string{"slice", "slices"}},
	{"clove", domain.FamilyCount, []string{"clove", "cloves"}},
	{"head", domain.FamilyCount, []string{"head", "heads"}},
	{"bunch", domain.FamilyCount, []string{"bunch", "bunches"}},
	{"can", domain.FamilyCount, []string{"can", "cans"}},
	{"package", domain.FamilyCount, []string{"package", "packages", "pkg", "pkg."}},
	{"bag", domain.FamilyCount, []string{"bag", "bags"}},
	{"bottle", domain.FamilyCount, []string{"bottle", "bottles"}},
	{"jar", domain.FamilyCount, []string{"jar", "jars"}},
	{"box", domain.FamilyCount, []string{"box", "boxes"}},
	{"egg", domain.FamilyCount, []string{"egg", "eggs"}},
	{"item", domain.FamilyCount, []string{"item", "items"}},
}

// unitConversions is a directed, intentionally incomplete graph between
// canonical units. Liter, pint, quart and gallon have no edges.
var unitConversions = map[string][]conversionEdge{
	"cup": {
		{"tablespoon", 16},
		{"teaspoon", 48},
		{"ml", 250},
		{"fl oz", 8},
	},
	"tablespoon": {
		{"teaspoon", 3},
		{"ml", 15},
		{"fl oz", 0.5},
	},
	"teaspoon": {
		{"ml", 5},
		{"fl oz", 1.0 / 6},
	},
	"fl oz": {
		{"ml", 30},
		{"tablespoon", 2},
		{"teaspoon", 6},
	},
	"ml": {
		{"fl oz", 1.0 / 30},
		{"teaspoon", 0.2},
		{"tablespoon", 1.0 / 15},
		{"cup", 1.0 / 250},
	},
	"pound": {
		{"ounce", 16},
		{"gram", 453.6},
		{"kilogram", 0.4536},
	},
	"ounce": {
		{"gram", 28.35},
		{"kilogram", 0.02835},
		{"pound", 1.0 / 16},
	},
	"gram": {
		{"ounce", 1 / 28.35},
		{"kilogram", 0.001},
		{"pound", 1 / 453.6},
	},
	"kilogram": {
		{"gram", 1000},
		{"ounce", 35.274},
		{"pound", 2.205},
	},
}

// commonFraction is a display fraction and the decimal it stands for
type commonFraction struct {
	text  string
	value float64
}

// commonFractions are checked in this order when formatting amounts
var commonFractions = []commonFraction{
	{"1/8", 0.125},
	{"1/6", 0.167},
	{"1/4", 0.25},
	{"1/3", 0.333},
	{"1/2", 0.5},
	{"2/3", 0.667},
	{"3/4", 0.75},
	{"1", 1.0},
}

var commonScales = []domain.ScaleOption{
	{Factor: 0.25, Label: "1/4 (Quarter recipe)"},
	{Factor: 0.5, Label: "1/2 (Half recipe)"},
	{Factor: 0.75, Label: "3/4 recipe"},
	{Factor: 1.0, Label: "1x (Original)"},
	{Factor: 1.25, Label: "1 1/4 recipe"},
	{Factor: 1.5, Label: "1 1/2 recipe"},
	{Factor: 2.0, Label: "2x (Double)"},
	{Factor: 2.5, Label: "2 1/2 recipe"},
	{Factor: 3.0, Label: "3x (Triple)"},
	{Factor: 4.0, Label: "4x (Quadruple)"},
}
