package domain

// Ingredient is a recipe line as entered by a user: the amount is kept raw
// ("2 1/2", "1/3", "0.75") and the unit is whatever surface spelling was typed.
type Ingredient struct {
	Name   string `json:"name" yaml:"name"`
	Amount string `json:"amount" yaml:"amount"`
	Unit   string `json:"unit" yaml:"unit"`
}

// UnitFamily groups units that can be converted into each other
type UnitFamily string

const (
	FamilyVolume  UnitFamily = "volume"
	FamilyWeight  UnitFamily = "weight"
	FamilyCount   UnitFamily = "count"
	FamilyUnknown UnitFamily = "unknown"
)

// TargetUnit maps an ingredient-name pattern to the unit scaled amounts should be shown in
type TargetUnit struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Unit    string `json:"unit" yaml:"unit"`
}

// ConversionSuggestion is one formatted alternative for an amount
type ConversionSuggestion struct {
	Amount string `json:"amount" yaml:"amount"`
	Unit   string `json:"unit" yaml:"unit"`
}

// ScaleOption is a common recipe scale factor with its display label
type ScaleOption struct {
	Factor float64 `json:"factor" yaml:"factor"`
	Label  string  `json:"label" yaml:"label"`
}
