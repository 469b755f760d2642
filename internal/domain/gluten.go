package domain

// RiskLevel is the gluten-risk category of a product
type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskLow     RiskLevel = "low_risk"
	RiskMedium  RiskLevel = "medium_risk"
	RiskHigh    RiskLevel = "high_risk"
	RiskUnsafe  RiskLevel = "unsafe"
	RiskUnknown RiskLevel = "unknown"
)

// RiskLevels lists every level in display order (least to most severe, then unknown)
var RiskLevels = []RiskLevel{RiskSafe, RiskLow, RiskMedium, RiskHigh, RiskUnsafe, RiskUnknown}

// Label returns the human-readable name used in UIs and CLI output
func (r RiskLevel) Label() string {
	switch r {
	case RiskSafe:
		return "Safe"
	case RiskLow:
		return "Low Risk"
	case RiskMedium:
		return "Medium Risk"
	case RiskHigh:
		return "High Risk"
	case RiskUnsafe:
		return "Unsafe"
	default:
		return "Unknown"
	}
}

// GlutenSource is a grain or grain derivative that definitively contains gluten
type GlutenSource string

const (
	SourceWheat     GlutenSource = "wheat"
	SourceRye       GlutenSource = "rye"
	SourceBarley    GlutenSource = "barley"
	SourceOats      GlutenSource = "oats"
	SourceTriticale GlutenSource = "triticale"
	SourceSpelt     GlutenSource = "spelt"
	SourceKamut     GlutenSource = "kamut"
	SourceFarro     GlutenSource = "farro"
	SourceBulgur    GlutenSource = "bulgur"
	SourceCouscous  GlutenSource = "couscous"
)

// CertificationGlutenFree is the only certification status currently produced
const CertificationGlutenFree = "certified_gluten_free"

// ClassificationResult is the outcome of a single product analysis.
// It is built once per call and never modified afterwards.
type ClassificationResult struct {
	ProductName            string         `json:"productName" yaml:"productName"`
	Barcode                string         `json:"barcode,omitempty" yaml:"barcode,omitempty"`
	RiskLevel              RiskLevel      `json:"riskLevel" yaml:"riskLevel"`
	ConfidenceScore        float64        `json:"confidenceScore" yaml:"confidenceScore"` // 0.0 - 1.0
	DetectedSources        []GlutenSource `json:"detectedSources" yaml:"detectedSources"`
	ProblematicIngredients []string       `json:"problematicIngredients" yaml:"problematicIngredients"`
	SafeIngredients        []string       `json:"safeIngredients" yaml:"safeIngredients"`
	CrossContaminationRisk bool           `json:"crossContaminationRisk" yaml:"crossContaminationRisk"`
	ManufacturingNotes     []string       `json:"manufacturingNotes" yaml:"manufacturingNotes"`
	CertificationStatus    string         `json:"certificationStatus,omitempty" yaml:"certificationStatus,omitempty"`
	Recommendation         string         `json:"recommendation" yaml:"recommendation"`
}

// HasSource reports whether the given gluten source was detected
func (r ClassificationResult) HasSource(source GlutenSource) bool {
	for _, s := range r.DetectedSources {
		if s == source {
			return true
		}
	}
	return false
}

// IsCertified reports whether a gluten-free certification keyword was found
func (r ClassificationResult) IsCertified() bool {
	return r.CertificationStatus == CertificationGlutenFree
}

// SourceMatch pairs a gluten source with the literal term that matched it
type SourceMatch struct {
	Source GlutenSource `json:"source" yaml:"source"`
	Term   string       `json:"term" yaml:"term"`
}

// IngredientBreakdown is a detailed per-category scan of an ingredient list
type IngredientBreakdown struct {
	TotalIngredients      int           `json:"totalIngredients" yaml:"totalIngredients"`
	GlutenSourcesFound    []SourceMatch `json:"glutenSourcesFound" yaml:"glutenSourcesFound"`
	HiddenGlutenFound     []string      `json:"hiddenGlutenFound" yaml:"hiddenGlutenFound"`
	SafeIngredientsFound  []string      `json:"safeIngredientsFound" yaml:"safeIngredientsFound"`
	CertificationKeywords []string      `json:"certificationKeywords" yaml:"certificationKeywords"`
	ManufacturingRisks    []string      `json:"manufacturingRisks" yaml:"manufacturingRisks"`
	RiskScore             float64       `json:"riskScore" yaml:"riskScore"` // 0.0 - 1.0
}
