package usecase

import (
	"fmt"
	"strings"

	"github.com/celiogix/backend/internal/domain"
)

// Confidence scores attached to each risk decision
const (
	confidenceUnsafe         = 0.95
	confidenceSafeOverlap    = 0.8
	confidenceHiddenGluten   = 0.85
	confidenceCertifiedShare = 0.7
	confidenceSharedFacility = 0.75
	confidenceCertified      = 0.9
	confidenceSafeOnly       = 0.7
	confidenceUnknown        = 0.5
)

// Breakdown risk score weights
const (
	scoreGlutenSource  = 1.0
	scoreHiddenGluten  = 0.7
	scoreManufacturing = 0.5
	scoreCertification = -0.3
)

// RiskAnalyzer classifies ingredient text for gluten risk using
// case-insensitive substring matching against fixed term tables.
// It holds no mutable state and is safe for concurrent use.
type RiskAnalyzer struct {
	sources        []sourceTerms
	hidden         []string
	safe           []string
	certifications []string
	manufacturing  []string
}

// NewRiskAnalyzer creates an analyzer backed by the built-in term tables
func NewRiskAnalyzer() *RiskAnalyzer {
	return &RiskAnalyzer{
		sources:        glutenSourceTerms,
		hidden:         hiddenGlutenTerms,
		safe:           safeIngredientTerms,
		certifications: certificationKeywords,
		manufacturing:  manufacturingRiskTerms,
	}
}

// Analyze determines the gluten risk of a product.
// barcode and additionalInfo may be empty. It never fails: empty input
// yields an Unknown result with confidence 0.5.
func (a *RiskAnalyzer) Analyze(productName, ingredients, barcode, additionalInfo string) domain.ClassificationResult {
	ingredientsLower := strings.ToLower(ingredients)
	productLower := strings.ToLower(productName)
	additionalLower := strings.ToLower(additionalInfo)

	result := domain.ClassificationResult{
		ProductName:            productName,
		Barcode:                barcode,
		DetectedSources:        []domain.GlutenSource{},
		ProblematicIngredients: []string{},
		SafeIngredients:        []string{},
		ManufacturingNotes:     []string{},
	}

	// Step 1: direct gluten sources, every matching term is recorded
	for _, group := range a.sources {
		for _, term := range group.terms {
			if strings.Contains(ingredientsLower, term) {
				if !result.HasSource(group.source) {
					result.DetectedSources = append(result.DetectedSources, group.source)
				}
				result.ProblematicIngredients = append(result.ProblematicIngredients, term)
			}
		}
	}

	// Step 2: hidden gluten terms
	for _, term := range a.hidden {
		if strings.Contains(ingredientsLower, term) {
			result.ProblematicIngredients = append(result.ProblematicIngredients, term)
		}
	}

	// Step 3: known safe ingredients
	for _, term := range a.safe {
		if strings.Contains(ingredientsLower, term) {
			result.SafeIngredients = append(result.SafeIngredients, term)
		}
	}

	// Step 4: certification keywords anywhere in the product information
	for _, term := range a.certifications {
		if !strings.Contains(ingredientsLower, term) &&
			!strings.Contains(productLower, term) &&
			!strings.Contains(additionalLower, term) {
			continue
		}
		switch {
		case isGlutenFreeClaim(term):
			result.CertificationStatus = domain.CertificationGlutenFree
		case isAdvisory(term):
			result.CrossContaminationRisk = true
			result.ManufacturingNotes = append(result.ManufacturingNotes, term)
		}
	}

	// Step 5: manufacturing risk phrases (product name is not consulted)
	for _, term := range a.manufacturing {
		if strings.Contains(ingredientsLower, term) || strings.Contains(additionalLower, term) {
			result.CrossContaminationRisk = true
			result.ManufacturingNotes = append(result.ManufacturingNotes, term)
		}
	}

	result.RiskLevel, result.ConfidenceScore = decideRisk(&result)
	result.Recommendation = recommendation(result.RiskLevel, result.DetectedSources)

	return result
}

// decideRisk applies the risk policy; the first matching rule wins
func decideRisk(r *domain.ClassificationResult) (domain.RiskLevel, float64) {
	if len(r.DetectedSources) > 0 {
		return domain.RiskUnsafe, confidenceUnsafe
	}

	if len(r.ProblematicIngredients) > 0 {
		if allContained(r.ProblematicIngredients, r.SafeIngredients) {
			return domain.RiskSafe, confidenceSafeOverlap
		}
		return domain.RiskHigh, confidenceHiddenGluten
	}

	if r.CrossContaminationRisk {
		if r.IsCertified() {
			return domain.RiskLow, confidenceCertifiedShare
		}
		return domain.RiskMedium, confidenceSharedFacility
	}

	if r.IsCertified() {
		return domain.RiskSafe, confidenceCertified
	}

	if len(r.SafeIngredients) > 0 {
		return domain.RiskSafe, confidenceSafeOnly
	}

	return domain.RiskUnknown, confidenceUnknown
}

// recommendation renders the fixed advice text for a risk level
func recommendation(level domain.RiskLevel, sources []domain.GlutenSource) string {
	switch level {
	case domain.RiskSafe:
		return "SAFE: No gluten sources detected. Verify certification if possible."
	case domain.RiskLow:
		return "LOW RISK: Minor cross-contamination risk. Consider your sensitivity level."
	case domain.RiskMedium:
		return "MEDIUM RISK: Cross-contamination risk present. Not recommended for celiac consumption."
	case domain.RiskHigh:
		return "HIGH RISK: Hidden gluten sources detected. Not safe for celiac consumption."
	case domain.RiskUnsafe:
		names := make([]string, len(sources))
		for i, s := range sources {
			names[i] = string(s)
		}
		return fmt.Sprintf("UNSAFE: Contains gluten sources: %s. Not safe for celiac consumption.", strings.Join(names, ", "))
	default:
		return "UNKNOWN: Unable to determine gluten status. Contact manufacturer or avoid."
	}
}

// isGlutenFreeClaim reports whether a certification keyword asserts gluten-free status.
// Hyphenated spellings ("gluten-free") count the same as spaced ones.
func isGlutenFreeClaim(term string) bool {
	return term == "gf" || strings.Contains(strings.ReplaceAll(term, "-", " "), "gluten free")
}

// isAdvisory reports whether a certification keyword is an allergen advisory
func isAdvisory(term string) bool {
	return strings.Contains(term, "may contain") || strings.Contains(term, "processed in facility")
}

// allContained reports whether every entry of items also appears in set
func allContained(items, set []string) bool {
	lookup := make(map[string]bool, len(set))
	for _, s := range set {
		lookup[s] = true
	}
	for _, item := range items {
		if !lookup[item] {
			return false
		}
	}
	return true
}

// AnalyzeIngredientList scans only the ingredient text and reports every
// category hit together with a combined risk score in [0, 1].
func (a *RiskAnalyzer) AnalyzeIngredientList(ingredients string) domain.IngredientBreakdown {
	lower := strings.ToLower(ingredients)

	breakdown := domain.IngredientBreakdown{
		TotalIngredients:      len(strings.Split(ingredients, ",")),
		GlutenSourcesFound:    []domain.SourceMatch{},
		HiddenGlutenFound:     matchTerms(lower, a.hidden),
		SafeIngredientsFound:  matchTerms(lower, a.safe),
		CertificationKeywords: matchTerms(lower, a.certifications),
		ManufacturingRisks:    matchTerms(lower, a.manufacturing),
	}

	for _, group := range a.sources {
		for _, term := range group.terms {
			if strings.Contains(lower, term) {
				breakdown.GlutenSourcesFound = append(breakdown.GlutenSourcesFound, domain.SourceMatch{
					Source: group.source,
					Term:   term,
				})
			}
		}
	}

	score := 0.0
	if len(breakdown.GlutenSourcesFound) > 0 {
		score += scoreGlutenSource
	}
	if len(breakdown.HiddenGlutenFound) > 0 {
		score += scoreHiddenGluten
	}
	if len(breakdown.ManufacturingRisks) > 0 {
		score += scoreManufacturing
	}
	for _, kw := range breakdown.CertificationKeywords {
		if strings.Contains(kw, "gluten free") {
			score += scoreCertification
			break
		}
	}
	breakdown.RiskScore = min(1.0, max(0.0, score))

	return breakdown
}

// Alternatives returns gluten-free substitutes for a problematic ingredient.
// Unknown ingredients yield an empty slice.
func (a *RiskAnalyzer) Alternatives(ingredient string) []string {
	alts, ok := glutenFreeAlternatives[strings.ToLower(strings.TrimSpace(ingredient))]
	if !ok {
		return []string{}
	}
	out := make([]string, len(alts))
	copy(out, alts)
	return out
}

// matchTerms returns the terms contained in text, in table order
func matchTerms(text string, terms []string) []string {
	hits := []string{}
	for _, term := range terms {
		if strings.Contains(text, term) {
			hits = append(hits, term)
		}
	}
	return hits
}
