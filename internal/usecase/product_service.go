package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/celiogix/backend/internal/domain"
)

// ProductServiceConfig holds configuration for the product service
type ProductServiceConfig struct {
	CacheTTL             time.Duration
	MaxIngredientsLength int
	EnableDebugLogging   bool
}

// ProductService analyzes products for gluten risk and caches the results.
// Classification is deterministic, so a cached result is identical to a fresh one.
type ProductService struct {
	cache              domain.CacheRepository
	classifier         domain.RiskClassifier
	recorder           domain.AnalysisRecorder
	cacheTTL           time.Duration
	maxIngredientsLen  int
	enableDebugLogging bool
}

// NewProductService creates a new product service with dependencies.
// recorder may be nil.
func NewProductService(
	cache domain.CacheRepository,
	classifier domain.RiskClassifier,
	recorder domain.AnalysisRecorder,
	config ProductServiceConfig,
) *ProductService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	maxLen := config.MaxIngredientsLength
	if maxLen <= 0 {
		maxLen = 10000
	}

	return &ProductService{
		cache:              cache,
		classifier:         classifier,
		recorder:           recorder,
		cacheTTL:           cacheTTL,
		maxIngredientsLen:  maxLen,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Analyze classifies a product, serving repeated requests from cache.
// Flow: validate -> check cache -> classify -> cache -> return.
// Cache failures are logged and never fail the request.
func (s *ProductService) Analyze(ctx context.Context, request *domain.AnalyzeRequest) (*domain.ProductAnalysis, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}
	if len(request.Ingredients)+len(request.AdditionalInfo) > s.maxIngredientsLen {
		return nil, fmt.Errorf("%w: %d characters allowed", domain.ErrInputTooLarge, s.maxIngredientsLen)
	}

	analysis := &domain.ProductAnalysis{}
	if request.Barcode != "" {
		info := ValidateBarcode(request.Barcode)
		analysis.BarcodeInfo = &info
	}

	cacheKey := generateCacheKey(request)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		if s.enableDebugLogging {
			log.Printf("[ANALYZE] Cache hit for %q: %s", request.ProductName, cached.RiskLevel.Label())
		}
		analysis.ClassificationResult = *cached
		analysis.Cached = true
		s.record(cached.RiskLevel, true)
		return analysis, nil
	}

	result := s.classifier.Analyze(request.ProductName, request.Ingredients, request.Barcode, request.AdditionalInfo)

	if s.enableDebugLogging {
		log.Printf("[ANALYZE] %q -> %s (confidence %.2f, sources %v, problematic %v)",
			request.ProductName, result.RiskLevel.Label(), result.ConfidenceScore,
			result.DetectedSources, result.ProblematicIngredients)
	}

	if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
		log.Printf("[CACHE] Failed to store analysis for %q: %v", request.ProductName, err)
	}

	analysis.ClassificationResult = result
	s.record(result.RiskLevel, false)
	return analysis, nil
}

// record forwards the outcome to the recorder when one is configured
func (s *ProductService) record(level domain.RiskLevel, cached bool) {
	if s.recorder != nil {
		s.recorder.RecordAnalysis(level, cached)
	}
}

// generateCacheKey creates a cache key from the inputs the classifier reads.
// Matched text is lowercased by the classifier, so case is folded here too;
// product name and barcode are echoed verbatim and kept as-is.
// Format: "analysis:{sha256 hex}"
func generateCacheKey(request *domain.AnalyzeRequest) string {
	parts := []string{
		request.ProductName,
		strings.ToLower(strings.TrimSpace(request.Ingredients)),
		request.Barcode,
		strings.ToLower(strings.TrimSpace(request.AdditionalInfo)),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "analysis:" + hex.EncodeToString(sum[:])
}

// getFromCache retrieves a classification result from cache
func (s *ProductService) getFromCache(ctx context.Context, key string) (*domain.ClassificationResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case domain.ClassificationResult:
		return &v, nil
	case *domain.ClassificationResult:
		return v, nil
	case map[string]interface{}:
		// Stored as generic JSON by the memory cache
		return mapToClassificationResult(v)
	default:
		return nil, domain.ErrCacheMiss
	}
}

// mapToClassificationResult converts a map (from JSON cache) back into a result
func mapToClassificationResult(data map[string]interface{}) (*domain.ClassificationResult, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheMiss, err)
	}
	var result domain.ClassificationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheMiss, err)
	}
	return &result, nil
}
