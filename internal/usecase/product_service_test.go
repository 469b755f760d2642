package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celiogix/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string]interface{}
	getError  error
	setError  error
	getCalled bool
	setCalled bool
	lastTTL   time.Duration
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]interface{}),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.getCalled = true
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCalled = true
	m.lastTTL = ttl
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockClassifier returns a fixed result and counts calls
type MockClassifier struct {
	result domain.ClassificationResult
	calls  int
}

func (m *MockClassifier) Analyze(productName, ingredients, barcode, additionalInfo string) domain.ClassificationResult {
	m.calls++
	result := m.result
	result.ProductName = productName
	return result
}

// MockRecorder captures analysis outcomes
type MockRecorder struct {
	levels []domain.RiskLevel
	cached []bool
}

func (m *MockRecorder) RecordAnalysis(level domain.RiskLevel, cached bool) {
	m.levels = append(m.levels, level)
	m.cached = append(m.cached, cached)
}

func TestNewProductService_Defaults(t *testing.T) {
	service := NewProductService(NewMockCacheRepository(), NewRiskAnalyzer(), nil, ProductServiceConfig{})

	assert.Equal(t, 24*time.Hour, service.cacheTTL)
	assert.Equal(t, 10000, service.maxIngredientsLen)
	assert.False(t, service.enableDebugLogging)
}

func TestProductService_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies and caches on miss", func(t *testing.T) {
		cache := NewMockCacheRepository()
		recorder := &MockRecorder{}
		service := NewProductService(cache, NewRiskAnalyzer(), recorder, ProductServiceConfig{CacheTTL: time.Hour})

		analysis, err := service.Analyze(ctx, &domain.AnalyzeRequest{
			ProductName: "Soy Crackers",
			Ingredients: "Soybeans, wheat, salt, water, preservatives",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RiskUnsafe, analysis.RiskLevel)
		assert.False(t, analysis.Cached)
		assert.Nil(t, analysis.BarcodeInfo)
		assert.True(t, cache.setCalled)
		assert.Equal(t, time.Hour, cache.lastTTL)
		assert.Equal(t, []domain.RiskLevel{domain.RiskUnsafe}, recorder.levels)
		assert.Equal(t, []bool{false}, recorder.cached)
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		classifier := &MockClassifier{result: domain.ClassificationResult{RiskLevel: domain.RiskSafe, ConfidenceScore: 0.7}}
		recorder := &MockRecorder{}
		service := NewProductService(NewMockCacheRepository(), classifier, recorder, ProductServiceConfig{})
		request := &domain.AnalyzeRequest{ProductName: "Rice Cakes", Ingredients: "rice"}

		first, err := service.Analyze(ctx, request)
		require.NoError(t, err)
		second, err := service.Analyze(ctx, request)
		require.NoError(t, err)

		assert.Equal(t, 1, classifier.calls)
		assert.True(t, second.Cached)
		assert.Equal(t, first.ClassificationResult, second.ClassificationResult)
		assert.Equal(t, []bool{false, true}, recorder.cached)
	})

	t.Run("ingredient case and padding share a cache entry", func(t *testing.T) {
		classifier := &MockClassifier{result: domain.ClassificationResult{RiskLevel: domain.RiskSafe}}
		service := NewProductService(NewMockCacheRepository(), classifier, nil, ProductServiceConfig{})

		_, err := service.Analyze(ctx, &domain.AnalyzeRequest{ProductName: "Chips", Ingredients: "Corn, Salt"})
		require.NoError(t, err)
		analysis, err := service.Analyze(ctx, &domain.AnalyzeRequest{ProductName: "Chips", Ingredients: "  corn, salt "})
		require.NoError(t, err)

		assert.Equal(t, 1, classifier.calls)
		assert.True(t, analysis.Cached)
	})

	t.Run("cache hit from generic map", func(t *testing.T) {
		cache := NewMockCacheRepository()
		classifier := &MockClassifier{}
		service := NewProductService(cache, classifier, nil, ProductServiceConfig{})
		request := &domain.AnalyzeRequest{ProductName: "Bread", Ingredients: "wheat flour"}

		cache.data[generateCacheKey(request)] = map[string]interface{}{
			"productName":            "Bread",
			"riskLevel":              "unsafe",
			"confidenceScore":        0.95,
			"detectedSources":        []interface{}{"wheat"},
			"problematicIngredients": []interface{}{"wheat", "wheat flour"},
		}

		analysis, err := service.Analyze(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, 0, classifier.calls)
		assert.True(t, analysis.Cached)
		assert.Equal(t, domain.RiskUnsafe, analysis.RiskLevel)
		assert.Equal(t, []domain.GlutenSource{domain.SourceWheat}, analysis.DetectedSources)
	})

	t.Run("cache errors do not fail the request", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.getError = domain.ErrCacheUnavailable
		cache.setError = errors.New("disk full")
		service := NewProductService(cache, NewRiskAnalyzer(), nil, ProductServiceConfig{})

		analysis, err := service.Analyze(ctx, &domain.AnalyzeRequest{Ingredients: "rice"})

		require.NoError(t, err)
		assert.Equal(t, domain.RiskSafe, analysis.RiskLevel)
		assert.True(t, cache.getCalled)
		assert.True(t, cache.setCalled)
	})

	t.Run("barcode metadata is attached", func(t *testing.T) {
		service := NewProductService(NewMockCacheRepository(), NewRiskAnalyzer(), nil, ProductServiceConfig{})

		analysis, err := service.Analyze(ctx, &domain.AnalyzeRequest{Ingredients: "rice", Barcode: "4006381333931"})

		require.NoError(t, err)
		require.NotNil(t, analysis.BarcodeInfo)
		assert.True(t, analysis.BarcodeInfo.IsValid)
		assert.Equal(t, domain.FormatEAN13, analysis.BarcodeInfo.Format)
		assert.Equal(t, "4006381333931", analysis.Barcode)
	})

	t.Run("nil request", func(t *testing.T) {
		service := NewProductService(NewMockCacheRepository(), NewRiskAnalyzer(), nil, ProductServiceConfig{})

		_, err := service.Analyze(ctx, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("input too large", func(t *testing.T) {
		cache := NewMockCacheRepository()
		service := NewProductService(cache, NewRiskAnalyzer(), nil, ProductServiceConfig{MaxIngredientsLength: 10})

		_, err := service.Analyze(ctx, &domain.AnalyzeRequest{
			Ingredients:    "rice, salt",
			AdditionalInfo: "x",
		})

		assert.ErrorIs(t, err, domain.ErrInputTooLarge)
		assert.False(t, cache.getCalled)
	})
}

func TestGenerateCacheKey(t *testing.T) {
	base := &domain.AnalyzeRequest{ProductName: "Chips", Ingredients: "corn", Barcode: "96385074"}

	key := generateCacheKey(base)
	assert.True(t, strings.HasPrefix(key, "analysis:"))
	assert.Len(t, key, len("analysis:")+64)
	assert.Equal(t, key, generateCacheKey(&domain.AnalyzeRequest{ProductName: "Chips", Ingredients: " CORN ", Barcode: "96385074"}))

	assert.NotEqual(t, key, generateCacheKey(&domain.AnalyzeRequest{ProductName: "chips", Ingredients: "corn", Barcode: "96385074"}))
	assert.NotEqual(t, key, generateCacheKey(&domain.AnalyzeRequest{ProductName: "Chips", Ingredients: "corn"}))
	assert.NotEqual(t, key, generateCacheKey(&domain.AnalyzeRequest{ProductName: "Chips", Ingredients: "corn", Barcode: "96385074", AdditionalInfo: "shared equipment"}))
}
