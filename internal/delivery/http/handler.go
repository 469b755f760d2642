package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/celiogix/backend/internal/domain"
	"github.com/celiogix/backend/internal/usecase"
)

const (
	serviceName    = "celiogix-backend"
	serviceVersion = "1.0.0"
)

// Recorder receives HTTP and recipe events for metrics
type Recorder interface {
	RecordScale()
	RecordConversion(converted bool)
	RecordRequest(method, path, status string, seconds float64)
	RecordRateLimitReject()
}

// nopRecorder discards every event
type nopRecorder struct{}

func (nopRecorder) RecordScale() {}

func (nopRecorder) RecordConversion(bool) {}

func (nopRecorder) RecordRequest(string, string, string, float64) {}

func (nopRecorder) RecordRateLimitReject() {}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	productService *usecase.ProductService
	analyzer       *usecase.RiskAnalyzer
	scaler         *usecase.RecipeScaler
	recorder       Recorder
	maxInputLength int
}

// NewHandler creates a new HTTP handler.
// productService may be nil, in which case analysis endpoints return 503.
// A nil recorder discards metrics.
func NewHandler(
	productService *usecase.ProductService,
	analyzer *usecase.RiskAnalyzer,
	scaler *usecase.RecipeScaler,
	recorder Recorder,
	maxInputLength int,
) *Handler {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &Handler{
		productService: productService,
		analyzer:       analyzer,
		scaler:         scaler,
		recorder:       recorder,
		maxInputLength: maxInputLength,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// AnalyzeProduct handles gluten-risk analysis of a product
func (h *Handler) AnalyzeProduct(c *gin.Context) {
	if h.productService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "product analysis not configured"})
		return
	}

	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidRequest, err)
		return
	}

	analysis, err := h.productService.Analyze(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInputTooLarge):
			respondError(c, http.StatusRequestEntityTooLarge, err, nil)
		case errors.Is(err, domain.ErrInvalidRequest):
			respondError(c, http.StatusBadRequest, err, nil)
		default:
			respondError(c, http.StatusInternalServerError, err, nil)
		}
		return
	}

	c.JSON(http.StatusOK, analysis)
}

type ingredientListRequest struct {
	Ingredients string `json:"ingredients"`
}

// AnalyzeIngredients returns a per-category breakdown of an ingredient list
func (h *Handler) AnalyzeIngredients(c *gin.Context) {
	var req ingredientListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidRequest, err)
		return
	}
	if h.maxInputLength > 0 && len(req.Ingredients) > h.maxInputLength {
		respondError(c, http.StatusRequestEntityTooLarge, domain.ErrInputTooLarge, nil)
		return
	}

	c.JSON(http.StatusOK, h.analyzer.AnalyzeIngredientList(req.Ingredients))
}

// GetAlternatives returns gluten-free substitutes for an ingredient
func (h *Handler) GetAlternatives(c *gin.Context) {
	ingredient := c.Query("ingredient")
	if ingredient == "" {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidRequest, errors.New("ingredient query parameter is required"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredient":   ingredient,
		"alternatives": h.analyzer.Alternatives(ingredient),
	})
}

// ValidateBarcode reports format and checksum validity of a barcode
func (h *Handler) ValidateBarcode(c *gin.Context) {
	c.JSON(http.StatusOK, usecase.ValidateBarcode(c.Param("code")))
}

type scaleRequest struct {
	Ingredients []domain.Ingredient `json:"ingredients" binding:"required"`
	ScaleFactor float64             `json:"scaleFactor"`
	TargetUnits []domain.TargetUnit `json:"targetUnits,omitempty"`
}

// ScaleRecipe scales a list of ingredients by a factor
func (h *Handler) ScaleRecipe(c *gin.Context) {
	var req scaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidRequest, err)
		return
	}
	if req.ScaleFactor <= 0 {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidRequest, errors.New("scaleFactor must be positive"))
		return
	}

	scaled := h.scaler.ScaleRecipe(req.Ingredients, req.ScaleFactor, req.TargetUnits)
	h.recorder.RecordScale()

	c.JSON(http.StatusOK, gin.H{"ingredients": scaled})
}

type convertRequest struct {
	Amount   float64 `json:"amount"`
	FromUnit string  `json:"fromUnit" binding:"required"`
	ToUnit   string  `json:"toUnit" binding:"required"`
}

// ConvertUnits converts an amount between two units
func (h *Handler) ConvertUnits(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidRequest, err)
		return
	}

	converted, ok := h.scaler.ConvertAmount(req.Amount, req.FromUnit, req.ToUnit)
	h.recorder.RecordConversion(ok)
	if !ok {
		respondError(c, http.StatusUnprocessableEntity, domain.ErrNoConversion, nil)
		return
	}
	if math.IsInf(converted, 0) || math.IsNaN(converted) {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidRequest, errors.New("converted amount is out of range"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"amount":    converted,
		"unit":      h.scaler.NormalizeUnit(req.ToUnit),
		"formatted": usecase.FormatAmount(converted),
	})
}

// GetConversionSuggestions lists one-hop conversions for an amount
func (h *Handler) GetConversionSuggestions(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidRequest, errors.New("amount must be a number"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": h.scaler.ConversionSuggestions(amount, c.Query("unit")),
	})
}

// GetCommonScales returns the standard scale factors
func (h *Handler) GetCommonScales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scales": h.scaler.CommonScales()})
}

// respondError writes a JSON error body; detail, when set, is appended to the message
func respondError(c *gin.Context, status int, err error, detail error) {
	msg := err.Error()
	if detail != nil {
		msg += ": " + detail.Error()
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
