package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriscan/backend/internal/domain"
)

// Analyzer is the core analysis pipeline consumed by the HTTP layer.
type Analyzer interface {
	AnalyzeProduct(rawText, productName string) *domain.ProductReport
}

// AnalyzeRequest is the inbound JSON payload for a product analysis.
type AnalyzeRequest struct {
	ProductName     string `json:"product_name"`
	IngredientsText string `json:"ingredients_text" binding:"required"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analyzer Analyzer
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(analyzer Analyzer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		analyzer: analyzer,
		logger:   logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutriscan-backend",
		"version": "1.0.0",
	})
}

// AnalyzeProduct handles ingredient-analysis requests. Malformed payloads
// and empty ingredient text are rejected before reaching the core, which
// itself treats empty input as a degenerate report rather than an error.
func (h *Handler) AnalyzeProduct(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.IngredientsText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients_text must not be empty"})
		return
	}

	productName := strings.TrimSpace(req.ProductName)
	if productName == "" {
		productName = "Unknown Product"
	}

	report := h.analyzer.AnalyzeProduct(req.IngredientsText, productName)

	h.logger.Info("analysis served",
		zap.String("product", productName),
		zap.Int("ingredients", report.TotalIngredients),
		zap.Float64("final_score", report.FinalScore))

	c.JSON(http.StatusOK, report)
}
