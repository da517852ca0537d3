package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nutriscan/backend/internal/domain"
)

type stubAnalyzer struct {
	lastText string
	lastName string
	report   *domain.ProductReport
}

func (s *stubAnalyzer) AnalyzeProduct(rawText, productName string) *domain.ProductReport {
	s.lastText = rawText
	s.lastName = productName
	report := *s.report
	report.ProductName = productName
	return &report
}

func newTestRouter(analyzer Analyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(analyzer, zap.NewNop())

	router := gin.New()
	router.GET("/health", handler.HealthCheck)
	router.POST("/api/v1/analyze", handler.AnalyzeProduct)
	return router
}

func sampleReport() *domain.ProductReport {
	return &domain.ProductReport{
		FinalScore:           6.75,
		TotalIngredients:     2,
		MatchedIngredients:   2,
		UnmatchedIngredients: 0,
		Recommendation:       "Good Choice! Generally safe but consume in moderation.",
		Ingredients: []domain.IngredientResult{
			{Ingredient: "water", MatchedAs: "Water", Score: 10, Label: domain.LabelHealthy, Confidence: 1.0, Method: domain.MethodExactMatch},
			{Ingredient: "sugar", MatchedAs: "Sugar", Score: 3.5, Label: domain.LabelCaution, Confidence: 1.0, Method: domain.MethodExactMatch},
		},
		Flags: domain.ReportFlags{HasCaution: true},
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{report: sampleReport()})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "nutriscan-backend", body["service"])
}

func TestAnalyzeProductHandler(t *testing.T) {
	t.Run("returns the report with the wire field names", func(t *testing.T) {
		analyzer := &stubAnalyzer{report: sampleReport()}
		router := newTestRouter(analyzer)

		payload := `{"product_name": "Cola", "ingredients_text": "water, sugar"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "water, sugar", analyzer.lastText)
		assert.Equal(t, "Cola", analyzer.lastName)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Cola", body["product_name"])
		assert.Equal(t, 6.75, body["final_score"])
		assert.Equal(t, float64(2), body["total_ingredients"])
		assert.Equal(t, float64(2), body["matched_ingredients"])
		assert.Equal(t, float64(0), body["unmatched_ingredients"])
		assert.Contains(t, body, "recommendation")

		flags, ok := body["flags"].(map[string]any)
		require.True(t, ok, "flags must be an object")
		assert.Equal(t, false, flags["has_harmful"])
		assert.Equal(t, true, flags["has_caution"])

		ingredients, ok := body["ingredients"].([]any)
		require.True(t, ok, "ingredients must be an array")
		require.Len(t, ingredients, 2)
		first, ok := ingredients[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "water", first["ingredient"])
		assert.Equal(t, "Water", first["matched_as"])
		assert.Equal(t, "exact_match", first["method"])
	})

	t.Run("defaults a blank product name", func(t *testing.T) {
		analyzer := &stubAnalyzer{report: sampleReport()}
		router := newTestRouter(analyzer)

		payload := `{"product_name": "  ", "ingredients_text": "water"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Unknown Product", analyzer.lastName)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		router := newTestRouter(&stubAnalyzer{report: sampleReport()})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing ingredients_text", func(t *testing.T) {
		router := newTestRouter(&stubAnalyzer{report: sampleReport()})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(`{"product_name": "Cola"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects whitespace-only ingredients_text", func(t *testing.T) {
		router := newTestRouter(&stubAnalyzer{report: sampleReport()})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(`{"ingredients_text": "   "}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ingredients_text must not be empty", body["error"])
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("disabled when non-positive", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(RateLimitMiddleware(0))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(RateLimitMiddleware(2))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "203.0.113.7:1234"
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		assert.Equal(t, http.StatusOK, codes[0])
		assert.Equal(t, http.StatusOK, codes[1])
		assert.Equal(t, http.StatusTooManyRequests, codes[2])
	})
}
