package usecase

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/nutriscan/backend/internal/domain"
)

// Recommendation score thresholds
const (
	scoreExcellent = 8.0
	scoreGood      = 6.5
	scoreModerate  = 5.0
	scorePoor      = 3.0
)

const (
	recExcellent = "Excellent Choice! This product is healthy and nutritious."
	recGood      = "Good Choice! Generally safe but consume in moderation."
	recModerate  = "Moderate! Contains some ingredients to be cautious about."
	recPoor      = "Poor Choice! Contains multiple harmful ingredients. Limit consumption."
	recAvoid     = "Avoid! This product contains highly harmful ingredients."
	recEmpty     = "Unable to analyze - No ingredients detected"

	suffixHarmful = " Contains harmful ingredients."
	suffixCaution = " Contains ingredients requiring caution."
)

// maxFinalScore bounds the aggregate product score.
const maxFinalScore = 10.0

// AnalyzerService runs the full pipeline: normalize raw label text, resolve
// each token against the catalog with the classifier as backstop, then
// aggregate into a product report.
type AnalyzerService struct {
	normalizer *Normalizer
	resolver   *Resolver
	classifier *Classifier
	logger     *zap.Logger
}

// NewAnalyzerService wires the pipeline stages together.
func NewAnalyzerService(normalizer *Normalizer, resolver *Resolver, classifier *Classifier, logger *zap.Logger) *AnalyzerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyzerService{
		normalizer: normalizer,
		resolver:   resolver,
		classifier: classifier,
		logger:     logger,
	}
}

// AnalyzeProduct analyzes raw OCR ingredient text and returns a fresh
// product report. Empty or unparseable text yields the degenerate empty
// report, not an error. Every token is guaranteed a result: the classifier
// backstops whatever the resolver cannot match.
func (s *AnalyzerService) AnalyzeProduct(rawText, productName string) *domain.ProductReport {
	cleaned := s.normalizer.Normalize(rawText)
	tokens := s.normalizer.ExtractTokens(cleaned)

	if len(tokens) == 0 {
		return &domain.ProductReport{
			ProductName:    productName,
			FinalScore:     0,
			Recommendation: recEmpty,
			Ingredients:    []domain.IngredientResult{},
		}
	}

	results := make([]domain.IngredientResult, 0, len(tokens))
	matched := 0
	unmatched := 0
	totalScore := 0.0
	flags := domain.ReportFlags{}

	for _, token := range tokens {
		result, ok := s.resolver.Resolve(token)
		if !ok {
			result = s.classifier.Classify(token)
			unmatched++
		} else {
			matched++
		}
		results = append(results, result)
		totalScore += result.Score

		// Both flags are tracked independently; a product can set both.
		label := strings.ToLower(result.Label)
		if strings.Contains(label, "avoid") {
			flags.HasHarmful = true
		}
		if strings.Contains(label, "caution") {
			flags.HasCaution = true
		}
	}

	finalScore := clampScore(round2(totalScore / float64(len(results))))

	s.logger.Debug("product analyzed",
		zap.String("product", productName),
		zap.Int("tokens", len(tokens)),
		zap.Int("matched", matched),
		zap.Int("unmatched", unmatched),
		zap.Float64("final_score", finalScore))

	return &domain.ProductReport{
		ProductName:          productName,
		FinalScore:           finalScore,
		TotalIngredients:     len(results),
		MatchedIngredients:   matched,
		UnmatchedIngredients: unmatched,
		Recommendation:       recommendation(finalScore, flags),
		Ingredients:          results,
		Flags:                flags,
	}
}

// recommendation maps the final score to a fixed message, with a harm or
// caution suffix when flagged. The harmful suffix wins when both flags are
// set.
func recommendation(score float64, flags domain.ReportFlags) string {
	var rec string
	switch {
	case score >= scoreExcellent:
		rec = recExcellent
	case score >= scoreGood:
		rec = recGood
	case score >= scoreModerate:
		rec = recModerate
	case score >= scorePoor:
		rec = recPoor
	default:
		rec = recAvoid
	}

	if flags.HasHarmful {
		rec += suffixHarmful
	} else if flags.HasCaution {
		rec += suffixCaution
	}
	return rec
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxFinalScore {
		return maxFinalScore
	}
	return v
}
