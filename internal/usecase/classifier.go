package usecase

import (
	"strings"

	"github.com/nutriscan/backend/internal/domain"
)

// ClassifierRule scores a token by keyword when the catalog has no match.
// Rules are evaluated in order; the first rule with a keyword contained in
// the token wins.
type ClassifierRule struct {
	Keywords   []string
	Score      float64
	Label      string
	Remark     string
	Category   string
	Confidence float64
}

// DefaultClassifierRules returns the built-in fallback rules, ordered from
// most to least hazardous. Confidences stay below 1.0: a keyword hit is
// always less certain than a catalog match.
func DefaultClassifierRules() []ClassifierRule {
	return []ClassifierRule{
		{
			Keywords:   []string{"trans fat", "partially hydrogenated", "hydrogenated oil"},
			Score:      1.0,
			Label:      domain.LabelAvoid,
			Remark:     "Trans fats detected - Highly harmful to heart health",
			Category:   "Fats & Oils",
			Confidence: 0.8,
		},
		{
			Keywords:   []string{"artificial color", "artificial colour", "tartrazine", "sunset yellow"},
			Score:      2.0,
			Label:      domain.LabelAvoid,
			Remark:     "Artificial colorant - May cause allergic reactions",
			Category:   "Additives",
			Confidence: 0.75,
		},
		{
			Keywords:   []string{"preservative", "benzoate", "sorbate", "sulfite", "nitrite", "nitrate"},
			Score:      3.0,
			Label:      domain.LabelCaution,
			Remark:     "Chemical preservative - Consume in moderation",
			Category:   "Preservatives",
			Confidence: 0.7,
		},
		{
			Keywords:   []string{"msg", "monosodium glutamate", "disodium", "flavor enhancer"},
			Score:      3.0,
			Label:      domain.LabelCaution,
			Remark:     "Flavor enhancer - May cause sensitivity in some people",
			Category:   "Flavor Enhancers",
			Confidence: 0.7,
		},
		{
			Keywords:   []string{"sugar", "syrup", "high fructose", "corn syrup"},
			Score:      3.5,
			Label:      domain.LabelCaution,
			Remark:     "High sugar content - Limit consumption",
			Category:   "Sweeteners",
			Confidence: 0.75,
		},
		{
			Keywords:   []string{"vitamin", "mineral", "probiotic", "lactobacillus", "bifidobacterium"},
			Score:      8.0,
			Label:      domain.LabelHealthy,
			Remark:     "Beneficial nutrient or probiotic",
			Category:   "Nutrients",
			Confidence: 0.8,
		},
		{
			Keywords:   []string{"whole grain", "whole wheat", "oats", "quinoa", "brown rice"},
			Score:      8.5,
			Label:      domain.LabelHealthy,
			Remark:     "Whole grain - Good source of fiber",
			Category:   "Grains",
			Confidence: 0.8,
		},
	}
}

// Classifier is the keyword-driven fallback for tokens the resolver cannot
// match. It always produces a result.
type Classifier struct {
	rules []ClassifierRule
}

// NewClassifier creates a classifier with the given rules; nil rules use the
// defaults.
func NewClassifier(rules []ClassifierRule) *Classifier {
	if rules == nil {
		rules = DefaultClassifierRules()
	}
	return &Classifier{rules: rules}
}

// Classify scores a token by its keywords, falling through to a neutral
// Unknown result tagged not_found.
func (c *Classifier) Classify(token string) domain.IngredientResult {
	lower := strings.ToLower(token)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return domain.IngredientResult{
					Ingredient: token,
					MatchedAs:  domain.NotInDatabase,
					Score:      rule.Score,
					Label:      rule.Label,
					Remark:     rule.Remark,
					Category:   rule.Category,
					Confidence: rule.Confidence,
					Method:     domain.MethodKeywordDetection,
				}
			}
		}
	}

	return domain.IngredientResult{
		Ingredient: token,
		MatchedAs:  domain.NotInDatabase,
		Score:      5.0,
		Label:      domain.LabelUnknown,
		Remark:     "Ingredient not found in database - Neutral impact assumed",
		Category:   "Unknown",
		Confidence: 0.0,
		Method:     domain.MethodNotFound,
	}
}
