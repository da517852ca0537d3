package domain

// Match methods identify which resolution strategy produced an IngredientResult.
const (
	MethodExactMatch       = "exact_match"
	MethodFuzzyMatch       = "fuzzy_match"
	MethodTFIDFMatch       = "tfidf_match"
	MethodPartialMatch     = "partial_match"
	MethodKeywordDetection = "keyword_detection"
	MethodNotFound         = "not_found"
)

// Health labels form the fixed qualitative vocabulary for ingredients.
const (
	LabelHealthy = "Healthy"
	LabelCaution = "Caution"
	LabelAvoid   = "Avoid"
	LabelUnknown = "Unknown"
)

// NotInDatabase is the matched_as sentinel for ingredients the catalog
// does not know about.
const NotInDatabase = "Not in Database"

// ReferenceEntry is one row of the reference catalog: a known ingredient
// with its nutrition metadata. Immutable after catalog load.
type ReferenceEntry struct {
	Name     string  // canonical ingredient name
	Score    float64 // nutrition score, nominal range 0-10
	Label    string  // Healthy / Caution / Avoid / Unknown
	Remark   string
	Category string
}

// IngredientResult is the outcome of resolving a single label token.
// Created once per token and never merged or mutated.
type IngredientResult struct {
	Ingredient string  `json:"ingredient"` // original token text
	MatchedAs  string  `json:"matched_as"` // canonical name, or NotInDatabase
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Remark     string  `json:"remark"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"` // [0,1], strategy-dependent
	Method     string  `json:"method"`
}
