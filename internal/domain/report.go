package domain

// ReportFlags summarize label-level warnings across a whole product.
// Both flags are computed independently and may be true at the same time.
type ReportFlags struct {
	HasHarmful bool `json:"has_harmful"`
	HasCaution bool `json:"has_caution"`
}

// ProductReport aggregates all per-ingredient results for one analysis call.
// Request-scoped: every call produces a fresh report with no shared state.
// The snake_case field names are a serialization contract with API consumers.
type ProductReport struct {
	ProductName          string             `json:"product_name"`
	FinalScore           float64            `json:"final_score"` // clamped to [0,10]
	TotalIngredients     int                `json:"total_ingredients"`
	MatchedIngredients   int                `json:"matched_ingredients"`
	UnmatchedIngredients int                `json:"unmatched_ingredients"`
	Recommendation       string             `json:"recommendation"`
	Ingredients          []IngredientResult `json:"ingredients"`
	Flags                ReportFlags        `json:"flags"`
}
