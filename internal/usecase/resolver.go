package usecase

import (
	"strings"

	"go.uber.org/zap"

	"github.com/nutriscan/backend/internal/domain"
	"github.com/nutriscan/backend/internal/infrastructure/catalog"
)

// Match-acceptance thresholds for each strategy in the cascade. Tuned values;
// override through ResolverConfig rather than editing logic.
const (
	ExactMatchThreshold   = 0.95
	FuzzyMatchThreshold   = 0.80
	TFIDFMatchThreshold   = 0.50
	PartialMatchThreshold = 0.60
)

// ResolverConfig holds configuration for the ingredient resolver
type ResolverConfig struct {
	FuzzyThreshold     float64
	TFIDFThreshold     float64
	PartialThreshold   float64
	EnableDebugLogging bool
}

// Resolver matches a single cleaned token against the reference catalog using
// a cascade of strategies in strict priority order: exact, fuzzy, TF-IDF,
// partial word-overlap. The first strategy clearing its threshold wins;
// scores are never blended across strategies.
type Resolver struct {
	catalog *catalog.Catalog
	cache   domain.ResultCache

	fuzzyThreshold   float64
	tfidfThreshold   float64
	partialThreshold float64

	enableDebugLogging bool
	logger             *zap.Logger
}

// NewResolver creates a resolver over the given catalog. The cache memoizes
// results per exact token text; pass a fresh cache for test isolation.
func NewResolver(cat *catalog.Catalog, resultCache domain.ResultCache, config ResolverConfig, logger *zap.Logger) *Resolver {
	fuzzy := config.FuzzyThreshold
	if fuzzy <= 0 {
		fuzzy = FuzzyMatchThreshold
	}
	tfidf := config.TFIDFThreshold
	if tfidf <= 0 {
		tfidf = TFIDFMatchThreshold
	}
	partial := config.PartialThreshold
	if partial <= 0 {
		partial = PartialMatchThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		catalog:            cat,
		cache:              resultCache,
		fuzzyThreshold:     fuzzy,
		tfidfThreshold:     tfidf,
		partialThreshold:   partial,
		enableDebugLogging: config.EnableDebugLogging,
		logger:             logger,
	}
}

// Resolve returns the scored catalog match for a token, or false when no
// strategy clears its threshold. Results, including misses, are memoized:
// a cached entry with an empty method tag records a remembered miss.
func (r *Resolver) Resolve(token string) (domain.IngredientResult, bool) {
	if cached, hit := r.cache.Get(token); hit {
		return cached, cached.Method != ""
	}

	result, ok := r.lookup(token)
	if ok {
		r.cache.Add(token, result)
		return result, true
	}
	r.cache.Add(token, domain.IngredientResult{})
	return domain.IngredientResult{}, false
}

func (r *Resolver) lookup(token string) (domain.IngredientResult, bool) {
	name := strings.ToLower(strings.TrimSpace(token))

	// Strategy 1: exact variant-index lookup
	if entry, ok := r.catalog.Lookup(name); ok {
		return r.buildResult(token, entry, 1.0, domain.MethodExactMatch), true
	}

	// Strategy 2: fuzzy character-sequence similarity against every variant
	// key. O(variant count) per call; the cache keeps this affordable.
	bestFuzzy := 0.0
	bestFuzzyIdx := -1
	for _, v := range r.catalog.Variants() {
		if s := similarityRatio(name, v.Key); s > bestFuzzy {
			bestFuzzy = s
			bestFuzzyIdx = v.Index
		}
	}
	if bestFuzzy >= r.fuzzyThreshold {
		if r.enableDebugLogging {
			r.logger.Debug("fuzzy match",
				zap.String("token", token),
				zap.Float64("ratio", bestFuzzy))
		}
		return r.buildResult(token, r.catalog.Entry(bestFuzzyIdx), bestFuzzy, domain.MethodFuzzyMatch), true
	}

	// Strategy 3: TF-IDF cosine similarity over canonical names. A token that
	// cannot be vectorized is a miss, not an error.
	if idx, sim, ok := r.catalog.Model().BestMatch(name); ok && sim > r.tfidfThreshold {
		if r.enableDebugLogging {
			r.logger.Debug("tfidf match",
				zap.String("token", token),
				zap.Float64("similarity", sim))
		}
		return r.buildResult(token, r.catalog.Entry(idx), sim, domain.MethodTFIDFMatch), true
	}

	// Strategy 4: Jaccard word-set overlap for compound ingredient names
	tokenWords := wordSet(name)
	bestPartial := 0.0
	bestPartialIdx := -1
	for _, v := range r.catalog.Variants() {
		if s := jaccard(tokenWords, wordSet(v.Key)); s > bestPartial {
			bestPartial = s
			bestPartialIdx = v.Index
		}
	}
	if bestPartial >= r.partialThreshold {
		if r.enableDebugLogging {
			r.logger.Debug("partial match",
				zap.String("token", token),
				zap.Float64("overlap", bestPartial))
		}
		return r.buildResult(token, r.catalog.Entry(bestPartialIdx), bestPartial, domain.MethodPartialMatch), true
	}

	return domain.IngredientResult{}, false
}

func (r *Resolver) buildResult(token string, entry domain.ReferenceEntry, confidence float64, method string) domain.IngredientResult {
	return domain.IngredientResult{
		Ingredient: token,
		MatchedAs:  entry.Name,
		Score:      entry.Score,
		Label:      entry.Label,
		Remark:     entry.Remark,
		Category:   entry.Category,
		Confidence: confidence,
		Method:     method,
	}
}

// similarityRatio computes a normalized character-sequence similarity in
// [0,1]: 1 minus the edit distance over the longer length.
func similarityRatio(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	longest := len(s1)
	if len(s2) > longest {
		longest = len(s2)
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshteinDistance(s1, s2))/float64(longest)
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Two rows instead of the full matrix
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// jaccard returns intersection over union of two word sets.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
