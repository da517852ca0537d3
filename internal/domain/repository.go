package domain

// ResultCache defines the interface for memoizing resolved tokens.
// Implementations must be safe for concurrent use; the cache is a latency
// optimization only and must never change observable resolver output.
type ResultCache interface {
	Get(token string) (IngredientResult, bool)
	Add(token string, result IngredientResult)
	Len() int
	Purge()
}
