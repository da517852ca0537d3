package catalog

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vocabulary shape for the vector model: word n-grams of length 1-3 over
// canonical names, bounded to the most frequent 5000 terms.
const (
	minNgramSize  = 1
	maxNgramSize  = 3
	maxVocabTerms = 5000
)

var termCharsRegex = regexp.MustCompile(`[^a-z0-9\s]`)

// englishStopWords is the standard stop-word list excluded from the
// vocabulary. Single-letter tokens are dropped separately.
var englishStopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "but": true, "by": true, "can": true,
	"did": true, "do": true, "does": true, "doing": true, "down": true,
	"during": true, "each": true, "few": true, "for": true, "from": true,
	"further": true, "had": true, "has": true, "have": true, "having": true,
	"he": true, "her": true, "here": true, "hers": true, "him": true,
	"his": true, "how": true, "i": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "just": true,
	"me": true, "more": true, "most": true, "my": true, "no": true,
	"nor": true, "not": true, "now": true, "of": true, "off": true,
	"on": true, "once": true, "only": true, "or": true, "other": true,
	"our": true, "ours": true, "out": true, "over": true, "own": true,
	"same": true, "she": true, "should": true, "so": true, "some": true,
	"such": true, "than": true, "that": true, "the": true, "their": true,
	"theirs": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "to": true,
	"too": true, "under": true, "until": true, "up": true, "very": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "who": true, "whom": true,
	"why": true, "will": true, "with": true, "you": true, "your": true,
	"yours": true,
}

type sparseVector map[int]float64

// TFIDFModel is a sparse vector-space model over the catalog's canonical
// names. Built exactly once at catalog construction; immutable thereafter.
type TFIDFModel struct {
	vocab      map[string]int
	idf        []float64
	docVectors []sparseVector
}

// NewTFIDFModel trains a model over the given documents. Term weights use
// smoothed inverse document frequency and every vector is L2-normalized, so
// cosine similarity reduces to a dot product.
func NewTFIDFModel(docs []string) *TFIDFModel {
	docTerms := make([][]string, len(docs))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		terms := extractTerms(doc)
		docTerms[i] = terms

		seen := make(map[string]bool, len(terms))
		for _, t := range terms {
			corpusFreq[t]++
			if !seen[t] {
				docFreq[t]++
				seen[t] = true
			}
		}
	}

	m := &TFIDFModel{
		vocab:      buildVocabulary(corpusFreq),
		docVectors: make([]sparseVector, len(docs)),
	}

	// Smoothed IDF: ln((1+N)/(1+df)) + 1
	n := float64(len(docs))
	m.idf = make([]float64, len(m.vocab))
	for term, col := range m.vocab {
		m.idf[col] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	for i, terms := range docTerms {
		m.docVectors[i] = m.vector(terms)
	}

	return m
}

// buildVocabulary keeps the most frequent terms up to the cap. Ties break
// alphabetically so the model is deterministic across runs.
func buildVocabulary(corpusFreq map[string]int) map[string]int {
	terms := make([]string, 0, len(corpusFreq))
	for t := range corpusFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
			return corpusFreq[terms[i]] > corpusFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabTerms {
		terms = terms[:maxVocabTerms]
	}

	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return vocab
}

// extractTerms lowercases, strips punctuation, drops stop words and
// single-character tokens, then expands the remaining words into n-grams.
func extractTerms(text string) []string {
	cleaned := termCharsRegex.ReplaceAllString(strings.ToLower(text), " ")

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 1 || englishStopWords[w] {
			continue
		}
		words = append(words, w)
	}

	var terms []string
	for size := minNgramSize; size <= maxNgramSize; size++ {
		for i := 0; i+size <= len(words); i++ {
			terms = append(terms, strings.Join(words[i:i+size], " "))
		}
	}
	return terms
}

// vector builds an L2-normalized TF-IDF vector from extracted terms.
// Returns nil when no term is in the vocabulary.
func (m *TFIDFModel) vector(terms []string) sparseVector {
	counts := make(map[int]float64)
	for _, t := range terms {
		if col, ok := m.vocab[t]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var norm float64
	vec := make(sparseVector, len(counts))
	for col, tf := range counts {
		w := tf * m.idf[col]
		vec[col] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for col := range vec {
		vec[col] /= norm
	}
	return vec
}

// BestMatch projects the query into the vector space and returns the index of
// the most similar document. The first document reaching the maximal
// similarity wins. ok is false when the query cannot be vectorized or no
// document shares a term with it.
func (m *TFIDFModel) BestMatch(query string) (int, float64, bool) {
	qv := m.vector(extractTerms(query))
	if qv == nil {
		return 0, 0, false
	}

	bestIdx := -1
	bestSim := 0.0
	for i, dv := range m.docVectors {
		sim := dot(qv, dv)
		if sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return 0, 0, false
	}
	return bestIdx, bestSim, true
}

func dot(a, b sparseVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for col, w := range a {
		sum += w * b[col]
	}
	return sum
}
