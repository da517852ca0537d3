package usecase

import (
	"regexp"
	"sort"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	// Packaging-boilerplate sections. Matches span newlines and consume
	// everything to the end of the section.
	boilerplatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)allergen\s+(advice|information)[:\s].*`),
		regexp.MustCompile(`(?is)may contain traces of.*`),
		regexp.MustCompile(`(?is)storage instructions[:\s].*`),
		regexp.MustCompile(`(?is)best before[:\s].*`),
		regexp.MustCompile(`(?i)contains added permitted`),
	}

	// Bracketed/parenthesized asides, including one leading space. Keeps the
	// word before the bracket.
	bracketedAsideRegex = regexp.MustCompile(`\s*[\[(].*?[\])]`)

	// Qualifier phrases of the form "as <role>"
	qualifierPhraseRegex = regexp.MustCompile(`(?i)\s+as\s+(thickener|stabilizer|emulsifier|preservative|colour|flavor|acidity regulator|raising agent|anticaking agent|mineral|vitamin)`)

	// Separators that delimit ingredients on real labels
	separatorRegex = regexp.MustCompile(`[;|\n\t&]`)

	// Leading enumeration markers, e.g. "1. Sugar"
	enumerationRegex = regexp.MustCompile(`\b\d+\.\s*`)

	// Label header words followed by a colon
	labelHeaderRegex = regexp.MustCompile(`(?i)(ingredients?|contains?|noodles?|tastemaker|seasoning)\s*:`)

	edgeNonAlnumRegex = regexp.MustCompile(`^[^a-zA-Z0-9]+|[^a-zA-Z0-9]+$`)
	hasLetterRegex    = regexp.MustCompile(`[a-zA-Z]`)
)

// wordReplacement substitutes a standalone word with its mapped name.
type wordReplacement struct {
	pattern *regexp.Regexp
	value   string
}

// Normalizer rewrites raw OCR label text into a clean, comma-delimited
// ingredient list. It is a pure function of its input plus the two fixed
// substitution tables, compiled once at construction.
type Normalizer struct {
	additives []wordReplacement
	regionals []wordReplacement
}

// NewNormalizer compiles word-boundary substitution patterns from the given
// tables. Patterns are ordered by key so normalization is deterministic.
func NewNormalizer(tables NormalizerTables) *Normalizer {
	return &Normalizer{
		additives: compileReplacements(tables.AdditiveCodes),
		regionals: compileReplacements(tables.RegionalNames),
	}
}

func compileReplacements(table map[string]string) []wordReplacement {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	replacements := make([]wordReplacement, 0, len(keys))
	for _, k := range keys {
		replacements = append(replacements, wordReplacement{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(k)) + `\b`),
			value:   table[k],
		})
	}
	return replacements
}

// Normalize runs the cleanup pipeline. The steps are strictly ordered:
// later steps assume the earlier ones already ran.
func (n *Normalizer) Normalize(raw string) string {
	// 1. Lowercase everything
	text := strings.ToLower(raw)

	// 2. Strip packaging-boilerplate sections
	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	// 3. Replace additive codes with ingredient names
	for _, r := range n.additives {
		text = r.pattern.ReplaceAllString(text, r.value)
	}

	// 4. Replace regional names with English equivalents
	for _, r := range n.regionals {
		text = r.pattern.ReplaceAllString(text, r.value)
	}

	// 5. Remove bracketed asides, keeping the word before the bracket
	text = bracketedAsideRegex.ReplaceAllString(text, "")

	// 6. Strip "as <role>" qualifier phrases
	text = qualifierPhraseRegex.ReplaceAllString(text, "")

	// 7. Normalize separators to commas
	text = separatorRegex.ReplaceAllString(text, ",")

	// 8. Strip leading enumeration markers
	text = enumerationRegex.ReplaceAllString(text, "")

	// 9. Turn label headers into commas so the rest of the line survives
	text = labelHeaderRegex.ReplaceAllString(text, ",")

	return text
}

// ExtractTokens splits cleaned text into ordered ingredient-name candidates.
// Order is preserved and duplicates are kept.
func (n *Normalizer) ExtractTokens(cleaned string) []string {
	var tokens []string
	for _, piece := range strings.Split(cleaned, ",") {
		piece = strings.TrimSpace(piece)
		if len(piece) < 3 {
			continue
		}
		if isSkipPhrase(piece) {
			continue
		}

		piece = edgeNonAlnumRegex.ReplaceAllString(piece, "")
		if !hasLetterRegex.MatchString(piece) {
			continue
		}
		tokens = append(tokens, piece)
	}
	return tokens
}

// isSkipPhrase reports whether a piece is label boilerplate: it contains a
// skip phrase and is too short to be a compound ingredient name.
func isSkipPhrase(piece string) bool {
	lower := strings.ToLower(piece)
	for _, skip := range tokenSkipPhrases {
		if strings.Contains(lower, skip) {
			return len(strings.Fields(piece)) < 3
		}
	}
	return false
}
