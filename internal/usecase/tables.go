package usecase

// NormalizerTables holds the immutable substitution tables consumed by the
// Normalizer. Modeled as injectable configuration so tests can run against
// substitute tables.
type NormalizerTables struct {
	// AdditiveCodes maps additive codes (e.g. "e621") to ingredient names.
	AdditiveCodes map[string]string
	// RegionalNames maps regional ingredient names to English equivalents.
	RegionalNames map[string]string
}

// DefaultNormalizerTables returns the built-in additive-code and
// regional-name tables.
func DefaultNormalizerTables() NormalizerTables {
	return NormalizerTables{
		AdditiveCodes: additiveCodeTable,
		RegionalNames: regionalNameTable,
	}
}

var additiveCodeTable = map[string]string{
	"e100": "curcumin",
	"e150": "caramel",
	"e170": "calcium carbonate",
	"e202": "potassium sorbate",
	"e211": "sodium benzoate",
	"e223": "sodium metabisulphite",
	"e300": "ascorbic acid",
	"e322": "lecithin",
	"e330": "citric acid",
	"e407": "carrageenan",
	"e410": "locust bean gum",
	"e412": "guar gum",
	"e415": "xanthan gum",
	"e452": "sodium phosphate",
	"e471": "mono and diglycerides",
	"e500": "sodium carbonate",
	"e501": "potassium carbonate",
	"e503": "ammonium carbonate",
	"e508": "potassium chloride",
	"e551": "silicon dioxide",
	"e621": "monosodium glutamate",
	"e627": "disodium guanylate",
	"e631": "disodium inosinate",
}

var regionalNameTable = map[string]string{
	"maida":    "refined wheat flour",
	"atta":     "whole wheat flour",
	"besan":    "gram flour",
	"hing":     "asafoetida",
	"jeera":    "cumin",
	"haldi":    "turmeric",
	"dhaniya":  "coriander",
	"elaichi":  "cardamom",
	"dalchini": "cinnamon",
	"kalonji":  "nigella seeds",
	"methi":    "fenugreek",
	"ajwain":   "carom seeds",
	"til":      "sesame",
	"kaju":     "cashew",
	"badam":    "almond",
	"pista":    "pistachio",
	"khoya":    "milk solids",
	"paneer":   "cottage cheese",
}

// tokenSkipPhrases mark pieces that are label boilerplate rather than
// ingredients. A piece is dropped only when it contains one of these AND has
// fewer than three words, which protects multi-word ingredient names that
// happen to contain "natural".
var tokenSkipPhrases = []string{
	"ingredients",
	"contains",
	"allergen",
	"advice",
	"information",
	"may contain",
	"traces",
	"added permitted",
	"natural identical",
	"flavouring substances",
	"natural",
	"artificial",
}
