package vocabulary

// Built-in tables. Synonyms map Revit property wording onto the words used in
// the detail library.
var (
	defaultSynonyms = map[string]string{
		"exterior": "external",
		"outside":  "external",
		"interior": "internal",
		"inside":   "internal",
		"conc":     "concrete",
		"rc":       "concrete",
		"block":    "masonry",
		"footing":  "foundation",
		"ground":   "foundation",
		"earth":    "retaining",
	}

	defaultStopWords = []string{
		"detail", "junction", "connection", "abutment",
		"joint", "to", "with", "and", "-", "at", "the", "between",
	}

	// A functional keyword changes the nature of a detail: a waterproofed
	// junction is a different drawing from a plain one.
	defaultFunctional = []string{
		"waterproofing", "firestop", "insulation", "acoustic",
		"sound", "expansion", "control", "movement", "flashing",
	}
)

var defaultVocabulary = mustNew(defaultSynonyms, defaultStopWords, defaultFunctional)

// Default returns the built-in vocabulary. It is built once per process.
func Default() Vocabulary { return defaultVocabulary }

func mustNew(synonyms map[string]string, stopWords, functional []string) Vocabulary {
	v, err := New(synonyms, stopWords, functional)
	if err != nil {
		panic(err)
	}
	return v
}
