package vocabulary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/detailmatch/internal/domain"
)

// fileFormat is the YAML layout of a vocabulary file:
//
//	synonyms:
//	  exterior: external
//	stop_words: [detail, junction]
//	functional_keywords: [waterproofing]
//
// A .toml file uses the same keys.
type fileFormat struct {
	Synonyms           map[string]string `yaml:"synonyms" toml:"synonyms"`
	StopWords          []string          `yaml:"stop_words" toml:"stop_words"`
	FunctionalKeywords []string          `yaml:"functional_keywords" toml:"functional_keywords"`
	// Extend merges the tables into the built-in ones instead of replacing them.
	Extend bool `yaml:"extend" toml:"extend"`
	// UnicodeFold enables NFKC folding of query and label text.
	UnicodeFold bool `yaml:"unicode_fold" toml:"unicode_fold"`
}

// Parse builds a vocabulary from YAML.
func Parse(data []byte) (Vocabulary, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: parse yaml: %w", domain.ErrInvalidVocabulary, err)
	}
	return f.build()
}

// ParseTOML builds a vocabulary from TOML.
func ParseTOML(data []byte) (Vocabulary, error) {
	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: parse toml: %w", domain.ErrInvalidVocabulary, err)
	}
	return f.build()
}

func (f fileFormat) build() (Vocabulary, error) {
	v, err := f.tables()
	if err != nil {
		return Vocabulary{}, err
	}
	return v.WithUnicodeFold(f.UnicodeFold), nil
}

func (f fileFormat) tables() (Vocabulary, error) {
	if !f.Extend {
		return New(f.Synonyms, f.StopWords, f.FunctionalKeywords)
	}

	synonyms := make(map[string]string, len(defaultSynonyms)+len(f.Synonyms))
	for k, v := range defaultSynonyms {
		synonyms[k] = v
	}
	for k, v := range f.Synonyms {
		synonyms[k] = v
	}
	stop := append(append([]string{}, defaultStopWords...), f.StopWords...)
	functional := append(append([]string{}, defaultFunctional...), f.FunctionalKeywords...)
	return New(synonyms, stop, functional)
}

// LoadFile reads a vocabulary file. Files ending in .toml are parsed as
// TOML, everything else as YAML.
func LoadFile(path string) (Vocabulary, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	v, err := parse(data)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return v, nil
}
