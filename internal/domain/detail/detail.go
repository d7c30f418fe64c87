// Package detail holds catalog label rules and the built-in detail library.
package detail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/detailmatch/internal/domain"
)

// MaxLabelLength caps a label's length in characters.
const MaxLabelLength = 256

var defaultCatalog = []string{
	"External Wall - Slab Junction Waterproofing",
	"Internal Partition Head to Soffit Detail",
	"Basement Retaining Wall - Foundation Joint",
	"Core-Shaft Wall to Slab Firestop",
	"Exterior Window Sill Detail",
	"Lift Core to Floor Slab Connection",
	"Foundation Footing to Column Base",
	"Soffit Insulation at External Beam",
}

// DefaultCatalog returns a copy of the built-in labels in library order.
func DefaultCatalog() []string {
	return append([]string(nil), defaultCatalog...)
}

// Validate checks that a label can be stored. Labels are kept verbatim;
// uniqueness is case-sensitive and left to the catalog.
func Validate(label string) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("%w: label is required", domain.ErrInvalidLabel)
	}
	if n := utf8.RuneCountInString(label); n > MaxLabelLength {
		return fmt.Errorf("%w: label too long (%d > %d chars)", domain.ErrInvalidLabel, n, MaxLabelLength)
	}
	return nil
}

// seedFile is the YAML layout of a seed catalog:
//
//	details:
//	  - External Wall - Slab Junction Waterproofing
type seedFile struct {
	Details []string `yaml:"details"`
}

// ParseSeed parses and validates a seed catalog.
func ParseSeed(data []byte) ([]string, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, label := range f.Details {
		if err := Validate(label); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}
	return f.Details, nil
}

// LoadSeedFile reads a seed catalog file.
func LoadSeedFile(path string) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	labels, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return labels, nil
}
