package match

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kailas-cloud/detailmatch/internal/domain/vocabulary"
)

func defaultNormalizer() *Normalizer {
	return NewNormalizer(vocabulary.Default())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"detail label", "External Wall - Slab Junction Waterproofing", []string{"external", "slab", "wall", "waterproofing"}},
		{"synonyms", "Exterior RC-Block", []string{"concrete", "external", "masonry"}},
		{"footing folds to foundation", "Foundation Footing to Column Base", []string{"base", "column", "foundation"}},
		{"duplicates collapse", "wall WALL Wall", []string{"wall"}},
		{"punctuation splits", "Wall/Slab_(Level 2)", []string{"2", "level", "slab", "wall"}},
		{"hyphenated word", "Core-Shaft", []string{"core", "shaft"}},
		{"ligature splits", "ﬁrestop", []string{"restop"}},
		{"full width dropped", "ＷＡＬＬ", []string{}},
		{"superscript splits", "Slab m²", []string{"m", "slab"}},
		{"vulgar fraction dropped", "Wall ½", []string{"wall"}},
		{"non ascii letters separate", "Café", []string{"caf"}},
		{"empty", "", []string{}},
		{"whitespace", " \t\n ", []string{}},
		{"punctuation only", "!!! --- ???", []string{}},
		{"stop-words only", "to the junction and between", []string{}},
	}
	n := defaultNormalizer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.input).Sorted()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalize_ExcludesStopWordsAndEmpty(t *testing.T) {
	v := vocabulary.Default()
	n := NewNormalizer(v)
	inputs := []string{
		"Internal Partition Head to Soffit Detail",
		"Slab - - Joint with the Wall",
		"connection,junction;abutment",
		"at   the   between",
	}
	for _, in := range inputs {
		for tok := range n.Normalize(in) {
			if tok == "" {
				t.Errorf("Normalize(%q) produced an empty token", in)
			}
			if v.IsStopWord(tok) {
				t.Errorf("Normalize(%q) kept stop-word %q", in, tok)
			}
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := defaultNormalizer()
	inputs := []string{
		"External Wall - Slab Junction Waterproofing",
		"Exterior Conc Block outside/inside",
		"Ground earth footing",
		"Core-Shaft Wall to Slab Firestop",
		"ＲＣ ﬁrestop",
		"",
	}
	for _, in := range inputs {
		first := n.Normalize(in)
		second := n.Normalize(strings.Join(first.Sorted(), " "))
		if !reflect.DeepEqual(first.Sorted(), second.Sorted()) {
			t.Errorf("not idempotent for %q: %v then %v", in, first.Sorted(), second.Sorted())
		}
	}
}

func TestNormalize_UnicodeFold(t *testing.T) {
	n := NewNormalizer(vocabulary.Default().WithUnicodeFold(true))
	tests := []struct {
		input string
		want  []string
	}{
		{"ﬁrestop", []string{"firestop"}},
		{"ＷＡＬＬ", []string{"wall"}},
		{"Slab m²", []string{"m2", "slab"}},
		{"Wall ½", []string{"1", "2", "wall"}},
	}
	for _, tc := range tests {
		got := n.Normalize(tc.input).Sorted()
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_CustomVocabulary(t *testing.T) {
	v, err := vocabulary.New(map[string]string{"ext": "external"}, []string{"of"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := NewNormalizer(v).Normalize("Ext face of Wall to Slab").Sorted()
	want := []string{"external", "face", "slab", "to", "wall"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenSet_String(t *testing.T) {
	if got := NewTokenSet("wall", "external").String(); got != "['external', 'wall']" {
		t.Errorf("got %s", got)
	}
	if got := NewTokenSet().String(); got != "[]" {
		t.Errorf("got %s", got)
	}
}

func TestTokenSet_Ops(t *testing.T) {
	a := NewTokenSet("a", "b", "c")
	b := NewTokenSet("b", "c", "d")

	if got := a.Intersect(b).Sorted(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("Intersect = %v", got)
	}
	if got := a.Difference(b).Sorted(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Difference = %v", got)
	}
	if got := Union(a, b, nil).Sorted(); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("Union = %v", got)
	}
}
