package match

import (
	"math"
	"testing"

	"github.com/kailas-cloud/detailmatch/internal/domain/detail"
	"github.com/kailas-cloud/detailmatch/internal/domain/query"
	"github.com/kailas-cloud/detailmatch/internal/domain/vocabulary"
)

func defaultScorer() *Scorer {
	return NewScorer(vocabulary.Default())
}

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		q          query.Query
		label      string
		wantScore  float64
		wantReason string
	}{
		{
			name:       "unrequested functional term",
			q:          query.New("External Wall", "Slab", ""),
			label:      "External Wall - Slab Junction Waterproofing",
			wantScore:  0.80,
			wantReason: "Host matches ['external', 'wall']; Adjacent matches ['slab']; Note: Detail is specific to ['waterproofing']",
		},
		{
			name:       "missing required function",
			q:          query.New("Wall", "Slab", "Waterproofing"),
			label:      "Lift Core to Floor Slab Connection",
			wantScore:  0.10,
			wantReason: "Adjacent matches ['slab']; MISSING required function: ['waterproofing']",
		},
		{
			name:       "hyphenated host with specific target",
			q:          query.New("Core-Shaft", "Foundation", "Exterior"),
			label:      "Core-Shaft Wall to Slab Firestop",
			wantScore:  0.45,
			wantReason: "Host matches ['core', 'shaft']; Note: Detail is specific to ['firestop']",
		},
		{
			name:       "functionality matched",
			q:          query.New("Wall", "Slab", "Waterproofing"),
			label:      "External Wall - Slab Junction Waterproofing",
			wantScore:  1.0,
			wantReason: "Host matches ['wall']; Adjacent matches ['slab']; Exposure matches; Functionality matched: ['waterproofing']",
		},
		{
			name:       "neutral case adds no clause",
			q:          query.New("Window", "Sill", ""),
			label:      "Exterior Window Sill Detail",
			wantScore:  0.90,
			wantReason: "Host matches ['window']; Adjacent matches ['sill']",
		},
		{
			name:       "partial host coverage",
			q:          query.New("Basement Retaining Wall", "", ""),
			label:      "External Wall - Slab Junction Waterproofing",
			wantScore:  0.22,
			wantReason: "Host matches ['wall']; Note: Detail is specific to ['waterproofing']",
		},
		{
			name:       "penalty clamps at zero",
			q:          query.New("", "", "Acoustic"),
			label:      "Exterior Window Sill Detail",
			wantScore:  0,
			wantReason: "MISSING required function: ['acoustic']",
		},
		{
			name:       "empty query neutral",
			q:          query.New("", "", ""),
			label:      "Exterior Window Sill Detail",
			wantScore:  0.20,
			wantReason: "",
		},
		{
			name:       "empty query specific label",
			q:          query.New("", "", ""),
			label:      "Soffit Insulation at External Beam",
			wantScore:  0.10,
			wantReason: "Note: Detail is specific to ['insulation']",
		},
		{
			name:       "exposure via synonym",
			q:          query.New("Window", "", "Outside"),
			label:      "Exterior Window Sill Detail",
			wantScore:  0.65,
			wantReason: "Host matches ['window']; Exposure matches",
		},
		{
			name:       "one of two functions missing",
			q:          query.New("Soffit", "", "Insulation Acoustic"),
			label:      "Soffit Insulation at External Beam",
			wantScore:  0.20,
			wantReason: "Host matches ['soffit']; Exposure matches; MISSING required function: ['acoustic']",
		},
		{
			name:       "garbage label",
			q:          query.New("Wall", "Slab", ""),
			label:      "!!!",
			wantScore:  0.20,
			wantReason: "",
		},
	}

	s := defaultScorer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, reason := s.Score(tc.q, tc.label)
			if score != tc.wantScore {
				t.Errorf("score = %v, want %v", score, tc.wantScore)
			}
			if reason != tc.wantReason {
				t.Errorf("reason:\ngot:  %q\nwant: %q", reason, tc.wantReason)
			}
		})
	}
}

func TestScore_CompatibilityCharacters(t *testing.T) {
	q := query.New("Core Shaft", "", "ﬁrestop")
	label := "Core-Shaft Wall to Slab Firestop"

	score, reason := defaultScorer().Score(q, label)
	if score != 0.45 {
		t.Errorf("score = %v, want 0.45", score)
	}
	if want := "Host matches ['core', 'shaft']; Note: Detail is specific to ['firestop']"; reason != want {
		t.Errorf("reason = %q, want %q", reason, want)
	}

	folded := NewScorer(vocabulary.Default().WithUnicodeFold(true))
	if score, _ := folded.Score(q, label); score != 0.65 {
		t.Errorf("folded score = %v, want 0.65", score)
	}
}

func TestScore_CoverageRoundsLikeDecimal(t *testing.T) {
	// One hit out of ten host tokens: 0.35*0.1 + 0.20 neutral.
	q := query.New("a b c d e f g h i wall", "", "")
	score, _ := defaultScorer().Score(q, "Wall")
	if score != 0.24 {
		t.Errorf("score = %v, want 0.24", score)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := defaultScorer()
	q := query.New("Basement Retaining Wall", "Foundation Footing", "Ground Earth")
	for _, label := range detail.DefaultCatalog() {
		score, reason := s.Score(q, label)
		for i := 0; i < 20; i++ {
			s2, r2 := s.Score(q, label)
			if s2 != score || r2 != reason {
				t.Fatalf("non-deterministic score for %q: (%v, %q) vs (%v, %q)", label, score, reason, s2, r2)
			}
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	words := []string{
		"", "Wall", "External Wall", "Slab", "Waterproofing", "Firestop Acoustic",
		"Core-Shaft", "Exterior", "Foundation Footing", "Soffit Insulation", "!!!",
	}
	s := defaultScorer()
	for _, label := range detail.DefaultCatalog() {
		for _, h := range words {
			for _, a := range words {
				for _, e := range words {
					score, _ := s.Score(query.New(h, a, e), label)
					if score < 0 || score > 1 {
						t.Fatalf("score %v out of bounds for (%q, %q, %q) vs %q", score, h, a, e, label)
					}
					if cents := score * 100; math.Abs(cents-math.Round(cents)) > 1e-9 {
						t.Fatalf("score %v has more than two decimals", score)
					}
				}
			}
		}
	}
}

func TestScore_ExtraLabelTokensNotPenalized(t *testing.T) {
	s := defaultScorer()
	q := query.New("Window", "Sill", "")
	short, _ := s.Score(q, "Window Sill")
	long, _ := s.Score(q, "Exterior Window Sill Head Jamb Lintel Detail")
	if short != long {
		t.Errorf("extra label tokens changed the score: %v vs %v", short, long)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.7999999999999999, 0.8},
		{0.09999999999999998, 0.1},
		{0.175, 0.17},
		{0.125, 0.12},
		{0.44999999999999996, 0.45},
		{1, 1},
		{0, 0},
	}
	for _, tc := range tests {
		if got := round2(tc.in); got != tc.want {
			t.Errorf("round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
