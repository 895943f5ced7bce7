package scoring

import (
	"math"
	"testing"

	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

func TestStyleRescale(t *testing.T) {
	bank := itembank.Default()
	scorer := NewStyleScorer(bank)

	cases := []struct {
		answer float64
		want   float64
	}{
		{1, 0},
		{3, 50},
		{5, 100},
	}
	for _, tc := range cases {
		responses := fullResponses(t, bank, domain.InstrumentStyle, constant(tc.answer))
		profile, err := scorer.Score(responses, PolicyStrict)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for factor, score := range profile.Scores {
			if math.Abs(score-tc.want) > 1e-9 {
				t.Errorf("answer %g: factor %s score = %g, want %g", tc.answer, factor, score, tc.want)
			}
		}
	}
}

func TestStylePrimaryIsMax(t *testing.T) {
	bank := itembank.Default()
	scorer := NewStyleScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentStyle, func(item domain.AssessmentItem) float64 {
		if item.Dimension == domain.StyleExpressive {
			return 5
		}
		return 2
	})

	profile, err := scorer.Score(responses, PolicyStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.PrimaryStyle != domain.StyleExpressive {
		t.Fatalf("primary style = %s, want %s", profile.PrimaryStyle, domain.StyleExpressive)
	}
}

func TestStyleTieBreakPriority(t *testing.T) {
	bank := itembank.Default()
	scorer := NewStyleScorer(bank)

	// Everything ties at the maximum; the fixed priority makes driver win.
	responses := fullResponses(t, bank, domain.InstrumentStyle, constant(4))
	profile, err := scorer.Score(responses, PolicyStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.PrimaryStyle != domain.StyleDriver {
		t.Fatalf("tied maximum resolved to %s, want %s", profile.PrimaryStyle, domain.StyleDriver)
	}

	// Analytical and amiable tie above the rest; analytical has priority.
	responses = fullResponses(t, bank, domain.InstrumentStyle, func(item domain.AssessmentItem) float64 {
		switch item.Dimension {
		case domain.StyleAnalytical, domain.StyleAmiable:
			return 5
		default:
			return 1
		}
	})
	profile, err = scorer.Score(responses, PolicyStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.PrimaryStyle != domain.StyleAnalytical {
		t.Fatalf("tied maximum resolved to %s, want %s", profile.PrimaryStyle, domain.StyleAnalytical)
	}
}
