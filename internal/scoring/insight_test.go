package scoring

import (
	"strings"
	"testing"

	"psymetric/internal/domain"
)

func allPercentiles(v int) map[string]int {
	return map[string]int{
		domain.DimOpenness:           v,
		domain.DimConscientiousness:  v,
		domain.DimExtraversion:       v,
		domain.DimAgreeableness:      v,
		domain.DimEmotionalStability: v,
	}
}

func TestInsightBands(t *testing.T) {
	cases := []struct {
		percentile int
		want       band
	}{
		{1, bandLow},
		{34, bandLow},
		{35, bandModerate},
		{50, bandModerate},
		{64, bandModerate},
		{65, bandHigh},
		{99, bandHigh},
	}
	for _, tc := range cases {
		if got := bandFor(tc.percentile); got != tc.want {
			t.Errorf("bandFor(%d) = %v, want %v", tc.percentile, got, tc.want)
		}
	}
}

func TestInsightStrengthsAndChallenges(t *testing.T) {
	percentiles := map[string]int{
		domain.DimOpenness:           80,
		domain.DimConscientiousness:  20,
		domain.DimExtraversion:       50,
		domain.DimAgreeableness:      70,
		domain.DimEmotionalStability: 30,
	}
	result := GenerateInsights(percentiles)

	if len(result.Strengths) != 2 {
		t.Fatalf("expected 2 strengths, got %d: %v", len(result.Strengths), result.Strengths)
	}
	// Fixed priority order: openness before agreeableness.
	if result.Strengths[0] != strengthTexts[domain.DimOpenness] {
		t.Errorf("first strength = %q, want openness text", result.Strengths[0])
	}
	if len(result.Challenges) != 2 {
		t.Fatalf("expected 2 challenges, got %d: %v", len(result.Challenges), result.Challenges)
	}
	if result.Challenges[0] != challengeTexts[domain.DimConscientiousness] {
		t.Errorf("first challenge = %q, want conscientiousness text", result.Challenges[0])
	}
	if len(result.Descriptions) != 5 {
		t.Fatalf("expected 5 descriptions, got %d", len(result.Descriptions))
	}
}

func TestInsightTruncation(t *testing.T) {
	result := GenerateInsights(allPercentiles(90))

	if len(result.Strengths) != 5 {
		t.Fatalf("expected truncation to 5 strengths, got %d", len(result.Strengths))
	}
	if len(result.Challenges) != 0 {
		t.Fatalf("expected no challenges, got %v", result.Challenges)
	}
	// Truncation keeps the fixed priority prefix, never a re-sort.
	for i, dim := range traitPriority {
		if result.Strengths[i] != strengthTexts[dim] {
			t.Errorf("strength %d = %q, want %s text", i, result.Strengths[i], dim)
		}
	}
}

func TestInsightSummaryTopTwo(t *testing.T) {
	percentiles := map[string]int{
		domain.DimOpenness:           40,
		domain.DimConscientiousness:  90,
		domain.DimExtraversion:       10,
		domain.DimAgreeableness:      30,
		domain.DimEmotionalStability: 85,
	}
	result := GenerateInsights(percentiles)

	want := summaryPairTemplates[[2]string{domain.DimConscientiousness, domain.DimEmotionalStability}]
	if !strings.Contains(result.Summary, want) {
		t.Fatalf("summary %q missing top-2 template %q", result.Summary, want)
	}
}

func TestInsightSummaryTieUsesPriority(t *testing.T) {
	// All equal: the two highest by priority order are openness and
	// conscientiousness.
	result := GenerateInsights(allPercentiles(50))

	want := summaryPairTemplates[[2]string{domain.DimOpenness, domain.DimConscientiousness}]
	if !strings.Contains(result.Summary, want) {
		t.Fatalf("summary %q missing tie-break template %q", result.Summary, want)
	}
}

func TestInsightTablesComplete(t *testing.T) {
	for _, dim := range traitPriority {
		for _, b := range []band{bandLow, bandModerate, bandHigh} {
			if traitDescriptions[dim][b] == "" {
				t.Errorf("missing description for %s band %v", dim, b)
			}
			if implicationTexts[dim][b] == "" {
				t.Errorf("missing implication for %s band %v", dim, b)
			}
		}
		if strengthTexts[dim] == "" || challengeTexts[dim] == "" {
			t.Errorf("missing strength/challenge text for %s", dim)
		}
	}
	for i, a := range traitPriority {
		for _, b := range traitPriority[i+1:] {
			if summaryPairTemplates[[2]string{a, b}] == "" {
				t.Errorf("missing summary template for pair (%s, %s)", a, b)
			}
		}
	}
}
