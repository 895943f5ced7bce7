package scoring

import (
	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

// stylePriority is the fixed tie-break order for the primary style: when two
// or more factors tie at the maximum, the earliest factor here wins.
var stylePriority = []string{
	domain.StyleDriver,
	domain.StyleAnalytical,
	domain.StyleExpressive,
	domain.StyleAmiable,
}

// StyleScorer aggregates 1-5 Likert responses into 0-100 factor scores and a
// primary style. No reverse-scoring in this instrument.
type StyleScorer struct {
	bank *itembank.Bank
}

func NewStyleScorer(bank *itembank.Bank) *StyleScorer {
	return &StyleScorer{bank: bank}
}

func (s *StyleScorer) Score(responses domain.ResponseSet, policy MissingPolicy) (*domain.StyleProfile, error) {
	values, err := instrumentValues(s.bank, domain.InstrumentStyle, responses, policy)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, iv := range values {
		sums[iv.item.Dimension] += iv.value
		counts[iv.item.Dimension]++
	}

	scores := make(map[string]float64, len(sums))
	for factor, sum := range sums {
		raw := sum / float64(counts[factor])
		scores[factor] = (raw - 1) / 4 * 100
	}

	primary := stylePriority[0]
	best := scores[primary]
	for _, factor := range stylePriority[1:] {
		if scores[factor] > best {
			primary = factor
			best = scores[factor]
		}
	}

	return &domain.StyleProfile{Scores: scores, PrimaryStyle: primary}, nil
}
