package scoring

import (
	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

// TraitScorer aggregates five-dimension inventory responses into raw
// per-dimension means on the item's native scale.
type TraitScorer struct {
	bank *itembank.Bank
}

func NewTraitScorer(bank *itembank.Bank) *TraitScorer {
	return &TraitScorer{bank: bank}
}

// RawMeans applies the reverse-scoring transform where flagged, groups
// transformed values by dimension and returns the arithmetic mean per
// dimension.
func (s *TraitScorer) RawMeans(responses domain.ResponseSet, policy MissingPolicy) (map[string]float64, error) {
	values, err := instrumentValues(s.bank, domain.InstrumentTrait, responses, policy)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, iv := range values {
		v := iv.value
		if iv.item.ReverseScored {
			v = float64(iv.item.ScaleMax+iv.item.ScaleMin) - v
		}
		sums[iv.item.Dimension] += v
		counts[iv.item.Dimension]++
	}

	means := make(map[string]float64, len(sums))
	for dim, sum := range sums {
		means[dim] = sum / float64(counts[dim])
	}
	return means, nil
}
