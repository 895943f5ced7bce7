package scoring

import (
	"testing"

	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

// fullResponses builds a complete response set for one instrument using fn
// to pick each item's value.
func fullResponses(t *testing.T, bank *itembank.Bank, instrument domain.Instrument, fn func(domain.AssessmentItem) float64) domain.ResponseSet {
	t.Helper()
	items, err := bank.Items(instrument)
	if err != nil {
		t.Fatalf("bank items: %v", err)
	}
	responses := make(domain.ResponseSet, len(items))
	for _, item := range items {
		responses[item.ID] = fn(item)
	}
	return responses
}

func constant(v float64) func(domain.AssessmentItem) float64 {
	return func(domain.AssessmentItem) float64 { return v }
}
