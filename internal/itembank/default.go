package itembank

import (
	"fmt"

	"psymetric/internal/domain"
)

// DefaultVersion identifies the built-in bank.
const DefaultVersion = "builtin-2024.1"

// Default builds the built-in bank: 50 trait items (last 5 per dimension
// reverse-scored), 60 forced-choice type items, 24 style items.
func Default() *Bank {
	var items []domain.AssessmentItem

	traitDims, _ := Dimensions(domain.InstrumentTrait)
	for _, dim := range traitDims {
		for i := 1; i <= 10; i++ {
			items = append(items, domain.AssessmentItem{
				ID:            fmt.Sprintf("trait_%s_%02d", dim, i),
				Instrument:    domain.InstrumentTrait,
				Dimension:     dim,
				ReverseScored: i > 5,
				ScaleMin:      1,
				ScaleMax:      5,
			})
		}
	}

	typeAxes, _ := Dimensions(domain.InstrumentType)
	for _, axis := range typeAxes {
		for i := 1; i <= 15; i++ {
			items = append(items, domain.AssessmentItem{
				ID:         fmt.Sprintf("type_%s_%02d", axis, i),
				Instrument: domain.InstrumentType,
				Dimension:  axis,
				ScaleMin:   1,
				ScaleMax:   2,
			})
		}
	}

	styleFactors, _ := Dimensions(domain.InstrumentStyle)
	for _, factor := range styleFactors {
		for i := 1; i <= 6; i++ {
			items = append(items, domain.AssessmentItem{
				ID:         fmt.Sprintf("style_%s_%02d", factor, i),
				Instrument: domain.InstrumentStyle,
				Dimension:  factor,
				ScaleMin:   1,
				ScaleMax:   5,
			})
		}
	}

	bank, err := New(DefaultVersion, items)
	if err != nil {
		// The built-in bank is generated against the shapes above; a
		// failure here is a programming error, not runtime input.
		panic(err)
	}
	return bank
}
