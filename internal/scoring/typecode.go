package scoring

import (
	"strings"

	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

// typeAxis fixes an axis's two poles. The first pole wins a net==0 tie, so
// the derived code is deterministic for every response set.
type typeAxis struct {
	name   string
	first  string
	second string
}

// Axis order here is the code composition order.
var typeAxes = []typeAxis{
	{name: domain.AxisEI, first: "E", second: "I"},
	{name: domain.AxisSN, first: "S", second: "N"},
	{name: domain.AxisTF, first: "T", second: "F"},
	{name: domain.AxisJP, first: "J", second: "P"},
}

// TypeScorer aggregates forced-choice responses into signed preference
// strengths and a four-letter code. A choice of 1 counts toward the axis's
// first pole, 2 toward the second. Forced-choice items have no defensible
// neutral value, so missing responses always fail regardless of the trait
// path's missing policy.
type TypeScorer struct {
	bank *itembank.Bank
}

func NewTypeScorer(bank *itembank.Bank) *TypeScorer {
	return &TypeScorer{bank: bank}
}

func (s *TypeScorer) Score(responses domain.ResponseSet) (*domain.TypeCode, error) {
	values, err := instrumentValues(s.bank, domain.InstrumentType, responses, PolicyStrict)
	if err != nil {
		return nil, err
	}

	net := make(map[string]int)
	total := make(map[string]int)
	for _, iv := range values {
		// Forced choice: only the exact poles are valid, fractional
		// values inside the scale bounds are still rejected.
		if iv.value != 1 && iv.value != 2 {
			return nil, &OutOfRangeError{ItemID: iv.item.ID, Value: iv.value, Min: iv.item.ScaleMin, Max: iv.item.ScaleMax}
		}
		total[iv.item.Dimension]++
		if iv.value == 1 {
			net[iv.item.Dimension]++
		} else {
			net[iv.item.Dimension]--
		}
	}

	strengths := make(map[string]float64, len(typeAxes))
	var code strings.Builder
	for _, axis := range typeAxes {
		n := net[axis.name]
		strengths[axis.name] = float64(n) / float64(total[axis.name]) * 100
		code.WriteString(axisPole(axis, n))
	}

	return &domain.TypeCode{Code: code.String(), Strengths: strengths}, nil
}

// axisPole selects the letter for an axis. A net of zero resolves to the
// first-listed pole, never randomly.
func axisPole(axis typeAxis, net int) string {
	if net >= 0 {
		return axis.first
	}
	return axis.second
}
