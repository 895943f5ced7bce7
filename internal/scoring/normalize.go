package scoring

import (
	"fmt"
	"math"

	"psymetric/internal/domain"
)

// percentileBand is one row of the piecewise-linear z-to-percentile table:
// for z <= upper, percentile = base + (z - pivot) * slope. Rows are evaluated
// top-down; anything above the last row maps to the ceiling value.
type percentileBand struct {
	upper float64
	base  float64
	pivot float64
	slope float64
}

// percentileBands is a documented approximation of a normal-CDF inversion,
// not a statistics-library substitute. The boundary values are part of the
// contract: z=0 maps to 35 exactly.
var percentileBands = []percentileBand{
	{upper: -2, base: 5, pivot: 0, slope: 0},
	{upper: -1, base: 15, pivot: -1, slope: 20},
	{upper: 0, base: 35, pivot: 0, slope: 30},
	{upper: 1, base: 65, pivot: 0, slope: 20},
	{upper: 2, base: 85, pivot: 1, slope: 10},
}

const percentileCeiling = 95

// Normalizer converts raw trait means into population-relative percentiles.
type Normalizer struct {
	norms map[string]domain.DimensionNorm
}

func NewNormalizer(norms []domain.DimensionNorm) *Normalizer {
	m := make(map[string]domain.DimensionNorm, len(norms))
	for _, n := range norms {
		m[n.Dimension] = n
	}
	return &Normalizer{norms: m}
}

// Percentile maps a raw dimension mean to an integer percentile in [1,99].
// Pure function of its inputs; identical inputs always yield the same result.
func (n *Normalizer) Percentile(dimension string, rawMean float64) (int, error) {
	norm, ok := n.norms[dimension]
	if !ok {
		return 0, fmt.Errorf("no population norm for dimension %q", dimension)
	}
	if norm.SD <= 0 {
		return 0, fmt.Errorf("population norm for dimension %q has non-positive sd", dimension)
	}

	z := (rawMean - norm.Mean) / norm.SD
	return percentileFromZ(z), nil
}

func percentileFromZ(z float64) int {
	// Each band's linear formula dips below the previous band's endpoint
	// near the segment's lower edge (e.g. just above z=-2 the raw formula
	// yields -4, under the 5 returned at z<=-2). A running floor at the
	// previous band's endpoint keeps the mapping monotonic without moving
	// any of the contract values at the boundaries themselves.
	p := float64(percentileCeiling)
	floor := 0.0
	for _, band := range percentileBands {
		if z <= band.upper {
			p = band.base + (z-band.pivot)*band.slope
			if p < floor {
				p = floor
			}
			break
		}
		floor = band.base + (band.upper-band.pivot)*band.slope
	}
	rounded := int(math.Round(p))
	if rounded < 1 {
		return 1
	}
	if rounded > 99 {
		return 99
	}
	return rounded
}

// DefaultNorms is the static reference table for the built-in trait bank.
// Means and deviations are on the native 1-5 scale.
func DefaultNorms() []domain.DimensionNorm {
	return []domain.DimensionNorm{
		{Dimension: domain.DimOpenness, Mean: 3.3, SD: 0.6},
		{Dimension: domain.DimConscientiousness, Mean: 3.4, SD: 0.6},
		{Dimension: domain.DimExtraversion, Mean: 3.0, SD: 0.7},
		{Dimension: domain.DimAgreeableness, Mean: 3.5, SD: 0.5},
		{Dimension: domain.DimEmotionalStability, Mean: 3.1, SD: 0.7},
	}
}
