package scoring

import (
	"testing"

	"psymetric/internal/domain"
)

func TestPercentileBoundaries(t *testing.T) {
	cases := []struct {
		z    float64
		want int
	}{
		{-3, 5},
		{-2, 5},
		{-1.95, 5}, // raw formula gives -4; floored at the z<=-2 endpoint
		{-1.5, 5},  // 15+(-1.5+1)*20 = 5
		{-1, 15},
		{-0.9, 15}, // raw formula gives 8; floored at the z=-1 endpoint
		{-0.5, 20}, // 35+(-0.5)*30
		{0, 35},    // boundary contract: exactly 35, not 50
		{0.5, 75},  // 65+0.5*20
		{1, 85},
		{1.5, 90}, // 85+(1.5-1)*10
		{2, 95},
		{2.7, 95},
	}
	for _, tc := range cases {
		if got := percentileFromZ(tc.z); got != tc.want {
			t.Errorf("percentileFromZ(%g) = %d, want %d", tc.z, got, tc.want)
		}
	}
}

func TestPercentileMonotonic(t *testing.T) {
	prev := 0
	for z := -4.0; z <= 4.0; z += 0.05 {
		p := percentileFromZ(z)
		if p < prev {
			t.Fatalf("percentile decreased at z=%g: %d < %d", z, p, prev)
		}
		if p < 1 || p > 99 {
			t.Fatalf("percentile out of range at z=%g: %d", z, p)
		}
		prev = p
	}
}

func TestNormalizerZeroZ(t *testing.T) {
	n := NewNormalizer([]domain.DimensionNorm{{Dimension: domain.DimOpenness, Mean: 3.0, SD: 0.5}})

	p, err := n.Percentile(domain.DimOpenness, 3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 35 {
		t.Fatalf("raw mean at population mean should map to 35, got %d", p)
	}
}

func TestNormalizerUnknownDimension(t *testing.T) {
	n := NewNormalizer(DefaultNorms())

	if _, err := n.Percentile("charisma", 3.0); err == nil {
		t.Fatal("expected error for unknown dimension")
	}
}

func TestNormalizerRawMeanMonotonic(t *testing.T) {
	n := NewNormalizer(DefaultNorms())

	prev := 0
	for mean := 1.0; mean <= 5.0; mean += 0.1 {
		p, err := n.Percentile(domain.DimExtraversion, mean)
		if err != nil {
			t.Fatalf("unexpected error at mean %g: %v", mean, err)
		}
		if p < prev {
			t.Fatalf("percentile decreased at mean %g: %d < %d", mean, p, prev)
		}
		prev = p
	}
}
