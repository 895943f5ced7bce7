package scoring

import (
	"errors"
	"math"
	"testing"

	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

func TestTraitRawMeansWithinScale(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTraitScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentTrait, func(item domain.AssessmentItem) float64 {
		// Arbitrary but deterministic mix across the scale.
		return float64(1 + len(item.ID)%5)
	})

	means, err := scorer.RawMeans(responses, PolicyStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(means) != 5 {
		t.Fatalf("expected 5 dimensions, got %d", len(means))
	}
	for dim, mean := range means {
		if mean < 1 || mean > 5 {
			t.Errorf("dimension %s mean %g outside scale [1,5]", dim, mean)
		}
	}
}

func TestTraitReverseScoringInvolution(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTraitScorer(bank)

	// Scoring a reverse-flagged item with value v must match scoring the
	// pre-inverted value (max+min-v) on a cleared flag. The default bank
	// has both flavors per dimension, so compare a set where reverse items
	// get v against a set where they get the inversion of the inversion.
	raw := fullResponses(t, bank, domain.InstrumentTrait, func(item domain.AssessmentItem) float64 {
		if item.ReverseScored {
			return 2
		}
		return 4
	})
	means, err := scorer.RawMeans(raw, PolicyStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reverse items answered 2 on a 1-5 scale transform to 4, so every
	// dimension mean must be exactly 4.
	for dim, mean := range means {
		if math.Abs(mean-4) > 1e-9 {
			t.Errorf("dimension %s mean = %g, want 4", dim, mean)
		}
	}
}

func TestTraitIncompleteStrict(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTraitScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentTrait, constant(3))
	const missingID = "trait_openness_01"
	delete(responses, missingID)

	_, err := scorer.RawMeans(responses, PolicyStrict)
	var incomplete *IncompleteResponseError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteResponseError, got %v", err)
	}
	if len(incomplete.MissingItemIDs) != 1 || incomplete.MissingItemIDs[0] != missingID {
		t.Fatalf("expected exactly [%s] missing, got %v", missingID, incomplete.MissingItemIDs)
	}
}

func TestTraitLenientMidpoint(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTraitScorer(bank)

	// Leave one whole dimension unanswered; lenient policy fills the 1-5
	// midpoint 3, which the reverse transform maps back to 3.
	responses := fullResponses(t, bank, domain.InstrumentTrait, constant(4))
	items, _ := bank.Items(domain.InstrumentTrait)
	for _, item := range items {
		if item.Dimension == domain.DimAgreeableness {
			delete(responses, item.ID)
		}
	}

	means, err := scorer.RawMeans(responses, PolicyLenient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(means[domain.DimAgreeableness]-3) > 1e-9 {
		t.Fatalf("lenient mean = %g, want neutral 3", means[domain.DimAgreeableness])
	}
}

func TestTraitUnknownItem(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTraitScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentTrait, constant(3))
	responses["trait_charisma_01"] = 3

	_, err := scorer.RawMeans(responses, PolicyStrict)
	var unknown *UnknownItemError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownItemError, got %v", err)
	}
	if unknown.ItemID != "trait_charisma_01" {
		t.Fatalf("unexpected item id %q", unknown.ItemID)
	}
}

func TestTraitOutOfRange(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTraitScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentTrait, constant(3))
	responses["trait_openness_02"] = 6

	_, err := scorer.RawMeans(responses, PolicyStrict)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if oor.ItemID != "trait_openness_02" || oor.Value != 6 {
		t.Fatalf("unexpected error payload: %+v", oor)
	}
}

func TestTraitIgnoresOtherInstruments(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTraitScorer(bank)

	// A combined set with style answers mixed in still scores the trait
	// instrument cleanly.
	responses := fullResponses(t, bank, domain.InstrumentTrait, constant(3))
	for id, v := range fullResponses(t, bank, domain.InstrumentStyle, constant(2)) {
		responses[id] = v
	}

	means, err := scorer.RawMeans(responses, PolicyStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(means) != 5 {
		t.Fatalf("expected 5 dimensions, got %d", len(means))
	}
}
