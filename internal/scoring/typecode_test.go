package scoring

import (
	"errors"
	"strings"
	"testing"

	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

func TestTypeCodeAllFirstPoles(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTypeScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentType, constant(1))
	code, err := scorer.Score(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code.Code != "ESTJ" {
		t.Fatalf("expected ESTJ, got %s", code.Code)
	}
	for axis, strength := range code.Strengths {
		if strength != 100 {
			t.Errorf("axis %s strength = %g, want 100", axis, strength)
		}
	}
}

func TestTypeCodeAllSecondPoles(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTypeScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentType, constant(2))
	code, err := scorer.Score(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code.Code != "INFP" {
		t.Fatalf("expected INFP, got %s", code.Code)
	}
	for axis, strength := range code.Strengths {
		if strength != -100 {
			t.Errorf("axis %s strength = %g, want -100", axis, strength)
		}
	}
}

func TestTypeCodeDeterministic(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTypeScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentType, func(item domain.AssessmentItem) float64 {
		if strings.HasSuffix(item.ID, "3") || strings.HasSuffix(item.ID, "7") {
			return 2
		}
		return 1
	})

	first, err := scorer.Score(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := scorer.Score(responses)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Code != first.Code {
			t.Fatalf("code changed between runs: %s vs %s", again.Code, first.Code)
		}
	}
}

func TestTypeCodeStrengthRange(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTypeScorer(bank)

	// 8 first-pole vs 7 second-pole answers per axis: net 1 of 15.
	count := make(map[string]int)
	responses := fullResponses(t, bank, domain.InstrumentType, func(item domain.AssessmentItem) float64 {
		count[item.Dimension]++
		if count[item.Dimension] <= 8 {
			return 1
		}
		return 2
	})

	code, err := scorer.Score(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code.Code != "ESTJ" {
		t.Fatalf("expected ESTJ, got %s", code.Code)
	}
	want := 1.0 / 15.0 * 100
	for axis, strength := range code.Strengths {
		if diff := strength - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("axis %s strength = %g, want %g", axis, strength, want)
		}
	}
}

func TestTypeCodeTieResolvesToFirstPole(t *testing.T) {
	// With 15 items per axis a complete set cannot tie, but the policy
	// must still be fixed: zero net always picks the first-listed pole.
	for _, axis := range typeAxes {
		if got := axisPole(axis, 0); got != axis.first {
			t.Errorf("axis %s tie resolved to %s, want %s", axis.name, got, axis.first)
		}
		if got := axisPole(axis, -1); got != axis.second {
			t.Errorf("axis %s net=-1 resolved to %s, want %s", axis.name, got, axis.second)
		}
	}
}

func TestTypeCodeMissingResponseFails(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTypeScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentType, constant(1))
	delete(responses, "type_EI_05")

	_, err := scorer.Score(responses)
	var incomplete *IncompleteResponseError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteResponseError, got %v", err)
	}
}

func TestTypeCodeFractionalChoiceRejected(t *testing.T) {
	bank := itembank.Default()
	scorer := NewTypeScorer(bank)

	responses := fullResponses(t, bank, domain.InstrumentType, constant(1))
	responses["type_TF_01"] = 1.5

	_, err := scorer.Score(responses)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
}
