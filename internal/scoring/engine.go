package scoring

import (
	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

// Engine bundles the three scorers, the normalizer and report assembly
// behind one facade. It holds only read-only configuration, so a single
// engine serves any number of concurrent scoring calls.
type Engine struct {
	bank       *itembank.Bank
	trait      *TraitScorer
	typ        *TypeScorer
	style      *StyleScorer
	normalizer *Normalizer
}

func NewEngine(bank *itembank.Bank, norms []domain.DimensionNorm) *Engine {
	return &Engine{
		bank:       bank,
		trait:      NewTraitScorer(bank),
		typ:        NewTypeScorer(bank),
		style:      NewStyleScorer(bank),
		normalizer: NewNormalizer(norms),
	}
}

func (e *Engine) BankVersion() string {
	return e.bank.Version()
}

// ScoreTrait runs the full trait pathway: raw means, percentile
// normalization and insight generation.
func (e *Engine) ScoreTrait(responses domain.ResponseSet, policy MissingPolicy) (*domain.TraitScoreResult, error) {
	means, err := e.trait.RawMeans(responses, policy)
	if err != nil {
		return nil, err
	}

	percentiles := make(map[string]int, len(means))
	for dim, mean := range means {
		p, err := e.normalizer.Percentile(dim, mean)
		if err != nil {
			return nil, err
		}
		percentiles[dim] = p
	}

	result := GenerateInsights(percentiles)
	return &result, nil
}

// ScoreType derives the four-letter type code. Always strict: forced-choice
// items have no neutral substitute.
func (e *Engine) ScoreType(responses domain.ResponseSet) (*domain.TypeCode, error) {
	return e.typ.Score(responses)
}

// ScoreStyle computes the four work-style factor scores and primary style.
func (e *Engine) ScoreStyle(responses domain.ResponseSet, policy MissingPolicy) (*domain.StyleProfile, error) {
	return e.style.Score(responses, policy)
}

// Assemble combines whichever results are available into one report value.
// Nil results simply leave their completion flag unset; assembling with no
// results yields a valid, all-flags-false report.
func (e *Engine) Assemble(trait *domain.TraitScoreResult, typeCode *domain.TypeCode, style *domain.StyleProfile) domain.PersonalityReport {
	return domain.PersonalityReport{
		BankVersion: e.bank.Version(),
		Trait:       trait,
		Type:        typeCode,
		Style:       style,
		Completed: domain.CompletionFlags{
			Trait: trait != nil,
			Type:  typeCode != nil,
			Style: style != nil,
		},
	}
}
