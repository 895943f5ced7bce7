package domain

// Instrument identifies one of the three questionnaires in the item bank.
type Instrument string

const (
	InstrumentTrait Instrument = "trait"
	InstrumentType  Instrument = "type"
	InstrumentStyle Instrument = "style"
)

// Trait inventory dimensions. Emotional stability is scored so that a high
// value means stable (neurotic-worded items carry the reverse flag).
const (
	DimOpenness           = "openness"
	DimConscientiousness  = "conscientiousness"
	DimExtraversion       = "extraversion"
	DimAgreeableness      = "agreeableness"
	DimEmotionalStability = "emotional_stability"
)

// Type instrument dichotomy axes, in code composition order.
const (
	AxisEI = "EI"
	AxisSN = "SN"
	AxisTF = "TF"
	AxisJP = "JP"
)

// Work-style factors. Order here is also the tie-break priority for the
// primary style.
const (
	StyleDriver     = "driver"
	StyleAnalytical = "analytical"
	StyleExpressive = "expressive"
	StyleAmiable    = "amiable"
)

// AssessmentItem is one question in the bank. Immutable after load.
type AssessmentItem struct {
	ID            string     `json:"id"`
	Instrument    Instrument `json:"instrument"`
	Dimension     string     `json:"dimension"`
	ReverseScored bool       `json:"reverse_scored,omitempty"`
	ScaleMin      int        `json:"scale_min"`
	ScaleMax      int        `json:"scale_max"`
}

// ResponseSet maps item id to the raw answer value. It is ephemeral input
// from the collection layer and is never persisted by the scoring core.
type ResponseSet map[string]float64

// DimensionNorm is static population reference data for one trait dimension.
type DimensionNorm struct {
	Dimension string  `json:"dimension"`
	Mean      float64 `json:"population_mean"`
	SD        float64 `json:"population_sd"`
}
