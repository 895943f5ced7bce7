package scoring

import (
	"fmt"

	"psymetric/internal/domain"
	"psymetric/internal/itembank"
)

// MissingPolicy selects how a scorer treats required items that have no
// matching response. Strict is the safe default; lenient substitutes the
// scale midpoint and exists only as an explicit caller choice for partial
// assessments.
type MissingPolicy int

const (
	PolicyStrict MissingPolicy = iota
	PolicyLenient
)

func (p MissingPolicy) String() string {
	if p == PolicyLenient {
		return "lenient"
	}
	return "strict"
}

// ParsePolicy maps a wire-level policy name to a MissingPolicy. The empty
// string means strict.
func ParsePolicy(s string) (MissingPolicy, error) {
	switch s {
	case "", "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	default:
		return PolicyStrict, fmt.Errorf("unknown missing-response policy %q", s)
	}
}

type itemValue struct {
	item  domain.AssessmentItem
	value float64
}

// instrumentValues resolves the response set against one instrument's items.
// It rejects unknown item ids and out-of-range values, and applies the
// missing-response policy. Responses for other instruments in the same set
// are ignored, so one combined set can feed all three scorers.
func instrumentValues(bank *itembank.Bank, instrument domain.Instrument, responses domain.ResponseSet, policy MissingPolicy) ([]itemValue, error) {
	for id := range responses {
		if _, ok := bank.Item(id); !ok {
			return nil, &UnknownItemError{ItemID: id}
		}
	}

	items, err := bank.Items(instrument)
	if err != nil {
		return nil, err
	}

	values := make([]itemValue, 0, len(items))
	var missing []string
	for _, item := range items {
		v, ok := responses[item.ID]
		if !ok {
			if policy == PolicyLenient {
				values = append(values, itemValue{item: item, value: float64(item.ScaleMin+item.ScaleMax) / 2})
				continue
			}
			missing = append(missing, item.ID)
			continue
		}
		if v < float64(item.ScaleMin) || v > float64(item.ScaleMax) {
			return nil, &OutOfRangeError{ItemID: item.ID, Value: v, Min: item.ScaleMin, Max: item.ScaleMax}
		}
		values = append(values, itemValue{item: item, value: v})
	}
	if len(missing) > 0 {
		return nil, &IncompleteResponseError{MissingItemIDs: missing}
	}
	return values, nil
}
