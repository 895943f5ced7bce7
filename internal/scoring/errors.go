package scoring

import (
	"fmt"
	"strings"
)

// UnknownItemError reports a response whose item id is absent from the bank.
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("response references unknown item %q", e.ItemID)
}

// OutOfRangeError reports a response value outside the item's scale bounds.
type OutOfRangeError struct {
	ItemID string
	Value  float64
	Min    int
	Max    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("response for item %q has value %g outside scale [%d,%d]", e.ItemID, e.Value, e.Min, e.Max)
}

// IncompleteResponseError reports required items with no matching response.
// MissingItemIDs preserves the bank's item order.
type IncompleteResponseError struct {
	MissingItemIDs []string
}

func (e *IncompleteResponseError) Error() string {
	return fmt.Sprintf("missing responses for items: %s", strings.Join(e.MissingItemIDs, ", "))
}
