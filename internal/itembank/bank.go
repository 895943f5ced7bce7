package itembank

import (
	"errors"
	"fmt"

	"psymetric/internal/domain"
)

// ErrUnknownInstrument is returned when an instrument name is not in the bank.
var ErrUnknownInstrument = errors.New("unknown instrument")

// expectedShape pins the item counts each instrument must carry. Validation
// rejects banks that do not match, so scorers never have to re-check counts.
type instrumentShape struct {
	dimensions    []string
	itemsPerDim   int
	scaleMin      int
	scaleMax      int
	allowReversed bool
}

var instrumentShapes = map[domain.Instrument]instrumentShape{
	domain.InstrumentTrait: {
		dimensions: []string{
			domain.DimOpenness,
			domain.DimConscientiousness,
			domain.DimExtraversion,
			domain.DimAgreeableness,
			domain.DimEmotionalStability,
		},
		itemsPerDim:   10,
		scaleMin:      1,
		scaleMax:      5,
		allowReversed: true,
	},
	domain.InstrumentType: {
		dimensions:  []string{domain.AxisEI, domain.AxisSN, domain.AxisTF, domain.AxisJP},
		itemsPerDim: 15,
		scaleMin:    1,
		scaleMax:    2,
	},
	domain.InstrumentStyle: {
		dimensions:  []string{domain.StyleDriver, domain.StyleAnalytical, domain.StyleExpressive, domain.StyleAmiable},
		itemsPerDim: 6,
		scaleMin:    1,
		scaleMax:    5,
	},
}

// Bank is an immutable, versioned catalog of assessment items. Build it once
// at startup and share it freely; concurrent reads need no locking.
type Bank struct {
	version string
	items   map[domain.Instrument][]domain.AssessmentItem
	byID    map[string]domain.AssessmentItem
}

// New validates the item list against the expected instrument shapes and
// returns a read-only bank.
func New(version string, items []domain.AssessmentItem) (*Bank, error) {
	if version == "" {
		return nil, errors.New("item bank version is required")
	}

	b := &Bank{
		version: version,
		items:   make(map[domain.Instrument][]domain.AssessmentItem),
		byID:    make(map[string]domain.AssessmentItem, len(items)),
	}

	perDim := make(map[domain.Instrument]map[string]int)
	for _, item := range items {
		shape, ok := instrumentShapes[item.Instrument]
		if !ok {
			return nil, fmt.Errorf("item %s: %w: %q", item.ID, ErrUnknownInstrument, item.Instrument)
		}
		if item.ID == "" {
			return nil, fmt.Errorf("item with empty id in instrument %q", item.Instrument)
		}
		if _, dup := b.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %s", item.ID)
		}
		if !containsDimension(shape.dimensions, item.Dimension) {
			return nil, fmt.Errorf("item %s: dimension %q not valid for instrument %q", item.ID, item.Dimension, item.Instrument)
		}
		if item.ScaleMin != shape.scaleMin || item.ScaleMax != shape.scaleMax {
			return nil, fmt.Errorf("item %s: scale [%d,%d] does not match instrument %q scale [%d,%d]",
				item.ID, item.ScaleMin, item.ScaleMax, item.Instrument, shape.scaleMin, shape.scaleMax)
		}
		if item.ReverseScored && !shape.allowReversed {
			return nil, fmt.Errorf("item %s: reverse scoring not allowed for instrument %q", item.ID, item.Instrument)
		}

		b.byID[item.ID] = item
		b.items[item.Instrument] = append(b.items[item.Instrument], item)
		if perDim[item.Instrument] == nil {
			perDim[item.Instrument] = make(map[string]int)
		}
		perDim[item.Instrument][item.Dimension]++
	}

	for instrument, shape := range instrumentShapes {
		for _, dim := range shape.dimensions {
			if got := perDim[instrument][dim]; got != shape.itemsPerDim {
				return nil, fmt.Errorf("instrument %q dimension %q has %d items, want %d",
					instrument, dim, got, shape.itemsPerDim)
			}
		}
	}

	return b, nil
}

// Version returns the bank version string.
func (b *Bank) Version() string {
	return b.version
}

// Items returns the ordered item list for an instrument.
func (b *Bank) Items(instrument domain.Instrument) ([]domain.AssessmentItem, error) {
	items, ok := b.items[instrument]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, instrument)
	}
	return items, nil
}

// Item looks up a single item by id.
func (b *Bank) Item(id string) (domain.AssessmentItem, bool) {
	item, ok := b.byID[id]
	return item, ok
}

// Dimensions returns the fixed dimension order for an instrument.
func Dimensions(instrument domain.Instrument) ([]string, error) {
	shape, ok := instrumentShapes[instrument]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, instrument)
	}
	return shape.dimensions, nil
}

func containsDimension(dims []string, dim string) bool {
	for _, d := range dims {
		if d == dim {
			return true
		}
	}
	return false
}
