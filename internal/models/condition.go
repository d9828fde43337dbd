package models

// Comparator is the relational operator joining two indicator values in
// an entry condition.
type Comparator string

const (
	ComparatorCrossesAbove Comparator = "crosses_above"
	ComparatorCrossesBelow Comparator = "crosses_below"
	ComparatorLessThan     Comparator = "less_than"
	ComparatorHigherThan   Comparator = "higher_than"
	ComparatorEqual        Comparator = "equal"
)

// comparatorComplement maps each comparator to its logical opposite. A
// long-entry rule and a short-entry rule over the same indicator pair are
// opposites, so the two sides of a condition block always hold
// complementary comparators.
var comparatorComplement = map[Comparator]Comparator{
	ComparatorCrossesAbove: ComparatorCrossesBelow,
	ComparatorCrossesBelow: ComparatorCrossesAbove,
	ComparatorLessThan:     ComparatorHigherThan,
	ComparatorHigherThan:   ComparatorLessThan,
	ComparatorEqual:        ComparatorEqual,
}

// Complement returns the logical opposite of the comparator. The mapping
// is an involution: c.Complement().Complement() == c.
func (c Comparator) Complement() Comparator {
	if opp, ok := comparatorComplement[c]; ok {
		return opp
	}
	return c
}

// Valid reports whether the comparator is one of the known primitives.
func (c Comparator) Valid() bool {
	_, ok := comparatorComplement[c]
	return ok
}

// Comparators returns the known comparator primitives.
func Comparators() []Comparator {
	return []Comparator{
		ComparatorCrossesAbove,
		ComparatorCrossesBelow,
		ComparatorLessThan,
		ComparatorHigherThan,
		ComparatorEqual,
	}
}

// SlotID identifies one of the four fixed indicator slots of a condition
// block.
type SlotID string

const (
	SlotLongPrimary    SlotID = "long_primary"
	SlotLongSecondary  SlotID = "long_secondary"
	SlotShortPrimary   SlotID = "short_primary"
	SlotShortSecondary SlotID = "short_secondary"
)

// IsLong reports whether the slot belongs to the long side.
func (s SlotID) IsLong() bool {
	return s == SlotLongPrimary || s == SlotLongSecondary
}

// SelectedIndicator binds an indicator to a slot together with its
// resolved parameter values. The key set of Parameters always equals the
// parameter name set of the owning indicator definition.
type SelectedIndicator struct {
	IndicatorID string         `json:"indicator_id"`
	Parameters  map[string]any `json:"parameters"`
}

// Clone returns a deep copy of the selection.
func (s *SelectedIndicator) Clone() *SelectedIndicator {
	if s == nil {
		return nil
	}
	params := make(map[string]any, len(s.Parameters))
	for k, v := range s.Parameters {
		params[k] = v
	}
	return &SelectedIndicator{IndicatorID: s.IndicatorID, Parameters: params}
}

// ConditionBlock is one assembled entry-condition group: up to four
// indicator slots plus the complementary comparator pair.
type ConditionBlock struct {
	LongPrimary     *SelectedIndicator `json:"long_primary,omitempty"`
	LongSecondary   *SelectedIndicator `json:"long_secondary,omitempty"`
	ShortPrimary    *SelectedIndicator `json:"short_primary,omitempty"`
	ShortSecondary  *SelectedIndicator `json:"short_secondary,omitempty"`
	LongComparator  Comparator         `json:"long_comparator,omitempty"`
	ShortComparator Comparator         `json:"short_comparator,omitempty"`
}
