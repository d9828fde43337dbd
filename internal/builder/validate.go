package builder

import "strategy-builder/internal/models"

// Validation failure messages, in declaration order. Validate returns
// messages in exactly this order; callers surface the full list and
// never suppress or reorder it.
const (
	MsgNameRequired            = "Strategy name is required"
	MsgSymbolRequired          = "Instrument symbol is required"
	MsgOrderTypeRequired       = "Order type is required"
	MsgProductTypeRequired     = "Product type is required"
	MsgEntryConditionRequired  = "At least one entry condition is required"
	MsgLongComparatorRequired  = "Long entry comparator is required"
	MsgShortComparatorRequired = "Short entry comparator is required"
	MsgStartTimeRequired       = "Start time is required"
	MsgSquareOffTimeRequired   = "Square-off time is required"
	MsgCodeRequired            = "Strategy code is required"
	MsgStopLossRequired        = "Stop loss is required"
	MsgTakeProfitRequired      = "Take profit is required"
	MsgPositionSizeRequired    = "Position size is required"
)

// Validate checks a draft and returns the ordered list of user-facing
// failure messages. An empty list is the sole precondition for assembly.
// The function is pure: it never mutates the draft.
func Validate(d StrategyDraft) []string {
	var failures []string

	if d.Name == "" {
		failures = append(failures, MsgNameRequired)
	}
	if d.Symbol == "" {
		failures = append(failures, MsgSymbolRequired)
	}

	switch d.StrategyType {
	case models.StrategyTimeBased:
		failures = append(failures, validateTimeBased(d)...)
	case models.StrategyIndicatorBased:
		failures = append(failures, validateIndicatorBased(d)...)
	case models.StrategyProgramming:
		failures = append(failures, validateProgramming(d)...)
	}

	return failures
}

func validateTimeBased(d StrategyDraft) []string {
	var failures []string
	if d.OrderType == "" {
		failures = append(failures, MsgOrderTypeRequired)
	}
	if d.ProductType == "" {
		failures = append(failures, MsgProductTypeRequired)
	}
	return failures
}

func validateIndicatorBased(d StrategyDraft) []string {
	var failures []string

	longEnabled := d.TransactionType != models.TransactionOnlyShort
	shortEnabled := d.TransactionType != models.TransactionOnlyLong

	cond := d.Condition
	hasLongEntry := cond.LongPrimary != nil
	hasShortEntry := cond.ShortPrimary != nil

	satisfied := (longEnabled && hasLongEntry) || (shortEnabled && hasShortEntry)
	if !satisfied {
		failures = append(failures, MsgEntryConditionRequired)
	}

	if (cond.LongPrimary != nil || cond.LongSecondary != nil) && cond.LongComparator == "" {
		failures = append(failures, MsgLongComparatorRequired)
	}
	if (cond.ShortPrimary != nil || cond.ShortSecondary != nil) && cond.ShortComparator == "" {
		failures = append(failures, MsgShortComparatorRequired)
	}

	if d.StartTime == "" {
		failures = append(failures, MsgStartTimeRequired)
	}
	if d.SquareOffTime == "" {
		failures = append(failures, MsgSquareOffTimeRequired)
	}

	return failures
}

func validateProgramming(d StrategyDraft) []string {
	var failures []string
	if d.Code == "" {
		failures = append(failures, MsgCodeRequired)
	}
	if d.Risk.StopLoss == 0 {
		failures = append(failures, MsgStopLossRequired)
	}
	if d.Risk.TakeProfit == 0 {
		failures = append(failures, MsgTakeProfitRequired)
	}
	if d.Risk.PositionSize == 0 {
		failures = append(failures, MsgPositionSizeRequired)
	}
	return failures
}
