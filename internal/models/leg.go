package models

// OptionType represents the option contract type of a leg.
type OptionType string

const (
	OptionCall OptionType = "CE"
	OptionPut  OptionType = "PE"
)

// ExpiryBucket represents the expiry series a leg trades.
type ExpiryBucket string

const (
	ExpiryWeekly     ExpiryBucket = "weekly"
	ExpiryNextWeekly ExpiryBucket = "next_weekly"
	ExpiryMonthly    ExpiryBucket = "monthly"
)

// StrikeMode determines how a leg's strike is selected.
type StrikeMode string

const (
	StrikeModePoints     StrikeMode = "points"
	StrikeModePercent    StrikeMode = "percent"
	StrikeModePrice      StrikeMode = "price"
	StrikeModePriceAbove StrikeMode = "price>="
	StrikeModePriceBelow StrikeMode = "price<="
)

// IsPriceMode reports whether the mode selects the strike by premium
// price instead of an offset ladder.
func (m StrikeMode) IsPriceMode() bool {
	return m == StrikeModePrice || m == StrikeModePriceAbove || m == StrikeModePriceBelow
}

// RiskValueType represents how a stop-loss or take-profit value is
// expressed.
type RiskValueType string

const (
	RiskValuePercent RiskValueType = "percent"
	RiskValuePoints  RiskValueType = "points"
)

// TriggerBasis represents the price observation that trips a risk rule.
type TriggerBasis string

const (
	BasisPriceTouch  TriggerBasis = "price"
	BasisCandleClose TriggerBasis = "close"
)

// RiskRule is one stop-loss or take-profit rule.
type RiskRule struct {
	Type  RiskValueType `json:"type"`
	Value float64       `json:"value"`
	Basis TriggerBasis  `json:"basis"`
}

// WaitAndTradeRule delays entry until price moves by the given offset.
type WaitAndTradeRule struct {
	Type  RiskValueType `json:"type"`
	Value float64       `json:"value"`
}

// ReEntryRule re-enters a stopped-out leg up to MaxCount times.
type ReEntryRule struct {
	Mode     string `json:"mode"` // re_asap, re_cost
	MaxCount int    `json:"max_count"`
}

// TrailingStopRule trails a leg's protective stop as profit grows.
type TrailingStopRule struct {
	Type    RiskValueType `json:"type"`
	MoveBy  float64       `json:"move_by"`
	TrailBy float64       `json:"trail_by"`
}

// OrderLeg is one order within a multi-leg option strategy. IDs are
// unique and strictly increasing within a strategy.
type OrderLeg struct {
	ID              int               `json:"id"`
	Action          OrderSide         `json:"action"`
	Quantity        int               `json:"quantity"`
	OptionType      OptionType        `json:"option_type"`
	Expiry          ExpiryBucket      `json:"expiry"`
	StrikeMode      StrikeMode        `json:"strike_mode"`
	StrikeSelection string            `json:"strike_selection,omitempty"`
	CustomPrice     float64           `json:"custom_price,omitempty"`
	StopLoss        RiskRule          `json:"stop_loss"`
	TakeProfit      RiskRule          `json:"take_profit"`
	WaitAndTrade    *WaitAndTradeRule `json:"wait_and_trade,omitempty"`
	ReEntry         *ReEntryRule      `json:"re_entry,omitempty"`
	TrailingStop    *TrailingStopRule `json:"trailing_stop,omitempty"`
}

// Clone returns a deep copy of the leg, keeping the same ID.
func (l OrderLeg) Clone() OrderLeg {
	c := l
	if l.WaitAndTrade != nil {
		w := *l.WaitAndTrade
		c.WaitAndTrade = &w
	}
	if l.ReEntry != nil {
		r := *l.ReEntry
		c.ReEntry = &r
	}
	if l.TrailingStop != nil {
		t := *l.TrailingStop
		c.TrailingStop = &t
	}
	return c
}
