// Package models provides domain models for the strategy builder.
package models

// StrategyType represents the kind of strategy being authored.
type StrategyType string

const (
	StrategyTimeBased      StrategyType = "time_based"
	StrategyIndicatorBased StrategyType = "indicator_based"
	StrategyProgramming    StrategyType = "programming"
)

// AssetType represents the instrument class a strategy trades.
type AssetType string

const (
	AssetOptions AssetType = "options"
	AssetFutures AssetType = "futures"
	AssetEquity  AssetType = "equity"
)

// TransactionType controls which entry sides a strategy may take.
type TransactionType string

const (
	TransactionBoth      TransactionType = "both"
	TransactionOnlyLong  TransactionType = "only_long"
	TransactionOnlyShort TransactionType = "only_short"
)

// OrderSide represents the side of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderType represents the type of an order.
type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStopLoss  OrderType = "SL"
	OrderTypeStopLossM OrderType = "SL-M"
)

// ProductType represents the product type of an order.
type ProductType string

const (
	ProductMIS  ProductType = "MIS"  // Intraday
	ProductCNC  ProductType = "CNC"  // Delivery
	ProductNRML ProductType = "NRML" // F&O Normal
)

// StrategySpec is the canonical strategy document produced by the
// assembler and handed to the submission boundary. It is immutable once
// submitted.
type StrategySpec struct {
	Name                 string         `json:"name"`
	Description          string         `json:"description,omitempty"`
	StrategyType         StrategyType   `json:"strategy_type"`
	Symbol               string         `json:"symbol"`
	AssetType            AssetType      `json:"asset_type"`
	Config               StrategyConfig `json:"config"`
	RiskManagement       RiskManagement `json:"risk_management"`
	ProfitTrailing       ProfitTrailing `json:"profit_trailing"`
	StrategySpecificData StrategyData   `json:"strategy_specific_data"`
}

// StrategyConfig holds the execution settings shared by all strategy types.
type StrategyConfig struct {
	OrderType        OrderType   `json:"order_type,omitempty"`
	ProductType      ProductType `json:"product_type,omitempty"`
	MaxTradeCycles   int         `json:"max_trade_cycles"`
	CutoffTime       string      `json:"cutoff_time,omitempty"`
	DailyProfitLimit float64     `json:"daily_profit_limit"`
	DailyLossLimit   float64     `json:"daily_loss_limit"`
}

// RiskManagement holds strategy-level risk rules applied when no per-leg
// override exists.
type RiskManagement struct {
	StopLoss     float64 `json:"stop_loss"`
	TakeProfit   float64 `json:"take_profit"`
	PositionSize float64 `json:"position_size"`
}

// SubmissionAck is the opaque created-record acknowledgement returned by
// the persistence service. The builder does not interpret it beyond
// success/failure.
type SubmissionAck struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// StrategyData holds the strategy-type-specific payload of a spec.
type StrategyData struct {
	TransactionType TransactionType  `json:"transaction_type,omitempty"`
	StartTime       string           `json:"start_time,omitempty"`
	SquareOffTime   string           `json:"square_off_time,omitempty"`
	ConditionBlocks []ConditionBlock `json:"condition_blocks,omitempty"`
	OrderLegs       []OrderLeg       `json:"order_legs,omitempty"`
	Trigger         *TriggerConfig   `json:"trigger,omitempty"`
	Code            string           `json:"code,omitempty"`
}
