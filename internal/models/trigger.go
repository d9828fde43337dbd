package models

import "time"

// RecurrenceKind represents when a time-based strategy fires.
type RecurrenceKind string

const (
	RecurrenceSpecificTime      RecurrenceKind = "specific_time"
	RecurrenceDaily             RecurrenceKind = "daily"
	RecurrenceWeekly            RecurrenceKind = "weekly"
	RecurrenceMonthly           RecurrenceKind = "monthly"
	RecurrenceAfterMarketOpen   RecurrenceKind = "after_market_open"
	RecurrenceBeforeMarketClose RecurrenceKind = "before_market_close"
	RecurrenceCandleInterval    RecurrenceKind = "candle_interval"
)

// TriggerAction is the order a time-based strategy submits when its
// trigger condition is met. The firing itself belongs to the external
// execution engine; the builder only emits the specification.
type TriggerAction struct {
	Side       OrderSide   `json:"side"`
	OrderType  OrderType   `json:"order_type"`
	Quantity   int         `json:"quantity"`
	Product    ProductType `json:"product"`
	LimitPrice float64     `json:"limit_price,omitempty"`
}

// TriggerConfig is the recurrence descriptor of a time-based strategy.
// Only the fields belonging to Kind carry values.
type TriggerConfig struct {
	Kind RecurrenceKind `json:"kind"`

	// specific_time, daily, weekly, monthly
	At string `json:"at,omitempty"` // HH:MM:SS

	// weekly
	Weekdays []time.Weekday `json:"weekdays,omitempty"`

	// monthly: either a day of month or the nth occurrence of a weekday
	DayOfMonth int          `json:"day_of_month,omitempty"`
	NthWeek    int          `json:"nth_week,omitempty"`
	NthWeekday time.Weekday `json:"nth_weekday,omitempty"`

	// after_market_open / before_market_close
	OffsetMinutes int `json:"offset_minutes,omitempty"`

	// candle_interval
	IntervalMinutes int `json:"interval_minutes,omitempty"`
	DelayMinutes    int `json:"delay_minutes,omitempty"`

	Action TriggerAction `json:"action"`
}
