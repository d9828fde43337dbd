package builder

import (
	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// validRecurrence lists the known recurrence kinds.
var validRecurrence = map[models.RecurrenceKind]bool{
	models.RecurrenceSpecificTime:      true,
	models.RecurrenceDaily:             true,
	models.RecurrenceWeekly:            true,
	models.RecurrenceMonthly:           true,
	models.RecurrenceAfterMarketOpen:   true,
	models.RecurrenceBeforeMarketClose: true,
	models.RecurrenceCandleInterval:    true,
}

// SetTrigger sets the recurrence rule of a time-based strategy.
func (s *Session) SetTrigger(t models.TriggerConfig) error {
	if err := s.guard(); err != nil {
		return err
	}
	if !validRecurrence[t.Kind] {
		return errors.Wrapf(errors.ErrUnknownMode, "recurrence kind %q", t.Kind)
	}
	s.draft.Trigger = &t
	return nil
}

// SetOrderDefaults sets the order and product type the strategy submits
// with.
func (s *Session) SetOrderDefaults(orderType models.OrderType, product models.ProductType) error {
	if err := s.guard(); err != nil {
		return err
	}
	s.draft.OrderType = orderType
	s.draft.ProductType = product
	return nil
}
