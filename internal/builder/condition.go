package builder

import (
	"strategy-builder/internal/catalog"
	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// SelectIndicator assigns an indicator to a condition slot. Parameter
// values are seeded from the schema defaults, so no parameter is ever
// undefined. Reassigning a slot destroys the previous selection.
func (s *Session) SelectIndicator(slot models.SlotID, indicatorID string) error {
	if err := s.guard(); err != nil {
		return err
	}
	cell, err := s.draft.Condition.slot(slot)
	if err != nil {
		return err
	}
	def, err := s.catalog.Lookup(indicatorID)
	if err != nil {
		return err
	}
	*cell = &models.SelectedIndicator{
		IndicatorID: def.ID,
		Parameters:  catalog.SeedValues(def),
	}
	s.log.Debug().Str("slot", string(slot)).Str("indicator", def.ID).Msg("Indicator selected")
	return nil
}

// ClearSlot removes the indicator bound to a slot.
func (s *Session) ClearSlot(slot models.SlotID) error {
	if err := s.guard(); err != nil {
		return err
	}
	cell, err := s.draft.Condition.slot(slot)
	if err != nil {
		return err
	}
	*cell = nil
	return nil
}

// SetParameter edits a single parameter of a slot's selection. The raw
// value is normalized through the parameter schema; a malformed value is
// corrected to the schema default rather than propagated.
func (s *Session) SetParameter(slot models.SlotID, name string, raw any) error {
	if err := s.guard(); err != nil {
		return err
	}
	cell, err := s.draft.Condition.slot(slot)
	if err != nil {
		return err
	}
	sel := *cell
	if sel == nil {
		return errors.Wrapf(errors.ErrUnknownSlot, "slot %q has no indicator", slot)
	}
	def, err := s.catalog.Lookup(sel.IndicatorID)
	if err != nil {
		return err
	}
	for _, schema := range def.Parameters {
		if schema.Name != name {
			continue
		}
		value, err := schema.Normalize(def.ID, raw)
		if err != nil {
			// schema errors are corrected locally, never propagated
			s.log.Warn().Err(err).Str("parameter", name).Msg("Parameter reverted to default")
			value = schema.Default
		}
		sel.Parameters[name] = value
		return nil
	}
	return errors.NewSchemaError(def.ID, name, raw, "indicator has no such parameter")
}

// SetLongComparator sets the long-side comparator and atomically rewrites
// the short side to its complement. The two sides are never observable in
// an inconsistent state.
func (s *Session) SetLongComparator(c models.Comparator) error {
	if err := s.guard(); err != nil {
		return err
	}
	if !c.Valid() {
		return errors.Wrapf(errors.ErrUnknownComparator, "%q", c)
	}
	s.draft.Condition.LongComparator, s.draft.Condition.ShortComparator = c, c.Complement()
	return nil
}

// SetShortComparator sets the short-side comparator and atomically
// rewrites the long side to its complement.
func (s *Session) SetShortComparator(c models.Comparator) error {
	if err := s.guard(); err != nil {
		return err
	}
	if !c.Valid() {
		return errors.Wrapf(errors.ErrUnknownComparator, "%q", c)
	}
	s.draft.Condition.ShortComparator, s.draft.Condition.LongComparator = c, c.Complement()
	return nil
}
