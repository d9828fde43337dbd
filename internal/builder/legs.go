package builder

import (
	"fmt"
	"slices"

	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// StrikeATM is the at-the-money rung present in every generated ladder.
const StrikeATM = "ATM"

// StrikeLadder generates the selectable strike offsets for a strike
// mode, ordered from deepest ITM to deepest OTM.
//
// Points mode yields ITM 1500 .. ITM 100, ATM, OTM 100 .. OTM 1500 in
// steps of 100 (31 rungs). Percent mode yields ITM 20.0% .. ITM 1.0%,
// ATM, OTM 1.0% .. OTM 20.0% in steps of 1% (41 rungs). Price modes have
// no ladder; the leg exposes a custom price field instead. Any other
// mode falls back to a small fixed ladder.
func StrikeLadder(mode models.StrikeMode) []string {
	switch mode {
	case models.StrikeModePoints:
		ladder := make([]string, 0, 31)
		for pts := 1500; pts >= 100; pts -= 100 {
			ladder = append(ladder, fmt.Sprintf("ITM %d", pts))
		}
		ladder = append(ladder, StrikeATM)
		for pts := 100; pts <= 1500; pts += 100 {
			ladder = append(ladder, fmt.Sprintf("OTM %d", pts))
		}
		return ladder

	case models.StrikeModePercent:
		ladder := make([]string, 0, 41)
		for pct := 20; pct >= 1; pct-- {
			ladder = append(ladder, fmt.Sprintf("ITM %.1f%%", float64(pct)))
		}
		ladder = append(ladder, StrikeATM)
		for pct := 1; pct <= 20; pct++ {
			ladder = append(ladder, fmt.Sprintf("OTM %.1f%%", float64(pct)))
		}
		return ladder

	case models.StrikeModePrice, models.StrikeModePriceAbove, models.StrikeModePriceBelow:
		return nil

	default:
		return []string{StrikeATM, "ITM 100", "ITM 200", "OTM 100", "OTM 200"}
	}
}

// defaultLeg returns a leg with sane defaults for the given id.
func defaultLeg(id int) models.OrderLeg {
	return models.OrderLeg{
		ID:              id,
		Action:          models.OrderSideBuy,
		Quantity:        1,
		OptionType:      models.OptionCall,
		Expiry:          models.ExpiryWeekly,
		StrikeMode:      models.StrikeModePoints,
		StrikeSelection: StrikeATM,
		StopLoss:        models.RiskRule{Type: models.RiskValuePercent, Value: 30, Basis: models.BasisPriceTouch},
		TakeProfit:      models.RiskRule{Type: models.RiskValuePercent, Value: 0, Basis: models.BasisPriceTouch},
	}
}

// findLeg returns the index of the leg with the given id.
func (s *Session) findLeg(id int) (int, error) {
	for i := range s.draft.Legs {
		if s.draft.Legs[i].ID == id {
			return i, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrLegNotFound, "id %d", id)
}

// AddLeg appends a leg with defaults and a strictly increasing unique id.
func (s *Session) AddLeg() (models.OrderLeg, error) {
	if err := s.guard(); err != nil {
		return models.OrderLeg{}, err
	}
	leg := defaultLeg(s.nextLegID)
	s.nextLegID++
	s.draft.Legs = append(s.draft.Legs, leg)
	return leg, nil
}

// DuplicateLeg copies all fields of a leg except its id.
func (s *Session) DuplicateLeg(id int) (models.OrderLeg, error) {
	if err := s.guard(); err != nil {
		return models.OrderLeg{}, err
	}
	i, err := s.findLeg(id)
	if err != nil {
		return models.OrderLeg{}, err
	}
	leg := s.draft.Legs[i].Clone()
	leg.ID = s.nextLegID
	s.nextLegID++
	s.draft.Legs = append(s.draft.Legs, leg)
	return leg, nil
}

// DeleteLeg removes a leg. Deleting the last remaining leg is rejected
// and leaves the leg list unchanged.
func (s *Session) DeleteLeg(id int) error {
	if err := s.guard(); err != nil {
		return err
	}
	i, err := s.findLeg(id)
	if err != nil {
		return err
	}
	if len(s.draft.Legs) == 1 {
		return errors.ErrLastLeg
	}
	s.draft.Legs = slices.Delete(s.draft.Legs, i, i+1)
	return nil
}

// SetStrikeMode switches a leg's strike-selection mode, discarding any
// selection incompatible with the new mode: leaving a price mode clears
// the custom price and re-selects ATM; entering one clears the ladder
// selection.
func (s *Session) SetStrikeMode(id int, mode models.StrikeMode) error {
	if err := s.guard(); err != nil {
		return err
	}
	i, err := s.findLeg(id)
	if err != nil {
		return err
	}
	leg := &s.draft.Legs[i]
	leg.StrikeMode = mode

	if mode.IsPriceMode() {
		leg.StrikeSelection = ""
		return nil
	}

	leg.CustomPrice = 0
	if !slices.Contains(StrikeLadder(mode), leg.StrikeSelection) {
		leg.StrikeSelection = StrikeATM
	}
	return nil
}

// SetStrikeSelection picks a rung from the leg's current ladder.
func (s *Session) SetStrikeSelection(id int, selection string) error {
	if err := s.guard(); err != nil {
		return err
	}
	i, err := s.findLeg(id)
	if err != nil {
		return err
	}
	leg := &s.draft.Legs[i]
	if leg.StrikeMode.IsPriceMode() {
		return errors.Wrapf(errors.ErrUnknownMode, "leg %d uses a price mode", id)
	}
	if !slices.Contains(StrikeLadder(leg.StrikeMode), selection) {
		return errors.Wrapf(errors.ErrUnknownMode, "%q is not in the %s ladder", selection, leg.StrikeMode)
	}
	leg.StrikeSelection = selection
	return nil
}

// SetCustomPrice sets the free price field of a leg in a price mode.
func (s *Session) SetCustomPrice(id int, price float64) error {
	if err := s.guard(); err != nil {
		return err
	}
	i, err := s.findLeg(id)
	if err != nil {
		return err
	}
	leg := &s.draft.Legs[i]
	if !leg.StrikeMode.IsPriceMode() {
		return errors.Wrapf(errors.ErrUnknownMode, "leg %d does not use a price mode", id)
	}
	leg.CustomPrice = price
	return nil
}

// SetLegInstrument sets a leg's side, option type, lot quantity and
// expiry bucket. A non-positive quantity leaves the current one in place.
func (s *Session) SetLegInstrument(id int, action models.OrderSide, opt models.OptionType, quantity int, expiry models.ExpiryBucket) error {
	if err := s.guard(); err != nil {
		return err
	}
	i, err := s.findLeg(id)
	if err != nil {
		return err
	}
	s.draft.Legs[i].Action = action
	s.draft.Legs[i].OptionType = opt
	if quantity > 0 {
		s.draft.Legs[i].Quantity = quantity
	}
	s.draft.Legs[i].Expiry = expiry
	return nil
}

// SetLegRisk sets a leg's stop-loss and take-profit rules.
func (s *Session) SetLegRisk(id int, stopLoss, takeProfit models.RiskRule) error {
	if err := s.guard(); err != nil {
		return err
	}
	i, err := s.findLeg(id)
	if err != nil {
		return err
	}
	s.draft.Legs[i].StopLoss = stopLoss
	s.draft.Legs[i].TakeProfit = takeProfit
	return nil
}
