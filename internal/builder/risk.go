package builder

import (
	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// ApplyTrailingMode switches the active profit-trailing mode, clearing
// the numeric fields the new mode does not use so values of the previous
// mode never leak into the new mode's payload.
func ApplyTrailingMode(pt models.ProfitTrailing, mode models.TrailingMode) models.ProfitTrailing {
	next := models.ProfitTrailing{Mode: mode}
	if mode.UsesLock() {
		next.ReachAt = pt.ReachAt
		next.LockAt = pt.LockAt
	}
	if mode.UsesTrail() {
		next.StepBy = pt.StepBy
		next.TrailBy = pt.TrailBy
	}
	return next
}

// SetTrailingMode switches the draft's profit-trailing mode.
func (s *Session) SetTrailingMode(mode models.TrailingMode) error {
	if err := s.guard(); err != nil {
		return err
	}
	if !mode.Valid() {
		return errors.Wrapf(errors.ErrUnknownMode, "trailing mode %q", mode)
	}
	s.draft.Trailing = ApplyTrailingMode(s.draft.Trailing, mode)
	return nil
}

// SetTrailingValues sets the numeric fields of the active trailing mode.
// Fields the mode does not use are ignored. Trailing steps must be
// positive; the lock thresholds carry no cross-field bounds.
func (s *Session) SetTrailingValues(reachAt, lockAt, stepBy, trailBy float64) error {
	if err := s.guard(); err != nil {
		return err
	}
	mode := s.draft.Trailing.Mode
	if mode.UsesTrail() && (stepBy <= 0 || trailBy <= 0) {
		return errors.Wrapf(errors.ErrDraftInvalid, "trailing step and trail values must be positive")
	}
	if mode.UsesLock() {
		s.draft.Trailing.ReachAt = reachAt
		s.draft.Trailing.LockAt = lockAt
	}
	if mode.UsesTrail() {
		s.draft.Trailing.StepBy = stepBy
		s.draft.Trailing.TrailBy = trailBy
	}
	return nil
}

// SetRisk sets the strategy-level risk rules.
func (s *Session) SetRisk(risk models.RiskManagement) error {
	if err := s.guard(); err != nil {
		return err
	}
	s.draft.Risk = risk
	return nil
}

// SetDailyLimits sets the daily profit/loss limits and max trade cycles.
func (s *Session) SetDailyLimits(profitLimit, lossLimit float64, maxCycles int) error {
	if err := s.guard(); err != nil {
		return err
	}
	s.draft.DailyProfitLimit = profitLimit
	s.draft.DailyLossLimit = lossLimit
	if maxCycles > 0 {
		s.draft.MaxTradeCycles = maxCycles
	}
	return nil
}

// SetCutoffTime sets the time after which no new trade cycle starts.
func (s *Session) SetCutoffTime(t string) error {
	if err := s.guard(); err != nil {
		return err
	}
	s.draft.CutoffTime = t
	return nil
}
