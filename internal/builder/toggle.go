package builder

import (
	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// Feature identifies an optional per-leg sub-rule.
type Feature string

const (
	FeatureWaitAndTrade Feature = "wait_and_trade"
	FeatureReEntry      Feature = "re_entry"
	FeatureTrailingStop Feature = "trailing_stop"
)

// featureConflicts encodes which features are mutually exclusive on a
// leg. Enabling a feature disables everything it conflicts with.
var featureConflicts = map[Feature][]Feature{
	FeatureWaitAndTrade: {FeatureReEntry},
	FeatureReEntry:      {FeatureWaitAndTrade},
	FeatureTrailingStop: nil,
}

// ApplyFeatureToggle returns the leg with the feature enabled or
// disabled. Enabling seeds the sub-rule with its defaults and clears any
// conflicting features; disabling clears the sub-rule.
func ApplyFeatureToggle(leg models.OrderLeg, f Feature, enabled bool) (models.OrderLeg, error) {
	if _, known := featureConflicts[f]; !known {
		return leg, errors.Wrapf(errors.ErrUnknownMode, "feature %q", f)
	}

	if !enabled {
		clearFeature(&leg, f)
		return leg, nil
	}

	for _, conflict := range featureConflicts[f] {
		clearFeature(&leg, conflict)
	}

	switch f {
	case FeatureWaitAndTrade:
		leg.WaitAndTrade = &models.WaitAndTradeRule{Type: models.RiskValuePercent, Value: 0}
	case FeatureReEntry:
		leg.ReEntry = &models.ReEntryRule{Mode: "re_asap", MaxCount: 1}
	case FeatureTrailingStop:
		leg.TrailingStop = &models.TrailingStopRule{Type: models.RiskValuePoints}
	}
	return leg, nil
}

func clearFeature(leg *models.OrderLeg, f Feature) {
	switch f {
	case FeatureWaitAndTrade:
		leg.WaitAndTrade = nil
	case FeatureReEntry:
		leg.ReEntry = nil
	case FeatureTrailingStop:
		leg.TrailingStop = nil
	}
}

// ToggleLegFeature applies a feature toggle to a leg of the draft.
func (s *Session) ToggleLegFeature(id int, f Feature, enabled bool) error {
	if err := s.guard(); err != nil {
		return err
	}
	i, err := s.findLeg(id)
	if err != nil {
		return err
	}
	leg, err := ApplyFeatureToggle(s.draft.Legs[i], f, enabled)
	if err != nil {
		return err
	}
	s.draft.Legs[i] = leg
	return nil
}
