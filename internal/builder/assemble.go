package builder

import (
	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// Assemble merges the draft's sub-configs into the canonical strategy
// spec. The merge is deterministic and side-effect free: no field is
// silently dropped, and fields without a user-set value fall back to the
// defaults recorded at creation time rather than an undefined
// placeholder.
func Assemble(d StrategyDraft) models.StrategySpec {
	data := models.StrategyData{
		TransactionType: orDefault(d.TransactionType, models.TransactionBoth),
		StartTime:       orDefault(d.StartTime, DefaultStartTime),
		SquareOffTime:   orDefault(d.SquareOffTime, DefaultSquareOffTime),
	}

	switch d.StrategyType {
	case models.StrategyIndicatorBased:
		data.ConditionBlocks = []models.ConditionBlock{{
			LongPrimary:     d.Condition.LongPrimary.Clone(),
			LongSecondary:   d.Condition.LongSecondary.Clone(),
			ShortPrimary:    d.Condition.ShortPrimary.Clone(),
			ShortSecondary:  d.Condition.ShortSecondary.Clone(),
			LongComparator:  d.Condition.LongComparator,
			ShortComparator: d.Condition.ShortComparator,
		}}
		data.OrderLegs = cloneLegs(d.Legs)

	case models.StrategyTimeBased:
		if d.Trigger != nil {
			t := *d.Trigger
			data.Trigger = &t
		}
		data.OrderLegs = cloneLegs(d.Legs)

	case models.StrategyProgramming:
		data.Code = d.Code
	}

	trailing := d.Trailing
	if trailing.Mode == "" {
		trailing.Mode = models.TrailingNone
	}

	return models.StrategySpec{
		Name:         d.Name,
		Description:  d.Description,
		StrategyType: d.StrategyType,
		Symbol:       d.Symbol,
		AssetType:    orDefault(d.AssetType, models.AssetOptions),
		Config: models.StrategyConfig{
			OrderType:        d.OrderType,
			ProductType:      d.ProductType,
			MaxTradeCycles:   maxInt(d.MaxTradeCycles, 1),
			CutoffTime:       d.CutoffTime,
			DailyProfitLimit: d.DailyProfitLimit,
			DailyLossLimit:   d.DailyLossLimit,
		},
		RiskManagement:       d.Risk,
		ProfitTrailing:       trailing,
		StrategySpecificData: data,
	}
}

// AssembleChecked validates the draft and assembles it only when the
// failure list is empty.
func AssembleChecked(d StrategyDraft) (models.StrategySpec, error) {
	if failures := Validate(d); len(failures) > 0 {
		return models.StrategySpec{}, errors.NewValidationError(failures)
	}
	return Assemble(d), nil
}

func cloneLegs(legs []models.OrderLeg) []models.OrderLeg {
	out := make([]models.OrderLeg, len(legs))
	for i, leg := range legs {
		out[i] = leg.Clone()
	}
	return out
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}

func maxInt(v, min int) int {
	if v < min {
		return min
	}
	return v
}
