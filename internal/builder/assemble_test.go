package builder

import (
	"reflect"
	"testing"

	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// Full authoring walk-through: compose an RSI crossover strategy with a
// short put leg, then assemble and check the resulting document.
func TestAssembleRSICrossScenario(t *testing.T) {
	s := newTestSession(t, models.StrategyIndicatorBased)

	if err := s.SetName("RSI Cross"); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if err := s.SetSymbol("NIFTY 50"); err != nil {
		t.Fatalf("SetSymbol: %v", err)
	}
	if err := s.SelectIndicator(models.SlotLongPrimary, "rsi"); err != nil {
		t.Fatalf("SelectIndicator: %v", err)
	}
	if err := s.SetLongComparator(models.ComparatorCrossesAbove); err != nil {
		t.Fatalf("SetLongComparator: %v", err)
	}

	leg := s.Draft().Legs[0]
	if err := s.SetLegInstrument(leg.ID, models.OrderSideSell, models.OptionPut, 1, models.ExpiryWeekly); err != nil {
		t.Fatalf("SetLegInstrument: %v", err)
	}

	if failures := s.Validate(); len(failures) != 0 {
		t.Fatalf("draft not valid: %v", failures)
	}

	spec, err := s.Assemble()
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if spec.Name != "RSI Cross" || spec.Symbol != "NIFTY 50" {
		t.Errorf("identity fields wrong: %q / %q", spec.Name, spec.Symbol)
	}
	if spec.StrategyType != models.StrategyIndicatorBased {
		t.Errorf("strategy type = %q", spec.StrategyType)
	}

	blocks := spec.StrategySpecificData.ConditionBlocks
	if len(blocks) != 1 {
		t.Fatalf("condition blocks = %d, want 1", len(blocks))
	}
	if blocks[0].LongComparator != models.ComparatorCrossesAbove {
		t.Errorf("long comparator = %q", blocks[0].LongComparator)
	}
	if blocks[0].ShortComparator != models.ComparatorCrossesBelow {
		t.Errorf("short comparator = %q, want auto-paired crosses_below", blocks[0].ShortComparator)
	}
	if blocks[0].LongPrimary == nil || blocks[0].LongPrimary.IndicatorID != "rsi" {
		t.Errorf("long primary = %+v", blocks[0].LongPrimary)
	}
	if blocks[0].LongPrimary.Parameters["period"] != float64(14) {
		t.Errorf("period = %v, want 14", blocks[0].LongPrimary.Parameters["period"])
	}

	legs := spec.StrategySpecificData.OrderLegs
	if len(legs) != 1 {
		t.Fatalf("order legs = %d, want 1", len(legs))
	}
	if legs[0].StrikeMode != models.StrikeModePoints || legs[0].StrikeSelection != StrikeATM {
		t.Errorf("leg strike = %q %q", legs[0].StrikeMode, legs[0].StrikeSelection)
	}
	if legs[0].Action != models.OrderSideSell || legs[0].OptionType != models.OptionPut {
		t.Errorf("leg instrument = %q %q", legs[0].Action, legs[0].OptionType)
	}
}

func TestAssembleFillsDefaults(t *testing.T) {
	d := completeIndicatorDraft(t)
	d.TransactionType = ""
	d.StartTime = DefaultStartTime
	d.SquareOffTime = DefaultSquareOffTime
	d.AssetType = ""
	d.Trailing.Mode = ""
	d.MaxTradeCycles = 0

	spec := Assemble(d)

	if spec.StrategySpecificData.TransactionType != models.TransactionBoth {
		t.Errorf("transaction type = %q", spec.StrategySpecificData.TransactionType)
	}
	if spec.AssetType != models.AssetOptions {
		t.Errorf("asset type = %q", spec.AssetType)
	}
	if spec.ProfitTrailing.Mode != models.TrailingNone {
		t.Errorf("trailing mode = %q", spec.ProfitTrailing.Mode)
	}
	if spec.Config.MaxTradeCycles != 1 {
		t.Errorf("max trade cycles = %d, want 1", spec.Config.MaxTradeCycles)
	}
	if spec.StrategySpecificData.StartTime != DefaultStartTime {
		t.Errorf("start time = %q", spec.StrategySpecificData.StartTime)
	}
}

func TestAssembleProgrammingDraft(t *testing.T) {
	d := NewDraft(models.StrategyProgramming)
	d.Name = "Custom"
	d.Symbol = "NIFTY 50"
	d.Code = "def on_tick(ctx): pass"
	d.Risk = models.RiskManagement{StopLoss: 2, TakeProfit: 4, PositionSize: 50}

	spec, err := AssembleChecked(d)
	if err != nil {
		t.Fatalf("AssembleChecked: %v", err)
	}
	if spec.StrategySpecificData.Code != d.Code {
		t.Errorf("code not carried into spec")
	}
	if len(spec.StrategySpecificData.ConditionBlocks) != 0 {
		t.Error("programming spec carries condition blocks")
	}
	if spec.RiskManagement != d.Risk {
		t.Errorf("risk = %+v", spec.RiskManagement)
	}
}

func TestAssembleCheckedRejectsInvalidDraft(t *testing.T) {
	d := NewDraft(models.StrategyIndicatorBased)

	_, err := AssembleChecked(d)
	if !errors.Is(err, errors.ErrDraftInvalid) {
		t.Fatalf("err = %v, want ErrDraftInvalid", err)
	}

	var verr *errors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err is not a ValidationError: %v", err)
	}
	want := []string{MsgNameRequired, MsgSymbolRequired, MsgEntryConditionRequired}
	if !reflect.DeepEqual(verr.Failures, want) {
		t.Errorf("failures = %v, want %v", verr.Failures, want)
	}
}

// Assembling twice from the same draft yields identical documents.
func TestAssembleIsDeterministic(t *testing.T) {
	d := completeIndicatorDraft(t)
	if !reflect.DeepEqual(Assemble(d), Assemble(d)) {
		t.Error("repeated assembly diverged")
	}
}
