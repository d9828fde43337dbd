package builder

import (
	"testing"
	"time"

	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

func TestSetTriggerAndAssemble(t *testing.T) {
	s := newTestSession(t, models.StrategyTimeBased)
	_ = s.SetName("Nine Twenty")
	_ = s.SetSymbol("BANKNIFTY")
	if err := s.SetOrderDefaults(models.OrderTypeMarket, models.ProductMIS); err != nil {
		t.Fatalf("SetOrderDefaults: %v", err)
	}

	trigger := models.TriggerConfig{
		Kind:     models.RecurrenceWeekly,
		At:       "09:20:00",
		Weekdays: []time.Weekday{time.Monday, time.Wednesday},
		Action: models.TriggerAction{
			Side:      models.OrderSideSell,
			OrderType: models.OrderTypeMarket,
			Quantity:  1,
			Product:   models.ProductMIS,
		},
	}
	if err := s.SetTrigger(trigger); err != nil {
		t.Fatalf("SetTrigger: %v", err)
	}

	spec, err := s.Assemble()
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	got := spec.StrategySpecificData.Trigger
	if got == nil {
		t.Fatal("trigger missing from assembled spec")
	}
	if got.Kind != models.RecurrenceWeekly || got.At != "09:20:00" {
		t.Errorf("trigger = %+v", got)
	}
	if got.Action.Side != models.OrderSideSell {
		t.Errorf("action side = %q", got.Action.Side)
	}
	if len(spec.StrategySpecificData.ConditionBlocks) != 0 {
		t.Error("time-based spec carries condition blocks")
	}
}

func TestSetTriggerRejectsUnknownKind(t *testing.T) {
	s := newTestSession(t, models.StrategyTimeBased)
	err := s.SetTrigger(models.TriggerConfig{Kind: models.RecurrenceKind("hourly")})
	if !errors.Is(err, errors.ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
	if s.Draft().Trigger != nil {
		t.Error("rejected trigger still applied")
	}
}
