package catalog

import (
	"testing"

	"strategy-builder/internal/errors"
)

func TestLookup(t *testing.T) {
	cat := Builtin()

	def, err := cat.Lookup("rsi")
	if err != nil {
		t.Fatalf("Lookup(rsi) returned error: %v", err)
	}
	if def.Label != "Relative Strength Index" {
		t.Errorf("unexpected label %q", def.Label)
	}

	_, err = cat.Lookup("does-not-exist")
	if !errors.Is(err, errors.ErrIndicatorNotFound) {
		t.Errorf("expected ErrIndicatorNotFound, got %v", err)
	}
}

func TestGroupByCategoryPreservesDeclarationOrder(t *testing.T) {
	cat := Builtin()
	grouped := cat.GroupByCategory()

	momentum := grouped[CategoryMomentum]
	wantOrder := []string{"rsi", "stochastic", "macd"}
	if len(momentum) != len(wantOrder) {
		t.Fatalf("expected %d momentum indicators, got %d", len(wantOrder), len(momentum))
	}
	for i, id := range wantOrder {
		if momentum[i].ID != id {
			t.Errorf("momentum[%d] = %q, want %q", i, momentum[i].ID, id)
		}
	}
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	cat := Builtin()
	got := cat.Categories()
	want := []string{CategoryMomentum, CategoryTrend, CategoryVolatility, CategoryVolume}

	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSeedValuesCoversEveryParameter(t *testing.T) {
	cat := Builtin()
	for _, def := range cat.Definitions() {
		values := SeedValues(def)
		if len(values) != len(def.Parameters) {
			t.Errorf("%s: seeded %d values for %d parameters", def.ID, len(values), len(def.Parameters))
		}
		for _, p := range def.Parameters {
			v, ok := values[p.Name]
			if !ok {
				t.Errorf("%s: parameter %q left undefined", def.ID, p.Name)
				continue
			}
			if v != p.Default {
				t.Errorf("%s.%s = %v, want default %v", def.ID, p.Name, v, p.Default)
			}
		}
	}
}

func TestNewRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		defs []IndicatorDefinition
	}{
		{
			name: "duplicate id",
			defs: []IndicatorDefinition{{ID: "x", Category: "A"}, {ID: "x", Category: "B"}},
		},
		{
			name: "empty id",
			defs: []IndicatorDefinition{{ID: ""}},
		},
		{
			name: "number without bounds",
			defs: []IndicatorDefinition{{
				ID: "x",
				Parameters: []ParameterSchema{
					{Name: "p", Kind: KindNumber, Default: float64(1)},
				},
			}},
		},
		{
			name: "enum without choices",
			defs: []IndicatorDefinition{{
				ID: "x",
				Parameters: []ParameterSchema{
					{Name: "p", Kind: KindEnum, Default: "a"},
				},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.defs); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNormalizeNumber(t *testing.T) {
	schema := ParameterSchema{
		Name: "period", Kind: KindNumber,
		Default: float64(14), Min: 2, Max: 100, Step: 1,
	}

	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"valid value", 21.0, 21},
		{"int value", 21, 21},
		{"numeric string", "30", 30},
		{"empty string reverts to default", "", 14},
		{"nil reverts to default", nil, 14},
		{"garbage reverts to default", "abc", 14},
		{"below min clamps", 0.0, 2},
		{"above max clamps", 1000.0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.Normalize("rsi", tt.raw)
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeEnum(t *testing.T) {
	schema := ParameterSchema{
		Name: "field", Kind: KindEnum, Default: "close",
		Choices: []Choice{{Value: "close"}, {Value: "open"}},
	}

	if got, err := schema.Normalize("rsi", "open"); err != nil || got != "open" {
		t.Errorf("Normalize(open) = %v, %v", got, err)
	}

	_, err := schema.Normalize("rsi", "volume")
	var serr *errors.SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaError for out-of-range enum value, got %v", err)
	}
}
