package catalog

import (
	"fmt"

	"github.com/samber/lo"

	"strategy-builder/internal/errors"
)

// IndicatorDefinition describes one indicator: its identity, display
// label, category, and the ordered list of parameter schemas. Definitions
// are immutable once loaded.
type IndicatorDefinition struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	Category   string            `json:"category"`
	Parameters []ParameterSchema `json:"parameters"`
}

// Catalog is the registry of indicator definitions. It is the single
// source of truth for valid indicator ids and parameter schemas;
// consumers never hard-code indicator identities.
type Catalog struct {
	defs []IndicatorDefinition
	byID map[string]IndicatorDefinition
}

// New builds a catalog from the given definitions, verifying schema
// invariants and id uniqueness.
func New(defs []IndicatorDefinition) (*Catalog, error) {
	byID := make(map[string]IndicatorDefinition, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("indicator with empty id")
		}
		if _, exists := byID[def.ID]; exists {
			return nil, fmt.Errorf("duplicate indicator id %q", def.ID)
		}
		for _, p := range def.Parameters {
			if err := p.check(); err != nil {
				return nil, errors.Wrapf(err, "indicator %q", def.ID)
			}
		}
		byID[def.ID] = def
	}
	return &Catalog{defs: defs, byID: byID}, nil
}

// Empty returns a catalog with no definitions. A failed catalog fetch
// leaves the builder with an explicitly empty catalog, never a partially
// populated one.
func Empty() *Catalog {
	return &Catalog{byID: map[string]IndicatorDefinition{}}
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Definitions returns all definitions in declaration order.
func (c *Catalog) Definitions() []IndicatorDefinition {
	return c.defs
}

// Lookup returns the definition for the given indicator id.
func (c *Catalog) Lookup(id string) (IndicatorDefinition, error) {
	def, ok := c.byID[id]
	if !ok {
		return IndicatorDefinition{}, errors.Wrapf(errors.ErrIndicatorNotFound, "%q", id)
	}
	return def, nil
}

// GroupByCategory groups definitions by category, preserving catalog
// declaration order within each group.
func (c *Catalog) GroupByCategory() map[string][]IndicatorDefinition {
	return lo.GroupBy(c.defs, func(def IndicatorDefinition) string {
		return def.Category
	})
}

// Categories returns the category names in first-appearance order.
func (c *Catalog) Categories() []string {
	return lo.Uniq(lo.Map(c.defs, func(def IndicatorDefinition, _ int) string {
		return def.Category
	}))
}

// SeedValues returns the initial parameter value map for a definition:
// every parameter set to its schema default. No parameter is left
// undefined.
func SeedValues(def IndicatorDefinition) map[string]any {
	values := make(map[string]any, len(def.Parameters))
	for _, p := range def.Parameters {
		values[p.Name] = p.Default
	}
	return values
}
