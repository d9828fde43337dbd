// Package catalog provides the indicator catalog and parameter schemas.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"strategy-builder/internal/errors"
)

// ParameterKind represents the input type of a parameter.
type ParameterKind string

const (
	KindNumber ParameterKind = "number"
	KindText   ParameterKind = "text"
	KindEnum   ParameterKind = "enum"
)

// Choice is one selectable value of an enum parameter.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ParameterSchema describes a single typed indicator parameter. A number
// parameter carries Min/Max/Step bounds; an enum parameter carries a
// non-empty choice list.
type ParameterSchema struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Kind    ParameterKind `json:"kind"`
	Default any           `json:"default"`
	Min     float64       `json:"min,omitempty"`
	Max     float64       `json:"max,omitempty"`
	Step    float64       `json:"step,omitempty"`
	Choices []Choice      `json:"choices,omitempty"`
}

// check verifies the schema's own invariants.
func (s ParameterSchema) check() error {
	switch s.Kind {
	case KindNumber:
		if s.Min >= s.Max {
			return fmt.Errorf("parameter %q: number kind requires min < max", s.Name)
		}
	case KindEnum:
		if len(s.Choices) == 0 {
			return fmt.Errorf("parameter %q: enum kind requires choices", s.Name)
		}
	case KindText:
	default:
		return fmt.Errorf("parameter %q: unknown kind %q", s.Name, s.Kind)
	}
	return nil
}

// Normalize coerces a raw value into the schema's type. A nil or empty
// numeric value reverts to the schema default, so a transient cleared
// input never persists into a spec. Out-of-range numbers clamp to the
// schema bounds. Enum values outside the choice list are rejected.
func (s ParameterSchema) Normalize(indicatorID string, raw any) (any, error) {
	switch s.Kind {
	case KindNumber:
		return s.normalizeNumber(raw), nil
	case KindEnum:
		v := fmt.Sprint(raw)
		for _, c := range s.Choices {
			if c.Value == v {
				return v, nil
			}
		}
		return nil, errors.NewSchemaError(indicatorID, s.Name, raw, "value is not a valid choice")
	case KindText:
		if raw == nil {
			return fmt.Sprint(s.Default), nil
		}
		return fmt.Sprint(raw), nil
	}
	return nil, errors.NewSchemaError(indicatorID, s.Name, raw, "unknown parameter kind")
}

func (s ParameterSchema) normalizeNumber(raw any) float64 {
	v, ok := toFloat(raw)
	if !ok {
		v, _ = toFloat(s.Default)
		return v
	}
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
