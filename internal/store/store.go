// Package store provides persistence for submitted strategies.
package store

import (
	"context"
	"time"

	"strategy-builder/internal/models"
)

// StrategyRecord is one persisted strategy submission.
type StrategyRecord struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	Name           string              `json:"name"`
	StrategyType   models.StrategyType `json:"strategy_type"`
	Symbol         string              `json:"symbol"`
	IsPaperTrading bool                `json:"is_paper_trading"`
	Spec           models.StrategySpec `json:"spec"`
	CreatedAt      time.Time           `json:"created_at"`
}

// RecordFilter narrows a record listing.
type RecordFilter struct {
	UserID       string
	StrategyType models.StrategyType
	Symbol       string
	Limit        int
}

// StrategyStore defines the interface for strategy persistence.
type StrategyStore interface {
	Save(ctx context.Context, record *StrategyRecord) error
	Get(ctx context.Context, id string) (*StrategyRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]StrategyRecord, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
