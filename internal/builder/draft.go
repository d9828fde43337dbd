// Package builder implements the strategy specification builder: the
// draft state, the incremental mutations a user performs while authoring
// a strategy, and the validation and assembly of the final spec document.
package builder

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"strategy-builder/internal/catalog"
	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// Default session times for the Indian cash/F&O session.
const (
	DefaultStartTime     = "09:15:00"
	DefaultSquareOffTime = "15:15:00"
)

// ConditionDraft holds the four fixed indicator slots and the
// complementary comparator pair of the entry condition being composed.
type ConditionDraft struct {
	LongPrimary     *models.SelectedIndicator `json:"long_primary,omitempty"`
	LongSecondary   *models.SelectedIndicator `json:"long_secondary,omitempty"`
	ShortPrimary    *models.SelectedIndicator `json:"short_primary,omitempty"`
	ShortSecondary  *models.SelectedIndicator `json:"short_secondary,omitempty"`
	LongComparator  models.Comparator         `json:"long_comparator,omitempty"`
	ShortComparator models.Comparator         `json:"short_comparator,omitempty"`
}

// slot returns the pointer cell for a slot id.
func (c *ConditionDraft) slot(id models.SlotID) (**models.SelectedIndicator, error) {
	switch id {
	case models.SlotLongPrimary:
		return &c.LongPrimary, nil
	case models.SlotLongSecondary:
		return &c.LongSecondary, nil
	case models.SlotShortPrimary:
		return &c.ShortPrimary, nil
	case models.SlotShortSecondary:
		return &c.ShortSecondary, nil
	}
	return nil, errors.Wrapf(errors.ErrUnknownSlot, "%q", id)
}

// StrategyDraft is the complete, serializable in-progress strategy. All
// builder state lives here; validation and assembly are pure functions
// over this struct.
type StrategyDraft struct {
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	StrategyType    models.StrategyType    `json:"strategy_type"`
	Symbol          string                 `json:"symbol"`
	AssetType       models.AssetType       `json:"asset_type"`
	TransactionType models.TransactionType `json:"transaction_type"`

	StartTime     string `json:"start_time"`
	SquareOffTime string `json:"square_off_time"`

	Condition ConditionDraft        `json:"condition"`
	Legs      []models.OrderLeg     `json:"legs"`
	Risk      models.RiskManagement `json:"risk"`
	Trailing  models.ProfitTrailing `json:"trailing"`
	Trigger   *models.TriggerConfig `json:"trigger,omitempty"`

	OrderType        models.OrderType   `json:"order_type,omitempty"`
	ProductType      models.ProductType `json:"product_type,omitempty"`
	MaxTradeCycles   int                `json:"max_trade_cycles"`
	CutoffTime       string             `json:"cutoff_time,omitempty"`
	DailyProfitLimit float64            `json:"daily_profit_limit"`
	DailyLossLimit   float64            `json:"daily_loss_limit"`

	Code string `json:"code,omitempty"`
}

// NewDraft creates a draft with the defaults a fresh authoring session
// starts from: both transaction sides enabled, the standard session
// times, no trailing, and a single default leg.
func NewDraft(strategyType models.StrategyType) StrategyDraft {
	return StrategyDraft{
		StrategyType:    strategyType,
		AssetType:       models.AssetOptions,
		TransactionType: models.TransactionBoth,
		StartTime:       DefaultStartTime,
		SquareOffTime:   DefaultSquareOffTime,
		Trailing:        models.ProfitTrailing{Mode: models.TrailingNone},
		Legs:            []models.OrderLeg{defaultLeg(1)},
		MaxTradeCycles:  1,
	}
}

// LoadDraftFile reads a serialized draft from a JSON file.
func LoadDraftFile(path string) (StrategyDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StrategyDraft{}, errors.Wrap(err, "reading draft file")
	}
	var draft StrategyDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return StrategyDraft{}, errors.Wrap(err, "parsing draft file")
	}
	return draft, nil
}

// Session applies user mutations to a draft one at a time. Every
// mutation is a synchronous, atomic transition; while a submission is in
// flight the draft is locked and mutations are rejected.
type Session struct {
	draft      StrategyDraft
	catalog    *catalog.Catalog
	nextLegID  int
	submitting bool
	log        zerolog.Logger
}

// NewSession starts an authoring session over a fresh draft.
func NewSession(strategyType models.StrategyType, cat *catalog.Catalog, logger zerolog.Logger) *Session {
	return &Session{
		draft:     NewDraft(strategyType),
		catalog:   cat,
		nextLegID: 2,
		log:       logger.With().Str("component", "builder").Logger(),
	}
}

// ResumeSession continues an authoring session over an existing draft.
func ResumeSession(draft StrategyDraft, cat *catalog.Catalog, logger zerolog.Logger) *Session {
	next := 1
	for _, leg := range draft.Legs {
		if leg.ID >= next {
			next = leg.ID + 1
		}
	}
	return &Session{
		draft:     draft,
		catalog:   cat,
		nextLegID: next,
		log:       logger.With().Str("component", "builder").Logger(),
	}
}

// Draft returns a deep copy of the current draft state.
func (s *Session) Draft() StrategyDraft {
	d := s.draft
	d.Condition.LongPrimary = s.draft.Condition.LongPrimary.Clone()
	d.Condition.LongSecondary = s.draft.Condition.LongSecondary.Clone()
	d.Condition.ShortPrimary = s.draft.Condition.ShortPrimary.Clone()
	d.Condition.ShortSecondary = s.draft.Condition.ShortSecondary.Clone()
	d.Legs = make([]models.OrderLeg, len(s.draft.Legs))
	for i, leg := range s.draft.Legs {
		d.Legs[i] = leg.Clone()
	}
	if s.draft.Trigger != nil {
		t := *s.draft.Trigger
		d.Trigger = &t
	}
	return d
}

// guard rejects mutations while a submission is in flight.
func (s *Session) guard() error {
	if s.submitting {
		return errors.ErrDraftLocked
	}
	return nil
}

// SetName sets the strategy name.
func (s *Session) SetName(name string) error {
	if err := s.guard(); err != nil {
		return err
	}
	s.draft.Name = name
	return nil
}

// SetSymbol sets the underlying instrument.
func (s *Session) SetSymbol(symbol string) error {
	if err := s.guard(); err != nil {
		return err
	}
	s.draft.Symbol = symbol
	return nil
}

// SetTransactionType sets which entry sides the strategy may take.
func (s *Session) SetTransactionType(t models.TransactionType) error {
	if err := s.guard(); err != nil {
		return err
	}
	s.draft.TransactionType = t
	return nil
}

// Validate runs the validation engine over the current draft.
func (s *Session) Validate() []string {
	return Validate(s.draft)
}

// Assemble validates the draft and merges it into the canonical spec.
func (s *Session) Assemble() (models.StrategySpec, error) {
	return AssembleChecked(s.draft)
}
