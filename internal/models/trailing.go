package models

// TrailingMode represents one of the four mutually exclusive profit
// trailing behaviours. Exactly one mode is active at a time.
type TrailingMode string

const (
	TrailingNone            TrailingMode = "no_trailing"
	TrailingLockFixedProfit TrailingMode = "lock_fixed_profit"
	TrailingTrailProfit     TrailingMode = "trail_profit"
	TrailingLockAndTrail    TrailingMode = "lock_and_trail"
)

// Valid reports whether the mode is one of the known trailing modes.
func (m TrailingMode) Valid() bool {
	switch m {
	case TrailingNone, TrailingLockFixedProfit, TrailingTrailProfit, TrailingLockAndTrail:
		return true
	}
	return false
}

// ProfitTrailing is the tagged union over the four trailing modes. Only
// the fields belonging to the active mode carry values; switching modes
// clears the fields of the previous mode.
//
// No ordering is enforced between ReachAt and LockAt. The target
// semantics of the lock threshold are caller-defined.
type ProfitTrailing struct {
	Mode    TrailingMode `json:"mode"`
	ReachAt float64      `json:"reach_at,omitempty"`
	LockAt  float64      `json:"lock_at,omitempty"`
	StepBy  float64      `json:"step_by,omitempty"`
	TrailBy float64      `json:"trail_by,omitempty"`
}

// UsesLock reports whether the mode carries the reach/lock field pair.
func (m TrailingMode) UsesLock() bool {
	return m == TrailingLockFixedProfit || m == TrailingLockAndTrail
}

// UsesTrail reports whether the mode carries the step/trail field pair.
func (m TrailingMode) UsesTrail() bool {
	return m == TrailingTrailProfit || m == TrailingLockAndTrail
}
