package models

// MintFailReason enumerates why a dynamic mint produced no location
type MintFailReason string

const (
	MintFailNone         MintFailReason = ""
	MintFailBackToBack   MintFailReason = "back_to_back_province"
	MintFailAllExhausted MintFailReason = "all_attempts_exhausted"
)

// MintRejectCause enumerates why a single mint attempt was discarded.
// Used for the per-cause rejection breakdown in mint metrics.
type MintRejectCause string

const (
	MintRejectOutOfBounds     MintRejectCause = "out_of_bounds"
	MintRejectResolverFailed  MintRejectCause = "resolver_failed"
	MintRejectOutsideEnvelope MintRejectCause = "outside_envelope"
	MintRejectHistoryConflict MintRejectCause = "history_conflict"
)

// MintResult is the outcome of one Mint call
type MintResult struct {
	Package      *LocationRecord `json:"package"`
	AttemptsUsed int             `json:"attempts_used"` // always <= 2
	FailReason   MintFailReason  `json:"fail_reason,omitempty"`
}

// MintMetrics aggregates minting activity for diagnostics
type MintMetrics struct {
	TotalAttempts      int `json:"total_attempts"`
	TotalSuccess       int `json:"total_success"`
	TotalFail          int `json:"total_fail"`
	TotalResolverCalls int `json:"total_resolver_calls"`

	// Rejected attempts by cause
	Rejections map[MintRejectCause]int `json:"rejections"`
}

// AvgAttempts returns the average attempts per mint, or 0 if none ran
func (m *MintMetrics) AvgAttempts() float64 {
	mints := m.TotalSuccess + m.TotalFail
	if mints == 0 {
		return 0
	}
	return float64(m.TotalAttempts) / float64(mints)
}
