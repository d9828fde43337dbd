package builder

import (
	"context"

	"strategy-builder/internal/logging"
	"strategy-builder/internal/models"
)

// Submitter is the one-shot submission boundary to the external
// persistence service.
type Submitter interface {
	Submit(ctx context.Context, spec models.StrategySpec, userID string, paperTrading bool) (*models.SubmissionAck, error)
}

// Submit assembles the draft and sends it through the submission
// boundary. The draft is locked while the request is in flight; it is
// never retried automatically, and on failure it is preserved unmodified
// so the user may retry manually.
func (s *Session) Submit(ctx context.Context, submitter Submitter, userID string, paperTrading bool) (*models.SubmissionAck, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	spec, err := AssembleChecked(s.draft)
	if err != nil {
		return nil, err
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	ack, err := submitter.Submit(ctx, spec, userID, paperTrading)
	logging.LogSubmission(s.log, spec.Name, userID, paperTrading, err)
	if err != nil {
		return nil, err
	}
	return ack, nil
}
