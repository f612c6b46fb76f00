package tally

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrInvalidVoter  = errors.New("invalid voter")
	ErrDuplicateVote = errors.New("duplicate vote")
)

// ThresholdReachedError rejects a non-switch vote on a side that already met
// its threshold. It carries the tallies as they were before the call.
type ThresholdReachedError struct {
	Action     Action
	Thresholds Thresholds
	Votes      Votes
}

func (e *ThresholdReachedError) Error() string {
	summary := Summarize(e.Votes, e.Thresholds)
	count := summary.ApprovalCount
	if e.Action == ActionDeny {
		count = summary.DenialCount
	}

	return fmt.Sprintf("%s threshold already reached (%d/%d)", e.Action.Noun(), count, e.Thresholds.For(e.Action))
}
