package tally

import (
	"fmt"
	"strings"
	"time"
)

type EffectKind string

const (
	EffectInitializeStudent EffectKind = "initialize_student"
	EffectNotifyApplicant   EffectKind = "notify_applicant"
)

// Effect is a side effect the caller must run once the tally is persisted.
type Effect struct {
	Kind    EffectKind
	Verdict Verdict
}

type Ballot struct {
	Voter  string
	Action Action
}

type Outcome struct {
	Action     Action
	Switched   bool
	Reached    bool
	Thresholds Thresholds
	Votes      Votes
	Summary    Summary
	Effects    []Effect
	Message    string
}

type Engine struct {
	// VerdictOnce limits effects to the call that moves a side from below to
	// at or above its threshold.
	VerdictOnce bool
	Now         func() time.Time
}

func NewEngine(verdictOnce bool) Engine {
	return Engine{VerdictOnce: verdictOnce}
}

// Cast applies a ballot to votes. On error votes is left untouched; on success
// it holds the new tally state and the outcome lists the effects to fire.
func (e Engine) Cast(votes *Votes, ballot Ballot, thresholds Thresholds) (Outcome, error) {
	voter := strings.TrimSpace(ballot.Voter)
	if voter == "" {
		return Outcome{}, ErrInvalidVoter
	}
	if !ballot.Action.Valid() {
		return Outcome{}, fmt.Errorf("%w: %q", ErrInvalidAction, ballot.Action)
	}

	action := ballot.Action
	opposite := action.Opposite()
	threshold := thresholds.For(action)

	inOpposite := votes.side(opposite).Contains(voter)
	inTarget := votes.side(action).Contains(voter)

	if inTarget && !inOpposite {
		return Outcome{}, fmt.Errorf("%w: %s already cast a %s", ErrDuplicateVote, voter, action.Noun())
	}

	before := len(votes.side(action))
	if !inOpposite && before >= threshold {
		return Outcome{}, &ThresholdReachedError{
			Action:     action,
			Thresholds: thresholds,
			Votes:      votes.Clone(),
		}
	}

	next := votes.Clone()
	switched := false
	if inOpposite {
		remaining, _ := next.side(opposite).Without(voter)
		next.setSide(opposite, remaining)
		switched = true
	}
	if !inTarget {
		next.setSide(action, next.side(action).With(voter, e.now()))
	}

	after := len(next.side(action))
	reached := after >= threshold

	outcome := Outcome{
		Action:     action,
		Switched:   switched,
		Reached:    reached,
		Thresholds: thresholds,
		Votes:      next,
		Summary:    Summarize(next, thresholds),
		Message:    composeMessage(action, switched, reached, after, threshold),
	}

	if reached && (!e.VerdictOnce || before < threshold) {
		outcome.Effects = verdictEffects(action)
	}

	*votes = next
	return outcome, nil
}

func verdictEffects(action Action) []Effect {
	if action == ActionApprove {
		return []Effect{
			{Kind: EffectInitializeStudent, Verdict: VerdictApproved},
			{Kind: EffectNotifyApplicant, Verdict: VerdictApproved},
		}
	}
	return []Effect{
		{Kind: EffectNotifyApplicant, Verdict: VerdictDenied},
	}
}

func composeMessage(action Action, switched, reached bool, count, threshold int) string {
	var message string
	if switched {
		message = fmt.Sprintf("Successfully changed from %s to %s.", action.Opposite().Noun(), action.Noun())
	} else {
		message = fmt.Sprintf("%s added successfully.", capitalize(action.Noun()))
	}

	if reached {
		return message + fmt.Sprintf(" %s threshold reached (%d/%d).", capitalize(action.Noun()), count, threshold)
	}
	return message + fmt.Sprintf(" Need %d more %s(s) (%d/%d).", threshold-count, action.Noun(), count, threshold)
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now().UTC()
	}
	return time.Now().UTC()
}
