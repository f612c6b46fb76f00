package tally

import (
	"fmt"
	"strings"
)

type (
	Action  string
	Verdict string
)

func (a Action) String() string {
	return string(a)
}

func (v Verdict) String() string {
	return string(v)
}

const (
	ActionApprove Action = "approve"
	ActionDeny    Action = "deny"

	VerdictApproved Verdict = "Approved"
	VerdictDenied   Verdict = "Denied"
)

// ParseAction maps the request action to an Action. An empty value means
// approve, which is what clients sent before denials existed.
func ParseAction(value string) (Action, error) {
	switch Action(strings.TrimSpace(value)) {
	case "", ActionApprove:
		return ActionApprove, nil
	case ActionDeny:
		return ActionDeny, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, value)
	}
}

func (a Action) Valid() bool {
	return a == ActionApprove || a == ActionDeny
}

func (a Action) Opposite() Action {
	if a == ActionDeny {
		return ActionApprove
	}
	return ActionDeny
}

// Noun is the word used for a single vote of this kind in messages.
func (a Action) Noun() string {
	if a == ActionDeny {
		return "denial"
	}
	return "approval"
}

func (a Action) Verdict() Verdict {
	if a == ActionDeny {
		return VerdictDenied
	}
	return VerdictApproved
}
