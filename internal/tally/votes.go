package tally

import (
	"strings"
	"time"
)

type Vote struct {
	Voter  string    `json:"voter"`
	CastAt time.Time `json:"castAt"`
}

// VoteList is an ordered sequence of votes. Slot n lives at index n-1 and the
// list never has gaps.
type VoteList []Vote

// Votes is the tally state stored on an applicant record. A voter appears in
// at most one of the two lists.
type Votes struct {
	Approvals VoteList
	Denials   VoteList
}

func (l VoteList) IndexOf(voter string) int {
	for i, vote := range l {
		if strings.EqualFold(vote.Voter, voter) {
			return i
		}
	}
	return -1
}

func (l VoteList) Contains(voter string) bool {
	return l.IndexOf(voter) >= 0
}

// Without returns a compacted copy of the list with voter removed. Every other
// vote keeps its slot order and timestamp.
func (l VoteList) Without(voter string) (VoteList, bool) {
	index := l.IndexOf(voter)
	if index < 0 {
		return l.clone(), false
	}

	out := make(VoteList, 0, len(l)-1)
	out = append(out, l[:index]...)
	out = append(out, l[index+1:]...)
	return out, true
}

// With returns a copy of the list with a vote appended in the next free slot.
func (l VoteList) With(voter string, castAt time.Time) VoteList {
	out := make(VoteList, len(l), len(l)+1)
	copy(out, l)
	return append(out, Vote{Voter: voter, CastAt: castAt.UTC()})
}

func (l VoteList) Voters() []string {
	voters := make([]string, 0, len(l))
	for _, vote := range l {
		voters = append(voters, vote.Voter)
	}
	return voters
}

func (l VoteList) clone() VoteList {
	if l == nil {
		return nil
	}
	out := make(VoteList, len(l))
	copy(out, l)
	return out
}

func (v Votes) Clone() Votes {
	return Votes{
		Approvals: v.Approvals.clone(),
		Denials:   v.Denials.clone(),
	}
}

func (v Votes) side(action Action) VoteList {
	if action == ActionDeny {
		return v.Denials
	}
	return v.Approvals
}

func (v *Votes) setSide(action Action, list VoteList) {
	if action == ActionDeny {
		v.Denials = list
		return
	}
	v.Approvals = list
}

type Summary struct {
	ApprovalCount    int
	DenialCount      int
	ApprovalComplete bool
	DenialComplete   bool
}

func (s Summary) Complete() bool {
	return s.ApprovalComplete || s.DenialComplete
}

func Summarize(votes Votes, thresholds Thresholds) Summary {
	return Summary{
		ApprovalCount:    len(votes.Approvals),
		DenialCount:      len(votes.Denials),
		ApprovalComplete: len(votes.Approvals) >= thresholds.Approval,
		DenialComplete:   len(votes.Denials) >= thresholds.Denial,
	}
}
