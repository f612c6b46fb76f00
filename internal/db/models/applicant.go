package models

import (
	"strings"
	"time"

	"applicant_review_system/internal/tally"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type RedpStatus string

func (s RedpStatus) String() string {
	return string(s)
}

const (
	RedpStatusNone      RedpStatus = ""
	RedpStatusPending   RedpStatus = "pending"
	RedpStatusEmailSent RedpStatus = "email sent"

	// SignupPartition holds every applicant created by the signup flow.
	SignupPartition = "signup"
)

type Applicant struct {
	tableName struct{} `pg:"applicants"`

	PartitionKey string         `json:"partitionKey" pg:",pk"`
	RowKey       string         `json:"rowKey" pg:",pk"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Email        string         `json:"email"`
	Approvals    tally.VoteList `json:"approvals" pg:"type:jsonb,default:'[]'"`
	Denials      tally.VoteList `json:"denials" pg:"type:jsonb,default:'[]'"`
	RedpStatus   RedpStatus     `json:"redpStatus"`
	RedpEmail    string         `json:"redpEmail"`
	RedpInitAt   *time.Time     `json:"redpInitTimestamp" pg:"redp_init_at"`
	RedpEmailAt  *time.Time     `json:"redpEmailTimestamp" pg:"redp_email_at"`
	// Attributes keeps the remaining signup fields untouched by reviews.
	Attributes map[string]interface{} `json:"attributes" pg:"type:jsonb"`
	Version    int                    `json:"version" pg:",use_zero,notnull"`
	CreatedAt  time.Time              `json:"createdAt" pg:"default:now()"`
	UpdatedAt  time.Time              `json:"updatedAt" pg:"default:now()"`
}

func (a *Applicant) Votes() tally.Votes {
	return tally.Votes{
		Approvals: a.Approvals,
		Denials:   a.Denials,
	}
}

func (a *Applicant) SetVotes(votes tally.Votes) {
	a.Approvals = votes.Approvals
	a.Denials = votes.Denials
}

func (a *Applicant) DisplayName() string {
	name := strings.TrimSpace(strings.Join([]string{a.FirstName, a.LastName}, " "))
	return cases.Title(language.English).String(name)
}

// Clone returns a deep copy so in-memory stores never share slices or maps
// with callers.
func (a *Applicant) Clone() *Applicant {
	clone := *a
	votes := a.Votes().Clone()
	clone.Approvals = votes.Approvals
	clone.Denials = votes.Denials

	if a.Attributes != nil {
		clone.Attributes = make(map[string]interface{}, len(a.Attributes))
		for key, value := range a.Attributes {
			clone.Attributes[key] = value
		}
	}
	if a.RedpInitAt != nil {
		at := *a.RedpInitAt
		clone.RedpInitAt = &at
	}
	if a.RedpEmailAt != nil {
		at := *a.RedpEmailAt
		clone.RedpEmailAt = &at
	}

	return &clone
}
