package models

import (
	"time"

	"applicant_review_system/internal/tally"
)

type CommandStatus string

func (s CommandStatus) String() string {
	return string(s)
}

const (
	CommandStatusPending CommandStatus = "pending"
	CommandStatusDone    CommandStatus = "done"
	CommandStatusFailed  CommandStatus = "failed"
)

// Command is a verdict effect that could not be delivered inline and waits in
// the outbox for the relay.
type Command struct {
	tableName struct{} `pg:"review_commands"`

	ID           string           `json:"id" pg:",pk"`
	Kind         tally.EffectKind `json:"kind" pg:",notnull"`
	PartitionKey string           `json:"partitionKey" pg:",notnull"`
	RowKey       string           `json:"rowKey" pg:",notnull"`
	Verdict      tally.Verdict    `json:"verdict"`
	Recipient    string           `json:"recipient"`
	Address      string           `json:"address"`
	Status       CommandStatus    `json:"status" pg:",notnull,default:'pending'"`
	Attempts     int              `json:"attempts" pg:",use_zero,notnull"`
	LastError    string           `json:"lastError"`
	CreatedAt    time.Time        `json:"createdAt" pg:"default:now()"`
	UpdatedAt    time.Time        `json:"updatedAt" pg:"default:now()"`
}

func (c *Command) Clone() *Command {
	clone := *c
	return &clone
}
