package handlers

import (
	"fmt"

	"applicant_review_system/internal"
	"applicant_review_system/internal/services"
	"applicant_review_system/internal/tally"
)

type AddApprovalRequest struct {
	Email        string `json:"email"`
	PartitionKey string `json:"partitionKey"`
	RowKey       string `json:"rowKey"`
	Action       string `json:"action"`
}

type TallyResponse struct {
	Message              string            `json:"message"`
	Action               tally.Action      `json:"action,omitempty"`
	PartitionKey         string            `json:"partitionKey"`
	RowKey               string            `json:"rowKey"`
	AdminCount           int               `json:"adminCount"`
	ApprovalThreshold    int               `json:"approvalThreshold"`
	DenialThreshold      int               `json:"denialThreshold"`
	CurrentApprovalCount int               `json:"currentApprovalCount"`
	CurrentDenialCount   int               `json:"currentDenialCount"`
	Approvals            map[string]string `json:"approvals"`
	Denials              map[string]string `json:"denials"`
	IsComplete           bool              `json:"isComplete"`
	IsApprovalComplete   bool              `json:"isApprovalComplete"`
	IsDenialComplete     bool              `json:"isDenialComplete"`
}

type ConflictResponse struct {
	Error string `json:"error"`
	TallyResponse
}

type NotFoundResponse struct {
	Error        string `json:"error"`
	PartitionKey string `json:"partitionKey"`
	RowKey       string `json:"rowKey"`
}

type InternalErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type InitStudentRequest struct {
	RowKey string `json:"rowKey"`
}

type PopulateStudentRequest struct {
	RowKey string `json:"rowKey"`
	Email  string `json:"email"`
}

type StudentResponse struct {
	Message      string `json:"message"`
	RowKey       string `json:"rowKey"`
	PartitionKey string `json:"partitionKey"`
	RedpEmail    string `json:"redpEmail,omitempty"`
	RedpStatus   string `json:"redpStatus"`
	Timestamp    string `json:"timestamp"`
}

type StudentStateResponse struct {
	Error         string `json:"error"`
	CurrentStatus string `json:"currentStatus"`
}

func newTallyResponse(result services.Tally) TallyResponse {
	return TallyResponse{
		Message:              result.Message,
		Action:               result.Action,
		PartitionKey:         result.PartitionKey,
		RowKey:               result.RowKey,
		AdminCount:           result.Thresholds.AdminCount,
		ApprovalThreshold:    result.Thresholds.Approval,
		DenialThreshold:      result.Thresholds.Denial,
		CurrentApprovalCount: result.Summary.ApprovalCount,
		CurrentDenialCount:   result.Summary.DenialCount,
		Approvals:            slotted(result.Votes.Approvals, "approval", "timeOfApproval"),
		Denials:              slotted(result.Votes.Denials, "denial", "timeOfDenial"),
		IsComplete:           result.Summary.Complete(),
		IsApprovalComplete:   result.Summary.ApprovalComplete,
		IsDenialComplete:     result.Summary.DenialComplete,
	}
}

// slotted renders a vote list with 1-based slot keys, e.g. approval1 and
// timeOfApproval1.
func slotted(votes tally.VoteList, voterKey, timeKey string) map[string]string {
	out := make(map[string]string, len(votes)*2)
	for i, vote := range votes {
		out[fmt.Sprintf("%s%d", voterKey, i+1)] = vote.Voter
		out[fmt.Sprintf("%s%d", timeKey, i+1)] = internal.FormatTimestamp(vote.CastAt)
	}
	return out
}
