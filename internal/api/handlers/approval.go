package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"applicant_review_system/internal/api/middleware"
	"applicant_review_system/internal/db/repositories"
	"applicant_review_system/internal/services"
	"applicant_review_system/internal/tally"

	"go.uber.org/zap"
)

type ApprovalHandler struct {
	approvals services.ApprovalService
	logger    *zap.SugaredLogger
}

func NewApprovalHandler(approvals services.ApprovalService, logger *zap.SugaredLogger) *ApprovalHandler {
	return &ApprovalHandler{
		approvals: approvals,
		logger:    logger,
	}
}

// AddApproval records an approve or deny vote from an admin.
func (h *ApprovalHandler) AddApproval(w http.ResponseWriter, r *http.Request) {
	var request AddApprovalRequest
	if err := decodeBody(r, &request); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.TrimSpace(request.Email)
	partitionKey := strings.TrimSpace(request.PartitionKey)
	rowKey := strings.TrimSpace(request.RowKey)

	if email == "" || partitionKey == "" || rowKey == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields: email, partitionKey, rowKey")
		return
	}

	action, err := tally.ParseAction(request.Action)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid action. Must be 'approve' or 'deny'")
		return
	}

	if !validEmail(email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	result, err := h.approvals.CastVote(r.Context(), services.CastVoteRequest{
		PartitionKey: partitionKey,
		RowKey:       rowKey,
		Voter:        email,
		Action:       action,
	})
	if err != nil {
		h.writeError(w, err, action, partitionKey, rowKey)
		return
	}

	status := http.StatusOK
	if result.Reached {
		status = http.StatusCreated
	}

	middleware.JSONResponse(w, status, newTallyResponse(result))
}

// GetVotes returns the current tally of an applicant.
func (h *ApprovalHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	partitionKey := r.PathValue("partitionKey")
	rowKey := r.PathValue("rowKey")

	result, err := h.approvals.GetTally(r.Context(), partitionKey, rowKey)
	if err != nil {
		h.writeError(w, err, "", partitionKey, rowKey)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, newTallyResponse(result))
}

func (h *ApprovalHandler) writeError(w http.ResponseWriter, err error, action tally.Action, partitionKey, rowKey string) {
	var reachedErr *tally.ThresholdReachedError

	switch {
	case errors.Is(err, repositories.ErrApplicantNotFound):
		middleware.JSONResponse(w, http.StatusNotFound, NotFoundResponse{
			Error:        "Entity not found in applicant records table",
			PartitionKey: partitionKey,
			RowKey:       rowKey,
		})
	case errors.Is(err, tally.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Cannot %s the same entity more than once with the same email address", action))
	case errors.Is(err, tally.ErrInvalidAction), errors.Is(err, tally.ErrInvalidVoter):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &reachedErr):
		tallies := newTallyResponse(services.Tally{
			PartitionKey: partitionKey,
			RowKey:       rowKey,
			Action:       reachedErr.Action,
			Thresholds:   reachedErr.Thresholds,
			Votes:        reachedErr.Votes,
			Summary:      tally.Summarize(reachedErr.Votes, reachedErr.Thresholds),
		})
		message := capitalize(reachedErr.Error())
		tallies.Message = message
		middleware.JSONResponse(w, http.StatusConflict, ConflictResponse{
			Error:         message,
			TallyResponse: tallies,
		})
	default:
		h.logger.Errorw("failed to process vote", "partitionKey", partitionKey, "rowKey", rowKey, "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, InternalErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
	}
}

func capitalize(message string) string {
	if message == "" {
		return message
	}
	return strings.ToUpper(message[:1]) + message[1:]
}
