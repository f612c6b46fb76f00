package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"applicant_review_system/internal"
	"applicant_review_system/internal/api/middleware"
	"applicant_review_system/internal/db/models"
	"applicant_review_system/internal/db/repositories"
	"applicant_review_system/internal/services"

	"go.uber.org/zap"
)

type StudentHandler struct {
	students services.StudentService
	logger   *zap.SugaredLogger
}

func NewStudentHandler(students services.StudentService, logger *zap.SugaredLogger) *StudentHandler {
	return &StudentHandler{
		students: students,
		logger:   logger,
	}
}

func (h *StudentHandler) InitStudent(w http.ResponseWriter, r *http.Request) {
	var request InitStudentRequest
	if err := decodeBody(r, &request); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rowKey := strings.TrimSpace(request.RowKey)
	if rowKey == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required field: rowKey")
		return
	}

	applicant, err := h.students.Initialize(r.Context(), rowKey)
	if err != nil {
		h.writeError(w, err, rowKey)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, StudentResponse{
		Message:      fmt.Sprintf("Student with rowKey '%s' successfully initialized", rowKey),
		RowKey:       rowKey,
		PartitionKey: applicant.PartitionKey,
		RedpStatus:   applicant.RedpStatus.String(),
		Timestamp:    internal.FormatOptionalTimestamp(applicant.RedpInitAt),
	})
}

func (h *StudentHandler) PopulateStudent(w http.ResponseWriter, r *http.Request) {
	var request PopulateStudentRequest
	if err := decodeBody(r, &request); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rowKey := strings.TrimSpace(request.RowKey)
	email := strings.TrimSpace(request.Email)
	if rowKey == "" || email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields: rowKey, email")
		return
	}

	if !validEmail(email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	applicant, err := h.students.Populate(r.Context(), rowKey, email)
	if err != nil {
		h.writeError(w, err, rowKey)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, StudentResponse{
		Message:      fmt.Sprintf("Student with rowKey '%s' successfully populated with email", rowKey),
		RowKey:       rowKey,
		PartitionKey: applicant.PartitionKey,
		RedpEmail:    applicant.RedpEmail,
		RedpStatus:   applicant.RedpStatus.String(),
		Timestamp:    internal.FormatOptionalTimestamp(applicant.RedpEmailAt),
	})
}

func (h *StudentHandler) writeError(w http.ResponseWriter, err error, rowKey string) {
	var stateErr *services.StudentStateError

	switch {
	case errors.Is(err, repositories.ErrApplicantNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound,
			fmt.Sprintf("Entity with rowKey '%s' not found in applicant records table", rowKey))
	case errors.As(err, &stateErr):
		currentStatus := stateErr.CurrentStatus.String()
		if stateErr.CurrentStatus == models.RedpStatusNone {
			currentStatus = "empty"
		}
		middleware.JSONResponse(w, http.StatusBadRequest, StudentStateResponse{
			Error:         stateErr.Message,
			CurrentStatus: currentStatus,
		})
	default:
		h.logger.Errorw("failed to update student", "rowKey", rowKey, "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, InternalErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
	}
}
