package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

type InitializeResult struct {
	RedpStatus string `json:"redpStatus"`
	Message    string `json:"message"`
	// AlreadyInitialized is set when the initializer reported an earlier run.
	AlreadyInitialized bool `json:"-"`
}

type initializeRequest struct {
	RowKey string `json:"rowKey"`
}

type initializeError struct {
	Error string `json:"error"`
}

type studentInitializer struct {
	service
}

//go:generate mockgen -source=student_initializer.go -destination=mocks/student_initializer.go -package=mock_services
type StudentInitializer interface {
	Initialize(ctx context.Context, rowKey string) (InitializeResult, error)
}

func NewStudentInitializer(baseURL string, timeout time.Duration) StudentInitializer {
	return &studentInitializer{
		service: newService(baseURL, timeout),
	}
}

func (s *studentInitializer) Initialize(ctx context.Context, rowKey string) (InitializeResult, error) {
	var result InitializeResult

	err := s.postJSON(ctx, initializeRequest{RowKey: rowKey}, &result)

	var statusErr *StatusError
	if errors.As(err, &statusErr) && isAlreadyInitialized(statusErr.Body) {
		return InitializeResult{Message: statusErr.Body, AlreadyInitialized: true}, nil
	}
	if err != nil {
		return InitializeResult{}, err
	}

	return result, nil
}

func isAlreadyInitialized(body string) bool {
	message := body
	var payload initializeError
	if err := json.Unmarshal([]byte(body), &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}

	message = strings.ToLower(message)
	return strings.Contains(message, "already initialized") || strings.Contains(message, "already has email sent")
}
