package services

import (
	"context"
	"fmt"
	"time"

	"applicant_review_system/internal/db/models"
	"applicant_review_system/internal/db/repositories"

	"go.uber.org/zap"
)

// StudentStateError rejects an init or populate call that does not fit the
// applicant's current redp status.
type StudentStateError struct {
	RowKey        string
	CurrentStatus models.RedpStatus
	Message       string
}

func (e *StudentStateError) Error() string {
	return e.Message
}

//go:generate mockgen -source=student_service.go -destination=mocks/student_service.go -package=mock_services
type StudentService interface {
	Initialize(ctx context.Context, rowKey string) (*models.Applicant, error)
	Populate(ctx context.Context, rowKey, email string) (*models.Applicant, error)
}

type studentService struct {
	applicants repositories.ApplicantRepository
	now        func() time.Time
	logger     *zap.SugaredLogger
}

func NewStudentService(applicants repositories.ApplicantRepository, logger *zap.SugaredLogger) StudentService {
	return &studentService{
		applicants: applicants,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *studentService) Initialize(ctx context.Context, rowKey string) (*models.Applicant, error) {
	applicant, err := s.applicants.GetOne(ctx, models.SignupPartition, rowKey)
	if err != nil {
		return nil, err
	}

	switch applicant.RedpStatus {
	case models.RedpStatusPending:
		return nil, &StudentStateError{
			RowKey:        rowKey,
			CurrentStatus: applicant.RedpStatus,
			Message:       fmt.Sprintf("Student with rowKey '%s' is already initialized with status 'pending'", rowKey),
		}
	case models.RedpStatusEmailSent:
		return nil, emailAlreadySent(rowKey)
	}

	now := s.now().UTC()
	applicant.RedpStatus = models.RedpStatusPending
	applicant.RedpInitAt = &now

	if err := s.applicants.Replace(ctx, applicant); err != nil {
		return nil, fmt.Errorf("failed to save applicant: %w", err)
	}

	s.logger.Infow("student initialized", "rowKey", rowKey)
	return applicant, nil
}

func (s *studentService) Populate(ctx context.Context, rowKey, email string) (*models.Applicant, error) {
	applicant, err := s.applicants.GetOne(ctx, models.SignupPartition, rowKey)
	if err != nil {
		return nil, err
	}

	switch applicant.RedpStatus {
	case models.RedpStatusEmailSent:
		return nil, emailAlreadySent(rowKey)
	case models.RedpStatusPending:
	default:
		return nil, &StudentStateError{
			RowKey:        rowKey,
			CurrentStatus: applicant.RedpStatus,
			Message:       fmt.Sprintf("Student with rowKey '%s' must have 'pending' status to populate email", rowKey),
		}
	}

	now := s.now().UTC()
	applicant.RedpEmail = email
	applicant.RedpStatus = models.RedpStatusEmailSent
	applicant.RedpEmailAt = &now

	if err := s.applicants.Replace(ctx, applicant); err != nil {
		return nil, fmt.Errorf("failed to save applicant: %w", err)
	}

	s.logger.Infow("student populated", "rowKey", rowKey)
	return applicant, nil
}

func emailAlreadySent(rowKey string) *StudentStateError {
	return &StudentStateError{
		RowKey:        rowKey,
		CurrentStatus: models.RedpStatusEmailSent,
		Message:       fmt.Sprintf("Student with rowKey '%s' already has email sent status", rowKey),
	}
}
