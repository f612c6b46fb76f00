package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"applicant_review_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type applicantRepository struct {
	repository
}

//go:generate mockgen -source=applicant_repository.go -destination=mocks/applicant_repository.go -package=mock_repositories
type ApplicantRepository interface {
	Create(ctx context.Context, request *models.Applicant) error
	GetOne(ctx context.Context, partitionKey, rowKey string) (*models.Applicant, error)
	// Replace writes the whole record if its version still matches the stored
	// one and bumps the version. It returns ErrVersionConflict otherwise.
	Replace(ctx context.Context, request *models.Applicant) error
}

func NewApplicantRepository(db *pg.DB) ApplicantRepository {
	return &applicantRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *applicantRepository) Create(ctx context.Context, request *models.Applicant) error {
	now := time.Now().UTC()
	request.Version = 1
	request.CreatedAt = now
	request.UpdatedAt = now

	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		var pgErr pg.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return fmt.Errorf("%w: %s/%s", ErrApplicantExists, request.PartitionKey, request.RowKey)
		}
		return err
	}

	return nil
}

func (r *applicantRepository) GetOne(ctx context.Context, partitionKey, rowKey string) (*models.Applicant, error) {
	applicant := &models.Applicant{}

	err := r.db.ModelContext(ctx, applicant).
		Where("partition_key = ?", partitionKey).
		Where("row_key = ?", rowKey).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrApplicantNotFound, partitionKey, rowKey)
	}

	return applicant, err
}

func (r *applicantRepository) Replace(ctx context.Context, request *models.Applicant) error {
	expected := request.Version
	updatedAt := request.UpdatedAt

	request.Version = expected + 1
	request.UpdatedAt = time.Now().UTC()

	result, err := r.db.ModelContext(ctx, request).
		WherePK().
		Where("version = ?", expected).
		Update()
	if err == nil && result.RowsAffected() == 0 {
		err = fmt.Errorf("%w: %s/%s at version %d", ErrVersionConflict, request.PartitionKey, request.RowKey, expected)
	}
	if err != nil {
		request.Version = expected
		request.UpdatedAt = updatedAt
		return err
	}

	return nil
}
