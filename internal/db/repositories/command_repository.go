package repositories

import (
	"context"
	"fmt"
	"time"

	"applicant_review_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type commandRepository struct {
	repository
}

//go:generate mockgen -source=command_repository.go -destination=mocks/command_repository.go -package=mock_repositories
type CommandRepository interface {
	Create(ctx context.Context, request *models.Command) error
	GetPending(ctx context.Context, limit int) ([]*models.Command, error)
	Update(ctx context.Context, request *models.Command) error
}

func NewCommandRepository(db *pg.DB) CommandRepository {
	return &commandRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *commandRepository) Create(ctx context.Context, request *models.Command) error {
	prepareCommand(request)

	_, err := r.db.ModelContext(ctx, request).Insert()
	return err
}

func (r *commandRepository) GetPending(ctx context.Context, limit int) ([]*models.Command, error) {
	commands := make([]*models.Command, 0)

	err := r.db.ModelContext(ctx, &commands).
		Where("status = ?", models.CommandStatusPending).
		OrderExpr("created_at ASC").
		Limit(limit).
		Select()

	return commands, err
}

func (r *commandRepository) Update(ctx context.Context, request *models.Command) error {
	request.UpdatedAt = time.Now().UTC()

	result, err := r.db.ModelContext(ctx, request).WherePK().Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, request.ID)
	}

	return nil
}

func prepareCommand(request *models.Command) {
	now := time.Now().UTC()
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.Status == "" {
		request.Status = models.CommandStatusPending
	}
	request.CreatedAt = now
	request.UpdatedAt = now
}
