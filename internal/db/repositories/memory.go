package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"applicant_review_system/internal/db/models"
)

// InMemoryApplicantRepository backs STORE_DRIVER=memory and tests. It applies
// the same version check as the Postgres repository.
type InMemoryApplicantRepository struct {
	mu         sync.Mutex
	applicants map[string]*models.Applicant
}

func NewInMemoryApplicantRepository() *InMemoryApplicantRepository {
	return &InMemoryApplicantRepository{
		applicants: make(map[string]*models.Applicant),
	}
}

// Put stores a copy of the applicant as is, overwriting any existing record.
func (r *InMemoryApplicantRepository) Put(applicant *models.Applicant) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.applicants[applicantKey(applicant.PartitionKey, applicant.RowKey)] = applicant.Clone()
}

func (r *InMemoryApplicantRepository) Create(_ context.Context, request *models.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := applicantKey(request.PartitionKey, request.RowKey)
	if _, ok := r.applicants[key]; ok {
		return fmt.Errorf("%w: %s/%s", ErrApplicantExists, request.PartitionKey, request.RowKey)
	}

	now := time.Now().UTC()
	request.Version = 1
	request.CreatedAt = now
	request.UpdatedAt = now
	r.applicants[key] = request.Clone()

	return nil
}

func (r *InMemoryApplicantRepository) GetOne(_ context.Context, partitionKey, rowKey string) (*models.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	applicant, ok := r.applicants[applicantKey(partitionKey, rowKey)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrApplicantNotFound, partitionKey, rowKey)
	}

	return applicant.Clone(), nil
}

func (r *InMemoryApplicantRepository) Replace(_ context.Context, request *models.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := applicantKey(request.PartitionKey, request.RowKey)
	stored, ok := r.applicants[key]
	if !ok || stored.Version != request.Version {
		return fmt.Errorf("%w: %s/%s at version %d", ErrVersionConflict, request.PartitionKey, request.RowKey, request.Version)
	}

	request.Version++
	request.UpdatedAt = time.Now().UTC()
	r.applicants[key] = request.Clone()

	return nil
}

func applicantKey(partitionKey, rowKey string) string {
	return partitionKey + "\x00" + rowKey
}

type InMemoryCommandRepository struct {
	mu       sync.Mutex
	order    []string
	commands map[string]*models.Command
}

func NewInMemoryCommandRepository() *InMemoryCommandRepository {
	return &InMemoryCommandRepository{
		commands: make(map[string]*models.Command),
	}
}

func (r *InMemoryCommandRepository) Create(_ context.Context, request *models.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prepareCommand(request)
	if _, ok := r.commands[request.ID]; !ok {
		r.order = append(r.order, request.ID)
	}
	r.commands[request.ID] = request.Clone()

	return nil
}

func (r *InMemoryCommandRepository) GetPending(_ context.Context, limit int) ([]*models.Command, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	commands := make([]*models.Command, 0)
	for _, id := range r.order {
		if limit > 0 && len(commands) >= limit {
			break
		}
		command := r.commands[id]
		if command.Status == models.CommandStatusPending {
			commands = append(commands, command.Clone())
		}
	}

	return commands, nil
}

func (r *InMemoryCommandRepository) Update(_ context.Context, request *models.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.commands[request.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, request.ID)
	}

	request.UpdatedAt = time.Now().UTC()
	r.commands[request.ID] = request.Clone()

	return nil
}

// All returns every stored command in creation order.
func (r *InMemoryCommandRepository) All() []*models.Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	commands := make([]*models.Command, 0, len(r.order))
	for _, id := range r.order {
		commands = append(commands, r.commands[id].Clone())
	}

	return commands
}
