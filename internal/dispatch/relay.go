package dispatch

import (
	"context"

	"applicant_review_system/internal/db/models"
	"applicant_review_system/internal/db/repositories"
	"applicant_review_system/internal/services"

	"go.uber.org/zap"
)

const defaultBatchSize = 50

// Relay retries queued verdict effects. A command is marked failed once it
// has been attempted MaxAttempts times.
type Relay struct {
	executor    executor
	commands    repositories.CommandRepository
	batchSize   int
	maxAttempts int
	logger      *zap.SugaredLogger
}

func NewRelay(
	initializer services.StudentInitializer,
	notifier services.Notifier,
	commands repositories.CommandRepository,
	batchSize int,
	maxAttempts int,
	logger *zap.SugaredLogger,
) *Relay {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Relay{
		executor: executor{
			initializer: initializer,
			notifier:    notifier,
			logger:      logger,
		},
		commands:    commands,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// RunOnce processes one batch of pending commands. Store errors abort the
// cycle; delivery errors are recorded on the command.
func (r *Relay) RunOnce(ctx context.Context) error {
	pending, err := r.commands.GetPending(ctx, r.batchSize)
	if err != nil {
		r.logger.Errorw("failed to get pending commands", "error", err)
		return err
	}
	if len(pending) == 0 {
		r.logger.Debug("no pending commands")
		return nil
	}

	delivered := 0
	for _, command := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}

		command.Attempts++
		if err := r.executor.execute(ctx, command); err != nil {
			command.LastError = err.Error()
			if command.Attempts >= r.maxAttempts {
				command.Status = models.CommandStatusFailed
				r.logger.Errorw("giving up on command", "id", command.ID, "kind", command.Kind, "attempts", command.Attempts, "error", err)
			} else {
				r.logger.Infow("command retry failed", "id", command.ID, "kind", command.Kind, "attempts", command.Attempts, "error", err)
			}
		} else {
			command.Status = models.CommandStatusDone
			command.LastError = ""
			delivered++
		}

		if err := r.commands.Update(ctx, command); err != nil {
			r.logger.Errorw("failed to update command", "id", command.ID, "error", err)
			return err
		}
	}

	r.logger.Infow("relay cycle completed", "pending", len(pending), "delivered", delivered)
	return nil
}
