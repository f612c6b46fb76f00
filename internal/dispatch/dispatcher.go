package dispatch

import (
	"context"
	"fmt"

	"applicant_review_system/internal/announce"
	"applicant_review_system/internal/db/models"
	"applicant_review_system/internal/db/repositories"
	"applicant_review_system/internal/services"
	"applicant_review_system/internal/tally"

	"go.uber.org/zap"
)

// Dispatcher runs verdict effects after a tally is persisted. Failed effects
// are stored as pending commands for the Relay.
type Dispatcher struct {
	executor   executor
	commands   repositories.CommandRepository
	announcers []announce.Announcer
	logger     *zap.SugaredLogger
}

func NewDispatcher(
	initializer services.StudentInitializer,
	notifier services.Notifier,
	commands repositories.CommandRepository,
	announcers []announce.Announcer,
	logger *zap.SugaredLogger,
) *Dispatcher {
	return &Dispatcher{
		executor: executor{
			initializer: initializer,
			notifier:    notifier,
			logger:      logger,
		},
		commands:   commands,
		announcers: announcers,
		logger:     logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, applicant *models.Applicant, effects []tally.Effect) []string {
	var warnings []string

	for _, effect := range effects {
		command := newCommand(applicant, effect)

		if err := d.executor.execute(ctx, command); err != nil {
			d.logger.Errorw("verdict effect failed",
				"kind", command.Kind,
				"partitionKey", command.PartitionKey,
				"rowKey", command.RowKey,
				"error", err,
			)
			if effect.Kind == tally.EffectInitializeStudent {
				warnings = append(warnings, fmt.Sprintf("Warning: student initialization failed (%v).", err))
			}
			d.enqueue(ctx, command, err)
		}

		if effect.Kind == tally.EffectNotifyApplicant {
			d.announce(ctx, applicant, effect.Verdict)
		}
	}

	return warnings
}

func (d *Dispatcher) enqueue(ctx context.Context, command *models.Command, cause error) {
	command.Attempts = 1
	command.LastError = cause.Error()

	if err := d.commands.Create(ctx, command); err != nil {
		d.logger.Errorw("failed to queue verdict effect", "kind", command.Kind, "rowKey", command.RowKey, "error", err)
		return
	}

	d.logger.Infow("verdict effect queued for retry", "id", command.ID, "kind", command.Kind, "rowKey", command.RowKey)
}

func (d *Dispatcher) announce(ctx context.Context, applicant *models.Applicant, verdict tally.Verdict) {
	announcement := announce.Announcement{
		Name:    applicant.DisplayName(),
		Email:   applicant.Email,
		Verdict: verdict,
	}

	for _, announcer := range d.announcers {
		if err := announcer.Announce(ctx, announcement); err != nil {
			d.logger.Errorw("failed to announce verdict", "rowKey", applicant.RowKey, "verdict", verdict, "error", err)
		}
	}
}

func newCommand(applicant *models.Applicant, effect tally.Effect) *models.Command {
	return &models.Command{
		Kind:         effect.Kind,
		PartitionKey: applicant.PartitionKey,
		RowKey:       applicant.RowKey,
		Verdict:      effect.Verdict,
		Recipient:    applicant.DisplayName(),
		Address:      applicant.Email,
	}
}
