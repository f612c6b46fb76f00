package dispatch

import (
	"context"
	"fmt"

	"applicant_review_system/internal/db/models"
	"applicant_review_system/internal/services"
	"applicant_review_system/internal/tally"

	"go.uber.org/zap"
)

type executor struct {
	initializer services.StudentInitializer
	notifier    services.Notifier
	logger      *zap.SugaredLogger
}

func (e executor) execute(ctx context.Context, command *models.Command) error {
	switch command.Kind {
	case tally.EffectInitializeStudent:
		result, err := e.initializer.Initialize(ctx, command.RowKey)
		if err != nil {
			return err
		}
		if result.AlreadyInitialized {
			e.logger.Infow("student already initialized", "rowKey", command.RowKey)
		}
		return nil
	case tally.EffectNotifyApplicant:
		return e.notifier.Notify(ctx, services.Notification{
			Recipient: command.Recipient,
			Address:   command.Address,
			Verdict:   command.Verdict,
		})
	default:
		return fmt.Errorf("unknown command kind %q", command.Kind)
	}
}
