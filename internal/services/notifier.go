package services

import (
	"context"
	"time"

	"applicant_review_system/internal/tally"
)

type Notification struct {
	Recipient string        `json:"recipient"`
	Address   string        `json:"address"`
	Verdict   tally.Verdict `json:"verdict"`
}

type notifier struct {
	service
}

//go:generate mockgen -source=notifier.go -destination=mocks/notifier.go -package=mock_services
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

func NewNotifier(baseURL string, timeout time.Duration) Notifier {
	return &notifier{
		service: newService(baseURL, timeout),
	}
}

func (n *notifier) Notify(ctx context.Context, notification Notification) error {
	return n.postJSON(ctx, notification, nil)
}
