package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Admin struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type adminsResponse struct {
	Success bool    `json:"success"`
	Admins  []Admin `json:"admins"`
}

type adminDirectory struct {
	service
	fallback int
	logger   *zap.SugaredLogger
}

//go:generate mockgen -source=admin_directory.go -destination=mocks/admin_directory.go -package=mock_services
type AdminDirectory interface {
	// AdminCount never fails: any lookup problem yields the fallback count.
	AdminCount(ctx context.Context) int
}

func NewAdminDirectory(baseURL string, timeout time.Duration, fallback int, logger *zap.SugaredLogger) AdminDirectory {
	return &adminDirectory{
		service:  newService(baseURL, timeout),
		fallback: fallback,
		logger:   logger,
	}
}

func (d *adminDirectory) AdminCount(ctx context.Context) int {
	if d.baseURL == "" {
		return d.fallback
	}

	var response adminsResponse
	if err := d.getJSON(ctx, &response); err != nil {
		d.logger.Errorw("failed to read admin directory, using fallback", "error", err, "fallback", d.fallback)
		return d.fallback
	}

	if !response.Success || len(response.Admins) == 0 {
		d.logger.Infow("admin directory returned no admins, using fallback", "success", response.Success, "fallback", d.fallback)
		return d.fallback
	}

	return len(response.Admins)
}
