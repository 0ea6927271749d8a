package repository

import (
	"context"

	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
)

// NotificationRepository delivers a report to people, e.g. by email.
type NotificationRepository interface {
	SendReport(ctx context.Context, recipients []string, report entity.Report, attachments []string) error
}
