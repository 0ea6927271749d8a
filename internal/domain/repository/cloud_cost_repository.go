package repository

import (
	"context"

	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
)

// CloudCostRepository reads the cloud bill so it can be folded into monthly expenses.
type CloudCostRepository interface {
	// GetMonthlyCloudSpend returns the spend of the last full calendar month.
	GetMonthlyCloudSpend(ctx context.Context, profile string) (entity.CloudSpend, error)
}
