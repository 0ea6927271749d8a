package aws

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
	"github.com/diillson/runway-dashboard-go/internal/domain/repository"
)

// Cost Explorer só responde em us-east-1.
const costExplorerRegion = "us-east-1"

type costExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// CloudCostRepositoryImpl implementa o CloudCostRepository com Cost Explorer e STS.
type CloudCostRepositoryImpl struct {
	clients func(ctx context.Context, profile string) (costExplorerAPI, stsAPI, error)
	now     func() time.Time
}

// NewCloudCostRepository creates a CloudCostRepository backed by the AWS SDK.
func NewCloudCostRepository(loader *ConfigLoader) repository.CloudCostRepository {
	return &CloudCostRepositoryImpl{
		clients: func(ctx context.Context, profile string) (costExplorerAPI, stsAPI, error) {
			cfg, err := loader.Load(ctx, profile, costExplorerRegion)
			if err != nil {
				return nil, nil, err
			}
			return costexplorer.NewFromConfig(cfg), sts.NewFromConfig(cfg), nil
		},
		now: time.Now,
	}
}

// GetMonthlyCloudSpend returns the unblended cost of the last full calendar month.
func (r *CloudCostRepositoryImpl) GetMonthlyCloudSpend(ctx context.Context, profile string) (entity.CloudSpend, error) {
	ceClient, stsClient, err := r.clients(ctx, profile)
	if err != nil {
		return entity.CloudSpend{}, err
	}

	start, end := lastFullMonth(r.now())
	spend := entity.CloudSpend{
		Profile:     profileName(profile),
		PeriodName:  start.Format("Jan 2006"),
		PeriodStart: start,
		PeriodEnd:   end,
	}

	amount, err := costForPeriod(ctx, ceClient, start, end)
	if err != nil {
		return entity.CloudSpend{}, fmt.Errorf("error getting cost data for profile %s: %w", spend.Profile, err)
	}
	spend.Amount = amount

	// O account ID é só informativo; falha aqui não invalida o custo.
	if identity, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{}); err == nil && identity.Account != nil {
		spend.AccountID = *identity.Account
	}

	return spend, nil
}

// lastFullMonth returns [first day of previous month, first day of current month).
func lastFullMonth(now time.Time) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, -1, 0)
	return start, end
}

func costForPeriod(ctx context.Context, client costExplorerAPI, start, end time.Time) (float64, error) {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
	}

	result, err := client.GetCostAndUsage(ctx, input)
	if err != nil {
		return 0, err
	}

	var totalCost float64
	for _, byTime := range result.ResultsByTime {
		val, ok := byTime.Total["UnblendedCost"]
		if !ok || val.Amount == nil {
			continue
		}
		cost, err := strconv.ParseFloat(*val.Amount, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid cost amount %q: %w", *val.Amount, err)
		}
		totalCost += cost
	}
	return totalCost, nil
}
