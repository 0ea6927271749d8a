package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
	"github.com/diillson/runway-dashboard-go/internal/domain/projection"
	"github.com/diillson/runway-dashboard-go/internal/domain/repository"
	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/diillson/runway-dashboard-go/pkg/format"
)

// Valores iniciais do formulário quando nada é informado.
const (
	DefaultTotalCash       = 10_000_000
	DefaultMonthlyExpenses = 1_000_000
	DefaultMonthlyRevenue  = 500_000
	DefaultGrowthRate      = 10
)

const (
	defaultReportType = "csv"
	invalidNumberMsg  = "Please enter a valid positive number"
)

// StorageFactory builds the report publisher for an AWS profile and region.
type StorageFactory func(profile, region string) repository.StorageRepository

// NotifierFactory builds the email sender from the resolved SMTP settings.
type NotifierFactory func(cfg types.EmailConfig) repository.NotificationRepository

// InputPrompter asks the user for the projection inputs, starting from defaults.
type InputPrompter interface {
	PromptInputs(ctx context.Context, defaults entity.ProjectionInputs) (entity.ProjectionInputs, error)
}

// ProjectionUseCase runs a runway projection and distributes the resulting report.
type ProjectionUseCase struct {
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	cloudRepo  repository.CloudCostRepository
	storage    StorageFactory
	notifier   NotifierFactory
	prompter   InputPrompter
	console    types.ConsoleInterface
	now        func() time.Time
}

// NewProjectionUseCase creates a new projection use case.
func NewProjectionUseCase(
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	cloudRepo repository.CloudCostRepository,
	storage StorageFactory,
	notifier NotifierFactory,
	console types.ConsoleInterface,
) *ProjectionUseCase {
	return &ProjectionUseCase{
		exportRepo: exportRepo,
		configRepo: configRepo,
		cloudRepo:  cloudRepo,
		storage:    storage,
		notifier:   notifier,
		console:    console,
		now:        time.Now,
	}
}

// SetInputPrompter enables interactive input collection.
func (uc *ProjectionUseCase) SetInputPrompter(p InputPrompter) {
	uc.prompter = p
}

// RunProjection loads configuration, computes the projection, displays it and
// exports, publishes and emails the report as requested.
// Failures after the projection is computed are logged, not returned.
func (uc *ProjectionUseCase) RunProjection(ctx context.Context, args *types.CLIArgs) (*entity.Report, error) {
	cfg, err := uc.configRepo.Load(args.ConfigFile, args.EnvFile)
	if err != nil {
		return nil, err
	}

	inputs, cloudSpend, err := uc.ResolveInputs(ctx, args, cfg)
	if err != nil {
		return nil, err
	}
	if err := ValidateInputs(inputs); err != nil {
		return nil, err
	}

	currency := firstNonEmpty(args.Currency, cfg.Currency, format.DefaultCurrency)
	currency = strings.ToUpper(currency)
	if !format.SupportedCurrency(currency) {
		uc.console.LogWarning("Currency %s has no display style; amounts will be prefixed with the code", currency)
	}

	result := projection.Compute(inputs)
	report := entity.NewReport(inputs, result, currency, uc.now())
	report.CloudSpend = cloudSpend

	uc.display(report, args.ShowSeries)

	files := uc.export(report, args, cfg)
	if len(files) == 0 {
		return &report, nil
	}

	uc.publish(ctx, files, args, cfg)
	uc.sendEmail(ctx, report, files, args, cfg)

	return &report, nil
}

// ResolveInputs merges CLI flags, the config file and the built-in defaults, in that order
// of precedence. Interactive mode then lets the user edit the values, and the last full
// month of AWS spend is added to the expenses when requested.
func (uc *ProjectionUseCase) ResolveInputs(ctx context.Context, args *types.CLIArgs, cfg *types.Config) (entity.ProjectionInputs, *entity.CloudSpend, error) {
	inputs := entity.ProjectionInputs{
		TotalCash:           DefaultTotalCash,
		MonthlyExpenses:     DefaultMonthlyExpenses,
		MonthlyRevenue:      DefaultMonthlyRevenue,
		ProjectedGrowthRate: DefaultGrowthRate,
	}

	if cfg != nil {
		overrideFloat(&inputs.TotalCash, cfg.Inputs.TotalCash)
		overrideFloat(&inputs.MonthlyExpenses, cfg.Inputs.MonthlyExpenses)
		overrideFloat(&inputs.MonthlyRevenue, cfg.Inputs.MonthlyRevenue)
		overrideFloat(&inputs.ProjectedGrowthRate, cfg.Inputs.ProjectedGrowthRate)
	} else {
		cfg = &types.Config{}
	}

	invalid := map[string]string{}
	for _, flag := range []struct {
		name  string
		raw   string
		field *float64
	}{
		{"total_cash", args.TotalCash, &inputs.TotalCash},
		{"monthly_expenses", args.MonthlyExpenses, &inputs.MonthlyExpenses},
		{"monthly_revenue", args.MonthlyRevenue, &inputs.MonthlyRevenue},
		{"projected_growth_rate", args.GrowthRate, &inputs.ProjectedGrowthRate},
	} {
		if strings.TrimSpace(flag.raw) == "" {
			continue
		}
		v, err := format.ParseAmount(flag.raw)
		if err != nil {
			invalid[flag.name] = invalidNumberMsg
			continue
		}
		*flag.field = v
	}
	if len(invalid) > 0 {
		return entity.ProjectionInputs{}, nil, &types.ValidationError{Fields: invalid}
	}

	if args.Interactive {
		if uc.prompter == nil {
			return entity.ProjectionInputs{}, nil, errors.New("interactive mode is not available")
		}
		prompted, err := uc.prompter.PromptInputs(ctx, inputs)
		if err != nil {
			return entity.ProjectionInputs{}, nil, fmt.Errorf("error reading inputs: %w", err)
		}
		inputs = prompted
	}

	if !args.IncludeAWSCosts && !cfg.AWS.IncludeCosts {
		return inputs, nil, nil
	}

	profile := firstNonEmpty(args.AWSProfile, cfg.AWS.Profile)
	status := uc.console.Status("Fetching last month's AWS spend...")
	spend, err := uc.cloudRepo.GetMonthlyCloudSpend(ctx, profile)
	status.Stop()
	if err != nil {
		return entity.ProjectionInputs{}, nil, fmt.Errorf("error including AWS costs: %w", err)
	}

	inputs.MonthlyExpenses += spend.Amount
	uc.console.LogInfo("Added %s of AWS spend (%s, account %s) to monthly expenses",
		format.Number(spend.Amount), spend.PeriodName, firstNonEmpty(spend.AccountID, "unknown"))
	return inputs, &spend, nil
}

// ValidateInputs rejects negative and non-finite values.
func ValidateInputs(inputs entity.ProjectionInputs) error {
	invalid := map[string]string{}
	check := func(name string, v float64) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			invalid[name] = invalidNumberMsg
		}
	}

	check("total_cash", inputs.TotalCash)
	check("monthly_expenses", inputs.MonthlyExpenses)
	check("monthly_revenue", inputs.MonthlyRevenue)
	check("projected_growth_rate", inputs.ProjectedGrowthRate)

	if len(invalid) > 0 {
		return &types.ValidationError{Fields: invalid}
	}
	return nil
}

func (uc *ProjectionUseCase) display(report entity.Report, showSeries bool) {
	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	for _, row := range report.SummaryRows() {
		table.AddRow(row.Metric, row.Value)
	}
	uc.console.Println(table.Render())

	uc.console.DisplayPanel("What This Means For Your Business", report.Narrative())

	if !showSeries {
		return
	}

	points := report.Result.Points()
	series := make([]types.CashPoint, len(points))
	for i, p := range points {
		series[i] = types.CashPoint{Month: p.Month, Cash: p.CashRemaining}
	}
	uc.console.DisplayCashSeries(series, report.Result.BreakEvenPoint, func(v float64) string {
		return format.Currency(v, report.Currency)
	})
}

// export writes every requested report type and returns the created files.
func (uc *ProjectionUseCase) export(report entity.Report, args *types.CLIArgs, cfg *types.Config) []string {
	reportName := firstNonEmpty(args.ReportName, cfg.ReportName)
	if reportName == "" {
		return nil
	}

	reportTypes := args.ReportType
	if len(reportTypes) == 0 {
		reportTypes = cfg.ReportType
	}
	if len(reportTypes) == 0 {
		reportTypes = []string{defaultReportType}
	}
	dir := firstNonEmpty(args.Dir, cfg.Dir)

	var files []string
	for _, reportType := range reportTypes {
		var (
			path string
			err  error
		)
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, reportName, dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, reportName, dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, reportName, dir)
		case "md", "markdown":
			path, err = uc.exportRepo.ExportToMarkdown(report, reportName, dir)
		default:
			uc.console.LogWarning("Unknown report type '%s' (use csv, json, pdf or md)", reportType)
			continue
		}

		label := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", label, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", label, path)
		files = append(files, path)
	}
	return files
}

// publish uploads the exported files to S3 when a bucket is configured.
func (uc *ProjectionUseCase) publish(ctx context.Context, files []string, args *types.CLIArgs, cfg *types.Config) {
	bucket := firstNonEmpty(args.S3Bucket, cfg.S3.Bucket)
	if bucket == "" || uc.storage == nil {
		return
	}
	prefix := firstNonEmpty(args.S3Prefix, cfg.S3.Prefix)
	store := uc.storage(firstNonEmpty(args.AWSProfile, cfg.AWS.Profile), cfg.S3.Region)

	status := uc.console.Status(fmt.Sprintf("Uploading reports to s3://%s...", bucket))
	defer status.Stop()

	for _, file := range files {
		uri, err := store.Upload(ctx, bucket, objectKey(prefix, file), file)
		if err != nil {
			uc.console.LogError("Failed to upload %s: %s", filepath.Base(file), err)
			continue
		}
		uc.console.LogSuccess("Uploaded report to %s", uri)
	}
}

// sendEmail sends the exported files to the recipients from the flags or the config file.
func (uc *ProjectionUseCase) sendEmail(ctx context.Context, report entity.Report, files []string, args *types.CLIArgs, cfg *types.Config) {
	recipients := args.EmailTo
	if len(recipients) == 0 {
		recipients = cfg.Email.Recipients
	}
	if len(recipients) == 0 || uc.notifier == nil {
		return
	}

	status := uc.console.Status("Sending report by email...")
	err := uc.notifier(cfg.Email).SendReport(ctx, recipients, report, files)
	status.Stop()

	switch {
	case errors.Is(err, types.ErrEmailDisabled):
		uc.console.LogWarning("Email sending is disabled; set EMAIL_SENDER_ENABLED=true or [email] enabled = true")
	case err != nil:
		uc.console.LogError("Failed to send report by email: %s", err)
	default:
		uc.console.LogSuccess("Report sent to %s", strings.Join(recipients, ", "))
	}
}

func objectKey(prefix, file string) string {
	name := filepath.Base(file)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func overrideFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
