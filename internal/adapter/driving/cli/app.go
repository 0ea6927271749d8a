package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/diillson/runway-dashboard-go/pkg/format"
	"github.com/diillson/runway-dashboard-go/pkg/version"

	"github.com/diillson/runway-dashboard-go/internal/application/usecase"
	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd           *cobra.Command
	projectionUseCase *usecase.ProjectionUseCase
	version           string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:   "runway",
		Short: "Burn rate and cash runway calculator",
		Long: "Projects how many months of cash a company has left from its cash reserves, " +
			"monthly expenses, monthly revenue and expected annual revenue growth.",
		Version:      version.FormatVersion(),
		SilenceUsage: true,
		RunE:         app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Runway calculator version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("env-file", "", "Path to a .env file with SMTP settings (default: ./.env when present)")
	flags.String("cash", "", "Total cash reserves, e.g. 10000000 or ₹1,00,00,000")
	flags.String("expenses", "", "Monthly expenses")
	flags.String("revenue", "", "Monthly revenue")
	flags.String("growth", "", "Projected annual revenue growth rate in percent")
	flags.String("currency", "", fmt.Sprintf("Display currency code (default: %s)", format.DefaultCurrency))
	flags.BoolP("interactive", "i", false, "Enter the inputs in an interactive form")
	flags.Bool("series", false, "Display the month-by-month cash projection")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, md (default: csv)")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.StringSlice("email-to", nil, "Email the exported reports to these addresses (comma-separated)")
	flags.String("s3-bucket", "", "Upload the exported reports to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded reports")
	flags.StringP("aws-profile", "p", "", "AWS profile used for Cost Explorer and S3")
	flags.Bool("include-aws-costs", false, "Add last month's AWS spend to monthly expenses")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	envFile, _ := flags.GetString("env-file")
	cash, _ := flags.GetString("cash")
	expenses, _ := flags.GetString("expenses")
	revenue, _ := flags.GetString("revenue")
	growth, _ := flags.GetString("growth")
	currency, _ := flags.GetString("currency")
	interactive, _ := flags.GetBool("interactive")
	series, _ := flags.GetBool("series")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	emailTo, _ := flags.GetStringSlice("email-to")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	awsProfile, _ := flags.GetString("aws-profile")
	includeAWSCosts, _ := flags.GetBool("include-aws-costs")

	// Convert to absolute path; an empty dir falls back to the config file or the cwd.
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:      configFile,
		EnvFile:         envFile,
		TotalCash:       cash,
		MonthlyExpenses: expenses,
		MonthlyRevenue:  revenue,
		GrowthRate:      growth,
		Currency:        currency,
		Interactive:     interactive,
		ShowSeries:      series,
		ReportName:      reportName,
		ReportType:      reportType,
		Dir:             dir,
		EmailTo:         emailTo,
		S3Bucket:        s3Bucket,
		S3Prefix:        s3Prefix,
		AWSProfile:      awsProfile,
		IncludeAWSCosts: includeAWSCosts,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	if app.projectionUseCase == nil {
		return fmt.Errorf("projection use case not configured")
	}

	displayWelcomeBanner()

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if cliArgs.Interactive {
		currency := cliArgs.Currency
		if currency == "" {
			currency = format.DefaultCurrency
		}
		app.projectionUseCase.SetInputPrompter(NewFormPrompter(currency))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = app.projectionUseCase.RunProjection(ctx, cliArgs)
	return err
}

// SetProjectionUseCase sets the projection use case for the CLI app.
func (app *CLIApp) SetProjectionUseCase(useCase *usecase.ProjectionUseCase) {
	app.projectionUseCase = useCase
}
