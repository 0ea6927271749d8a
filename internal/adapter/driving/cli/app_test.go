package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"--cash", "₹1,00,00,000",
		"--expenses=1000000",
		"--growth", "12.5",
		"-C", "runway.toml",
		"-y", "pdf,json",
		"-n", "board",
		"-d", "out",
		"--email-to", "cfo@example.com,ceo@example.com",
		"--s3-bucket", "reports",
		"-p", "finance",
		"--include-aws-costs",
		"--series",
		"-i",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Equal(t, "₹1,00,00,000", args.TotalCash)
	assert.Equal(t, "1000000", args.MonthlyExpenses)
	assert.Empty(t, args.MonthlyRevenue)
	assert.Equal(t, "12.5", args.GrowthRate)
	assert.Equal(t, "runway.toml", args.ConfigFile)
	assert.Equal(t, []string{"pdf", "json"}, args.ReportType)
	assert.Equal(t, "board", args.ReportName)
	assert.True(t, filepath.IsAbs(args.Dir))
	assert.Equal(t, "out", filepath.Base(args.Dir))
	assert.Equal(t, []string{"cfo@example.com", "ceo@example.com"}, args.EmailTo)
	assert.Equal(t, "reports", args.S3Bucket)
	assert.Equal(t, "finance", args.AWSProfile)
	assert.True(t, args.IncludeAWSCosts)
	assert.True(t, args.ShowSeries)
	assert.True(t, args.Interactive)
}

func TestParseArgs_Defaults(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags(nil))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Empty(t, args.Dir)
	assert.Empty(t, args.ReportType)
	assert.False(t, args.Interactive)
	assert.False(t, args.IncludeAWSCosts)
}

func TestRunCommand_WithoutUseCase(t *testing.T) {
	app := NewCLIApp("1.0.0")
	err := app.runCommand(app.rootCmd, nil)
	assert.ErrorContains(t, err, "projection use case not configured")
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateAmount(""))
	assert.NoError(t, validateAmount("₹5,00,000"))
	assert.EqualError(t, validateAmount("-1"), "Please enter a valid positive number")
	assert.Error(t, validateAmount("abc"))

	assert.NoError(t, validateGrowthRate("0"))
	assert.NoError(t, validateGrowthRate("50"))
	assert.EqualError(t, validateGrowthRate("51"), "Growth rate must be between 0 and 50")
	assert.Error(t, validateGrowthRate("-5"))
}

func TestAmountText(t *testing.T) {
	assert.Equal(t, "10000000", amountText(10_000_000))
	assert.Equal(t, "12.5", amountText(12.5))
}
