package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeFile(t, "runway.toml", `
currency = "INR"
report_name = "board-pack"
report_type = ["pdf", "csv"]

[inputs]
total_cash = 10000000.0
monthly_expenses = 1000000.0
monthly_revenue = 0.0

[email]
enabled = true
smtp_host = "smtp.example.com"
smtp_port = 587
recipients = ["cfo@example.com"]

[s3]
bucket = "reports"
prefix = "runway/"

[aws]
profile = "finance"
include_costs = true
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Inputs.TotalCash)
	assert.Equal(t, 10_000_000.0, *cfg.Inputs.TotalCash)
	require.NotNil(t, cfg.Inputs.MonthlyRevenue)
	assert.Equal(t, 0.0, *cfg.Inputs.MonthlyRevenue)
	assert.Nil(t, cfg.Inputs.ProjectedGrowthRate)

	assert.Equal(t, "board-pack", cfg.ReportName)
	assert.Equal(t, []string{"pdf", "csv"}, cfg.ReportType)
	assert.True(t, cfg.Email.Enabled)
	assert.Equal(t, 587, cfg.Email.Port)
	assert.Equal(t, []string{"cfo@example.com"}, cfg.Email.Recipients)
	assert.Equal(t, "reports", cfg.S3.Bucket)
	assert.Equal(t, "finance", cfg.AWS.Profile)
	assert.True(t, cfg.AWS.IncludeCosts)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeFile(t, "runway.yaml", `
currency: USD
inputs:
  total_cash: 2500000
  projected_growth_rate: 25
dir: out
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Currency)
	require.NotNil(t, cfg.Inputs.TotalCash)
	assert.Equal(t, 2_500_000.0, *cfg.Inputs.TotalCash)
	require.NotNil(t, cfg.Inputs.ProjectedGrowthRate)
	assert.Equal(t, 25.0, *cfg.Inputs.ProjectedGrowthRate)
	assert.Nil(t, cfg.Inputs.MonthlyExpenses)
	assert.Equal(t, "out", cfg.Dir)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeFile(t, "runway.json", `{"inputs": {"monthly_revenue": 500000}, "report_type": ["json"]}`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Inputs.MonthlyRevenue)
	assert.Equal(t, 500_000.0, *cfg.Inputs.MonthlyRevenue)
	assert.Equal(t, []string{"json"}, cfg.ReportType)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "error accessing config file")

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeFile(t, "runway.ini", "x=1"))
	assert.ErrorContains(t, err, "unsupported config file format: .ini")

	_, err = repo.LoadConfigFile(writeFile(t, "broken.json", "{"))
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestApplyEmailEnv(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.internal")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "reports@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("EMAIL_SENDER_ENABLED", "true")
	t.Setenv("INSECURE_SKIP_VERIFY", "")

	cfg, err := ApplyEmailEnv(types.EmailConfig{Host: "smtp.example.com", Port: 587})
	require.NoError(t, err)

	assert.Equal(t, "mail.internal", cfg.Host)
	assert.Equal(t, 2525, cfg.Port)
	assert.Equal(t, "reports@example.com", cfg.User)
	assert.Equal(t, "reports@example.com", cfg.From)
	assert.Equal(t, "secret", cfg.Password)
	assert.True(t, cfg.Enabled)
	assert.False(t, cfg.InsecureSkipVerify)
}

func TestApplyEmailEnv_InvalidPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "smtp")

	_, err := ApplyEmailEnv(types.EmailConfig{})
	assert.ErrorContains(t, err, "invalid SMTP_PORT")
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))

	t.Setenv("RUNWAY_TEST_VALUE", "")
	os.Unsetenv("RUNWAY_TEST_VALUE")
	path := writeFile(t, "test.env", "RUNWAY_TEST_VALUE=from-file\n")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("RUNWAY_TEST_VALUE"))
}

func TestLoad(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")
	t.Setenv("INSECURE_SKIP_VERIFY", "")
	t.Setenv("EMAIL_SENDER_ENABLED", "true")

	repo := NewConfigRepository()
	envFile := filepath.Join(t.TempDir(), "none.env")

	cfg, err := repo.Load("", envFile)
	require.NoError(t, err)
	assert.Nil(t, cfg.Inputs.TotalCash)
	assert.True(t, cfg.Email.Enabled)

	path := writeFile(t, "runway.yaml", "currency: USD\nemail:\n  smtp_host: smtp.example.com\n")
	cfg, err = repo.Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "smtp.example.com", cfg.Email.Host)

	_, err = repo.Load(filepath.Join(t.TempDir(), "missing.yaml"), envFile)
	assert.Error(t, err)
}
