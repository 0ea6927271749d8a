package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Inputs     InputsConfig `json:"inputs" yaml:"inputs" toml:"inputs"`
	Currency   string       `json:"currency" yaml:"currency" toml:"currency"`
	ReportName string       `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string     `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string       `json:"dir" yaml:"dir" toml:"dir"`
	Email      EmailConfig  `json:"email" yaml:"email" toml:"email"`
	S3         S3Config     `json:"s3" yaml:"s3" toml:"s3"`
	AWS        AWSConfig    `json:"aws" yaml:"aws" toml:"aws"`
}

// InputsConfig holds the financial inputs. Nil means "not set in the file".
type InputsConfig struct {
	TotalCash           *float64 `json:"total_cash" yaml:"total_cash" toml:"total_cash"`
	MonthlyExpenses     *float64 `json:"monthly_expenses" yaml:"monthly_expenses" toml:"monthly_expenses"`
	MonthlyRevenue      *float64 `json:"monthly_revenue" yaml:"monthly_revenue" toml:"monthly_revenue"`
	ProjectedGrowthRate *float64 `json:"projected_growth_rate" yaml:"projected_growth_rate" toml:"projected_growth_rate"`
}

// EmailConfig holds the SMTP settings used to email reports.
type EmailConfig struct {
	Enabled            bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	Host               string   `json:"smtp_host" yaml:"smtp_host" toml:"smtp_host"`
	Port               int      `json:"smtp_port" yaml:"smtp_port" toml:"smtp_port"`
	User               string   `json:"smtp_user" yaml:"smtp_user" toml:"smtp_user"`
	Password           string   `json:"smtp_password" yaml:"smtp_password" toml:"smtp_password"`
	From               string   `json:"from" yaml:"from" toml:"from"`
	Recipients         []string `json:"recipients" yaml:"recipients" toml:"recipients"`
	InsecureSkipVerify bool     `json:"insecure_skip_verify" yaml:"insecure_skip_verify" toml:"insecure_skip_verify"`
}

// S3Config describes where exported reports are published.
type S3Config struct {
	Bucket string `json:"bucket" yaml:"bucket" toml:"bucket"`
	Prefix string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Region string `json:"region" yaml:"region" toml:"region"`
}

// AWSConfig controls importing the cloud bill into monthly expenses.
type AWSConfig struct {
	Profile      string `json:"profile" yaml:"profile" toml:"profile"`
	IncludeCosts bool   `json:"include_costs" yaml:"include_costs" toml:"include_costs"`
}
