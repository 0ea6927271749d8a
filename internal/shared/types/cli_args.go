package types

// CLIArgs represents the command-line arguments.
// Amount fields keep the raw flag text; an empty string means the flag was not given.
type CLIArgs struct {
	ConfigFile string
	EnvFile    string

	TotalCash       string
	MonthlyExpenses string
	MonthlyRevenue  string
	GrowthRate      string
	Currency        string

	Interactive bool
	ShowSeries  bool

	ReportName string
	ReportType []string
	Dir        string

	EmailTo []string

	S3Bucket string
	S3Prefix string

	AWSProfile      string
	IncludeAWSCosts bool
}
