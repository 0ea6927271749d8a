package entity

import "time"

// CloudSpend is the cloud bill of one AWS account for a closed billing period.
type CloudSpend struct {
	Profile     string    `json:"profile"`
	AccountID   string    `json:"account_id,omitempty"`
	Amount      float64   `json:"amount"`
	PeriodName  string    `json:"period_name"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}
