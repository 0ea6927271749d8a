package entity

// ProjectionInputs holds the financial position a projection is computed from.
// Monetary fields are in the report currency; ProjectedGrowthRate is an annual percentage.
type ProjectionInputs struct {
	TotalCash           float64 `json:"total_cash"`
	MonthlyExpenses     float64 `json:"monthly_expenses"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	ProjectedGrowthRate float64 `json:"projected_growth_rate"`
}
