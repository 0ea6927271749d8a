package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/runway-dashboard-go/pkg/format"
	"github.com/google/uuid"
)

// Report bundles the inputs and the computed projection for the export and dispatch adapters.
type Report struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Currency    string           `json:"currency"`
	Inputs      ProjectionInputs `json:"inputs"`
	Result      ProjectionResult `json:"result"`

	// CloudSpend is set when part of MonthlyExpenses was imported from AWS Cost Explorer.
	CloudSpend *CloudSpend `json:"cloud_spend,omitempty"`
}

// NewReport creates a report with a fresh identifier.
func NewReport(inputs ProjectionInputs, result ProjectionResult, currency string, now time.Time) Report {
	return Report{
		ID:          uuid.NewString(),
		GeneratedAt: now,
		Currency:    currency,
		Inputs:      inputs,
		Result:      result,
	}
}

// SummaryRow is one metric/value line of the report summary.
type SummaryRow struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// SummaryRows returns the report's metrics formatted for display.
func (r Report) SummaryRows() []SummaryRow {
	money := func(v float64) string { return format.Currency(v, r.Currency) }

	rows := []SummaryRow{
		{"Total Cash Reserves", money(r.Inputs.TotalCash)},
		{"Monthly Expenses", money(r.Inputs.MonthlyExpenses)},
		{"Monthly Revenue", money(r.Inputs.MonthlyRevenue)},
		{"Net Monthly Burn Rate", money(r.Result.NetBurnRate)},
		{"Projected Growth Rate", format.Percent(r.Inputs.ProjectedGrowthRate) + " annually"},
		{"Estimated Runway", r.RunwayLabel()},
		{"Break-even Point", r.BreakEvenLabel()},
	}
	if r.CloudSpend != nil {
		rows = append(rows, SummaryRow{
			"Cloud Spend Included",
			fmt.Sprintf("%s (%s)", money(r.CloudSpend.Amount), r.CloudSpend.PeriodName),
		})
	}
	return rows
}

// RunwayLabel renders the runway, flagging values capped by the projection horizon.
func (r Report) RunwayLabel() string {
	label := format.RunwayLabel(r.Result.Runway.Months, r.Result.Runway.Infinite)
	if r.HorizonCapped() {
		label += "+"
	}
	return label
}

// BreakEvenLabel renders the break-even month.
func (r Report) BreakEvenLabel() string {
	switch {
	case r.Result.BreakEvenPoint == nil:
		return "Not reached"
	case *r.Result.BreakEvenPoint == 0:
		return "Already profitable"
	default:
		return fmt.Sprintf("Month %d", *r.Result.BreakEvenPoint)
	}
}

// HorizonCapped reports whether cash was still left when the simulation horizon ended.
func (r Report) HorizonCapped() bool {
	n := len(r.Result.CashRemaining)
	return !r.Result.Runway.Infinite && n > 0 && r.Result.CashRemaining[n-1] > 0
}

// Narrative explains the projection in plain language.
func (r Report) Narrative() string {
	money := func(v float64) string { return format.Currency(v, r.Currency) }
	growth := format.Percent(r.Inputs.ProjectedGrowthRate)

	if r.Result.Runway.Infinite {
		return fmt.Sprintf(
			"Your monthly revenue of %s covers your monthly expenses of %s, so your company is not burning cash. "+
				"Your cash reserves of %s stay intact and your runway is unlimited as long as revenue keeps up with expenses.",
			money(r.Inputs.MonthlyRevenue), money(r.Inputs.MonthlyExpenses), money(r.Inputs.TotalCash))
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"Your company has a net burn rate of %s per month, which means you're currently spending %s more than you earn each month. ",
		money(r.Result.NetBurnRate), money(r.Result.NetBurnRate))

	if r.HorizonCapped() {
		fmt.Fprintf(&b,
			"With your current cash reserves of %s, your cash lasts beyond the %s projection horizon.",
			money(r.Inputs.TotalCash), format.Months(len(r.Result.RunwayMonths)))
	} else {
		fmt.Fprintf(&b,
			"With your current cash reserves of %s, your startup has approximately %s of runway before running out of cash, "+
				"assuming your burn rate and growth projections remain constant.",
			money(r.Inputs.TotalCash), format.Months(r.Result.Runway.Months))
	}

	fmt.Fprintf(&b, "\n\nThe growth rate of %s has been factored into this calculation. ", growth)
	if r.Result.BreakEvenPoint != nil {
		fmt.Fprintf(&b, "At that rate revenue catches up with expenses in month %d. ", *r.Result.BreakEvenPoint)
	}
	b.WriteString("To extend your runway, consider strategies to increase revenue, reduce expenses, or secure additional funding.")
	return b.String()
}
