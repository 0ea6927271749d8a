// Package projection computes cash runway projections.
package projection

import (
	"math"

	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
)

const (
	// HorizonMonths caps the simulation at five years.
	HorizonMonths = 60

	// ProfitableSeriesMonths is the length of the flat series returned
	// when the company is already cash-flow-positive.
	ProfitableSeriesMonths = 24
)

// MonthlyGrowthRate converts an annual growth percentage into a monthly multiplier increment.
// The conversion is linear (annual / 12), not the geometric monthly equivalent.
func MonthlyGrowthRate(annualPercent float64) float64 {
	return annualPercent / 100 / 12
}

// RevenueAt returns the revenue earned in the given 1-based month, i.e. the starting
// revenue compounded month-1 times by the monthly growth rate.
func RevenueAt(inputs entity.ProjectionInputs, month int) float64 {
	if month < 1 {
		month = 1
	}
	growth := MonthlyGrowthRate(inputs.ProjectedGrowthRate)
	revenue := inputs.MonthlyRevenue
	for i := 1; i < month; i++ {
		revenue *= 1 + growth
	}
	return revenue
}

// Compute projects the cash trajectory for the given inputs.
//
// Expenses stay constant while revenue grows every month. The simulation stops when cash is
// exhausted or after HorizonMonths months. Inputs are expected to be validated non-negative
// numbers; Compute itself never fails.
func Compute(inputs entity.ProjectionInputs) entity.ProjectionResult {
	initialNetBurnRate := math.Max(0, inputs.MonthlyExpenses-inputs.MonthlyRevenue)

	if initialNetBurnRate <= 0 {
		return profitable(inputs.TotalCash)
	}

	monthlyGrowthRate := MonthlyGrowthRate(inputs.ProjectedGrowthRate)

	runwayMonths := make([]int, 0, HorizonMonths)
	cashRemaining := make([]float64, 0, HorizonMonths)

	remainingCash := inputs.TotalCash
	currentRevenue := inputs.MonthlyRevenue
	month := 1
	var breakEvenPoint *int

	for remainingCash > 0 && month <= HorizonMonths {
		runwayMonths = append(runwayMonths, month)

		monthlyBurn := math.Max(0, inputs.MonthlyExpenses-currentRevenue)
		if monthlyBurn == 0 && breakEvenPoint == nil {
			m := month
			breakEvenPoint = &m
		}

		remainingCash -= monthlyBurn
		cashRemaining = append(cashRemaining, math.Max(0, remainingCash))

		currentRevenue *= 1 + monthlyGrowthRate
		month++
	}

	return entity.ProjectionResult{
		NetBurnRate:    initialNetBurnRate,
		Runway:         entity.FiniteRunway(len(runwayMonths)),
		RunwayMonths:   runwayMonths,
		CashRemaining:  cashRemaining,
		BreakEvenPoint: breakEvenPoint,
	}
}

// profitable builds the fixed 24-month display series for a company that does not burn cash.
func profitable(totalCash float64) entity.ProjectionResult {
	runwayMonths := make([]int, ProfitableSeriesMonths)
	cashRemaining := make([]float64, ProfitableSeriesMonths)
	for i := range runwayMonths {
		runwayMonths[i] = i + 1
		cashRemaining[i] = totalCash
	}

	breakEven := 0
	return entity.ProjectionResult{
		NetBurnRate:    0,
		Runway:         entity.InfiniteRunway(),
		RunwayMonths:   runwayMonths,
		CashRemaining:  cashRemaining,
		BreakEvenPoint: &breakEven,
	}
}
