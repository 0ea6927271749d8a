package entity

import (
	"encoding/json"
	"fmt"
)

// runwayInfinite is the JSON form of an infinite runway.
const runwayInfinite = "infinite"

// Runway is the number of months until cash is exhausted.
// Infinite is set when the company does not burn cash at all.
type Runway struct {
	Months   int
	Infinite bool
}

// InfiniteRunway returns the runway of a cash-flow-positive company.
func InfiniteRunway() Runway {
	return Runway{Infinite: true}
}

// FiniteRunway returns a runway of the given number of months.
func FiniteRunway(months int) Runway {
	return Runway{Months: months}
}

// MarshalJSON encodes an infinite runway as "infinite" and a finite one as a number.
func (r Runway) MarshalJSON() ([]byte, error) {
	if r.Infinite {
		return json.Marshal(runwayInfinite)
	}
	return json.Marshal(r.Months)
}

// UnmarshalJSON accepts either a month count or the string "infinite".
func (r *Runway) UnmarshalJSON(data []byte) error {
	var months int
	if err := json.Unmarshal(data, &months); err == nil {
		*r = FiniteRunway(months)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("runway must be a number or %q: %w", runwayInfinite, err)
	}
	if s != runwayInfinite {
		return fmt.Errorf("invalid runway value %q", s)
	}
	*r = InfiniteRunway()
	return nil
}

// ProjectionResult is the month-by-month cash trajectory plus its summary metrics.
// RunwayMonths and CashRemaining are parallel series of equal length.
type ProjectionResult struct {
	NetBurnRate    float64   `json:"net_burn_rate"`
	Runway         Runway    `json:"runway"`
	RunwayMonths   []int     `json:"runway_months"`
	CashRemaining  []float64 `json:"cash_remaining"`
	BreakEvenPoint *int      `json:"break_even_point"`
}

// CashPoint pairs a month index with the cash remaining at the end of that month.
type CashPoint struct {
	Month         int     `json:"month"`
	CashRemaining float64 `json:"cash_remaining"`
}

// Points zips the two series for charting and tabular output.
func (r ProjectionResult) Points() []CashPoint {
	points := make([]CashPoint, 0, len(r.RunwayMonths))
	for i, month := range r.RunwayMonths {
		if i >= len(r.CashRemaining) {
			break
		}
		points = append(points, CashPoint{Month: month, CashRemaining: r.CashRemaining[i]})
	}
	return points
}

// IsProfitable reports whether the company was already cash-flow-positive at month 0.
func (r ProjectionResult) IsProfitable() bool {
	return r.Runway.Infinite
}
