package console

import (
	"strings"
	"testing"

	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestCashBar(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	full := cashBar(types.CashPoint{Month: 1, Cash: 1_000}, 1_000, nil)
	assert.Equal(t, barWidth, strings.Count(full, "█"))

	half := cashBar(types.CashPoint{Month: 2, Cash: 500}, 1_000, nil)
	assert.Equal(t, barWidth/2, strings.Count(half, "█"))

	assert.Contains(t, cashBar(types.CashPoint{Month: 3, Cash: 0}, 1_000, nil), "✖ out of cash")

	over := cashBar(types.CashPoint{Month: 4, Cash: 5_000}, 1_000, nil)
	assert.Equal(t, barWidth, strings.Count(over, "█"))
}

func TestCashBar_BreakEven(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	breakEven := 4
	marked := cashBar(types.CashPoint{Month: 4, Cash: 800}, 1_000, &breakEven)
	assert.Contains(t, marked, "◆ break-even")

	after := cashBar(types.CashPoint{Month: 5, Cash: 800}, 1_000, &breakEven)
	assert.NotContains(t, after, "break-even")
	assert.Equal(t, 32, strings.Count(after, "█"))

	profitable := 0
	flat := cashBar(types.CashPoint{Month: 1, Cash: 1_000}, 1_000, &profitable)
	assert.NotContains(t, flat, "break-even")
}

func TestTable_Render(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	table := NewConsole().CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	table.AddRow("Estimated Runway", "1 year and 11 months")

	out := table.Render()
	assert.Contains(t, out, "Estimated Runway")
	assert.Contains(t, out, "1 year and 11 months")
}
