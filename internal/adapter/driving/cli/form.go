package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
	"github.com/diillson/runway-dashboard-go/pkg/format"
)

// maxGrowthRate limits the annual growth accepted by the interactive form.
const maxGrowthRate = 50

var (
	colorBrand = lipgloss.Color("#245E4F")
	colorGreen = lipgloss.Color("#4CAF50")
	colorText  = lipgloss.Color("#E0E0E0")
	colorDim   = lipgloss.Color("#808080")
)

// runwayHuhTheme retorna o tema do formulário com a cor da marca.
func runwayHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(colorText).Background(colorBrand).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorGreen)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorGreen)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(colorText)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(colorDim)

	return t
}

// FormPrompter collects the projection inputs with a terminal form.
type FormPrompter struct {
	currency string
}

// NewFormPrompter creates a prompter that shows amounts in the given currency.
func NewFormPrompter(currency string) *FormPrompter {
	return &FormPrompter{currency: currency}
}

// PromptInputs shows the form prefilled with defaults and returns the confirmed values.
func (p *FormPrompter) PromptInputs(ctx context.Context, defaults entity.ProjectionInputs) (entity.ProjectionInputs, error) {
	cash := amountText(defaults.TotalCash)
	expenses := amountText(defaults.MonthlyExpenses)
	revenue := amountText(defaults.MonthlyRevenue)
	growth := amountText(defaults.ProjectedGrowthRate)

	form := huh.NewForm(
		huh.NewGroup(
			amountInput("Total Cash Reserves", "Cash in the bank today", p.currency, &cash),
			amountInput("Monthly Expenses", "Average monthly operating costs", p.currency, &expenses),
			amountInput("Monthly Revenue", "Current monthly revenue", p.currency, &revenue),
			huh.NewInput().
				Title("Projected Annual Growth Rate (%)").
				Description("Expected revenue growth per year, 0 to 50").
				Value(&growth).
				Validate(validateGrowthRate),
		).Title("Burn Rate Calculator"),
	).WithTheme(runwayHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return entity.ProjectionInputs{}, err
	}

	var inputs entity.ProjectionInputs
	var err error
	if inputs.TotalCash, err = format.ParseAmount(cash); err != nil {
		return entity.ProjectionInputs{}, err
	}
	if inputs.MonthlyExpenses, err = format.ParseAmount(expenses); err != nil {
		return entity.ProjectionInputs{}, err
	}
	if inputs.MonthlyRevenue, err = format.ParseAmount(revenue); err != nil {
		return entity.ProjectionInputs{}, err
	}
	if inputs.ProjectedGrowthRate, err = format.ParseAmount(growth); err != nil {
		return entity.ProjectionInputs{}, err
	}
	return inputs, nil
}

// amountInput returns a huh.Input for a non-negative money amount.
func amountInput(title, description, currency string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(format.Currency(0, currency)).
		Value(value).
		Validate(validateAmount)
}

var errInvalidNumber = errors.New("Please enter a valid positive number")

func validateAmount(s string) error {
	if _, err := format.ParseAmount(s); err != nil {
		return errInvalidNumber
	}
	return nil
}

func validateGrowthRate(s string) error {
	v, err := format.ParseAmount(s)
	if err != nil {
		return errInvalidNumber
	}
	if v > maxGrowthRate {
		return errors.New("Growth rate must be between 0 and 50")
	}
	return nil
}

func amountText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
