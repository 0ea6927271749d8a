package console

import (
	"fmt"
	"strings"

	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// barWidth is the width of the longest bar in the cash series chart.
const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayPanel prints body inside a titled box.
func (c *Console) DisplayPanel(title, body string) {
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(body)
	fmt.Println("\n" + panel)
}

// DisplayCashSeries exibe a trajetória de caixa mês a mês como barras.
func (c *Console) DisplayCashSeries(points []types.CashPoint, breakEvenMonth *int, formatValue func(float64) string) {
	if len(points) == 0 {
		pterm.Warning.Println("No cash projection to display")
		return
	}

	tableData := pterm.TableData{
		{"Month", "Cash Remaining", ""},
	}
	for _, p := range points {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", p.Month),
			formatValue(p.Cash),
			cashBar(p, points[0].Cash, breakEvenMonth),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Cash Runway Projection").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// cashBar escala a barra pelo caixa do primeiro mês; meses após o break-even ficam verdes.
func cashBar(p types.CashPoint, scale float64, breakEvenMonth *int) string {
	barLength := 0
	if scale > 0 {
		barLength = int((p.Cash / scale) * barWidth)
	}
	if barLength > barWidth {
		barLength = barWidth
	}
	if barLength < 0 {
		barLength = 0
	}
	bar := strings.Repeat("█", barLength)

	switch {
	case breakEvenMonth != nil && p.Month >= *breakEvenMonth:
		marker := ""
		if p.Month == *breakEvenMonth && *breakEvenMonth > 0 {
			marker = " ◆ break-even"
		}
		return pterm.FgGreen.Sprint(bar) + pterm.FgYellow.Sprint(marker)
	case p.Cash <= 0:
		return pterm.FgRed.Sprint("✖ out of cash")
	case scale > 0 && p.Cash/scale < 0.25:
		return pterm.FgRed.Sprint(bar)
	default:
		return pterm.FgBlue.Sprint(bar)
	}
}
