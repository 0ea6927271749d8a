package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
	"github.com/diillson/runway-dashboard-go/internal/domain/repository"
	"github.com/diillson/runway-dashboard-go/pkg/format"
	"github.com/shopspring/decimal"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// ExportToCSV writes the summary metrics followed by the month-by-month series.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{
		{"Report ID", report.ID},
		{"Generated At", report.GeneratedAt.Format(time.RFC3339)},
		{"Currency", report.Currency},
	}
	for _, row := range report.SummaryRows() {
		records = append(records, []string{row.Metric, row.Value})
	}
	records = append(records, []string{}, []string{"Month", "Cash Remaining"})
	for _, p := range report.Result.Points() {
		records = append(records, []string{
			strconv.Itoa(p.Month),
			decimal.NewFromFloat(p.CashRemaining).StringFixed(2),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON writes the whole report as indented JSON.
func (r *ExportRepositoryImpl) ExportToJSON(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToMarkdown writes the summary and the series as Markdown tables.
func (r *ExportRepositoryImpl) ExportToMarkdown(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "md")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, []byte(renderMarkdown(report)), 0644); err != nil {
		return "", fmt.Errorf("error writing Markdown file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func renderMarkdown(report entity.Report) string {
	var b strings.Builder

	b.WriteString("# Burn Rate Analysis Report\n\n")
	fmt.Fprintf(&b, "_Generated on %s_\n\n", report.GeneratedAt.Format("January 2, 2006"))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	for _, row := range report.SummaryRows() {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Metric, row.Value)
	}

	b.WriteString("\n## What This Means For Your Business\n\n")
	b.WriteString(report.Narrative())
	b.WriteString("\n")

	points := report.Result.Points()
	if len(points) > 0 {
		b.WriteString("\n## Cash Runway Projection\n\n")
		b.WriteString("| Month | Cash Remaining |\n|---:|---:|\n")
		for _, p := range points {
			fmt.Fprintf(&b, "| %d | %s |\n", p.Month, money(report, p.CashRemaining))
		}
	}

	return b.String()
}

// --- Funções Auxiliares ---

func money(report entity.Report, v float64) string {
	return format.Currency(v, report.Currency)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
