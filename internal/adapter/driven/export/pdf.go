package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth    = 210.0
	contentLeft  = 20.0
	contentWidth = 170.0
	chartHeight  = 50.0
	headerHeight = 25.0
	pageBottom   = 277.0
)

var (
	brandColor   = [3]int{36, 94, 79}
	profitColor  = [3]int{76, 175, 80}
	burnColor    = [3]int{96, 125, 139}
	bodyColor    = [3]int{50, 50, 50}
	mutedColor   = [3]int{100, 100, 100}
	stripeColor  = [3]int{245, 245, 245}
	lineColor    = [3]int{200, 200, 200}
)

// ExportToPDF renders the summary, the cash trajectory and the narrative as an A4 report.
func (r *ExportRepositoryImpl) ExportToPDF(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	tr := func(s string) string { return translate(pdfSafe(s)) }

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
		footer := fmt.Sprintf("Runway: %s | Burn Rate Analysis Tool", report.RunwayLabel())
		pdf.CellFormat(contentWidth/2, 10, tr(footer), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(brandColor[0], brandColor[1], brandColor[2])
	pdf.Rect(0, 0, pageWidth, headerHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 18)
	pdf.SetXY(0, 8)
	pdf.CellFormat(pageWidth, 10, "BURN RATE ANALYSIS REPORT", "", 1, "C", false, 0, "")

	pdf.SetXY(contentLeft, headerHeight+8)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
	pdf.CellFormat(contentWidth, 6, tr("Generated on: "+report.GeneratedAt.Format("January 2, 2006")), "", 1, "L", false, 0, "")
	pdf.SetX(contentLeft)
	pdf.CellFormat(contentWidth, 6, tr("Report ID: "+report.ID), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Summary
	sectionTitle(pdf, tr, "Summary")
	tableHeader(pdf, tr, []string{"Metric", "Value"}, []float64{contentWidth / 2, contentWidth / 2})
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	for i, row := range report.SummaryRows() {
		fill := i%2 == 1
		pdf.SetFillColor(stripeColor[0], stripeColor[1], stripeColor[2])
		pdf.SetX(contentLeft)
		pdf.CellFormat(contentWidth/2, 8, tr(row.Metric), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(contentWidth/2, 8, tr(row.Value), "1", 1, "L", fill, 0, "")
	}
	pdf.Ln(8)

	// Narrative
	sectionTitle(pdf, tr, "What This Means For Your Business")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	pdf.SetX(contentLeft)
	pdf.MultiCell(contentWidth, 6, tr(report.Narrative()), "", "L", false)
	pdf.Ln(8)

	points := report.Result.Points()
	if len(points) > 0 {
		if pdf.GetY()+chartHeight+20 > pageBottom {
			pdf.AddPage()
		}
		sectionTitle(pdf, tr, "Cash Runway Projection")
		drawCashChart(pdf, points, report.Result.BreakEvenPoint)

		pdf.AddPage()
		sectionTitle(pdf, tr, "Month-by-Month Cash Remaining")
		widths := []float64{40, contentWidth - 40}
		tableHeader(pdf, tr, []string{"Month", "Cash Remaining"}, widths)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
		for i, p := range points {
			fill := i%2 == 1
			pdf.SetFillColor(stripeColor[0], stripeColor[1], stripeColor[2])
			pdf.SetX(contentLeft)
			pdf.CellFormat(widths[0], 6, strconv.Itoa(p.Month), "1", 0, "C", fill, 0, "")
			pdf.CellFormat(widths[1], 6, tr(money(report, p.CashRemaining)), "1", 1, "R", fill, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetX(contentLeft)
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
	pdf.CellFormat(contentWidth, 8, tr(title), "", 1, "L", false, 0, "")

	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(contentLeft, pdf.GetY(), contentLeft+contentWidth, pdf.GetY())
	pdf.Ln(4)
}

func tableHeader(pdf *gofpdf.Fpdf, tr func(string) string, columns []string, widths []float64) {
	pdf.SetX(contentLeft)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(brandColor[0], brandColor[1], brandColor[2])
	pdf.SetTextColor(255, 255, 255)
	for i, col := range columns {
		ln := 0
		if i == len(columns)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", ln, "L", true, 0, "")
	}
}

// drawCashChart desenha uma barra por mês, escalada pelo maior saldo da série.
func drawCashChart(pdf *gofpdf.Fpdf, points []entity.CashPoint, breakEvenMonth *int) {
	maxCash := 0.0
	for _, p := range points {
		if p.CashRemaining > maxCash {
			maxCash = p.CashRemaining
		}
	}

	top := pdf.GetY()
	baseline := top + chartHeight
	barWidth := contentWidth / float64(len(points))

	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(contentLeft, baseline, contentLeft+contentWidth, baseline)

	if maxCash > 0 {
		for i, p := range points {
			h := p.CashRemaining / maxCash * chartHeight
			if h <= 0 {
				continue
			}
			c := burnColor
			if breakEvenMonth != nil && p.Month >= *breakEvenMonth {
				c = profitColor
			}
			pdf.SetFillColor(c[0], c[1], c[2])
			pdf.Rect(contentLeft+float64(i)*barWidth+barWidth*0.1, baseline-h, barWidth*0.8, h, "F")
		}
	}

	pdf.SetY(baseline + 2)
	pdf.SetX(contentLeft)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
	pdf.CellFormat(contentWidth/2, 5, fmt.Sprintf("Month %d", points[0].Month), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, 5, fmt.Sprintf("Month %d", points[len(points)-1].Month), "", 1, "R", false, 0, "")
}

// pdfSafe troca símbolos que as fontes padrão do PDF (cp1252) não possuem.
func pdfSafe(s string) string {
	return strings.NewReplacer("₹", "Rs. ", "∞", "infinite").Replace(s)
}
