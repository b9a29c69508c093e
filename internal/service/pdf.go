package service

import (
	"bytes"
	"fmt"

	"fytai-health-api/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// PDFExportService renders a questionnaire result to a printable report.
type PDFExportService struct{}

// NewPDFExportService creates a PDFExportService.
func NewPDFExportService() *PDFExportService {
	return &PDFExportService{}
}

// Export renders the result as an A4 PDF and returns the raw bytes.
// Labels are emitted as their translation keys; the caller localizes the
// document if needed.
func (s *PDFExportService) Export(result *domain.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "FytAI Health Assessment")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Completed: %s", result.CompletedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Overall score: %d%% (%s)", result.ScorePercentage, result.HealthLevel))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Category scores")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
	for _, cs := range result.CategoryScores {
		pdf.Cell(70, 7, string(cs.Category))
		// score bar, 80mm wide at 100%
		barWidth := float64(cs.Percentage) * 0.8
		pdf.Rect(80, pdf.GetY()+1, barWidth, 5, "F")
		pdf.Rect(80, pdf.GetY()+1, 80, 5, "D")
		pdf.Cell(100, 7, "")
		pdf.Cell(0, 7, fmt.Sprintf("%d%%", cs.Percentage))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	if len(result.RiskFactors) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Risk factors")
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 10)
		for _, rf := range result.RiskFactors {
			pdf.MultiCell(0, 6, fmt.Sprintf("[%s] %s", rf.Severity, rf.Description), "", "L", false)
		}
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Recommendations")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
	for _, rec := range result.Recommendations {
		pdf.MultiCell(0, 6, "- "+rec, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render result PDF: %w", err)
	}
	return buf.Bytes(), nil
}
