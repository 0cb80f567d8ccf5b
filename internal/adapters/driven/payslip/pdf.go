// Package payslip renders payroll records as PDF payslips.
package payslip

import (
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
)

// Ensure PDFRenderer implements the interface.
var _ driven.PayslipRenderer = (*PDFRenderer)(nil)

// DefaultCompanyName heads every payslip when none is configured.
const DefaultCompanyName = "HR Central"

// PDFRenderer writes one A4 page per payroll record.
type PDFRenderer struct {
	company string
}

// NewPDFRenderer creates a renderer. An empty company uses DefaultCompanyName.
func NewPDFRenderer(company string) *PDFRenderer {
	if company == "" {
		company = DefaultCompanyName
	}
	return &PDFRenderer{company: company}
}

// Render writes records to w as a single PDF document.
func (r *PDFRenderer) Render(w io.Writer, records []domain.PayrollRecord) error {
	if len(records) == 0 {
		return errors.New("payslip: no records to render")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.company+" payslips", false)
	pdf.SetCreator("hrcentral", false)

	for _, rec := range records {
		r.page(pdf, rec)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("payslip: write pdf: %w", err)
	}
	return nil
}

func (r *PDFRenderer) page(pdf *gofpdf.Fpdf, rec domain.PayrollRecord) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.company)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "Payslip for "+rec.Month)
	pdf.Ln(12)

	pdf.Cell(0, 8, "Employee: "+rec.EmployeeName)
	pdf.Ln(7)
	pdf.Cell(0, 8, "Employee ID: "+rec.EmployeeID)
	pdf.Ln(7)
	pdf.Cell(0, 8, "Reference: "+rec.ID)
	pdf.Ln(12)

	lines := []struct {
		label  string
		amount float64
	}{
		{"Basic salary", rec.BasicSalary},
		{"Bonus", rec.Bonus},
		{"Deductions", -rec.Deductions},
	}
	for _, l := range lines {
		pdf.CellFormat(80, 8, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", l.amount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(80, 10, "Net salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 10, fmt.Sprintf("%.2f", rec.NetSalary), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	status := string(rec.Status)
	if rec.Status == domain.PaymentPaid && rec.PaymentDate != "" {
		status += " on " + rec.PaymentDate
	}
	pdf.Cell(0, 6, "Status: "+status)
}
