package snapshot

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF produces a one-page financial summary report for download.
func RenderPDF(snap Snapshot, email string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Financial Snapshot")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Account: %s", email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("As of: %s", snap.AsOf.Format("2006-01-02")))
	pdf.Ln(10)

	if snap.Tax != nil {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Income & Taxes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Gross annual: $%.2f", snap.Tax.AnnualGross))
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Total tax: $%.2f (%.1f%%)", snap.Tax.TotalTax, snap.Tax.EffectiveTotalRate*100))
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Monthly net: $%.2f", snap.Tax.MonthlyNet))
		pdf.Ln(10)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Credit")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total debt: $%.2f", snap.Credit.TotalDebt))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Available credit: $%.2f", snap.Credit.TotalAvailable))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Overall utilization: %.0f%%", snap.Credit.OverallUtilization))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Cards overdue: %d, due soon: %d", len(snap.Credit.Overdue), len(snap.Credit.DueSoon)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Spending")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("This month: $%.2f", snap.Expenses.MonthlyTotal))
	pdf.Ln(6)
	if snap.Savings != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Monthly savings: $%.2f (%.1f%%, %s)",
			snap.Savings.MonthlySavings, snap.Savings.SavingsRate, snap.Savings.Status))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
