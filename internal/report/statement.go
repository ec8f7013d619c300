// Package report renders an account's transaction history as a downloadable
// statement, currently as PDF or XLSX.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dlevasseur/banque/internal/bank"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
)

// Format selects the statement output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown statement format %q (want pdf or xlsx)", s)
	}
}

// Write renders the account statement in the given format to w.
func Write(a *bank.Account, f Format, w io.Writer) error {
	switch f {
	case FormatPDF:
		return writePDF(a, w)
	case FormatXLSX:
		return writeXLSX(a, w)
	default:
		return fmt.Errorf("unknown statement format %q", f)
	}
}

const dateLayout = "2006-01-02 15:04:05"

func writePDF(a *bank.Account, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Account Statement")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Account %s - %s", a.Number(), a.Holder()))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Balance: %.2f", a.Balance()))
	pdf.Ln(10)

	// Table header
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 7, "Date")
	pdf.Cell(70, 7, "Operation")
	pdf.Cell(30, 7, "Amount")
	pdf.Cell(40, 7, "Balance after")
	pdf.Ln(7)

	// Table rows
	pdf.SetFont("Arial", "", 12)
	for _, t := range a.History() {
		pdf.CellFormat(40, 7, t.Date.Format(dateLayout), "1", 0, "", false, 0, "")
		pdf.CellFormat(70, 7, t.Label(), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, strconv.FormatFloat(t.Amount, 'f', 2, 64), "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, strconv.FormatFloat(t.BalanceAfter, 'f', 2, 64), "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}

	return pdf.Output(w)
}

func writeXLSX(a *bank.Account, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Statement")
	if err != nil {
		return err
	}

	// Header row
	row := sheet.AddRow()
	row.AddCell().SetValue("Date")
	row.AddCell().SetValue("Operation")
	row.AddCell().SetValue("Amount")
	row.AddCell().SetValue("Balance after")

	// Data rows
	for _, t := range a.History() {
		row = sheet.AddRow()
		row.AddCell().SetValue(t.Date.Format(dateLayout))
		row.AddCell().SetValue(t.Label())
		row.AddCell().SetValue(t.Amount)
		row.AddCell().SetValue(t.BalanceAfter)
	}

	return file.Write(w)
}
