// Package export renders a year of transactions as an xlsx workbook.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"finpace/internal/models"
	"finpace/internal/progress"
)

// Sheet names of the exported workbook.
const (
	TransactionsSheet = "Transactions"
	SummarySheet      = "Summary"
)

// ContentType is the MIME type of the rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	transactionHeaders = []string{"Date", "Category", "Description", "Type", "Amount", "Recurring"}
	summaryHeaders     = []string{"Month", "Income", "Expenses", "Savings"}
)

// Filename returns the attachment name for a year's export.
func Filename(year int) string {
	return fmt.Sprintf("transactions_%d.xlsx", year)
}

// TransactionsWorkbook writes transactions to a "Transactions" sheet and the
// twelve-month summary to a "Summary" sheet, with a totals row under each.
// Amounts are converted from cents to currency units.
func TransactionsWorkbook(year int, transactions []models.Transaction, summary []progress.MonthSummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeTransactions(f, styles, transactions); err != nil {
		return nil, err
	}
	if err := writeSummary(f, styles, year, summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

type sheetStyles struct {
	header int
	money  int
	total  int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	moneyFmt := "#,##0.00"

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return sheetStyles{}, err
	}
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt, Border: border})
	if err != nil {
		return sheetStyles{}, err
	}
	total, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		CustomNumFmt: &moneyFmt,
		Border:       border,
	})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{header: header, money: money, total: total}, nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeTransactions(f *excelize.File, styles sheetStyles, transactions []models.Transaction) error {
	sheet := TransactionsSheet
	if err := writeHeader(f, sheet, styles.header, transactionHeaders); err != nil {
		return err
	}
	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 20)
	_ = f.SetColWidth(sheet, "C", "C", 40)
	_ = f.SetColWidth(sheet, "E", "E", 14)

	var income, expenses int64
	for i, tx := range transactions {
		row := i + 2
		kind := "expense"
		if tx.IsIncome {
			kind = "income"
			income += tx.Amount
		} else {
			expenses += tx.Amount
		}
		recurring := ""
		if tx.IsRecurring && tx.RecurrencePeriod != nil {
			recurring = string(*tx.RecurrencePeriod)
		}
		values := []interface{}{
			tx.Date.UTC().Format(time.DateOnly),
			tx.CategoryName,
			tx.Description,
			kind,
			units(tx.Amount),
			recurring,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		amountCell := fmt.Sprintf("E%d", row)
		if err := f.SetCellStyle(sheet, amountCell, amountCell, styles.money); err != nil {
			return err
		}
	}

	totalRow := len(transactions) + 3
	rows := [][]interface{}{
		{"Total income", units(income)},
		{"Total expenses", units(expenses)},
	}
	for i, r := range rows {
		row := totalRow + i
		if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r[1]); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), styles.total); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, styles sheetStyles, year int, summary []progress.MonthSummary) error {
	sheet := SummarySheet
	if err := writeHeader(f, sheet, styles.header, summaryHeaders); err != nil {
		return err
	}
	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "D", 14)

	var income, expenses, savings int64
	for i, m := range summary {
		row := i + 2
		values := []interface{}{
			time.Month(m.Month).String(),
			units(m.Income),
			units(m.Expenses),
			units(m.Savings),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), styles.money); err != nil {
			return err
		}
		income += m.Income
		expenses += m.Expenses
		savings += m.Savings
	}

	row := len(summary) + 2
	totals := []interface{}{fmt.Sprintf("Total %d", year), units(income), units(expenses), units(savings)}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &totals); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), styles.total)
}

// units converts cents to currency units.
func units(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
