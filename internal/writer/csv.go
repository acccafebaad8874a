// Package writer renders parse results for the review/export flow.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lifeledger/bill-importer/internal/models"
)

// CSVWriter writes parsed bill records to CSV format.
type CSVWriter struct {
	IncludeSummary bool
}

// WriteToFile writes the result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, res *models.ParseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, res)
}

// Write writes the result in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, res *models.ParseResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	// Summary rows precede the data, in the same commented style the
	// review client shows above the record table.
	if w.IncludeSummary {
		writer.Write([]string{"# Source", string(res.Source)})
		writer.Write([]string{"# Total Income", res.TotalIncome.StringFixed(2)})
		writer.Write([]string{"# Total Expense", res.TotalExpense.StringFixed(2)})
		writer.Write([]string{"# Skipped", strconv.Itoa(res.SkippedCount)})
	}

	header := []string{
		"Time", "Direction", "Counterparty", "Goods", "Amount",
		"Method", "Status", "Order No", "Merchant No", "Note",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range res.Records {
		row := []string{
			rec.TransactedAt,
			string(rec.Direction),
			rec.Counterparty,
			rec.Goods,
			rec.Amount.StringFixed(2),
			rec.Method,
			rec.Status,
			rec.OrderNo,
			rec.MerchantNo,
			rec.Note,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}
