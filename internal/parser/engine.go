package parser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/bill-importer/internal/models"
)

// rawRow is the dialect-independent view of one tokenized data row.
type rawRow struct {
	transactedAt string
	direction    string
	counterparty string
	goods        string
	amountRaw    string
	method       string
	status       string
	orderNo      string
	merchantNo   string
	note         string
	// classification feeds the skip rule: transaction type for WeChat,
	// goods description for Alipay.
	classification string
}

// dirVerdict says what to do with a row based on its direction marker.
type dirVerdict int

const (
	dirKeep dirVerdict = iota
	dirDrop            // silently dropped, not counted
	dirSkip            // counted in SkippedCount
)

// dialect is the column-resolution strategy the shared extraction loop is
// parameterized by. WeChat binds columns by fixed index; Alipay by header
// keyword lookup.
type dialect interface {
	source() models.BillSource
	// headerIndex returns the index of the header row, or -1.
	headerIndex(lines []string) int
	// resolveColumns binds column roles from the tokenized header row.
	resolveColumns(header []string) error
	minFields() int
	// noise reports decoration lines to skip between data rows.
	noise(line string) bool
	row(fields []string) rawRow
	stripAmountSpaces() bool
	// direction classifies the row's direction marker.
	direction(r rawRow) (models.Direction, dirVerdict)
}

// extract is the row-processing loop shared by both dialects: locate the
// header, then per line tokenize, map fields, normalize the amount, apply
// the skip rule, and accumulate records and totals. Rows with unparseable
// or non-positive amounts produce neither a record nor a skip-count
// increment.
func extract(lines []string, d dialect) (*models.ParseResult, error) {
	hi := d.headerIndex(lines)
	if hi < 0 {
		return nil, fmt.Errorf("%s bill: %w", d.source(), ErrHeaderNotFound)
	}
	if err := d.resolveColumns(splitLine(lines[hi])); err != nil {
		return nil, err
	}

	res := &models.ParseResult{
		Source:       d.source(),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, line := range lines[hi+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || d.noise(trimmed) {
			continue
		}

		fields := splitLine(line)
		if len(fields) < d.minFields() {
			continue
		}
		r := d.row(fields)

		amount, err := parseAmount(r.amountRaw, d.stripAmountSpaces())
		if err != nil || !amount.IsPositive() {
			continue
		}

		if shouldSkip(r.status, r.classification) {
			res.SkippedCount++
			continue
		}

		direction, verdict := d.direction(r)
		if verdict == dirSkip {
			res.SkippedCount++
			continue
		}
		if verdict == dirDrop {
			continue
		}

		res.Records = append(res.Records, models.BillRecord{
			ID:           uuid.NewString(),
			TransactedAt: r.transactedAt,
			Direction:    direction,
			Counterparty: r.counterparty,
			Goods:        r.goods,
			Amount:       amount,
			Method:       r.method,
			Status:       r.status,
			OrderNo:      r.orderNo,
			MerchantNo:   r.merchantNo,
			Note:         r.note,
			Source:       d.source(),
		})
		if direction == models.DirectionIncome {
			res.TotalIncome = res.TotalIncome.Add(amount)
		} else {
			res.TotalExpense = res.TotalExpense.Add(amount)
		}
	}

	if len(res.Records) == 0 {
		return nil, fmt.Errorf("%s bill: %w", d.source(), ErrNoValidRecords)
	}
	return res, nil
}
