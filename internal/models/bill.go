package models

import "github.com/shopspring/decimal"

// BillSource identifies which payment platform produced a bill export.
type BillSource string

const (
	SourceWeChat  BillSource = "wechat"
	SourceAlipay  BillSource = "alipay"
	SourceUnknown BillSource = "unknown"
)

// Direction classifies a record as money in or money out.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// BillRecord is one imported transaction row. Records are immutable after
// construction; the review client references them by ID.
type BillRecord struct {
	ID           string          `json:"id"`
	TransactedAt string          `json:"transactedAt"` // timestamp as exported, not reparsed
	Direction    Direction       `json:"direction"`
	Counterparty string          `json:"counterparty"`
	Goods        string          `json:"goods"`
	Amount       decimal.Decimal `json:"amount"` // always > 0
	Method       string          `json:"method"`
	Status       string          `json:"status"`
	OrderNo      string          `json:"orderNo"`
	MerchantNo   string          `json:"merchantNo"`
	Note         string          `json:"note"`
	Source       BillSource      `json:"source"`
}

// ParseResult is the aggregated outcome of parsing one bill export.
// TotalIncome and TotalExpense are the sums of record amounts per
// direction; SkippedCount tallies rows excluded by the skip rule
// (malformed rows are dropped without being counted).
type ParseResult struct {
	Records      []BillRecord    `json:"records"`
	Source       BillSource      `json:"source"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	SkippedCount int             `json:"skippedCount"`
}
