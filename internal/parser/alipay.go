package parser

import (
	"fmt"
	"strings"

	"github.com/lifeledger/bill-importer/internal/models"
)

// AlipayExtractor handles Alipay bill exports.
//
// Unlike WeChat, Alipay's column order and wording shift between export
// versions (交易时间 vs 交易创建时间, 商品名称 vs 商品说明), so column
// roles are resolved from the header row by keyword: the first column
// matching a role wins. Status and order-number columns are optional;
// the remaining roles are mandatory.
type AlipayExtractor struct {
	cols alipayColumns
}

type alipayColumns struct {
	time         int
	counterparty int
	goods        int
	amount       int
	direction    int
	status       int
	orderNo      int
	merchantNo   int
}

// alipayTimeLabels are the time-column spellings seen across export
// versions.
var alipayTimeLabels = []string{"交易时间", "交易创建时间", "付款时间"}

func (p *AlipayExtractor) PlatformName() string {
	return "Alipay"
}

func (p *AlipayExtractor) Parse(lines []string) (*models.ParseResult, error) {
	return extract(lines, p)
}

func (p *AlipayExtractor) source() models.BillSource {
	return models.SourceAlipay
}

// headerIndex scans for a line naming both a time column and the amount
// column; the surrounding summary and footer sections never do.
func (p *AlipayExtractor) headerIndex(lines []string) int {
	for i, line := range lines {
		if containsAny(line, alipayTimeLabels) && strings.Contains(line, "金额") {
			return i
		}
	}
	return -1
}

func (p *AlipayExtractor) resolveColumns(header []string) error {
	cols := alipayColumns{
		time:         -1,
		counterparty: -1,
		goods:        -1,
		amount:       -1,
		direction:    -1,
		status:       -1,
		orderNo:      -1,
		merchantNo:   -1,
	}

	for i, h := range header {
		h = strings.TrimSpace(h)
		switch {
		case cols.time < 0 && strings.Contains(h, "时间"):
			cols.time = i
		case cols.counterparty < 0 && strings.Contains(h, "交易对方"):
			cols.counterparty = i
		case cols.goods < 0 && strings.Contains(h, "商品"):
			cols.goods = i
		case cols.amount < 0 && strings.Contains(h, "金额"):
			cols.amount = i
		case cols.direction < 0 && strings.Contains(h, "收/支"):
			cols.direction = i
		case cols.status < 0 && strings.Contains(h, "状态"):
			cols.status = i
		case cols.orderNo < 0 && (strings.Contains(h, "交易订单号") || strings.Contains(h, "交易号")):
			cols.orderNo = i
		case cols.merchantNo < 0 && (strings.Contains(h, "商家订单号") || strings.Contains(h, "商户订单号")):
			cols.merchantNo = i
		}
	}

	if cols.time < 0 || cols.counterparty < 0 || cols.goods < 0 ||
		cols.amount < 0 || cols.direction < 0 {
		return fmt.Errorf("alipay bill: required columns missing from header: %w", ErrHeaderNotFound)
	}

	p.cols = cols
	return nil
}

func (p *AlipayExtractor) minFields() int {
	return 5
}

// noise skips the dashed and double-lined separators Alipay draws around
// the data region.
func (p *AlipayExtractor) noise(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "=")
}

func (p *AlipayExtractor) stripAmountSpaces() bool {
	return true
}

func (p *AlipayExtractor) row(fields []string) rawRow {
	goods := field(fields, p.cols.goods)
	return rawRow{
		transactedAt:   field(fields, p.cols.time),
		direction:      field(fields, p.cols.direction),
		counterparty:   field(fields, p.cols.counterparty),
		goods:          goods,
		amountRaw:      field(fields, p.cols.amount),
		status:         field(fields, p.cols.status),
		orderNo:        field(fields, p.cols.orderNo),
		merchantNo:     field(fields, p.cols.merchantNo),
		classification: goods,
	}
}

// direction reads the 收/支 marker. Rows with a blank marker whose status
// mentions a refund are tallied as skipped; other unmarked rows (不计收支
// and the like) are dropped silently.
func (p *AlipayExtractor) direction(r rawRow) (models.Direction, dirVerdict) {
	switch {
	case strings.Contains(r.direction, "收入"):
		return models.DirectionIncome, dirKeep
	case strings.Contains(r.direction, "支出"):
		return models.DirectionExpense, dirKeep
	case r.direction == "" && strings.Contains(r.status, "退款"):
		return "", dirSkip
	default:
		return "", dirDrop
	}
}
