package parser

import (
	"strings"

	"github.com/lifeledger/bill-importer/internal/models"
)

// WeChatExtractor handles WeChat Pay bill exports.
//
// The export prepends a free-text summary section, then a header row:
//
//	交易时间,交易类型,交易对方,商品,收/支,金额(元),支付方式,当前状态,交易单号,商户单号,备注
//
// Column order is stable across export versions, so fields are read by
// fixed position.
type WeChatExtractor struct{}

func (p *WeChatExtractor) PlatformName() string {
	return "WeChat Pay"
}

func (p *WeChatExtractor) Parse(lines []string) (*models.ParseResult, error) {
	return extract(lines, p)
}

func (p *WeChatExtractor) source() models.BillSource {
	return models.SourceWeChat
}

// headerIndex scans for the line that starts with the leading header label
// and also names the amount column; the summary section above it never
// does both.
func (p *WeChatExtractor) headerIndex(lines []string) int {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "交易时间") && strings.Contains(trimmed, "金额") {
			return i
		}
	}
	return -1
}

func (p *WeChatExtractor) resolveColumns([]string) error {
	return nil
}

func (p *WeChatExtractor) minFields() int {
	return 8
}

func (p *WeChatExtractor) noise(string) bool {
	return false
}

func (p *WeChatExtractor) stripAmountSpaces() bool {
	return false
}

func (p *WeChatExtractor) row(fields []string) rawRow {
	return rawRow{
		transactedAt:   field(fields, 0),
		classification: field(fields, 1),
		counterparty:   field(fields, 2),
		goods:          field(fields, 3),
		direction:      field(fields, 4),
		amountRaw:      field(fields, 5),
		method:         field(fields, 6),
		status:         field(fields, 7),
		orderNo:        field(fields, 8),
		merchantNo:     field(fields, 9),
		note:           field(fields, 10),
	}
}

// direction reads the 收/支 marker. WeChat writes "/" for neutral rows
// (wallet movements); those produce no record and no skip count.
func (p *WeChatExtractor) direction(r rawRow) (models.Direction, dirVerdict) {
	switch {
	case strings.Contains(r.direction, "收入"):
		return models.DirectionIncome, dirKeep
	case strings.Contains(r.direction, "支出"):
		return models.DirectionExpense, dirKeep
	default:
		return "", dirDrop
	}
}
