package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSkip(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		classification string
		expected       bool
	}{
		{"refunded status", "已退款", "商户消费", true},
		{"refunded status exact phrase", "已全额退款", "商户消费", true},
		{"closed transaction", "交易关闭", "即时到账交易", true},
		{"returned by counterparty", "对方已退还", "转账", true},
		{"wallet withdrawal by type", "支付成功", "零钱提现", true},
		{"transfer by classification, empty status", "", "余额宝-自动转入", true},
		{"credit card repayment", "支付成功", "信用卡还款", true},
		{"normal purchase", "支付成功", "商户消费", false},
		{"normal alipay purchase", "交易成功", "午餐", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shouldSkip(tt.status, tt.classification))
		})
	}
}
