package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeledger/bill-importer/internal/models"
)

func TestDetectSource(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.BillSource
	}{
		{
			"wechat title",
			"微信支付账单明细\n微信昵称：[test]",
			models.SourceWeChat,
		},
		{
			"wechat header without title",
			"交易时间,交易类型,交易对方,商品,收/支,金额(元),支付方式,当前状态,交易单号,商户单号,备注",
			models.SourceWeChat,
		},
		{
			"alipay title",
			"支付宝交易记录明细查询\n账号:[test]",
			models.SourceAlipay,
		},
		{
			"alipay header quorum without title",
			"交易创建时间,交易对方,商品名称",
			models.SourceAlipay,
		},
		{
			"alipay new-format header is not wechat",
			"交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态,交易订单号,商家订单号,备注",
			models.SourceAlipay,
		},
		{
			"no marker keywords",
			"Date,Description,Amount\n2024-01-15,Coffee,3.50",
			models.SourceUnknown,
		},
		{
			"empty",
			"",
			models.SourceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectSource(tt.text))
		})
	}
}

func TestDetectSourceWindow(t *testing.T) {
	// A header beyond the detection window is not seen.
	padding := strings.Repeat("summary line\n", detectWindow+5)
	text := padding + "微信支付账单明细\n"
	assert.Equal(t, models.SourceUnknown, DetectSource(text))
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("   \n\t")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseUnknownSource(t *testing.T) {
	_, err := Parse("Date,Description,Amount\n2024-01-15,Coffee,3.50")
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestNew(t *testing.T) {
	wechat, err := New(models.SourceWeChat)
	require.NoError(t, err)
	assert.Equal(t, "WeChat Pay", wechat.PlatformName())

	alipay, err := New(models.SourceAlipay)
	require.NoError(t, err)
	assert.Equal(t, "Alipay", alipay.PlatformName())

	_, err = New(models.SourceUnknown)
	assert.Error(t, err)
}
