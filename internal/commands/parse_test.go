package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wechatSample = `微信支付账单明细
微信昵称：[test]
交易时间,交易类型,交易对方,商品,收/支,金额(元),支付方式,当前状态,交易单号,商户单号,备注
2024-01-15 10:00:00,商户消费,星巴克,咖啡,支出,35.00,零钱,支付成功,123,456,
`

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	billPath := filepath.Join(dir, "bill.txt")
	require.NoError(t, os.WriteFile(billPath, []byte(wechatSample), 0o644))

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"parse", billPath})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "1 record(s)")
	assert.Contains(t, out.String(), "expense 35.00")

	csvPath := filepath.Join(dir, "bill.csv")
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Source,wechat")
	assert.Contains(t, string(data), "星巴克")
}

func TestParseCommandUnknownSourceFlag(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"parse", "--source", "paypal", "whatever.csv"})

	assert.Error(t, root.Execute())
}

func TestParseCommandMissingFile(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"parse", filepath.Join(t.TempDir(), "nope.csv")})

	assert.Error(t, root.Execute())
}
