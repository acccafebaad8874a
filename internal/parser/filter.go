package parser

import "strings"

// skipStatusPhrases mark transactions that were reversed or never settled.
var skipStatusPhrases = []string{
	"已退款",
	"全额退款",
	"退款成功",
	"交易关闭",
	"已关闭",
	"对方已退还",
}

// skipClassificationPhrases mark balance movements with no spending
// behavior: wallet top-ups, withdrawals, and transfers between the user's
// own accounts.
var skipClassificationPhrases = []string{
	"零钱提现",
	"零钱充值",
	"转入零钱通",
	"零钱通转出",
	"信用卡还款",
	"余额宝-自动转入",
	"余额宝-单次转入",
	"余额宝-转出",
	"账户转存",
	"充值-普通充值",
}

// shouldSkip reports whether a row is excluded from import. status is the
// settlement text; classification is the transaction type for WeChat and
// the goods description for Alipay, whose type signal is too weak to use.
// Matching is substring containment, case-sensitive to the source script.
func shouldSkip(status, classification string) bool {
	for _, phrase := range skipStatusPhrases {
		if strings.Contains(status, phrase) {
			return true
		}
	}
	for _, phrase := range skipClassificationPhrases {
		if strings.Contains(classification, phrase) {
			return true
		}
	}
	return false
}
