// Package parser turns decoded bill-export text from consumer payment
// platforms (WeChat Pay, Alipay) into structured transaction records.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lifeledger/bill-importer/internal/models"
)

var (
	ErrEmptyInput     = errors.New("bill content is empty")
	ErrUnknownSource  = errors.New("could not recognize the bill source; please confirm which platform exported this file")
	ErrHeaderNotFound = errors.New("header row not found")
	ErrNoValidRecords = errors.New("no importable records found")
)

// Extractor defines the interface for bill dialect extractors.
type Extractor interface {
	// Parse takes the decoded bill lines and returns the aggregated result.
	Parse(lines []string) (*models.ParseResult, error)
	// PlatformName returns the human-readable platform name.
	PlatformName() string
}

// New returns the extractor for the given bill source.
func New(source models.BillSource) (Extractor, error) {
	switch source {
	case models.SourceWeChat:
		return &WeChatExtractor{}, nil
	case models.SourceAlipay:
		return &AlipayExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported bill source: %q", source)
	}
}

// Parse auto-detects the source dialect of the decoded text and runs the
// matching extractor. It is a pure function of its input: no shared state,
// no retries.
func Parse(text string) (*models.ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	source := DetectSource(text)
	if source == models.SourceUnknown {
		return nil, ErrUnknownSource
	}
	return ParseAs(text, source)
}

// ParseAs parses the text as the given dialect, bypassing detection.
func ParseAs(text string, source models.BillSource) (*models.ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	ex, err := New(source)
	if err != nil {
		return nil, err
	}
	return ex.Parse(splitLines(text))
}

// detectWindow bounds how many leading lines DetectSource inspects. Export
// files prepend a variable-length summary section, but the identifying
// title and header always appear near the top.
const detectWindow = 30

// wechatTitle is the fixed title line of a WeChat Pay bill export.
const wechatTitle = "微信支付账单明细"

// wechatHeaderRequired is the header keyword set that must be present in
// full: WeChat column order and wording are stable across exports.
var wechatHeaderRequired = []string{"交易时间", "交易类型", "交易对方", "收/支", "当前状态"}

// alipayTitles are phrases unique to Alipay export files.
var alipayTitles = []string{"支付宝交易记录明细", "支付宝（中国）网络技术有限公司", "alipay"}

// alipayHeaderKeywords is matched as a quorum rather than in full because
// Alipay column wording varies across export versions (交易时间 vs
// 交易创建时间, 商品名称 vs 商品说明).
var alipayHeaderKeywords = []string{"时间", "交易对方", "商品", "金额", "交易状态"}

const alipayHeaderQuorum = 3

// DetectSource classifies decoded text as one of the known bill dialects,
// inspecting only the leading window of lines. WeChat is tested before
// Alipay and the first match wins: a WeChat export also satisfies Alipay's
// loose quorum, so the order matters.
func DetectSource(text string) models.BillSource {
	lines := splitLines(text)
	if len(lines) > detectWindow {
		lines = lines[:detectWindow]
	}
	window := strings.Join(lines, "\n")

	if strings.Contains(window, wechatTitle) || containsAll(window, wechatHeaderRequired) {
		return models.SourceWeChat
	}
	if containsAny(window, alipayTitles) || countContained(window, alipayHeaderKeywords) >= alipayHeaderQuorum {
		return models.SourceAlipay
	}
	return models.SourceUnknown
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func containsAll(text string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(text, needle) {
			return false
		}
	}
	return true
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func countContained(text string, needles []string) int {
	n := 0
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			n++
		}
	}
	return n
}
