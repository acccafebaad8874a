package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount converts an exported amount string like "¥1,234.56" to a
// decimal, stripping the currency glyph and thousands separators. When
// stripSpaces is set, internal spaces are removed as well; some Alipay
// export versions pad amounts with spaces.
func parseAmount(raw string, stripSpaces bool) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "¥", "")
	s = strings.ReplaceAll(s, "￥", "")
	s = strings.ReplaceAll(s, ",", "")
	if stripSpaces {
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "　", "")
		s = strings.ReplaceAll(s, " ", "")
	}
	return decimal.NewFromString(s)
}
