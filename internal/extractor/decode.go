// Package extractor turns raw bill payloads into decodable text. Exports
// arrive either as CSV text in one of several charsets (Alipay still
// ships GBK) or as an XLSX workbook; both end up as plain lines for the
// parser.
package extractor

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// markers are substrings any readable bill export contains; a candidate
// decoding is accepted once one of them shows up.
var markers = []string{"交易", "时间", "金额"}

// candidates are tried in order. UTF-8 first: modern WeChat exports.
// GB18030 covers the GBK bytes Alipay writes. UTF-16 shows up when a
// bill has passed through a spreadsheet app's "save as" on the way here.
var candidates = []encoding.Encoding{
	unicode.UTF8BOM,
	simplifiedchinese.GB18030,
	unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText resolves the charset of raw bytes and returns decoded text.
// It tries each candidate in order and accepts the first decoding that
// produces a marker keyword. It never fails: with no match it falls back
// to reading the bytes as UTF-8, and a truly undecodable payload yields
// garbled text that later stages reject for lack of a recognizable
// header.
func DecodeText(data []byte) string {
	for _, enc := range candidates {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		text := string(decoded)
		if containsMarker(text) {
			return text
		}
	}
	return string(bytes.TrimPrefix(data, utf8BOM))
}

// Decode turns a raw bill payload into parser-ready text. XLSX payloads
// are flattened to comma-joined lines first; everything else goes through
// charset resolution.
func Decode(data []byte) (string, error) {
	if isXLSX(data) {
		return flattenXLSX(data)
	}
	return DecodeText(data), nil
}

func containsMarker(text string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
