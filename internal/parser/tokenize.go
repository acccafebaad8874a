package parser

import "strings"

// splitLine splits one CSV line on commas, honoring double-quoted spans.
// A quote toggles the in-quotes state and is not retained in the output;
// commas inside quotes belong to the field. Doubled-quote escapes are not
// handled; the target exports do not embed literal quotes.
func splitLine(line string) []string {
	fields := make([]string, 0, 12)
	var buf strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}
	fields = append(fields, buf.String())
	return fields
}

// field returns the trimmed field at index i, or "" when the row is short.
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
