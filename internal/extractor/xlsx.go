package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSX files are zip archives.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

func isXLSX(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// flattenXLSX renders every sheet of a workbook as comma-joined lines so
// the downstream tokenizer sees the same shape as a CSV export. Cells
// containing the delimiter are quoted so tokenizing round-trips.
func flattenXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("opening xlsx payload: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		for _, row := range rows {
			b.WriteString(joinRow(row))
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func joinRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		if strings.Contains(cell, ",") {
			quoted[i] = `"` + cell + `"`
		} else {
			quoted[i] = cell
		}
	}
	return strings.Join(quoted, ",")
}
